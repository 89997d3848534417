package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Recognized rule keys. Unknown keys are kept but never consulted.
const (
	// PlayBlind suppresses all count and direction effects on card play
	PlayBlind = "play_blind"

	// AutoShuffle reshuffles the wastepile into the stock when a draw
	// finds the stock empty
	AutoShuffle = "auto_shuffle"

	// KingExclusive folds the king's direction flip into the same branch
	// as the count effects, so play_blind suppresses it too
	KingExclusive = "king_exclusive"
)

// Rules is the read-only rule configuration consumed by a game. Every
// recognized toggle defaults to false when absent.
type Rules map[string]any

// Default returns an empty rule set, i.e. every toggle off.
func Default() Rules {
	return Rules{}
}

// Bool reports whether the named toggle is enabled. Missing keys and
// non-boolean values read as false.
func (r Rules) Bool(key string) bool {
	if r == nil {
		return false
	}
	v, ok := r[key].(bool)
	return ok && v
}

// Load reads a YAML rules file. A missing file is not an error: a
// table without one plays with the defaults.
func Load(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}
	if r == nil {
		r = Default()
	}
	return r, nil
}
