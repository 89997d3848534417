package game

import (
	"math/rand"
	"time"

	"github.com/KirkDiggler/hundred/internal/deck"
	"github.com/KirkDiggler/hundred/internal/rules"
)

// PlayerSnapshot is the flat saved form of a player
type PlayerSnapshot struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Hand        []deck.Card `json:"hand"`
	SipsTaken   int         `json:"sips_taken"`
	SipsGiven   int         `json:"sips_given"`
	DrinksTaken int         `json:"drinks_taken"`
	DrinksGiven int         `json:"drinks_given"`
}

// Snapshot is the flat saved form of a whole game, suitable for
// serialization by an external store. Pickers and listeners are
// runtime wiring and are reattached on restore.
type Snapshot struct {
	Stock           []deck.Card      `json:"stock"`
	Wastepile       []deck.Card      `json:"wastepile"`
	Count           int              `json:"count"`
	Direction       int              `json:"direction"`
	CurrentPlayerID string           `json:"current_player_id,omitempty"`
	Players         []PlayerSnapshot `json:"players"`
	Rules           rules.Rules      `json:"rules,omitempty"`
}

// Snapshot captures the game's full state
func (g *Game) Snapshot() *Snapshot {
	snap := &Snapshot{
		Stock:     append([]deck.Card(nil), g.stock...),
		Wastepile: append([]deck.Card(nil), g.wastepile...),
		Count:     g.count,
		Direction: g.direction,
		Rules:     g.rules,
	}
	if cur := g.CurrentPlayer(); cur != nil {
		snap.CurrentPlayerID = cur.ID
	}
	for _, p := range g.players {
		snap.Players = append(snap.Players, PlayerSnapshot{
			ID:          p.ID,
			Name:        p.Name,
			Hand:        append([]deck.Card(nil), p.Hand...),
			SipsTaken:   p.SipsTaken,
			SipsGiven:   p.SipsGiven,
			DrinksTaken: p.DrinksTaken,
			DrinksGiven: p.DrinksGiven,
		})
	}
	return snap
}

// RestoreConfig holds parameters for rebuilding a game from a snapshot
type RestoreConfig struct {
	Snapshot *Snapshot

	// Pickers maps player IDs to value pickers. Players without an
	// entry are restored with no picker.
	Pickers map[string]ValuePicker

	// Rand is an optional random source for subsequent shuffles
	Rand *rand.Rand

	// Listeners receive the restored game's event notifications
	Listeners []Listener
}

// Restore rebuilds a game from a snapshot without reshuffling, so a
// saved session resumes with the exact stock order it was left in.
func Restore(cfg *RestoreConfig) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	snap := cfg.Snapshot
	if snap == nil {
		return nil, ErrNilSnapshot
	}
	if snap.Direction != 1 && snap.Direction != -1 {
		return nil, ErrInvalidSnapshot
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	r := snap.Rules
	if r == nil {
		r = rules.Default()
	}

	g := &Game{
		rules:     r,
		stock:     append([]deck.Card(nil), snap.Stock...),
		wastepile: append([]deck.Card(nil), snap.Wastepile...),
		count:     snap.Count,
		current:   -1,
		direction: snap.Direction,
		rng:       rng,
		listeners: cfg.Listeners,
	}

	for i, ps := range snap.Players {
		p := &Player{
			ID:          ps.ID,
			Name:        ps.Name,
			Hand:        append([]deck.Card(nil), ps.Hand...),
			Picker:      cfg.Pickers[ps.ID],
			SipsTaken:   ps.SipsTaken,
			SipsGiven:   ps.SipsGiven,
			DrinksTaken: ps.DrinksTaken,
			DrinksGiven: ps.DrinksGiven,
		}
		g.players = append(g.players, p)
		if ps.ID == snap.CurrentPlayerID {
			g.current = i
		}
	}

	if len(g.players) > 0 && g.current < 0 {
		return nil, ErrInvalidSnapshot
	}
	return g, nil
}
