package game

import (
	"math/rand"
	"time"

	"github.com/KirkDiggler/hundred/internal/deck"
	"github.com/KirkDiggler/hundred/internal/rules"
)

// openingHandSize is the number of cards dealt to each joining player
const openingHandSize = 4

// Game owns the stock, wastepile, running count, turn order, and rule
// configuration for one table of the count-to-100 game. All operations
// are synchronous and run to completion; a Game is not safe for
// concurrent use and expects at most one in-flight call at a time.
type Game struct {
	rules     rules.Rules
	stock     []deck.Card
	wastepile []deck.Card
	count     int
	players   []*Player
	current   int // index into players, -1 while empty
	direction int // +1 or -1
	rng       *rand.Rand
	listeners []Listener
}

// Config holds construction parameters for a game
type Config struct {
	// Stock is the initial draw pile, usually deck.NewDeck(n). The game
	// takes its own copy and shuffles it.
	Stock []deck.Card

	// Rules is the rule configuration, consumed read-only. Nil means
	// every toggle off.
	Rules rules.Rules

	// Players joins each player in order, dealing opening hands. Any
	// failed deal fails the whole construction.
	Players []*Player

	// Rand is an optional random source for deterministic shuffling.
	// Nil falls back to a time-seeded source.
	Rand *rand.Rand

	// Listeners receive the game's social event notifications
	Listeners []Listener
}

// New creates a game, deals opening hands to the supplied players in
// order, and shuffles the stock. Construction is all-or-nothing: if any
// player cannot be dealt a full opening hand, New fails with
// ErrNotEnoughCards and no partially initialized game escapes.
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	r := cfg.Rules
	if r == nil {
		r = rules.Default()
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		rules:     r,
		stock:     append([]deck.Card(nil), cfg.Stock...),
		wastepile: []deck.Card{},
		current:   -1,
		direction: 1,
		rng:       rng,
		listeners: cfg.Listeners,
	}

	for _, p := range cfg.Players {
		if err := g.AddPlayer(p); err != nil {
			return nil, err
		}
	}

	g.shuffleStock()
	return g, nil
}

// AddPlayer deals an opening hand to the player and appends them to
// the turn order. The deal is atomic: with fewer than four stock cards
// available it fails with ErrNotEnoughCards before any card moves, and
// the player is not added.
func (g *Game) AddPlayer(p *Player) error {
	if len(g.stock) < openingHandSize {
		return ErrNotEnoughCards
	}

	for i := 0; i < openingHandSize; i++ {
		if err := p.DrawCard(g); err != nil {
			return err
		}
	}

	g.players = append(g.players, p)
	if g.current < 0 {
		g.current = 0
	}
	return nil
}

// AddListener registers a listener for the game's event notifications
func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

// Move is the core rule state machine. It enforces the turn, discards
// the card, applies the rank effect to the count, and either resolves
// a lost round or advances the turn.
//
// Rank effects: ace adds 1 or 11 (player's choice), 2-9 add their
// rank, ten adds -10 or 10 (player's choice), jack sets the count to
// 96, queen does nothing. A king flips the turn direction; by default
// the flip is unconditional, with the king_exclusive rule it belongs
// to the same branch as the count effects and play_blind suppresses
// it. With play_blind enabled the discard still happens but no count
// effect applies.
func (g *Game) Move(p *Player, card deck.Card) error {
	cur := g.CurrentPlayer()
	if cur == nil || cur.ID != p.ID {
		return ErrWrongPlayer
	}

	g.wastepile = append(g.wastepile, card)

	exclusive := g.rules.Bool(rules.KingExclusive)
	if !g.rules.Bool(rules.PlayBlind) {
		switch {
		case card.Rank == deck.Ace:
			g.count += p.pickValue([]int{1, 11})
		case card.Rank <= deck.Nine:
			g.count += int(card.Rank)
		case card.Rank == deck.Ten:
			g.count += p.pickValue([]int{-10, 10})
		case card.Rank == deck.Jack:
			g.count = 96
		case card.Rank == deck.Queen:
			// queen plays for free
		case card.Rank == deck.King && exclusive:
			g.direction = -g.direction
		}
	}
	if card.Rank == deck.King && !exclusive {
		g.direction = -g.direction
	}

	if g.count >= 100 {
		g.gameOver(p)
	} else {
		g.nextPlayer()
	}
	return nil
}

// gameOver resolves a lost round: the loser downs a drink, and an
// overshot on an exact multiple of ten hands out one drink per ten.
// The count resets to zero; turn order and current player stand, so
// the same table rolls straight into the next round.
func (g *Game) gameOver(loser *Player) {
	overshot := g.count - 100
	g.emitRoundLost(loser, overshot)

	loser.TakeDrink(g)
	if overshot > 0 && overshot%10 == 0 {
		for i := 0; i < overshot/10; i++ {
			loser.HandOutDrink(g, nil)
		}
	}

	g.count = 0
}

// nextPlayer advances the turn by the current direction, wrapping at
// both ends of the player order. Calling it with no players is a
// programmer error.
func (g *Game) nextPlayer() {
	n := len(g.players)
	if n == 0 {
		panic("game: nextPlayer called with no players")
	}
	g.current = (g.current + g.direction + n) % n
}

func (g *Game) shuffleStock() {
	g.rng.Shuffle(len(g.stock), func(i, j int) {
		g.stock[i], g.stock[j] = g.stock[j], g.stock[i]
	})
}

// Count returns the running count
func (g *Game) Count() int {
	return g.count
}

// Direction returns the turn rotation sign, +1 or -1
func (g *Game) Direction() int {
	return g.direction
}

// StockSize returns the number of cards left in the draw pile
func (g *Game) StockSize() int {
	return len(g.stock)
}

// WastepileSize returns the number of discarded cards
func (g *Game) WastepileSize() int {
	return len(g.wastepile)
}

// TopOfWastepile returns the most recent discard, if any
func (g *Game) TopOfWastepile() (deck.Card, bool) {
	if len(g.wastepile) == 0 {
		return deck.Card{}, false
	}
	return g.wastepile[len(g.wastepile)-1], true
}

// CurrentPlayer returns the player whose turn it is, or nil for an
// empty table
func (g *Game) CurrentPlayer() *Player {
	if g.current < 0 || g.current >= len(g.players) {
		return nil
	}
	return g.players[g.current]
}

// Players returns the turn order. Callers must treat it as read-only.
func (g *Game) Players() []*Player {
	return g.players
}

// Rules returns the rule configuration, consumed read-only
func (g *Game) Rules() rules.Rules {
	return g.rules
}
