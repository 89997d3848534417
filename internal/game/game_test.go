package game_test

import (
	"math/rand"
	"testing"

	"github.com/KirkDiggler/hundred/internal/deck"
	"github.com/KirkDiggler/hundred/internal/game"
	"github.com/KirkDiggler/hundred/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, cfg *game.Config) *game.Game {
	t.Helper()
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}
	g, err := game.New(cfg)
	require.NoError(t, err)
	return g
}

// twoPlayerGame deals from an unshuffled single deck, so Alice's
// opening hand is the ace through four of spades and Bob's the five
// through eight.
func twoPlayerGame(t *testing.T, r rules.Rules) (*game.Game, *game.Player, *game.Player) {
	t.Helper()
	alice := game.NewPlayer("p1", "Alice", nil)
	bob := game.NewPlayer("p2", "Bob", nil)
	g := newGame(t, &game.Config{
		Stock:   deck.NewDeck(1),
		Rules:   r,
		Players: []*game.Player{alice, bob},
	})
	return g, alice, bob
}

func totalCards(g *game.Game) int {
	total := g.StockSize() + g.WastepileSize()
	for _, p := range g.Players() {
		total += len(p.Hand)
	}
	return total
}

func TestNewDealsOpeningHands(t *testing.T) {
	g, alice, bob := twoPlayerGame(t, nil)

	assert.Len(t, alice.Hand, 4)
	assert.Len(t, bob.Hand, 4)
	assert.Equal(t, 44, g.StockSize())
	assert.Equal(t, 0, g.Count())
	assert.Equal(t, 1, g.Direction())
	assert.Same(t, alice, g.CurrentPlayer())

	// Hands are dealt before the stock is shuffled, in factory order
	assert.Equal(t, deck.New(deck.Ace, deck.Spades), alice.Hand[0])
	assert.Equal(t, deck.New(deck.Five, deck.Spades), bob.Hand[0])
}

func TestNewNilConfig(t *testing.T) {
	_, err := game.New(nil)
	assert.ErrorIs(t, err, game.ErrNilConfig)
}

func TestNewFailsWhenStockCannotCoverOpeningHands(t *testing.T) {
	players := []*game.Player{
		game.NewPlayer("p1", "Alice", nil),
		game.NewPlayer("p2", "Bob", nil),
	}
	_, err := game.New(&game.Config{
		Stock:   deck.NewDeck(1)[:7],
		Players: players,
	})
	assert.ErrorIs(t, err, game.ErrNotEnoughCards)
}

func TestNewShufflesDeterministicallyWithSeedSource(t *testing.T) {
	build := func() *game.Game {
		return newGame(t, &game.Config{
			Stock: deck.NewDeck(1),
			Rand:  rand.New(rand.NewSource(42)),
		})
	}
	one, two := build().Snapshot(), build().Snapshot()
	require.Equal(t, one.Stock, two.Stock)
	assert.NotEqual(t, deck.NewDeck(1), one.Stock)
}

func TestAddPlayerAtomicity(t *testing.T) {
	g := newGame(t, &game.Config{Stock: deck.NewDeck(1)[:3]})

	err := g.AddPlayer(game.NewPlayer("p1", "Alice", nil))
	assert.ErrorIs(t, err, game.ErrNotEnoughCards)
	assert.Empty(t, g.Players())
	assert.Equal(t, 3, g.StockSize())
	assert.Nil(t, g.CurrentPlayer())
}

func TestAddPlayerSetsFirstCurrentPlayer(t *testing.T) {
	g := newGame(t, &game.Config{Stock: deck.NewDeck(1)})

	alice := game.NewPlayer("p1", "Alice", nil)
	require.NoError(t, g.AddPlayer(alice))
	assert.Same(t, alice, g.CurrentPlayer())

	bob := game.NewPlayer("p2", "Bob", nil)
	require.NoError(t, g.AddPlayer(bob))
	assert.Same(t, alice, g.CurrentPlayer())
	assert.Equal(t, []*game.Player{alice, bob}, g.Players())
}

func TestMoveWrongPlayerLeavesStateUntouched(t *testing.T) {
	g, alice, bob := twoPlayerGame(t, nil)

	stock := g.StockSize()
	err := g.Move(bob, bob.Hand[0])

	assert.ErrorIs(t, err, game.ErrWrongPlayer)
	assert.Equal(t, 0, g.Count())
	assert.Equal(t, stock, g.StockSize())
	assert.Equal(t, 0, g.WastepileSize())
	assert.Equal(t, 1, g.Direction())
	assert.Same(t, alice, g.CurrentPlayer())
	assert.Len(t, bob.Hand, 4)
}

func TestMoveNumberCardsAddTheirRank(t *testing.T) {
	g, alice, bob := twoPlayerGame(t, nil)

	require.NoError(t, g.Move(alice, deck.New(deck.Two, deck.Hearts)))
	assert.Equal(t, 2, g.Count())
	assert.Same(t, bob, g.CurrentPlayer())

	require.NoError(t, g.Move(bob, deck.New(deck.Nine, deck.Hearts)))
	assert.Equal(t, 11, g.Count())
	assert.Same(t, alice, g.CurrentPlayer())
}

func TestMoveAceChoice(t *testing.T) {
	g, alice, bob := twoPlayerGame(t, nil)
	alice.Picker = game.FixedPicker(11)
	bob.Picker = game.FixedPicker(1)

	require.NoError(t, g.Move(alice, deck.New(deck.Ace, deck.Hearts)))
	assert.Equal(t, 11, g.Count())

	require.NoError(t, g.Move(bob, deck.New(deck.Ace, deck.Clubs)))
	assert.Equal(t, 12, g.Count())
}

func TestMoveTenChoice(t *testing.T) {
	g, alice, bob := twoPlayerGame(t, nil)
	alice.Picker = game.FixedPicker(10)
	bob.Picker = game.FixedPicker(-10)

	require.NoError(t, g.Move(alice, deck.New(deck.Ten, deck.Hearts)))
	assert.Equal(t, 10, g.Count())

	require.NoError(t, g.Move(bob, deck.New(deck.Ten, deck.Clubs)))
	assert.Equal(t, 0, g.Count())
}

func TestMovePickerMustAnswerFromOptions(t *testing.T) {
	g, alice, _ := twoPlayerGame(t, nil)
	alice.Picker = game.FixedPicker(5)

	assert.Panics(t, func() {
		_ = g.Move(alice, deck.New(deck.Ace, deck.Hearts))
	})
}

func TestMoveMissingPickerPanics(t *testing.T) {
	g, alice, _ := twoPlayerGame(t, nil)

	assert.Panics(t, func() {
		_ = g.Move(alice, deck.New(deck.Ten, deck.Hearts))
	})
}

func TestMoveJackSetsCountAbsolute(t *testing.T) {
	g, alice, bob := twoPlayerGame(t, nil)

	require.NoError(t, g.Move(alice, deck.New(deck.Seven, deck.Hearts)))
	require.Equal(t, 7, g.Count())

	require.NoError(t, g.Move(bob, deck.New(deck.Jack, deck.Hearts)))
	assert.Equal(t, 96, g.Count())
}

func TestMoveQueenHasNoEffect(t *testing.T) {
	g, alice, bob := twoPlayerGame(t, nil)

	require.NoError(t, g.Move(alice, deck.New(deck.Queen, deck.Hearts)))
	assert.Equal(t, 0, g.Count())
	assert.Equal(t, 1, g.Direction())
	assert.Same(t, bob, g.CurrentPlayer())
}

func TestMoveKingReversesDirection(t *testing.T) {
	players := []*game.Player{
		game.NewPlayer("p1", "Alice", nil),
		game.NewPlayer("p2", "Bob", nil),
		game.NewPlayer("p3", "Carol", nil),
	}
	g := newGame(t, &game.Config{
		Stock:   deck.NewDeck(1),
		Players: players,
	})

	// Direction flips to -1 and the turn wraps from index 0 to the end
	require.NoError(t, g.Move(players[0], deck.New(deck.King, deck.Hearts)))
	assert.Equal(t, -1, g.Direction())
	assert.Same(t, players[2], g.CurrentPlayer())

	require.NoError(t, g.Move(players[2], deck.New(deck.King, deck.Clubs)))
	assert.Equal(t, 1, g.Direction())
	assert.Same(t, players[0], g.CurrentPlayer())
}

func TestMovePlayBlindSuppressesCountEffects(t *testing.T) {
	g, alice, bob := twoPlayerGame(t, rules.Rules{rules.PlayBlind: true})

	require.NoError(t, g.Move(alice, deck.New(deck.Jack, deck.Hearts)))
	assert.Equal(t, 0, g.Count())
	assert.Equal(t, 1, g.WastepileSize())
	assert.Same(t, bob, g.CurrentPlayer())
}

func TestMovePlayBlindKingStillFlipsByDefault(t *testing.T) {
	g, alice, _ := twoPlayerGame(t, rules.Rules{rules.PlayBlind: true})

	require.NoError(t, g.Move(alice, deck.New(deck.King, deck.Hearts)))
	assert.Equal(t, -1, g.Direction())
}

func TestMoveKingExclusiveFoldsFlipIntoEffectBranch(t *testing.T) {
	r := rules.Rules{rules.PlayBlind: true, rules.KingExclusive: true}
	g, alice, _ := twoPlayerGame(t, r)

	// Under play_blind the exclusive variant skips the flip too
	require.NoError(t, g.Move(alice, deck.New(deck.King, deck.Hearts)))
	assert.Equal(t, 1, g.Direction())

	g2, alice2, _ := twoPlayerGame(t, rules.Rules{rules.KingExclusive: true})
	require.NoError(t, g2.Move(alice2, deck.New(deck.King, deck.Hearts)))
	assert.Equal(t, -1, g2.Direction())
}

func TestGameOverPlainLoss(t *testing.T) {
	g, alice, bob := twoPlayerGame(t, nil)
	bob.Picker = game.FixedPicker(11)

	require.NoError(t, g.Move(alice, deck.New(deck.Jack, deck.Hearts)))
	require.Equal(t, 96, g.Count())

	// 96 + 11 = 107, overshot 7: a drink down, nothing handed out
	require.NoError(t, g.Move(bob, deck.New(deck.Ace, deck.Hearts)))

	assert.Equal(t, 1, bob.DrinksTaken)
	assert.Equal(t, 0, bob.DrinksGiven)
	assert.Equal(t, 0, g.Count())
	// The loser keeps the turn for the next round
	assert.Same(t, bob, g.CurrentPlayer())
}

func TestGameOverExactHundred(t *testing.T) {
	g, alice, bob := twoPlayerGame(t, nil)

	require.NoError(t, g.Move(alice, deck.New(deck.Jack, deck.Hearts)))
	require.NoError(t, g.Move(bob, deck.New(deck.Four, deck.Hearts)))

	assert.Equal(t, 1, bob.DrinksTaken)
	assert.Equal(t, 0, bob.DrinksGiven)
	assert.Equal(t, 0, g.Count())
}

func TestGameOverOvershotMultipleOfTenHandsOutDrinks(t *testing.T) {
	g, alice, bob := twoPlayerGame(t, nil)
	alice.Picker = game.FixedPicker(11)

	require.NoError(t, g.Move(alice, deck.New(deck.Jack, deck.Hearts)))
	require.NoError(t, g.Move(bob, deck.New(deck.Three, deck.Hearts)))
	require.Equal(t, 99, g.Count())

	// 99 + 11 = 110, overshot 10: down a drink and hand one out
	require.NoError(t, g.Move(alice, deck.New(deck.Ace, deck.Hearts)))

	assert.Equal(t, 1, alice.DrinksTaken)
	assert.Equal(t, 1, alice.DrinksGiven)
	assert.Equal(t, 0, g.Count())
}

func TestCardConservation(t *testing.T) {
	g, alice, bob := twoPlayerGame(t, rules.Rules{rules.AutoShuffle: true})
	require.Equal(t, 52, totalCards(g))

	require.NoError(t, alice.PlayCard(alice.Hand[1], g))
	require.NoError(t, alice.DrawCard(g))
	require.Equal(t, 52, totalCards(g))

	require.NoError(t, bob.PlayCard(bob.Hand[0], g))
	require.NoError(t, bob.DrawCard(g))
	require.Equal(t, 52, totalCards(g))

	bob.ShuffleCards(g)
	assert.Equal(t, 52, totalCards(g))
}

func TestEventsReachListeners(t *testing.T) {
	rec := &game.Recorder{}
	alice := game.NewPlayer("p1", "Alice", nil)
	bob := game.NewPlayer("p2", "Bob", nil)
	g := newGame(t, &game.Config{
		Stock:     deck.NewDeck(1),
		Players:   []*game.Player{alice, bob},
		Listeners: []game.Listener{rec},
	})

	// 4 + 6 = 10: Bob hands out a sip
	require.NoError(t, g.Move(alice, deck.New(deck.Four, deck.Hearts)))
	require.NoError(t, bob.PlayCard(deck.New(deck.Six, deck.Spades), g))

	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, game.EventSipGiven, events[0].Kind)
	assert.Equal(t, "p2", events[0].PlayerID)
	assert.Equal(t, "Bob", events[0].PlayerName)
	assert.Equal(t, 1, events[0].N)
}
