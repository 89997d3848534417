package deck_test

import (
	"testing"

	"github.com/KirkDiggler/hundred/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesRank(t *testing.T) {
	assert.Panics(t, func() { deck.New(0, deck.Hearts) })
	assert.Panics(t, func() { deck.New(14, deck.Hearts) })
	assert.NotPanics(t, func() { deck.New(deck.Ace, deck.Hearts) })
	assert.NotPanics(t, func() { deck.New(deck.King, deck.Hearts) })
}

func TestNewValidatesSuit(t *testing.T) {
	assert.Panics(t, func() { deck.New(deck.Five, deck.Suit("stars")) })
	assert.Panics(t, func() { deck.New(deck.Five, deck.Suit("")) })
}

func TestName(t *testing.T) {
	assert.Equal(t, "Ace of Spades", deck.New(deck.Ace, deck.Spades).Name())
	assert.Equal(t, "Seven of Hearts", deck.New(deck.Seven, deck.Hearts).Name())
	assert.Equal(t, "King of Clubs", deck.New(deck.King, deck.Clubs).Name())
}

func TestShorthand(t *testing.T) {
	cases := map[string]deck.Card{
		"a":  deck.New(deck.Ace, deck.Spades),
		"2":  deck.New(deck.Two, deck.Spades),
		"9":  deck.New(deck.Nine, deck.Diamonds),
		"10": deck.New(deck.Ten, deck.Clubs),
		"j":  deck.New(deck.Jack, deck.Hearts),
		"q":  deck.New(deck.Queen, deck.Hearts),
		"k":  deck.New(deck.King, deck.Hearts),
	}
	for want, card := range cases {
		assert.Equal(t, want, card.Shorthand())
	}
}

func TestNewDeckSize(t *testing.T) {
	require.Len(t, deck.NewDeck(1), 52)
	require.Len(t, deck.NewDeck(2), 104)
}

func TestNewDeckEachCardAppearsOncePerCopy(t *testing.T) {
	cards := deck.NewDeck(2)

	seen := make(map[deck.Card]int)
	for _, c := range cards {
		seen[c]++
	}

	require.Len(t, seen, 52)
	for card, n := range seen {
		assert.Equalf(t, 2, n, "card %s", card)
	}
}

func TestNewDeckGenerationOrder(t *testing.T) {
	cards := deck.NewDeck(1)

	// Suit-major, rank-minor: the first thirteen cards are all spades,
	// ace through king.
	for i := 0; i < 13; i++ {
		assert.Equal(t, deck.Spades, cards[i].Suit)
		assert.Equal(t, deck.Rank(i+1), cards[i].Rank)
	}
	assert.Equal(t, deck.Hearts, cards[13].Suit)
	assert.Equal(t, deck.Ace, cards[13].Rank)
}
