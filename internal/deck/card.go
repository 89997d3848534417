package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit is one of the four playing card suits
type Suit string

const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
)

// Suits lists every suit in the order the deck factory generates them
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Rank is a card rank from 1 (ace) to 13 (king)
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = []string{
	"ace", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "jack", "queen", "king",
}

// Card is an immutable playing card value
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// New creates a card. Rank and suit are validated as a precondition;
// passing values outside the fixed sets is a programmer error and panics.
func New(rank Rank, suit Suit) Card {
	if rank < Ace || rank > King {
		panic(fmt.Sprintf("deck: invalid rank %d", rank))
	}
	if !validSuit(suit) {
		panic(fmt.Sprintf("deck: invalid suit %q", suit))
	}
	return Card{Rank: rank, Suit: suit}
}

func validSuit(suit Suit) bool {
	for _, s := range Suits {
		if s == suit {
			return true
		}
	}
	return false
}

// RankName returns the lowercase rank word, e.g. "ace" or "seven"
func (c Card) RankName() string {
	return rankNames[c.Rank-1]
}

// Name returns the display name, e.g. "Ace of Spades"
func (c Card) Name() string {
	title := func(s string) string {
		return strings.ToUpper(s[:1]) + s[1:]
	}
	return fmt.Sprintf("%s of %s", title(c.RankName()), title(string(c.Suit)))
}

// Shorthand returns the single-token form used for quick card entry:
// the digits for ranks 2-10, the first letter of the rank name for
// ace, jack, queen and king.
func (c Card) Shorthand() string {
	switch c.Rank {
	case Ace, Jack, Queen, King:
		return c.RankName()[:1]
	default:
		return strconv.Itoa(int(c.Rank))
	}
}

// String implements fmt.Stringer
func (c Card) String() string {
	return c.Name()
}
