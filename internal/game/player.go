package game

import (
	"fmt"

	"github.com/KirkDiggler/hundred/internal/deck"
	"github.com/KirkDiggler/hundred/internal/rules"
)

// Player holds a hand of cards and the running sip and drink tallies.
// A player's hand is exclusively owned by that player; cards only move
// between hand, stock, and wastepile through DrawCard, PlayCard, and
// ShuffleCards.
type Player struct {
	// ID uniquely identifies the player within a game
	ID string

	// Name is the display name of the player
	Name string

	// Hand is the player's current cards, in draw order
	Hand []deck.Card

	// Picker resolves the ace and ten value choices for this player.
	// It may be nil for players who never play an ace or a ten, but a
	// nil picker at choice time is a caller error and panics.
	Picker ValuePicker

	// Tallies of the social mechanics. Never decremented.
	SipsTaken   int
	SipsGiven   int
	DrinksTaken int
	DrinksGiven int
}

// NewPlayer creates a player with an empty hand
func NewPlayer(id, name string, picker ValuePicker) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		Picker: picker,
	}
}

// DrawCard moves the front card of the game's stock into the player's
// hand. With the auto_shuffle rule enabled an empty stock is first
// refilled from the wastepile and the draw retried once; otherwise an
// empty stock fails with ErrNotEnoughCards.
func (p *Player) DrawCard(g *Game) error {
	if len(g.stock) == 0 {
		if !g.rules.Bool(rules.AutoShuffle) {
			return ErrNotEnoughCards
		}
		p.ShuffleCards(g)
		if len(g.stock) == 0 {
			return ErrNotEnoughCards
		}
	}

	card := g.stock[0]
	g.stock = g.stock[1:]
	p.Hand = append(p.Hand, card)
	return nil
}

// ShuffleCards returns every wastepile card except the most recent
// discard to the stock, then shuffles the stock. The top discard stays
// visible as the sole wastepile card. With fewer than two wastepile
// cards nothing moves.
func (p *Player) ShuffleCards(g *Game) {
	if n := len(g.wastepile); n > 1 {
		top := g.wastepile[n-1]
		g.stock = append(g.stock, g.wastepile[:n-1]...)
		g.wastepile = []deck.Card{top}
		g.emitShuffle(n - 1)
	}
	g.shuffleStock()
}

// PlayCard plays a card from the player's hand. The game resolves the
// move first; on a wrong-turn error the hand is left untouched. After a
// successful move the card leaves the hand and the count's social
// mechanic applies: a count on a multiple of 10 hands out a sip, a
// count on a multiple of 11 costs the player a sip.
func (p *Player) PlayCard(card deck.Card, g *Game) error {
	if err := g.Move(p, card); err != nil {
		return err
	}

	p.removeFromHand(card)

	if g.count != 0 {
		if g.count%10 == 0 {
			p.HandOutSip(g, nil, 1)
		} else if g.count%11 == 0 {
			p.TakeSip(g, 1)
		}
	}
	return nil
}

// TakeSip records the player taking n sips
func (p *Player) TakeSip(g *Game, n int) {
	p.SipsTaken += n
	g.emitSipTaken(p, n)
}

// TakeDrink records the player downing a full drink
func (p *Player) TakeDrink(g *Game) {
	p.DrinksTaken++
	g.emitDrinkTaken(p)
}

// HandOutSip records the player handing out n sips. Picking the
// recipient is the table's business; pass nil to leave it open, or a
// player to credit their tally too.
func (p *Player) HandOutSip(g *Game, to *Player, n int) {
	p.SipsGiven += n
	if to != nil {
		to.SipsTaken += n
	}
	g.emitSipGiven(p, to, n)
}

// HandOutDrink records the player handing out a full drink. As with
// HandOutSip the recipient may be nil.
func (p *Player) HandOutDrink(g *Game, to *Player) {
	p.DrinksGiven++
	if to != nil {
		to.DrinksTaken++
	}
	g.emitDrinkGiven(p, to)
}

// pickValue resolves an ace or ten choice through the player's picker.
// A missing picker or an out-of-options answer means the caller broke
// the contract, so both panic.
func (p *Player) pickValue(options []int) int {
	if p.Picker == nil {
		panic(fmt.Sprintf("game: player %q has no value picker", p.Name))
	}
	v := p.Picker.PickValue(options)
	for _, o := range options {
		if v == o {
			return v
		}
	}
	panic(fmt.Sprintf("game: picker for player %q returned %d, want one of %v", p.Name, v, options))
}

// removeFromHand removes the first matching card. The card being
// absent means a caller invariant was already broken, so it panics.
func (p *Player) removeFromHand(card deck.Card) {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("game: player %q does not hold %s", p.Name, card))
}
