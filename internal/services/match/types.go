package match

import (
	"github.com/KirkDiggler/hundred/internal/common/clock"
	"github.com/KirkDiggler/hundred/internal/common/uuid"
	"github.com/KirkDiggler/hundred/internal/deck"
	"github.com/KirkDiggler/hundred/internal/game"
	"github.com/KirkDiggler/hundred/internal/repositories/session"
	"github.com/KirkDiggler/hundred/internal/rules"
)

// Config holds configuration for the match service
type Config struct {
	// Decks is the number of deck copies a new match starts with.
	// Zero means one deck.
	Decks int

	// Repository dependencies
	SessionRepo session.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateMatchInput contains parameters for creating a new match
type CreateMatchInput struct {
	// Name is a human-friendly label for the table
	Name string

	// Decks overrides the configured number of deck copies when > 0
	Decks int

	// Rules is the rule configuration for the match
	Rules rules.Rules

	// PlayerNames seeds the table, in turn order
	PlayerNames []string

	// Seed makes the opening shuffle reproducible when non-zero
	Seed int64
}

// CreateMatchOutput contains the result of creating a match
type CreateMatchOutput struct {
	// MatchID is the unique identifier for the created match
	MatchID string

	// PlayerIDs are the generated player IDs, in turn order
	PlayerIDs []string
}

// JoinMatchInput contains parameters for joining a match
type JoinMatchInput struct {
	MatchID    string
	PlayerName string
}

// JoinMatchOutput contains the result of joining a match
type JoinMatchOutput struct {
	PlayerID string
}

// PlayCardInput contains parameters for playing a card
type PlayCardInput struct {
	MatchID  string
	PlayerID string

	// Card must currently be in the player's hand
	Card deck.Card

	// PickedValue resolves the ace (1 or 11) and ten (-10 or 10)
	// choices. Required for those cards unless play_blind is on.
	PickedValue *int
}

// PlayCardOutput contains the result of playing a card
type PlayCardOutput struct {
	// Count is the running count after the play
	Count int

	// Direction is the turn rotation sign after the play
	Direction int

	// CurrentPlayerID is whose turn it is now
	CurrentPlayerID string

	// RoundOver reports whether the play pushed the count to 100+
	RoundOver bool

	// Overshot is the amount past 100 when RoundOver is true
	Overshot int

	// Events are the social notifications the play emitted
	Events []game.Event
}

// DrawCardInput contains parameters for drawing a card
type DrawCardInput struct {
	MatchID  string
	PlayerID string
}

// DrawCardOutput contains the result of drawing a card
type DrawCardOutput struct {
	// Card is the card that entered the player's hand
	Card deck.Card

	// StockSize is the number of stock cards left after the draw
	StockSize int

	// Events are any notifications the draw emitted (a reshuffle)
	Events []game.Event
}

// GetMatchInput contains parameters for fetching match state
type GetMatchInput struct {
	MatchID string
}

// GetMatchOutput contains the displayable table state
type GetMatchOutput struct {
	Match *MatchState
}

// MatchState is a read-only view of a match for presentation
type MatchState struct {
	MatchID         string
	Name            string
	Count           int
	Direction       int
	StockSize       int
	CurrentPlayerID string
	TopDiscard      *deck.Card
	Players         []*PlayerState
}

// PlayerState is a read-only view of one player
type PlayerState struct {
	PlayerID    string
	PlayerName  string
	Hand        []deck.Card
	SipsTaken   int
	SipsGiven   int
	DrinksTaken int
	DrinksGiven int
}

// GetStandingsInput contains parameters for fetching standings
type GetStandingsInput struct {
	MatchID string
}

// GetStandingsOutput contains the current standings
type GetStandingsOutput struct {
	Standings []*PlayerStanding
}

// PlayerStanding is one row of the sip and drink tally board
type PlayerStanding struct {
	PlayerID    string
	PlayerName  string
	SipsTaken   int
	SipsGiven   int
	DrinksTaken int
	DrinksGiven int
}

// EndMatchInput contains parameters for ending a match
type EndMatchInput struct {
	MatchID string
}

// EndMatchOutput contains the final standings of an ended match
type EndMatchOutput struct {
	Standings []*PlayerStanding
}
