package match

// MatchError is a custom error type for match-related errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMatchNotFound    MatchError = "match not found"
	ErrPlayerNotInMatch MatchError = "player not in match"
	ErrCardNotHeld      MatchError = "player does not hold that card"
	ErrValueRequired    MatchError = "card requires a picked value"
	ErrInvalidValue     MatchError = "picked value is not a legal option"
	ErrNoPlayers        MatchError = "match needs at least one player"

	ErrNilConfig        MatchError = "config cannot be nil"
	ErrNilSessionRepo   MatchError = "session repository cannot be nil"
	ErrNilClock         MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator MatchError = "UUID generator cannot be nil"
)
