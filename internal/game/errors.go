package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotEnoughCards GameError = "not enough cards in the stock"
	ErrWrongPlayer    GameError = "not this player's turn"

	ErrNilConfig       GameError = "config cannot be nil"
	ErrNilSnapshot     GameError = "snapshot cannot be nil"
	ErrInvalidSnapshot GameError = "snapshot is not a consistent game state"
)
