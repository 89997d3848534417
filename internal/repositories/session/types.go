package session

import (
	"time"

	"github.com/KirkDiggler/hundred/internal/game"
)

// Session is a saved game with its bookkeeping metadata
type Session struct {
	// ID is the unique identifier for the session
	ID string `json:"id"`

	// Name is a human-friendly label for the table
	Name string `json:"name"`

	// Snapshot is the full game state at save time
	Snapshot *game.Snapshot `json:"snapshot"`

	// CreatedAt is when the session was first saved
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the session was last saved
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveSessionInput contains parameters for saving a session
type SaveSessionInput struct {
	Session *Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string
}

// ListSessionsInput contains parameters for listing sessions
type ListSessionsInput struct{}

// ListSessionsOutput contains the listed sessions
type ListSessionsOutput struct {
	Sessions []*Session
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	SessionID string
}
