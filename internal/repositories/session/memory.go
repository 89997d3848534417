package session

import (
	"context"
	"errors"
	"sync"
)

// memoryRepository implements the Repository interface in process
// memory. It backs local play where no Redis is configured; saved
// sessions last only as long as the process.
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemory creates a new in-memory session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]*Session),
	}
}

// SaveSession stores a session in memory
func (r *memoryRepository) SaveSession(_ context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[input.Session.ID] = input.Session
	return nil
}

// GetSession retrieves a session by ID
func (r *memoryRepository) GetSession(_ context.Context, input *GetSessionInput) (*Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// ListSessions retrieves every saved session
func (r *memoryRepository) ListSessions(_ context.Context, _ *ListSessionsInput) (*ListSessionsOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	output := &ListSessionsOutput{}
	for _, sess := range r.sessions {
		output.Sessions = append(output.Sessions, sess)
	}
	return output, nil
}

// DeleteSession removes a session
func (r *memoryRepository) DeleteSession(_ context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, input.SessionID)
	return nil
}
