package session

import (
	"context"
	"testing"

	"github.com/KirkDiggler/hundred/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	sess := &Session{
		ID:       "mem-1",
		Name:     "kitchen table",
		Snapshot: &game.Snapshot{Direction: 1},
	}

	require.NoError(t, repo.SaveSession(ctx, &SaveSessionInput{Session: sess}))

	got, err := repo.GetSession(ctx, &GetSessionInput{SessionID: "mem-1"})
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	listed, err := repo.ListSessions(ctx, &ListSessionsInput{})
	require.NoError(t, err)
	assert.Len(t, listed.Sessions, 1)

	require.NoError(t, repo.DeleteSession(ctx, &DeleteSessionInput{SessionID: "mem-1"}))

	_, err = repo.GetSession(ctx, &GetSessionInput{SessionID: "mem-1"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryRepositoryValidation(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	assert.Error(t, repo.SaveSession(ctx, nil))
	assert.Error(t, repo.SaveSession(ctx, &SaveSessionInput{Session: &Session{}}))

	_, err := repo.GetSession(ctx, &GetSessionInput{})
	assert.Error(t, err)
}
