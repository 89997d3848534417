package session

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/hundred/internal/deck"
	"github.com/KirkDiggler/hundred/internal/game"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 14, 21, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testSession(id string) *Session {
	return &Session{
		ID:   id,
		Name: "friday night",
		Snapshot: &game.Snapshot{
			Stock:           deck.NewDeck(1)[:5],
			Wastepile:       []deck.Card{deck.New(deck.Queen, deck.Hearts)},
			Count:           42,
			Direction:       -1,
			CurrentPlayerID: "p1",
			Players: []game.PlayerSnapshot{
				{
					ID:        "p1",
					Name:      "Alice",
					Hand:      deck.NewDeck(1)[5:9],
					SipsTaken: 3,
				},
			},
		},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	sess := s.testSession("test-session-id")

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: sess,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)

	s.Equal(sess.ID, retrieved.ID)
	s.Equal(sess.Name, retrieved.Name)
	s.Equal(sess.Snapshot, retrieved.Snapshot)
	s.True(sess.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "missing",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveSessionValidation() {
	err := s.repo.SaveSession(context.Background(), nil)
	s.Error(err)

	err = s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: &Session{},
	})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestListSessions() {
	ctx := context.Background()

	for _, id := range []string{"one", "two", "three"} {
		err := s.repo.SaveSession(ctx, &SaveSessionInput{Session: s.testSession(id)})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListSessions(ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Len(output.Sessions, 3)

	ids := make([]string, 0, len(output.Sessions))
	for _, sess := range output.Sessions {
		ids = append(ids, sess.ID)
	}
	s.ElementsMatch([]string{"one", "two", "three"}, ids)
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	ctx := context.Background()

	err := s.repo.SaveSession(ctx, &SaveSessionInput{Session: s.testSession("doomed")})
	s.Require().NoError(err)

	err = s.repo.DeleteSession(ctx, &DeleteSessionInput{SessionID: "doomed"})
	s.Require().NoError(err)

	_, err = s.repo.GetSession(ctx, &GetSessionInput{SessionID: "doomed"})
	s.Require().ErrorIs(err, ErrSessionNotFound)

	output, err := s.repo.ListSessions(ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Empty(output.Sessions)
}
