package match

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/KirkDiggler/hundred/internal/common/clock"
	"github.com/KirkDiggler/hundred/internal/common/uuid"
	"github.com/KirkDiggler/hundred/internal/deck"
	"github.com/KirkDiggler/hundred/internal/game"
	"github.com/KirkDiggler/hundred/internal/repositories/session"
	"github.com/KirkDiggler/hundred/internal/rules"
)

// service implements the Service interface. It is stateless: every
// operation loads the saved snapshot, restores the game, applies the
// operation, and saves the new snapshot. Callers must serialize
// operations per match; the game core expects one in-flight call.
type service struct {
	config      *Config
	sessionRepo session.Repository
	clock       clock.Clock
	uuidGen     uuid.UUID
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		config:      cfg,
		sessionRepo: cfg.SessionRepo,
		clock:       cfg.Clock,
		uuidGen:     cfg.UUIDGenerator,
	}, nil
}

// CreateMatch starts a new match with the named players and saves it
func (s *service) CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error) {
	if input == nil || len(input.PlayerNames) == 0 {
		return nil, ErrNoPlayers
	}

	decks := input.Decks
	if decks <= 0 {
		decks = s.config.Decks
	}
	if decks <= 0 {
		decks = 1
	}

	players := make([]*game.Player, 0, len(input.PlayerNames))
	playerIDs := make([]string, 0, len(input.PlayerNames))
	for _, name := range input.PlayerNames {
		id := s.uuidGen.NewUUID()
		players = append(players, game.NewPlayer(id, name, nil))
		playerIDs = append(playerIDs, id)
	}

	var rng *rand.Rand
	if input.Seed != 0 {
		rng = rand.New(rand.NewSource(input.Seed))
	}

	g, err := game.New(&game.Config{
		Stock:   deck.NewDeck(decks),
		Rules:   input.Rules,
		Players: players,
		Rand:    rng,
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	matchID := s.uuidGen.NewUUID()
	err = s.sessionRepo.SaveSession(ctx, &session.SaveSessionInput{
		Session: &session.Session{
			ID:        matchID,
			Name:      input.Name,
			Snapshot:  g.Snapshot(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save new match: %w", err)
	}

	return &CreateMatchOutput{
		MatchID:   matchID,
		PlayerIDs: playerIDs,
	}, nil
}

// JoinMatch deals a new player into an existing match
func (s *service) JoinMatch(ctx context.Context, input *JoinMatchInput) (*JoinMatchOutput, error) {
	sess, err := s.getSession(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	g, _, err := s.restoreGame(sess, nil)
	if err != nil {
		return nil, err
	}

	playerID := s.uuidGen.NewUUID()
	if err := g.AddPlayer(game.NewPlayer(playerID, input.PlayerName, nil)); err != nil {
		return nil, err
	}

	if err := s.saveSession(ctx, sess, g); err != nil {
		return nil, err
	}

	return &JoinMatchOutput{PlayerID: playerID}, nil
}

// PlayCard plays a card for a player and resolves its effects
func (s *service) PlayCard(ctx context.Context, input *PlayCardInput) (*PlayCardOutput, error) {
	sess, err := s.getSession(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	var pickers map[string]game.ValuePicker
	if input.PickedValue != nil {
		pickers = map[string]game.ValuePicker{
			input.PlayerID: game.FixedPicker(*input.PickedValue),
		}
	}

	g, recorder, err := s.restoreGame(sess, pickers)
	if err != nil {
		return nil, err
	}

	player, err := findPlayer(g, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if !holdsCard(player, input.Card) {
		return nil, ErrCardNotHeld
	}

	if err := s.checkPickedValue(g, input); err != nil {
		return nil, err
	}

	if err := player.PlayCard(input.Card, g); err != nil {
		return nil, err
	}

	if err := s.saveSession(ctx, sess, g); err != nil {
		return nil, err
	}

	output := &PlayCardOutput{
		Count:     g.Count(),
		Direction: g.Direction(),
		Events:    recorder.Events(),
	}
	if cur := g.CurrentPlayer(); cur != nil {
		output.CurrentPlayerID = cur.ID
	}
	for _, e := range recorder.Events() {
		if e.Kind == game.EventRoundLost {
			output.RoundOver = true
			output.Overshot = e.N
		}
	}
	return output, nil
}

// checkPickedValue validates the ace and ten choice up front, so a bad
// request fails with a recoverable error instead of tripping the
// core's picker contract.
func (s *service) checkPickedValue(g *game.Game, input *PlayCardInput) error {
	if g.Rules().Bool(rules.PlayBlind) {
		return nil
	}

	var options []int
	switch input.Card.Rank {
	case deck.Ace:
		options = []int{1, 11}
	case deck.Ten:
		options = []int{-10, 10}
	default:
		return nil
	}

	if input.PickedValue == nil {
		return ErrValueRequired
	}
	for _, o := range options {
		if *input.PickedValue == o {
			return nil
		}
	}
	return ErrInvalidValue
}

// DrawCard draws the top stock card into a player's hand
func (s *service) DrawCard(ctx context.Context, input *DrawCardInput) (*DrawCardOutput, error) {
	sess, err := s.getSession(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	g, recorder, err := s.restoreGame(sess, nil)
	if err != nil {
		return nil, err
	}

	player, err := findPlayer(g, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if err := player.DrawCard(g); err != nil {
		return nil, err
	}

	if err := s.saveSession(ctx, sess, g); err != nil {
		return nil, err
	}

	return &DrawCardOutput{
		Card:      player.Hand[len(player.Hand)-1],
		StockSize: g.StockSize(),
		Events:    recorder.Events(),
	}, nil
}

// GetMatch returns the current table state for display
func (s *service) GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error) {
	sess, err := s.getSession(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	snap := sess.Snapshot
	state := &MatchState{
		MatchID:         sess.ID,
		Name:            sess.Name,
		Count:           snap.Count,
		Direction:       snap.Direction,
		StockSize:       len(snap.Stock),
		CurrentPlayerID: snap.CurrentPlayerID,
	}
	if n := len(snap.Wastepile); n > 0 {
		top := snap.Wastepile[n-1]
		state.TopDiscard = &top
	}
	for _, p := range snap.Players {
		state.Players = append(state.Players, &PlayerState{
			PlayerID:    p.ID,
			PlayerName:  p.Name,
			Hand:        p.Hand,
			SipsTaken:   p.SipsTaken,
			SipsGiven:   p.SipsGiven,
			DrinksTaken: p.DrinksTaken,
			DrinksGiven: p.DrinksGiven,
		})
	}

	return &GetMatchOutput{Match: state}, nil
}

// GetStandings returns the sip and drink tallies, worst off first
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	sess, err := s.getSession(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	return &GetStandingsOutput{Standings: standings(sess)}, nil
}

// EndMatch deletes a match and returns the final standings
func (s *service) EndMatch(ctx context.Context, input *EndMatchInput) (*EndMatchOutput, error) {
	sess, err := s.getSession(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	final := standings(sess)

	err = s.sessionRepo.DeleteSession(ctx, &session.DeleteSessionInput{
		SessionID: input.MatchID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete match: %w", err)
	}

	return &EndMatchOutput{Standings: final}, nil
}

func (s *service) getSession(ctx context.Context, matchID string) (*session.Session, error) {
	sess, err := s.sessionRepo.GetSession(ctx, &session.GetSessionInput{
		SessionID: matchID,
	})
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match: %w", err)
	}
	return sess, nil
}

func (s *service) restoreGame(sess *session.Session, pickers map[string]game.ValuePicker) (*game.Game, *game.Recorder, error) {
	recorder := &game.Recorder{}
	g, err := game.Restore(&game.RestoreConfig{
		Snapshot:  sess.Snapshot,
		Pickers:   pickers,
		Listeners: []game.Listener{recorder},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to restore match %s: %w", sess.ID, err)
	}
	return g, recorder, nil
}

func (s *service) saveSession(ctx context.Context, sess *session.Session, g *game.Game) error {
	sess.Snapshot = g.Snapshot()
	sess.UpdatedAt = s.clock.Now()

	err := s.sessionRepo.SaveSession(ctx, &session.SaveSessionInput{Session: sess})
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}
	return nil
}

func findPlayer(g *game.Game, playerID string) (*game.Player, error) {
	for _, p := range g.Players() {
		if p.ID == playerID {
			return p, nil
		}
	}
	return nil, ErrPlayerNotInMatch
}

func holdsCard(p *game.Player, card deck.Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

func standings(sess *session.Session) []*PlayerStanding {
	rows := make([]*PlayerStanding, 0, len(sess.Snapshot.Players))
	for _, p := range sess.Snapshot.Players {
		rows = append(rows, &PlayerStanding{
			PlayerID:    p.ID,
			PlayerName:  p.Name,
			SipsTaken:   p.SipsTaken,
			SipsGiven:   p.SipsGiven,
			DrinksTaken: p.DrinksTaken,
			DrinksGiven: p.DrinksGiven,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].DrinksTaken != rows[j].DrinksTaken {
			return rows[i].DrinksTaken > rows[j].DrinksTaken
		}
		return rows[i].SipsTaken > rows[j].SipsTaken
	})
	return rows
}
