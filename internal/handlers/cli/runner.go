package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/KirkDiggler/hundred/internal/deck"
	"github.com/KirkDiggler/hundred/internal/game"
	"github.com/KirkDiggler/hundred/internal/rules"
	"github.com/KirkDiggler/hundred/internal/services/match"
)

// Config holds configuration for the interactive runner
type Config struct {
	// Service drives the match
	Service match.Service

	// Logger narrates sips, drinks, and lost rounds. Defaults to the
	// standard charmbracelet logger.
	Logger *log.Logger

	// Input and Output default to stdin and stdout
	Input  io.Reader
	Output io.Writer
}

// Runner is the interactive terminal loop: it renders the table,
// prompts the current player for a card, and feeds every answer to the
// match service one command at a time.
type Runner struct {
	svc    match.Service
	logger *log.Logger
	in     *bufio.Scanner
	out    io.Writer
}

// New creates a new interactive runner
func New(cfg *Config) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Service == nil {
		return nil, errors.New("match service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	in := cfg.Input
	if in == nil {
		in = os.Stdin
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	return &Runner{
		svc:    cfg.Service,
		logger: logger,
		in:     bufio.NewScanner(in),
		out:    out,
	}, nil
}

// RunOptions controls a single interactive session
type RunOptions struct {
	// MatchID resumes a saved match instead of creating one
	MatchID string

	// Name labels a newly created match
	Name string

	// PlayerNames seeds a newly created match, in turn order
	PlayerNames []string

	// Rules is the rule configuration for a newly created match
	Rules rules.Rules

	// Decks is the number of deck copies for a newly created match
	Decks int

	// Seed makes the opening shuffle reproducible when non-zero
	Seed int64
}

// Run plays rounds until the players quit or input runs out
func (r *Runner) Run(ctx context.Context, opts *RunOptions) error {
	matchID := opts.MatchID
	if matchID == "" {
		created, err := r.svc.CreateMatch(ctx, &match.CreateMatchInput{
			Name:        opts.Name,
			Decks:       opts.Decks,
			Rules:       opts.Rules,
			PlayerNames: opts.PlayerNames,
			Seed:        opts.Seed,
		})
		if err != nil {
			return fmt.Errorf("failed to create match: %w", err)
		}
		matchID = created.MatchID
		r.logger.Info("new match", "id", matchID)
	}

	for {
		state, err := r.svc.GetMatch(ctx, &match.GetMatchInput{MatchID: matchID})
		if err != nil {
			return err
		}
		m := state.Match

		fmt.Fprintln(r.out, strings.Repeat("-", 60))
		fmt.Fprint(r.out, renderTable(m, true))

		current := currentPlayer(m)
		if current == nil {
			return nil
		}

		answer, ok := r.prompt(fmt.Sprintf("what will %s play? (card, or q to quit): ", current.PlayerName))
		if !ok || answer == "q" {
			return r.finish(ctx, matchID)
		}

		card, ok := cardByShorthand(current.Hand, answer)
		if !ok {
			fmt.Fprintln(r.out, "no such card in hand")
			continue
		}

		if err := r.playCard(ctx, matchID, current.PlayerID, card); err != nil {
			if errors.Is(err, game.ErrWrongPlayer) {
				fmt.Fprintln(r.out, "not your turn")
				continue
			}
			return err
		}

		// Every play is followed by a draw, keeping hands at four
		_, err = r.svc.DrawCard(ctx, &match.DrawCardInput{
			MatchID:  matchID,
			PlayerID: current.PlayerID,
		})
		if err != nil && !errors.Is(err, game.ErrNotEnoughCards) {
			return err
		}
		if errors.Is(err, game.ErrNotEnoughCards) {
			r.logger.Warn("the stock is out of cards")
		}
	}
}

// playCard sends the play, prompting for the ace or ten value only
// when the service asks for one.
func (r *Runner) playCard(ctx context.Context, matchID, playerID string, card deck.Card) error {
	input := &match.PlayCardInput{
		MatchID:  matchID,
		PlayerID: playerID,
		Card:     card,
	}

	output, err := r.svc.PlayCard(ctx, input)
	if errors.Is(err, match.ErrValueRequired) {
		value, ok := r.promptValue(card)
		if !ok {
			return io.ErrUnexpectedEOF
		}
		input.PickedValue = &value
		output, err = r.svc.PlayCard(ctx, input)
	}
	if err != nil {
		return err
	}

	for _, e := range output.Events {
		r.logger.Info(narrate(e))
	}
	return nil
}

// promptValue loops until the player answers with one of the card's
// legal values.
func (r *Runner) promptValue(card deck.Card) (int, bool) {
	options := []int{1, 11}
	if card.Rank == deck.Ten {
		options = []int{-10, 10}
	}

	for {
		answer, ok := r.prompt(fmt.Sprintf("which value? %v: ", options))
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(answer)
		if err != nil {
			continue
		}
		for _, o := range options {
			if value == o {
				return value, true
			}
		}
	}
}

func (r *Runner) finish(ctx context.Context, matchID string) error {
	standings, err := r.svc.GetStandings(ctx, &match.GetStandingsInput{MatchID: matchID})
	if err != nil {
		return err
	}
	fmt.Fprint(r.out, renderStandings(standings.Standings))
	r.logger.Info("match saved", "id", matchID)
	return nil
}

func (r *Runner) prompt(question string) (string, bool) {
	fmt.Fprint(r.out, question)
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func currentPlayer(m *match.MatchState) *match.PlayerState {
	for _, p := range m.Players {
		if p.PlayerID == m.CurrentPlayerID {
			return p
		}
	}
	return nil
}

// cardByShorthand picks the first hand card matching the typed token,
// by shorthand first and full name second.
func cardByShorthand(hand []deck.Card, token string) (deck.Card, bool) {
	token = strings.ToLower(token)
	for _, c := range hand {
		if c.Shorthand() == token || strings.ToLower(c.Name()) == token {
			return c, true
		}
	}
	return deck.Card{}, false
}
