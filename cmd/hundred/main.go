package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/hundred/internal/common/clock"
	"github.com/KirkDiggler/hundred/internal/common/uuid"
	"github.com/KirkDiggler/hundred/internal/handlers/cli"
	"github.com/KirkDiggler/hundred/internal/repositories/session"
	"github.com/KirkDiggler/hundred/internal/rules"
	"github.com/KirkDiggler/hundred/internal/services/match"
)

type PlayCmd struct {
	Players string `short:"p" help:"Player names separated by comma. Prompted for when empty."`
	Name    string `help:"Label for the match." default:"hundred"`
	Decks   int    `help:"Number of deck copies." default:"1"`
	Rules   string `help:"Path to a YAML rules file." default:"rules.yaml"`
	Seed    int64  `help:"Shuffle seed, 0 for random."`
	Resume  string `help:"Resume a saved match by ID."`
}

type ListCmd struct{}

type DeleteCmd struct {
	MatchID string `arg:"" help:"ID of the match to delete."`
}

type CLI struct {
	RedisAddr string `help:"Redis address for persistent sessions. Empty keeps sessions in memory." env:"REDIS_ADDR"`
	Debug     bool   `help:"Enable debug logging."`

	Play   PlayCmd   `cmd:"" default:"1" help:"Play an interactive match."`
	List   ListCmd   `cmd:"" help:"List saved matches."`
	Delete DeleteCmd `cmd:"" help:"Delete a saved match and show its final standings."`
}

func main() {
	// Local .env files are optional
	_ = godotenv.Load()

	var args CLI
	kctx := kong.Parse(&args,
		kong.Name("hundred"),
		kong.Description("The count-to-100 drinking card game."),
	)

	logger := log.New(os.Stderr)
	if args.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	repo := buildRepository(args.RedisAddr, logger)

	svc, err := match.New(&match.Config{
		SessionRepo:   repo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		logger.Fatal("failed to create match service", "error", err)
	}

	ctx := context.Background()

	switch kctx.Command() {
	case "play":
		err = runPlay(ctx, svc, logger, &args.Play)
	case "list":
		err = runList(ctx, repo)
	case "delete <match-id>":
		err = runDelete(ctx, svc, args.Delete.MatchID)
	default:
		err = fmt.Errorf("unknown command %q", kctx.Command())
	}
	if err != nil {
		logger.Fatal("command failed", "error", err)
	}
}

// buildRepository picks Redis when an address is configured and falls
// back to in-process sessions otherwise.
func buildRepository(addr string, logger *log.Logger) session.Repository {
	if addr == "" {
		logger.Debug("no redis address configured, sessions stay in memory")
		return session.NewMemory()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to Redis", "addr", addr, "error", err)
	}

	repo, err := session.NewRedis(&session.Config{RedisClient: client})
	if err != nil {
		logger.Fatal("failed to create session repository", "error", err)
	}
	return repo
}

func runPlay(ctx context.Context, svc match.Service, logger *log.Logger, cmd *PlayCmd) error {
	runner, err := cli.New(&cli.Config{
		Service: svc,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	opts := &cli.RunOptions{
		MatchID: cmd.Resume,
		Name:    cmd.Name,
		Decks:   cmd.Decks,
		Seed:    cmd.Seed,
	}

	if cmd.Resume == "" {
		r, err := rules.Load(cmd.Rules)
		if err != nil {
			return err
		}
		opts.Rules = r
		opts.PlayerNames = playerNames(cmd.Players)
		if len(opts.PlayerNames) == 0 {
			return fmt.Errorf("at least one player name is required")
		}
	}

	return runner.Run(ctx, opts)
}

// playerNames splits the flag value, prompting on stdin when no names
// were given.
func playerNames(flag string) []string {
	raw := flag
	if raw == "" {
		fmt.Print("type player names separated by comma: ")
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return nil
		}
		raw = scanner.Text()
	}

	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func runList(ctx context.Context, repo session.Repository) error {
	output, err := repo.ListSessions(ctx, &session.ListSessionsInput{})
	if err != nil {
		return err
	}

	if len(output.Sessions) == 0 {
		fmt.Println("no saved matches")
		return nil
	}

	for _, sess := range output.Sessions {
		fmt.Printf("%s  %-20s  %d players, count %d, saved %s\n",
			sess.ID, sess.Name,
			len(sess.Snapshot.Players), sess.Snapshot.Count,
			sess.UpdatedAt.Format(time.RFC3339))
	}
	return nil
}

func runDelete(ctx context.Context, svc match.Service, matchID string) error {
	output, err := svc.EndMatch(ctx, &match.EndMatchInput{MatchID: matchID})
	if err != nil {
		return err
	}

	fmt.Println("final standings:")
	for _, row := range output.Standings {
		fmt.Printf("  %s: %d sips taken, %d given / %d drinks taken, %d given\n",
			row.PlayerName, row.SipsTaken, row.SipsGiven, row.DrinksTaken, row.DrinksGiven)
	}
	return nil
}
