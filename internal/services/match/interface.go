package match

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hundred/internal/services/match Service

// Service defines the interface for match operations
type Service interface {
	// CreateMatch starts a new match with the named players and saves it
	CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error)

	// JoinMatch deals a new player into an existing match
	JoinMatch(ctx context.Context, input *JoinMatchInput) (*JoinMatchOutput, error)

	// PlayCard plays a card for a player and resolves its effects
	PlayCard(ctx context.Context, input *PlayCardInput) (*PlayCardOutput, error)

	// DrawCard draws the top stock card into a player's hand
	DrawCard(ctx context.Context, input *DrawCardInput) (*DrawCardOutput, error)

	// GetMatch returns the current table state for display
	GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error)

	// GetStandings returns the sip and drink tallies, worst off first
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)

	// EndMatch deletes a match and returns the final standings
	EndMatch(ctx context.Context, input *EndMatchInput) (*EndMatchOutput, error)
}
