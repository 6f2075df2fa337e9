package interfaces

import (
	"context"

	"pickem-pool-go/models"
)

// GameCatalog is the read-side boundary to game data. It is populated by an
// external odds-fetch process; the core never writes to it.
type GameCatalog interface {
	// GetGame returns the game with the given ID, or nil when unknown.
	GetGame(ctx context.Context, gameID string) (*models.Game, error)
	// ListGames returns all games scheduled for a week.
	ListGames(ctx context.Context, week int) ([]models.Game, error)
}

// PickStore is the durable append-only log of accepted submissions. No
// update or delete in normal operation.
type PickStore interface {
	AppendSubmission(ctx context.Context, submission *models.PickSubmission) error
	// ListSubmissions returns submissions filtered by username and/or week.
	// An empty username or a week of 0 means no filter on that field.
	ListSubmissions(ctx context.Context, username string, week int) ([]models.PickSubmission, error)
}

// GameServiceInterface defines the game read operations used by handlers.
type GameServiceInterface interface {
	GetGame(ctx context.Context, gameID string) (*models.Game, error)
	GetGamesByWeek(ctx context.Context, week int) ([]models.Game, error)
	HealthCheck(ctx context.Context) bool
}
