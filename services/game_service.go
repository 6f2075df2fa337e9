package services

import (
	"context"

	"pickem-pool-go/interfaces"
	"pickem-pool-go/logging"
	"pickem-pool-go/models"
)

// GameService exposes catalog reads to the handlers.
type GameService struct {
	catalog interfaces.GameCatalog
	logger  *logging.Logger
}

// NewGameService creates a new game service.
func NewGameService(catalog interfaces.GameCatalog) *GameService {
	return &GameService{
		catalog: catalog,
		logger:  logging.WithPrefix("GameService"),
	}
}

// GetGame returns one game by ID, or nil when the catalog does not know it.
func (s *GameService) GetGame(ctx context.Context, gameID string) (*models.Game, error) {
	return s.catalog.GetGame(ctx, gameID)
}

// GetGamesByWeek returns all games scheduled for a week.
func (s *GameService) GetGamesByWeek(ctx context.Context, week int) ([]models.Game, error) {
	return s.catalog.ListGames(ctx, week)
}

// HealthCheck returns true when the catalog answers queries.
func (s *GameService) HealthCheck(ctx context.Context) bool {
	if _, err := s.catalog.ListGames(ctx, 1); err != nil {
		s.logger.Warnf("Catalog health check failed: %v", err)
		return false
	}
	return true
}
