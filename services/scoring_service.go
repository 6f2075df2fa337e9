package services

import (
	"context"
	"fmt"

	"pickem-pool-go/interfaces"
	"pickem-pool-go/logging"
	"pickem-pool-go/models"
)

// ScoringService aggregates all accepted picks against the game catalog into
// per-user statistics. Full recompute on every run: the pick store is small
// and an append-only log, so no incremental state is kept.
type ScoringService struct {
	store   interfaces.PickStore
	catalog interfaces.GameCatalog
	logger  *logging.Logger
}

// NewScoringService creates a new scoring service.
func NewScoringService(store interfaces.PickStore, catalog interfaces.GameCatalog) *ScoringService {
	return &ScoringService{
		store:   store,
		catalog: catalog,
		logger:  logging.WithPrefix("ScoringService"),
	}
}

// ComputeStats reads the full pick store and folds every submission into a
// per-user accumulator. Every username that appears in any submission is
// present in the result, even with nothing scored yet.
func (s *ScoringService) ComputeStats(ctx context.Context) (map[string]models.UserStats, error) {
	submissions, err := s.store.ListSubmissions(ctx, "", 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return s.computeStats(ctx, submissions)
}

// computeStats scores each submission independently. Submissions are not
// deduplicated here: the validator has already prevented overlapping picks
// on the accepted path.
func (s *ScoringService) computeStats(ctx context.Context, submissions []models.PickSubmission) (map[string]models.UserStats, error) {
	stats := make(map[string]models.UserStats)

	for _, submission := range submissions {
		weekWins := 0
		weekLosses := 0

		for _, pick := range submission.Picks {
			game, err := s.catalog.GetGame(ctx, pick.GameID)
			if err != nil {
				return nil, fmt.Errorf("failed to look up game %s: %w", pick.GameID, err)
			}
			if game == nil {
				// Unknown game: skipped, counts toward nothing
				s.logger.Warnf("Pick references unknown game %s", pick.GameID)
				continue
			}
			if !game.HasWinner() {
				// Pending game: skipped until the result is in
				continue
			}

			if game.Winner == pick.Team {
				weekWins++
			} else {
				weekLosses++
			}
		}

		userStats := stats[submission.Username]
		userStats.AddSubmission(weekWins, weekLosses)
		stats[submission.Username] = userStats
	}

	return stats, nil
}
