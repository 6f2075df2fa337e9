package services

import (
	"context"
	"fmt"
	"sort"

	"pickem-pool-go/models"
)

// StandingsService ranks aggregated user statistics into a leaderboard.
type StandingsService struct {
	scoring *ScoringService
}

// NewStandingsService creates a new standings service.
func NewStandingsService(scoring *ScoringService) *StandingsService {
	return &StandingsService{scoring: scoring}
}

// GetStandings recomputes stats from the pick store and returns the sorted
// leaderboard.
func (s *StandingsService) GetStandings(ctx context.Context) ([]models.StandingsRow, error) {
	stats, err := s.scoring.ComputeStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return BuildStandings(stats), nil
}

// BuildStandings sorts stats by total points descending. Ties break on
// username ascending so repeated runs over the same snapshot are identical.
func BuildStandings(stats map[string]models.UserStats) []models.StandingsRow {
	rows := make([]models.StandingsRow, 0, len(stats))
	for username, userStats := range stats {
		rows = append(rows, models.StandingsRow{
			Username:    username,
			TotalPoints: userStats.TotalPoints,
			Wins:        userStats.Wins,
			Losses:      userStats.Losses,
			Parlays:     userStats.Parlays,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalPoints != rows[j].TotalPoints {
			return rows[i].TotalPoints > rows[j].TotalPoints
		}
		return rows[i].Username < rows[j].Username
	})

	return rows
}
