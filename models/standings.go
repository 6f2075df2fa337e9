package models

// UserStats accumulates a user's results across all weeks. Built by the
// scoring service as a pure fold over submissions; never persisted.
type UserStats struct {
	TotalPoints int `json:"total_points"`
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	Parlays     int `json:"parlays"`
}

// AddSubmission folds one submission's results into the running totals. A
// parlay (a full slate of MaxPicksPerWeek correct picks) earns one bonus point.
func (s *UserStats) AddSubmission(weekWins, weekLosses int) {
	s.Wins += weekWins
	s.Losses += weekLosses
	s.TotalPoints += weekWins
	if weekWins == MaxPicksPerWeek {
		s.TotalPoints++
		s.Parlays++
	}
}

// StandingsRow is one leaderboard entry.
type StandingsRow struct {
	Username    string `json:"username"`
	TotalPoints int    `json:"total_points"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Parlays     int    `json:"parlays"`
}
