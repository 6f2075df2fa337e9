package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Game represents one pool game for a week, keyed by a "<week>-<n>" ID.
// The catalog is populated by an external odds-fetch process; the winner
// field stays empty until the game concludes and is authoritative once set.
type Game struct {
	ID              string    `json:"id" bson:"_id"`
	Week            int       `json:"week" bson:"week"`
	Away            string    `json:"away" bson:"away"`
	Home            string    `json:"home" bson:"home"`
	Spread          string    `json:"spread" bson:"spread"`                     // Display line, e.g. "KC -3.5"
	AwaySpreadValue float64   `json:"awaySpreadValue" bson:"away_spread_value"` // Informational only, not used in scoring
	Kickoff         time.Time `json:"kickoff" bson:"kickoff"`
	Winner          string    `json:"winner" bson:"winner"`
}

// HasWinner returns true once the game has an authoritative result.
func (g *Game) HasWinner() bool {
	return g.Winner != ""
}

// HasTeam returns true if the given team is playing in this game.
func (g *Game) HasTeam(team string) bool {
	return team == g.Away || team == g.Home
}

// Matchup returns a display string like "DET @ KC".
func (g *Game) Matchup() string {
	return fmt.Sprintf("%s @ %s", g.Away, g.Home)
}

// GameID builds the catalog key for the nth game of a week.
func GameID(week, index int) string {
	return fmt.Sprintf("%d-%d", week, index)
}

// WeekFromGameID extracts the week component of a "<week>-<n>" game ID.
// Returns 0 when the ID does not follow the expected format.
func WeekFromGameID(gameID string) int {
	idx := strings.Index(gameID, "-")
	if idx <= 0 {
		return 0
	}
	week, err := strconv.Atoi(gameID[:idx])
	if err != nil {
		return 0
	}
	return week
}
