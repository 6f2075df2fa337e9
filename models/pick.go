package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxPicksPerWeek is the cumulative cap on accepted picks per user per week.
const MaxPicksPerWeek = 3

// Pick is a single choice of one team to win one game.
type Pick struct {
	GameID string `bson:"game_id" json:"game_id"`
	Team   string `bson:"team" json:"team"`
}

// PickSubmission is one accepted batch of picks from a user. Submissions are
// append-only: a user may submit multiple times for the same week as long as
// the cumulative pick count stays within MaxPicksPerWeek and no game is
// picked twice.
type PickSubmission struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Week      int                `bson:"week" json:"week"`
	Picks     []Pick             `bson:"picks" json:"picks"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// GameIDs returns the game IDs referenced by this submission, in order.
func (s *PickSubmission) GameIDs() []string {
	ids := make([]string, len(s.Picks))
	for i, pick := range s.Picks {
		ids[i] = pick.GameID
	}
	return ids
}

// ParsePicksString parses the wire encoding "gameId-team,gameId-team,...".
// Game IDs have the form "<week>-<n>", so each pair carries two hyphens
// before the team: the split keeps the first two segments as the game ID and
// the remainder as the team.
func ParsePicksString(encoded string) ([]Pick, error) {
	trimmed := strings.TrimSpace(encoded)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: picks string is empty", ErrInvalidRequest)
	}

	var picks []Pick
	for _, pair := range strings.Split(trimmed, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			return nil, fmt.Errorf("%w: empty pick entry", ErrInvalidRequest)
		}

		parts := strings.SplitN(pair, "-", 3)
		if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("%w: malformed pick %q, want \"<week>-<n>-<team>\"", ErrInvalidRequest, pair)
		}

		picks = append(picks, Pick{
			GameID: parts[0] + "-" + parts[1],
			Team:   strings.TrimSpace(parts[2]),
		})
	}

	return picks, nil
}

// EncodePicksString renders picks back into the wire format.
func EncodePicksString(picks []Pick) string {
	pairs := make([]string, len(picks))
	for i, pick := range picks {
		pairs[i] = pick.GameID + "-" + pick.Team
	}
	return strings.Join(pairs, ",")
}
