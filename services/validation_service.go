package services

import (
	"fmt"

	"pickem-pool-go/models"
)

// ValidatePicks decides whether a new batch of picks is acceptable given the
// user's prior submissions for the week. Pure function over the supplied
// history: it never touches a store, so the append on acceptance stays the
// caller's responsibility and the store can be swapped freely.
//
// Rejections, in order of precedence:
//   - models.ErrInvalidRequest when username or week is missing
//   - *models.DuplicateGamePickError when a game was already picked this
//     week, or appears twice within the new batch
//   - *models.WeeklyLimitError when accepting would exceed the weekly cap
//
// An empty batch is accepted as a no-op.
func ValidatePicks(existing []models.PickSubmission, newPicks []models.Pick, username string, week int) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", models.ErrInvalidRequest)
	}
	if week < 1 {
		return fmt.Errorf("%w: week is required", models.ErrInvalidRequest)
	}

	// A user's history may span multiple prior submissions for the week
	picked := make(map[string]bool)
	existingCount := 0
	for _, submission := range existing {
		if submission.Username != username || submission.Week != week {
			continue
		}
		for _, pick := range submission.Picks {
			picked[pick.GameID] = true
			existingCount++
		}
	}

	for _, pick := range newPicks {
		if picked[pick.GameID] {
			return &models.DuplicateGamePickError{GameID: pick.GameID}
		}
		picked[pick.GameID] = true
	}

	if existingCount+len(newPicks) > models.MaxPicksPerWeek {
		return &models.WeeklyLimitError{Current: existingCount, Attempted: len(newPicks)}
	}

	return nil
}
