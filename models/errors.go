package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation and scoring-time lookups.
var (
	// ErrInvalidRequest covers missing or malformed submission fields.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrGameNotFound is returned when a pick references a game the
	// catalog does not know. Non-fatal during scoring (the pick is skipped).
	ErrGameNotFound = errors.New("game not found")
)

// DuplicateGamePickError means the same game was picked twice by one user in
// one week, either inside a single batch or across submissions.
type DuplicateGamePickError struct {
	GameID string
}

func (e *DuplicateGamePickError) Error() string {
	return fmt.Sprintf("game %s already picked this week", e.GameID)
}

// WeeklyLimitError means accepting the batch would push the user past
// MaxPicksPerWeek for the week.
type WeeklyLimitError struct {
	Current   int // picks already accepted this week
	Attempted int // picks in the rejected batch
}

func (e *WeeklyLimitError) Error() string {
	return fmt.Sprintf("weekly pick limit exceeded: %d existing + %d new > %d allowed",
		e.Current, e.Attempted, MaxPicksPerWeek)
}
