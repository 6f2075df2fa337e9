package services

import (
	"context"
	"sync"
	"testing"

	"pickem-pool-go/database"
	"pickem-pool-go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubmissionFixture() (*SubmissionService, *database.MemoryPickStore, *database.MemoryGameCatalog) {
	catalog := database.NewMemoryGameCatalog()
	seedWeekOneGames(catalog)
	store := database.NewMemoryPickStore()
	return NewSubmissionService(store, catalog), store, catalog
}

func TestSubmitPicksAcceptsValidBatch(t *testing.T) {
	svc, store, _ := newSubmissionFixture()

	submission, err := svc.SubmitPicks(context.Background(), "alice", 1, "1-1-KC,1-2-BUF")
	require.NoError(t, err)
	require.Len(t, submission.Picks, 2)
	assert.Equal(t, models.Pick{GameID: "1-1", Team: "KC"}, submission.Picks[0])
	assert.False(t, submission.CreatedAt.IsZero())

	stored, err := store.ListSubmissions(context.Background(), "alice", 1)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestSubmitPicksRejectsMissingFields(t *testing.T) {
	svc, _, _ := newSubmissionFixture()

	_, err := svc.SubmitPicks(context.Background(), "", 1, "1-1-KC")
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = svc.SubmitPicks(context.Background(), "alice", 0, "1-1-KC")
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = svc.SubmitPicks(context.Background(), "alice", 19, "1-1-KC")
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = svc.SubmitPicks(context.Background(), "alice", 1, "")
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}

func TestSubmitPicksRejectsUnknownGameAndWrongTeam(t *testing.T) {
	svc, _, _ := newSubmissionFixture()

	_, err := svc.SubmitPicks(context.Background(), "alice", 1, "1-9-KC")
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	// DET plays in 1-1; GB does not
	_, err = svc.SubmitPicks(context.Background(), "alice", 1, "1-1-GB")
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	// Game 1-1 cannot be picked as a week 2 game
	_, err = svc.SubmitPicks(context.Background(), "alice", 2, "1-1-KC")
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}

func TestSubmitPicksRejectsDuplicateAcrossSubmissions(t *testing.T) {
	svc, _, _ := newSubmissionFixture()

	_, err := svc.SubmitPicks(context.Background(), "alice", 1, "1-1-KC")
	require.NoError(t, err)

	_, err = svc.SubmitPicks(context.Background(), "alice", 1, "1-1-DET")
	var dup *models.DuplicateGamePickError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "1-1", dup.GameID)
}

func TestSubmitPicksEnforcesWeeklyCap(t *testing.T) {
	svc, store, _ := newSubmissionFixture()

	_, err := svc.SubmitPicks(context.Background(), "alice", 1, "1-1-KC,1-2-BUF")
	require.NoError(t, err)

	_, err = svc.SubmitPicks(context.Background(), "alice", 1, "1-3-PHI,1-4-SF")
	var limit *models.WeeklyLimitError
	require.ErrorAs(t, err, &limit)

	// A rejected batch appends nothing
	stored, err := store.ListSubmissions(context.Background(), "alice", 1)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	// The remaining single slot is still usable
	_, err = svc.SubmitPicks(context.Background(), "alice", 1, "1-3-PHI")
	assert.NoError(t, err)
}

func TestSubmitPicksNoTripleEverRepeats(t *testing.T) {
	svc, store, _ := newSubmissionFixture()
	ctx := context.Background()

	inputs := []string{"1-1-KC", "1-1-KC,1-2-BUF", "1-2-BUF", "1-3-PHI", "1-4-SF", "1-3-DAL"}
	for _, picks := range inputs {
		// Errors expected for most of these; only accepted batches matter
		_, _ = svc.SubmitPicks(ctx, "alice", 1, picks)
	}

	stored, err := store.ListSubmissions(ctx, "alice", 1)
	require.NoError(t, err)

	seen := make(map[string]bool)
	total := 0
	for _, submission := range stored {
		for _, pick := range submission.Picks {
			assert.False(t, seen[pick.GameID], "game %s accepted twice", pick.GameID)
			seen[pick.GameID] = true
			total++
		}
	}
	assert.LessOrEqual(t, total, models.MaxPicksPerWeek)
}

func TestSubmitPicksConcurrentSubmissionsHoldTheCap(t *testing.T) {
	svc, store, _ := newSubmissionFixture()
	ctx := context.Background()

	// Two racing batches of two picks each: at most one may be accepted
	var wg sync.WaitGroup
	batches := []string{"1-1-KC,1-2-BUF", "1-3-PHI,1-4-SF"}
	for _, batch := range batches {
		wg.Add(1)
		go func(picks string) {
			defer wg.Done()
			_, _ = svc.SubmitPicks(ctx, "alice", 1, picks)
		}(batch)
	}
	wg.Wait()

	stored, err := store.ListSubmissions(ctx, "alice", 1)
	require.NoError(t, err)

	total := 0
	for _, submission := range stored {
		total += len(submission.Picks)
	}
	assert.LessOrEqual(t, total, models.MaxPicksPerWeek)
}

func TestGetUserSubmissionsRequiresUsername(t *testing.T) {
	svc, _, _ := newSubmissionFixture()

	_, err := svc.GetUserSubmissions(context.Background(), "", 1)
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}
