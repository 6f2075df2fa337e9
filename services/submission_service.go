package services

import (
	"context"
	"fmt"
	"sync"

	"pickem-pool-go/interfaces"
	"pickem-pool-go/logging"
	"pickem-pool-go/models"
)

// SubmissionService handles the submission path: parse the wire-format picks,
// validate against the user's history, append to the pick store.
type SubmissionService struct {
	store   interfaces.PickStore
	catalog interfaces.GameCatalog
	logger  *logging.Logger

	// Serializes validate-then-append per (username, week) so two racing
	// submissions cannot both pass the weekly cap check
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewSubmissionService creates a new submission service.
func NewSubmissionService(store interfaces.PickStore, catalog interfaces.GameCatalog) *SubmissionService {
	return &SubmissionService{
		store:   store,
		catalog: catalog,
		logger:  logging.WithPrefix("SubmissionService"),
		locks:   make(map[string]*sync.Mutex),
	}
}

// SubmitPicks validates and appends one batch of picks encoded in the wire
// format "gameId-team,gameId-team". On acceptance the appended submission is
// returned; on rejection the error carries a caller-facing reason.
func (s *SubmissionService) SubmitPicks(ctx context.Context, username string, week int, picksString string) (*models.PickSubmission, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", models.ErrInvalidRequest)
	}
	if week < 1 || week > 18 {
		return nil, fmt.Errorf("%w: week must be between 1 and 18", models.ErrInvalidRequest)
	}

	picks, err := models.ParsePicksString(picksString)
	if err != nil {
		return nil, err
	}

	// Submission-time catalog cross-check. Scoring stays tolerant of
	// missing games, but a submit naming an unknown game or a team not
	// playing in it is a client error worth rejecting early.
	for _, pick := range picks {
		if models.WeekFromGameID(pick.GameID) != week {
			return nil, fmt.Errorf("%w: game %s is not in week %d", models.ErrInvalidRequest, pick.GameID, week)
		}
		game, err := s.catalog.GetGame(ctx, pick.GameID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up game %s: %w", pick.GameID, err)
		}
		if game == nil {
			return nil, fmt.Errorf("%w: unknown game %s", models.ErrInvalidRequest, pick.GameID)
		}
		if game.Week != week {
			return nil, fmt.Errorf("%w: game %s is not in week %d", models.ErrInvalidRequest, pick.GameID, week)
		}
		if !game.HasTeam(pick.Team) {
			return nil, fmt.Errorf("%w: team %s is not playing in game %s", models.ErrInvalidRequest, pick.Team, pick.GameID)
		}
	}

	lock := s.userWeekLock(username, week)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.store.ListSubmissions(ctx, username, week)
	if err != nil {
		return nil, fmt.Errorf("failed to load submission history: %w", err)
	}

	if err := ValidatePicks(existing, picks, username, week); err != nil {
		return nil, err
	}

	submission := &models.PickSubmission{
		Username: username,
		Week:     week,
		Picks:    picks,
	}

	if err := s.store.AppendSubmission(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to append submission: %w", err)
	}

	s.logger.Infof("Accepted %d picks from %s for week %d", len(picks), username, week)
	return submission, nil
}

// GetUserSubmissions returns a user's accepted submissions for a week.
func (s *SubmissionService) GetUserSubmissions(ctx context.Context, username string, week int) ([]models.PickSubmission, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", models.ErrInvalidRequest)
	}
	return s.store.ListSubmissions(ctx, username, week)
}

// userWeekLock returns the mutex guarding one (username, week) pair. Locks
// are never released from the map; the key space is small (users x 18 weeks).
func (s *SubmissionService) userWeekLock(username string, week int) *sync.Mutex {
	key := fmt.Sprintf("%s/%d", username, week)

	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}
