package database

import (
	"context"
	"sync"
	"time"

	"pickem-pool-go/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryGameCatalog implements the game catalog in memory. Used as the demo
// fallback when no database is reachable, and by tests.
type MemoryGameCatalog struct {
	mu    sync.RWMutex
	games map[string]models.Game
}

// NewMemoryGameCatalog creates an empty in-memory game catalog.
func NewMemoryGameCatalog() *MemoryGameCatalog {
	return &MemoryGameCatalog{
		games: make(map[string]models.Game),
	}
}

// PutGame adds or replaces a game record. This is the catalog's injection
// path for demo data and tests.
func (c *MemoryGameCatalog) PutGame(game models.Game) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.games[game.ID] = game
}

// SetWinner records the authoritative result for a game.
func (c *MemoryGameCatalog) SetWinner(gameID, winner string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if game, ok := c.games[gameID]; ok {
		game.Winner = winner
		c.games[gameID] = game
	}
}

func (c *MemoryGameCatalog) GetGame(ctx context.Context, gameID string) (*models.Game, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	game, ok := c.games[gameID]
	if !ok {
		return nil, nil
	}
	return &game, nil
}

func (c *MemoryGameCatalog) ListGames(ctx context.Context, week int) ([]models.Game, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var games []models.Game
	for _, game := range c.games {
		if game.Week == week {
			games = append(games, game)
		}
	}
	return games, nil
}

// MemoryPickStore implements the append-only pick store in memory.
type MemoryPickStore struct {
	mu          sync.RWMutex
	submissions []models.PickSubmission
}

// NewMemoryPickStore creates an empty in-memory pick store.
func NewMemoryPickStore() *MemoryPickStore {
	return &MemoryPickStore{}
}

func (s *MemoryPickStore) AppendSubmission(ctx context.Context, submission *models.PickSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if submission.ID.IsZero() {
		submission.ID = primitive.NewObjectID()
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now()
	}

	s.submissions = append(s.submissions, *submission)
	return nil
}

func (s *MemoryPickStore) ListSubmissions(ctx context.Context, username string, week int) ([]models.PickSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.PickSubmission
	for _, submission := range s.submissions {
		if username != "" && submission.Username != username {
			continue
		}
		if week != 0 && submission.Week != week {
			continue
		}
		result = append(result, submission)
	}
	return result, nil
}
