// Seeds the game catalog with a week of games so the service can be
// exercised without the external odds-fetch process. Usage:
//
//	go run ./cmd/seed -week 1 -games "DET@KC:KC -3.5,BUF@NYJ:BUF -2.5"
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"pickem-pool-go/config"
	"pickem-pool-go/database"
	"pickem-pool-go/logging"
	"pickem-pool-go/models"
)

func main() {
	week := flag.Int("week", 1, "week to seed (1-18)")
	games := flag.String("games", "", "comma-separated matchups, each \"AWAY@HOME:spread\"")
	flag.Parse()

	if *week < 1 || *week > 18 {
		logging.Fatalf("week must be between 1 and 18, got %d", *week)
	}
	if *games == "" {
		logging.Fatal("-games is required")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewMongoConnection(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		Database: cfg.Database.Database,
	})
	if err != nil {
		logging.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	repo := database.NewMongoGameRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	kickoff := time.Now().Add(24 * time.Hour)
	count := 0
	for i, entry := range strings.Split(*games, ",") {
		game, err := parseGameEntry(strings.TrimSpace(entry), *week, i+1, kickoff)
		if err != nil {
			logging.Fatalf("Bad game entry %q: %v", entry, err)
		}
		if err := repo.UpsertGame(ctx, game); err != nil {
			logging.Fatalf("Failed to seed game %s: %v", game.ID, err)
		}
		count++
	}

	logging.Infof("Seeded %d games for week %d", count, *week)
}

// parseGameEntry parses "AWAY@HOME:spread" into a game record. The spread
// suffix is optional.
func parseGameEntry(entry string, week, index int, kickoff time.Time) (*models.Game, error) {
	spread := ""
	if idx := strings.Index(entry, ":"); idx >= 0 {
		spread = strings.TrimSpace(entry[idx+1:])
		entry = entry[:idx]
	}

	teams := strings.SplitN(entry, "@", 2)
	if len(teams) != 2 || teams[0] == "" || teams[1] == "" {
		return nil, fmt.Errorf("want \"AWAY@HOME\"")
	}

	return &models.Game{
		ID:      models.GameID(week, index),
		Week:    week,
		Away:    strings.TrimSpace(teams[0]),
		Home:    strings.TrimSpace(teams[1]),
		Spread:  spread,
		Kickoff: kickoff,
	}, nil
}
