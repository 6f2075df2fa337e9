package main

import (
	"net/http"
	"os"
	"time"

	"pickem-pool-go/config"
	"pickem-pool-go/database"
	"pickem-pool-go/handlers"
	"pickem-pool-go/interfaces"
	"pickem-pool-go/logging"
	"pickem-pool-go/middleware"
	"pickem-pool-go/models"
	"pickem-pool-go/services"

	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Failed to load configuration: %v", err)
	}

	logging.Configure(logging.Config{
		Level:       cfg.Logging.Level,
		Output:      os.Stdout,
		Prefix:      cfg.Logging.Prefix,
		EnableColor: cfg.Logging.EnableColor,
	})
	cfg.LogConfiguration()

	var catalog interfaces.GameCatalog
	var store interfaces.PickStore

	db, err := database.NewMongoConnection(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		Database: cfg.Database.Database,
	})
	if err != nil {
		logging.Errorf("Database connection failed: %v", err)
		if !cfg.App.IsDevelopment {
			logging.Fatal("Refusing to start without a database outside development")
		}

		// Development fallback: in-memory collaborators with demo data
		logging.Warn("Continuing with in-memory catalog and store")
		memCatalog := database.NewMemoryGameCatalog()
		seedDemoGames(memCatalog, cfg.App.CurrentWeek)
		catalog = memCatalog
		store = database.NewMemoryPickStore()
	} else {
		defer db.Close()

		if err := db.TestConnection(); err != nil {
			logging.Errorf("Database test failed: %v", err)
		}

		catalog = database.NewMongoGameRepository(db)
		store = database.NewMongoSubmissionRepository(db)
	}

	// Services
	gameService := services.NewGameService(catalog)
	submissionService := services.NewSubmissionService(store, catalog)
	scoringService := services.NewScoringService(store, catalog)
	standingsService := services.NewStandingsService(scoringService)

	// Handlers
	gameHandler := handlers.NewGameHandler(gameService)
	pickHandler := handlers.NewPickHandler(submissionService)
	standingsHandler := handlers.NewStandingsHandler(standingsService)

	// Routes
	r := mux.NewRouter()
	r.Use(middleware.SecurityMiddleware)
	r.Use(middleware.RequestLoggingMiddleware)

	r.HandleFunc("/health", gameHandler.HealthCheck).Methods("GET")
	r.HandleFunc("/api/games", gameHandler.GetGames).Methods("GET")
	r.HandleFunc("/api/picks", pickHandler.SubmitPicks).Methods("POST")
	r.HandleFunc("/api/picks", pickHandler.GetUserPicks).Methods("GET")
	r.HandleFunc("/api/standings", standingsHandler.GetStandings).Methods("GET")

	addr := cfg.GetServerAddress()
	logging.Infof("Server starting on %s", addr)
	logging.Fatal(http.ListenAndServe(addr, r))
}

// seedDemoGames fills the in-memory catalog with a small week of games so
// the development fallback is usable without a database.
func seedDemoGames(catalog *database.MemoryGameCatalog, week int) {
	kickoff := time.Now().Add(24 * time.Hour)

	demo := []models.Game{
		{ID: models.GameID(week, 1), Week: week, Away: "DET", Home: "KC", Spread: "KC -3.5", AwaySpreadValue: 3.5, Kickoff: kickoff},
		{ID: models.GameID(week, 2), Week: week, Away: "BUF", Home: "NYJ", Spread: "BUF -2.5", AwaySpreadValue: -2.5, Kickoff: kickoff.Add(3 * time.Hour)},
		{ID: models.GameID(week, 3), Week: week, Away: "DAL", Home: "PHI", Spread: "PHI -1.5", AwaySpreadValue: 1.5, Kickoff: kickoff.Add(6 * time.Hour)},
		{ID: models.GameID(week, 4), Week: week, Away: "SF", Home: "SEA", Spread: "SF -6.0", AwaySpreadValue: -6.0, Kickoff: kickoff.Add(6 * time.Hour)},
	}

	for _, game := range demo {
		catalog.PutGame(game)
	}
	logging.Infof("Seeded %d demo games for week %d", len(demo), week)
}
