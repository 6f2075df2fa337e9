package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"pickem-pool-go/interfaces"
	"pickem-pool-go/logging"
	"pickem-pool-go/models"
)

// GameHandler serves read-only game catalog queries
type GameHandler struct {
	games  interfaces.GameServiceInterface
	logger *logging.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(games interfaces.GameServiceInterface) *GameHandler {
	return &GameHandler{
		games:  games,
		logger: logging.WithPrefix("GameHandler"),
	}
}

// GetGames handles GET /api/games?week=N
func (h *GameHandler) GetGames(w http.ResponseWriter, r *http.Request) {
	weekStr := r.URL.Query().Get("week")
	if weekStr == "" {
		writeJSON(w, http.StatusBadRequest, SubmitResponse{
			Success: false,
			Message: "week parameter is required",
		})
		return
	}

	week, err := strconv.Atoi(weekStr)
	if err != nil || week < 1 || week > 18 {
		writeJSON(w, http.StatusBadRequest, SubmitResponse{
			Success: false,
			Message: "week must be a number between 1 and 18",
		})
		return
	}

	games, err := h.games.GetGamesByWeek(r.Context(), week)
	if err != nil {
		writeFailure(w, err)
		return
	}

	if games == nil {
		games = []models.Game{}
	}

	writeJSON(w, http.StatusOK, SubmitResponse{
		Success: true,
		Message: fmt.Sprintf("%d games in week %d", len(games), week),
		Data:    games,
	})
}

// HealthCheck handles GET /health
func (h *GameHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if !h.games.HealthCheck(r.Context()) {
		writeJSON(w, http.StatusServiceUnavailable, SubmitResponse{
			Success: false,
			Message: "catalog unavailable",
		})
		return
	}

	writeJSON(w, http.StatusOK, SubmitResponse{Success: true, Message: "ok"})
}
