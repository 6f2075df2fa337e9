package handlers

import (
	"fmt"
	"net/http"

	"pickem-pool-go/logging"
	"pickem-pool-go/services"
)

// StandingsHandler serves the leaderboard
type StandingsHandler struct {
	standings *services.StandingsService
	logger    *logging.Logger
}

// NewStandingsHandler creates a new standings handler
func NewStandingsHandler(standings *services.StandingsService) *StandingsHandler {
	return &StandingsHandler{
		standings: standings,
		logger:    logging.WithPrefix("StandingsHandler"),
	}
}

// GetStandings handles GET /api/standings
func (h *StandingsHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	rows, err := h.standings.GetStandings(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SubmitResponse{
		Success: true,
		Message: fmt.Sprintf("%d users ranked", len(rows)),
		Data:    rows,
	})
}
