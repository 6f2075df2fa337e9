package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"pickem-pool-go/logging"
	"pickem-pool-go/models"
	"pickem-pool-go/services"
)

// PickHandler handles pick submission HTTP requests
type PickHandler struct {
	submissions *services.SubmissionService
	logger      *logging.Logger
}

// NewPickHandler creates a new pick handler
func NewPickHandler(submissions *services.SubmissionService) *PickHandler {
	return &PickHandler{
		submissions: submissions,
		logger:      logging.WithPrefix("PickHandler"),
	}
}

// submitRequest is the inbound submission payload. Picks arrive in the wire
// format "gameId-team,gameId-team".
type submitRequest struct {
	Username string `json:"username"`
	Week     int    `json:"week"`
	Picks    string `json:"picks"`
}

// SubmitPicks handles POST /api/picks
func (h *PickHandler) SubmitPicks(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, SubmitResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	submission, err := h.submissions.SubmitPicks(r.Context(), req.Username, req.Week, req.Picks)
	if err != nil {
		h.logger.Debugf("Submission rejected for %s week %d: %v", req.Username, req.Week, err)
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SubmitResponse{
		Success: true,
		Message: fmt.Sprintf("accepted %d picks for week %d", len(submission.Picks), submission.Week),
		Data:    submission,
	})
}

// GetUserPicks handles GET /api/picks?username=X&week=N
func (h *PickHandler) GetUserPicks(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		writeJSON(w, http.StatusBadRequest, SubmitResponse{
			Success: false,
			Message: "username parameter is required",
		})
		return
	}

	week := 0
	if weekStr := r.URL.Query().Get("week"); weekStr != "" {
		parsed, err := strconv.Atoi(weekStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, SubmitResponse{
				Success: false,
				Message: "invalid week parameter",
			})
			return
		}
		week = parsed
	}

	submissions, err := h.submissions.GetUserSubmissions(r.Context(), username, week)
	if err != nil {
		writeFailure(w, err)
		return
	}

	if submissions == nil {
		submissions = []models.PickSubmission{}
	}

	writeJSON(w, http.StatusOK, SubmitResponse{
		Success: true,
		Message: fmt.Sprintf("%d submissions", len(submissions)),
		Data:    submissions,
	})
}
