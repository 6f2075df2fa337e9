package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"pickem-pool-go/logging"
	"pickem-pool-go/models"
)

// SubmitResponse is the envelope every inbound API call answers with.
// Rejections carry success=false and a human-readable message; they are
// never fatal to the service process.
type SubmitResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// writeJSON encodes a payload with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Errorf("Failed to encode JSON response: %v", err)
	}
}

// writeFailure maps a domain error onto the response envelope. Validation
// failures are client errors; anything else is a collaborator failure
// surfaced as a generic message.
func writeFailure(w http.ResponseWriter, err error) {
	var dup *models.DuplicateGamePickError
	var limit *models.WeeklyLimitError

	switch {
	case errors.Is(err, models.ErrInvalidRequest), errors.As(err, &dup), errors.As(err, &limit):
		writeJSON(w, http.StatusBadRequest, SubmitResponse{Success: false, Message: err.Error()})
	default:
		logging.Errorf("Request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, SubmitResponse{
			Success: false,
			Message: "service temporarily unavailable",
		})
	}
}
