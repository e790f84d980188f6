package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"avocado-hub-backend/internal/domain"
)

type messageResponse struct {
	Message string `json:"message"`
}

type createdResponse struct {
	Message string `json:"message"`
	ID      int32  `json:"id"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// respondError maps domain errors onto HTTP statuses. Partial failures get
// their own message so a caller can tell "deleted but totals stale" apart
// from a request that did nothing at all.
func respondError(w http.ResponseWriter, err error, fallback string) {
	var pf *domain.PartialFailureError
	switch {
	case domain.IsValidation(err):
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "All fields are required."})
	case domain.IsNotFound(err):
		respondJSON(w, http.StatusNotFound, messageResponse{Message: err.Error()})
	case errors.As(err, &pf):
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: pf.Message})
	default:
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: fallback})
	}
}
