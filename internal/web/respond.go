package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"stockdock/internal/apperr"
)

// statusFor maps the service error kinds to response codes. The core
// only distinguishes kind; everything unexpected is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrInvalidSymbol), errors.Is(err, apperr.ErrInvalidDateRange):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNoData):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrProvider):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	log.Printf("[ERROR] request failed: %v", err)
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}
