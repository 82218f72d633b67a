package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bandstand/internal/repository"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": code, "message": message})
}

// writeFieldErrors reports a validation failure with field-level detail.
func writeFieldErrors(w http.ResponseWriter, fields map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": "validation_error", "fields": fields})
}

// writeRepoError maps repository failures onto the HTTP surface. Expected
// failures keep their meaning; anything else is logged and reported as a
// generic internal error so store internals never reach the client.
func writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Resource not found")
	case errors.Is(err, repository.ErrGenreNotFound):
		writeFieldErrors(w, map[string]string{"genres": "contains an unknown genre id"})
	case errors.Is(err, repository.ErrArtistNotFound):
		writeFieldErrors(w, map[string]string{"artist_id": "does not reference an existing artist"})
	case errors.Is(err, repository.ErrVenueNotFound):
		writeFieldErrors(w, map[string]string{"venue_id": "does not reference an existing venue"})
	default:
		log.Printf("store failure: %v", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Something went wrong")
	}
}
