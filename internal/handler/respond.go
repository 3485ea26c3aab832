package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/BlogApp/internal/domain"
)

// errorEnvelope is the uniform error body: a message plus optional
// per-field validation errors.
type errorEnvelope struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// respondWithJSON sends a JSON response to the client.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError sends the uniform error envelope.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, errorEnvelope{Message: message}, logger)
}

// respondWithDomainError maps a domain error onto its HTTP status and
// message. notFoundMessage names the missing resource for 404 responses.
// Anything outside the taxonomy is a 500 and gets logged; domain errors
// already said everything there is to say.
func respondWithDomainError(w http.ResponseWriter, err error, notFoundMessage string, logger *slog.Logger) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, notFoundMessage, logger)
	case errors.Is(err, domain.ErrPermissionDenied):
		respondWithError(w, http.StatusForbidden, "Permission denied", logger)
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusForbidden, "Invalid credentials", logger)
	case errors.Is(err, domain.ErrDuplicateEmail):
		respondWithError(w, http.StatusBadRequest, "Email already registered", logger)
	case errors.Is(err, domain.ErrDuplicateUsername):
		respondWithError(w, http.StatusBadRequest, "Username already taken", logger)
	case errors.Is(err, domain.ErrNoToken):
		respondWithError(w, http.StatusUnauthorized, "Request does not contain an access token.", logger)
	case errors.Is(err, domain.ErrExpiredToken):
		respondWithError(w, http.StatusUnauthorized, "Session expired", logger)
	case errors.Is(err, domain.ErrInvalidToken):
		respondWithError(w, http.StatusUnauthorized, "Signature verification failed.", logger)
	default:
		logger.Error("unhandled error", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error", logger)
	}
}
