package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/archive-viewer/internal/logger"
	"github.com/sbilibin2017/archive-viewer/internal/models"
	"github.com/sbilibin2017/archive-viewer/internal/services"
)

// Status messages returned to clients.
const (
	msgUserNotFound      = "User not found"
	msgAmbiguousUsername = "Username matches more than one user"
	msgUnknownCategory   = "Unknown category"
	msgStoreError        = "Error connecting to database"
	msgEncodeError       = "Failed to encode response"
)

// writeJSON encodes v with the given status, or answers 500 when v cannot be
// encoded. If the client has already gone away the result is stale and is
// dropped.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := r.Context().Err(); err != nil {
		logger.Log.Infow("discarding stale response", "uri", r.RequestURI, "error", err)
		return
	}

	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Errorw("failed to encode response", "uri", r.RequestURI, "error", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(models.ErrorResponse{Error: msgEncodeError})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// writeError maps service errors to a status code and a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := http.StatusInternalServerError, msgStoreError

	switch {
	case errors.Is(err, services.ErrUserNotFound):
		status, msg = http.StatusNotFound, msgUserNotFound
	case errors.Is(err, services.ErrAmbiguousUsername):
		status, msg = http.StatusConflict, msgAmbiguousUsername
	case errors.Is(err, services.ErrUnknownCategory):
		status, msg = http.StatusBadRequest, msgUnknownCategory
	case r.Context().Err() != nil:
		// client gone, writeJSON drops the response
	default:
		logger.Log.Errorw("internal server error", "uri", r.RequestURI, "error", err)
	}

	writeJSON(w, r, status, models.ErrorResponse{Error: msg})
}
