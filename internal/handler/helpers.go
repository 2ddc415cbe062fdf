package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"forum/internal/domain"
	"forum/internal/httputil"
)

// handleError converts domain errors to HTTP responses. Bodies are problem
// details that also carry the {success, message} pair the forum client reads.
func handleError(w http.ResponseWriter, err error) {
	var (
		httpErr     domain.HTTPError
		conflictErr *domain.ConflictError
		status      int
	)

	switch {
	case errors.As(err, &httpErr):
		status = httpErr.StatusCode()
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.As(err, &conflictErr):
		status = http.StatusConflict
	default:
		slog.Error("unhandled error", "error", err)
		respondFailure(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondFailure(w, status, err.Error())
}

func respondFailure(w http.ResponseWriter, status int, message string) {
	httputil.RespondFailure(w, status, message)
}

// respondSuccess writes {"success": true} merged with fields
func respondSuccess(w http.ResponseWriter, status int, fields map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	httputil.RespondJSON(w, status, body)
}
