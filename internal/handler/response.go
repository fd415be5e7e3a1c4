package handler

// RESPONSE HELPERS:
// Every handler goes through writeJSON/writeError so the wire format stays
// uniform. Error bodies are always {"error": "..."} and success messages are
// {"message": "..."} — the exact shapes the original API exposed.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/taskmanager/internal/apperror"
)

// ErrorResponse is the error body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the confirmation body: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// writeJSON sends a JSON response with the given status code.
//
// Order matters: headers must be set before WriteHeader, and WriteHeader
// before the body — once Encode starts writing, headers are already on the
// wire and further changes are silently dropped.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are gone at this point; logging is all that's left.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError translates a domain error into an HTTP response.
//
// The service layer returns apperror categories; this is the single place
// they become status codes:
//
//	ErrValidation         → 400
//	ErrConflict           → 400  (the register contract uses 400, not 409)
//	ErrInvalidCredentials → 400
//	ErrNotFound           → 404
//	anything else         → 500, with the error text in the body
//
// errors.Is walks the wrapped chain (AppError implements Unwrap), so the
// mapping works regardless of how many fmt.Errorf("%w") layers the error
// passed through on the way up.
//
// The 500 branch echoes the underlying error message to the caller. That
// matches the original API's behavior of forwarding store errors verbatim —
// a documented part of the contract, kept as-is.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, apperror.ErrValidation),
			errors.Is(err, apperror.ErrConflict),
			errors.Is(err, apperror.ErrInvalidCredentials):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		}

		writeJSON(w, status, ErrorResponse{Error: appErr.Message})
		return
	}

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
