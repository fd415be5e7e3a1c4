package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/taskmanager/internal/apperror"
	"github.com/sakif/taskmanager/internal/service"
)

// AuthHandler exposes registration and login over HTTP.
//
// Both endpoints are unauthenticated — the API issues no tokens or sessions,
// so there is nothing to present on later calls. Login is a pure
// credentials check with a yes/no answer.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates an AuthHandler. Dependencies are injected; the
// handler has no knowledge of how they're constructed.
func NewAuthHandler(auth *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// registerRequest is the POST /register body. No format validation: a
// missing username or password travels down to the NOT NULL columns and
// comes back as a store error — intentionally, per the API contract.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// registerResponse carries the generated numeric id: {"userId": 1}.
type registerResponse struct {
	UserID int64 `json:"userId"`
}

// HandleRegister creates a new user account.
//
// HTTP: POST /register
// Body: {"username": "...", "email": "...", "password": "...", "role": "..."}
//
// 200 {"userId": N} on success, 400 {"error": "User already exists"} when
// the username is taken.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid register JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	userID, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, registerResponse{UserID: userID})
}

// loginRequest is the POST /login body.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin checks a username/password pair.
//
// HTTP: POST /login
//
// This endpoint answers in PLAIN TEXT, not JSON — "Login successfully",
// "User not exist", "Invalid Password" as bare strings. Inherited wire
// format; clients match on these exact bodies.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid login JSON", slog.String("error", err.Error()))
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := h.auth.Login(r.Context(), req.Username, req.Password); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && errors.Is(err, apperror.ErrInvalidCredentials) {
			// 400 with the exact failure message as the body.
			http.Error(w, appErr.Message, http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Login successfully"))
}
