// Package service contains the business logic layer.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP)     → parses requests, writes responses
//	Service (business) → enforces rules, orchestrates
//	Repository (data)  → reads/writes the database
//
// Handlers never touch SQL; services never touch HTTP. Services take the
// repository INTERFACES (not *sqlite.DB), so tests swap in fakes and the
// storage engine can change without this package noticing.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sakif/taskmanager/internal/apperror"
	"github.com/sakif/taskmanager/internal/auth"
	"github.com/sakif/taskmanager/internal/model"
	"github.com/sakif/taskmanager/internal/repository"
)

// AuthService handles registration and login.
//
// Dependencies (injected via NewAuthService):
//   - users     repository.UserRepository → user lookups and inserts
//   - passwords *auth.PasswordService     → bcrypt hashing/verification
//   - logger    *slog.Logger              → structured logging
type AuthService struct {
	users     repository.UserRepository
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewAuthService creates an AuthService with all dependencies injected.
func NewAuthService(
	users repository.UserRepository,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		passwords: passwords,
		logger:    logger,
	}
}

// Register creates a new user account and returns the generated id.
//
// Flow: look up the username; if taken, fail with Conflict; otherwise hash
// the password and insert. The plaintext password exists only on the stack
// of this call — what goes to the repository is always the bcrypt digest.
//
// RACE NOTE: the check and the insert are two separate statements, not a
// transaction. Two concurrent registrations for the same username can both
// pass the check; the UNIQUE constraint on users.username makes the second
// insert fail, which surfaces as a generic (500) error rather than the
// Conflict message. Accepted — the window is tiny and the invariant holds.
//
// Field presence is deliberately NOT validated here: a missing username or
// password reaches the NOT NULL columns and comes back as a store error.
func (s *AuthService) Register(ctx context.Context, username, email, password, role string) (int64, error) {
	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		// Lookup succeeded → the name is taken.
		return 0, apperror.Conflict("User already exists")
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		// A real database failure, not "no such user".
		return 0, fmt.Errorf("service/auth: checking username %q: %w", username, err)
	}

	digest, err := s.passwords.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("service/auth: hashing password: %w", err)
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: digest,
		Role:     role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return 0, fmt.Errorf("service/auth: creating user %q: %w", username, err)
	}

	s.logger.Info("user registered",
		slog.Int64("userID", user.ID),
		slog.String("username", user.Username),
	)

	return user.ID, nil
}

// Login verifies a username/password pair.
//
// Returns nil on success — no token, no session, no user data. The two
// failure modes carry the exact messages the API exposes:
//   - unknown username  → InvalidCredentials("User not exist")
//   - digest mismatch   → InvalidCredentials("Invalid Password")
//
// Both map to 400. Telling the caller WHICH part was wrong leaks whether a
// username is registered; the original API does exactly that, and the
// contract preserves it.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return apperror.InvalidCredentials("User not exist")
		}
		return fmt.Errorf("service/auth: looking up user %q: %w", username, err)
	}

	if err := s.passwords.Verify(user.Password, password); err != nil {
		s.logger.Info("login rejected", slog.String("username", username))
		return apperror.InvalidCredentials("Invalid Password")
	}

	s.logger.Info("user logged in",
		slog.Int64("userID", user.ID),
		slog.String("username", username),
	)

	return nil
}
