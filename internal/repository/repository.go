// Package repository declares the persistence interfaces the service layer
// depends on. Concrete implementations live in subpackages (sqlite).
//
// PROGRAMMING TO AN INTERFACE:
// Services receive these interfaces, never *sqlite.DB directly. Tests inject
// in-memory fakes, and swapping SQLite for another store only touches the
// wiring in internal/server.
package repository

import (
	"context"

	"github.com/sakif/taskmanager/internal/model"
)

// UserRepository persists user accounts.
//
// Users are created once and never updated or deleted through this API;
// the only read path is the lookup by username used during login and the
// duplicate pre-check during registration.
type UserRepository interface {
	// Create inserts the user and fills user.ID with the generated rowid.
	Create(ctx context.Context, user *model.User) error
	// GetByUsername returns apperror.ErrNotFound (wrapped) when no such user exists.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// ProjectRepository persists projects.
type ProjectRepository interface {
	// Create inserts the project and fills project.ID with the generated rowid.
	Create(ctx context.Context, project *model.Project) error
	// List returns every project in the store's natural order, unfiltered.
	List(ctx context.Context) ([]model.Project, error)
	// Update replaces name and description of the matching row.
	// Returns apperror.ErrNotFound (wrapped) when no row matched.
	Update(ctx context.Context, id int64, name, description string) error
	// Delete removes the matching row.
	// Returns apperror.ErrNotFound (wrapped) when no row matched.
	Delete(ctx context.Context, id int64) error
}
