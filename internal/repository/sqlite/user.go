package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sakif/taskmanager/internal/apperror"
	"github.com/sakif/taskmanager/internal/model"
	"github.com/sakif/taskmanager/internal/repository"
)

// UserDB is the user-facing view of the database, handed out by DB.Users().
type UserDB struct {
	conn *sql.DB
}

// Compile-time check that *UserDB implements repository.UserRepository.
// If a method goes missing, the build breaks here instead of at some distant
// call site.
var _ repository.UserRepository = (*UserDB)(nil)

// Create inserts a new user and fills user.ID with the generated rowid.
//
// The ? placeholders are filled positionally by the driver, which escapes the
// values — never build SQL with string concatenation of caller input.
//
// user.Password is expected to already be a bcrypt digest; hashing is the
// service layer's job, this layer just stores what it's given.
func (db *UserDB) Create(ctx context.Context, user *model.User) error {
	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (username, email, password, role)
		 VALUES (?, ?, ?, ?)`,
		user.Username,
		user.Email,
		user.Password,
		user.Role,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting user %q: %w", user.Username, err)
	}

	// LastInsertId returns the rowid SQLite assigned to the INTEGER PRIMARY
	// KEY column. Pointer receiver on user means the caller sees the id.
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading generated user id: %w", err)
	}
	user.ID = id

	return nil
}

// GetByUsername retrieves a user by their unique username.
// Returns a wrapped apperror.ErrNotFound when no row matches.
func (db *UserDB) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, username, email, password, role
		 FROM users WHERE username = ?`,
		username,
	).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Password,
		&u.Role,
	)
	if err != nil {
		// sql.ErrNoRows is not a database failure — it means "no such user".
		// Translate it to the domain error so callers can errors.Is on it.
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("User not exist")
		}
		return nil, fmt.Errorf("sqlite: getting user %q: %w", username, err)
	}

	return &u, nil
}
