// Package sqlite implements the repository interfaces on top of SQLite.
//
// WHY SQLITE?
// SQLite is an embedded database — a single file, no server process to run
// or manage. For a single-binary deployment like this one, that's exactly
// the right amount of infrastructure.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 needs CGo and therefore a C compiler, which makes
// cross-compilation painful. modernc.org/sqlite is a pure-Go translation of
// SQLite — it works everywhere Go works.
//
// The database/sql pattern used throughout this package:
//  1. sql.Open(driver, dsn)                 → creates a connection pool
//  2. QueryRowContext / QueryContext / ExecContext → run parameterized SQL
//  3. row.Scan(&field, ...)                 → read columns into Go variables
package sqlite

import (
	"database/sql"
	"fmt"

	// Side-effect import: the driver's init() registers itself with
	// database/sql under the name "sqlite". After this, sql.Open("sqlite", …)
	// knows how to talk to SQLite.
	_ "modernc.org/sqlite"
)

// DB owns the sql.DB pool. One DB is opened at startup and lives for the
// whole process; the server closes it on shutdown.
//
// The repository interfaces are implemented by per-entity views over the
// shared pool — Users() and Projects(). Both interfaces declare a Create
// method with a different signature, so one type cannot satisfy both; the
// views keep the method sets apart while sharing the single connection.
type DB struct {
	conn *sql.DB
}

// Users returns the user repository view of this database.
func (db *DB) Users() *UserDB {
	return &UserDB{conn: db.conn}
}

// Projects returns the project repository view of this database.
func (db *DB) Projects() *ProjectDB {
	return &ProjectDB{conn: db.conn}
}

// New opens the SQLite database at dbPath and runs migrations.
//
// dbPath examples:
//   - "data/taskmanager.db" → file-based, persistent
//   - ":memory:"            → in-memory, gone on close (used by tests)
//
// sql.Open doesn't actually connect — it only prepares the pool — so we
// Ping immediately to surface a bad path or permissions problem at startup
// instead of on the first request.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// One connection, total. SQLite allows a single writer at a time, so a
	// wider pool only buys SQLITE_BUSY errors — and with ":memory:" every
	// pooled connection would be a separate empty database.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL mode lets reads proceed while a write is in flight. The default
	// rollback journal locks the whole database on every write, which shows
	// up quickly once concurrent HTTP requests share one file.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool. Always deferred wherever New is called —
// it flushes the WAL and releases the file lock.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS is idempotent, so
// running this on every startup is safe without migration tracking.
//
// Column names on projects (projectId, projectName, ...) intentionally match
// the JSON field names the API exposes — rows scan straight into the model
// structs with no renaming layer in between.
//
// users.username carries a UNIQUE constraint. Registration does a
// check-then-insert that is not atomic, so this constraint is what actually
// guarantees uniqueness when two registrations race.
//
// projects.userId is NOT a declared foreign key: the API accepts any owner
// id without verifying the user exists.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			email    TEXT NOT NULL,
			password TEXT NOT NULL,
			role     TEXT NOT NULL DEFAULT ''
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS projects (
			projectId          INTEGER PRIMARY KEY AUTOINCREMENT,
			projectName        TEXT NOT NULL,
			projectDescription TEXT NOT NULL,
			userId             INTEGER NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating projects table: %w", err)
	}

	return nil
}
