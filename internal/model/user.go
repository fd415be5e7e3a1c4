// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other
// languages, but without inheritance. Go favours composition over inheritance.
package model

// User represents a registered account.
//
// WHY int64 FOR THE ID?
// The users table uses an INTEGER PRIMARY KEY, so SQLite assigns a numeric
// rowid on insert. int64 matches what sql.Result.LastInsertId() returns, and
// clients receive the id as a plain JSON number ({"userId": 1}).
//
// WHY `json:"-"` ON Password?
// Password holds the bcrypt digest, never the plaintext. Even the digest must
// not leak to API clients, so the field is excluded from every JSON response.
// The `db` half of the tag documents the column it maps to.
type User struct {
	ID       int64  `json:"id"       db:"id"`
	Username string `json:"username" db:"username"` // unique login name
	Email    string `json:"email"    db:"email"`
	Password string `json:"-"        db:"password"` // bcrypt digest, never serialized
	Role     string `json:"role"     db:"role"`     // free-form, e.g. "admin"
}
