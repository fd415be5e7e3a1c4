// Package apperror defines the domain error taxonomy shared by every layer.
//
// Services return these typed errors; the HTTP layer translates them into
// status codes with errors.Is/errors.As. Neither the service nor the
// repository layer ever mentions an HTTP status directly.
package apperror

import "errors"

// Sentinel errors — the categories of the taxonomy.
// errors.Is(err, ErrNotFound) works anywhere in a wrapped chain because
// AppError implements Unwrap().
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AppError carries a category sentinel plus the human-readable message the
// API returns verbatim. The message IS the contract here ("User already
// exists", "Project not found", ...), so constructors take it directly
// instead of formatting one from resource/id parts.
type AppError struct {
	Err     error  // category sentinel (ErrNotFound, ErrValidation, ...)
	Message string // exact message sent to the client
	Field   string // optional: the field that failed validation
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound builds an error the HTTP layer maps to 404.
func NotFound(message string) *AppError {
	return &AppError{Err: ErrNotFound, Message: message}
}

// ValidationFailed builds an error the HTTP layer maps to 400.
func ValidationFailed(field, message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message, Field: field}
}

// Conflict builds an error for duplicate resources. The API contract returns
// 400 (not 409) for a duplicate username, so the mapping lives in the
// handler layer — this just tags the category.
func Conflict(message string) *AppError {
	return &AppError{Err: ErrConflict, Message: message}
}

// InvalidCredentials builds a login failure ("User not exist" or
// "Invalid Password"), mapped to 400 with a plain-text body.
func InvalidCredentials(message string) *AppError {
	return &AppError{Err: ErrInvalidCredentials, Message: message}
}
