package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername means a registration collided with an
	// existing username. The storage-layer uniqueness constraint is the
	// single arbiter, so concurrent registrations of the same name
	// surface as this error rather than a double insert.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials is returned for both an unknown username
	// and a wrong password. Callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthorized means the session identity is missing or does not
	// match the owner of the resource being acted upon.
	ErrUnauthorized = errors.New("unauthorized")
)

// FieldErrors maps a form field name to its validation messages.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// ValidationError reports bad input as per-field messages, decoupled
// from any rendering concern.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, messages := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(messages, "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: FieldErrors{}}
}
