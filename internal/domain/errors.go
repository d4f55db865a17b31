package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when an identifier has no matching record.
	// Query paths resolve this to empty results or fallback records; only
	// the service boundary surfaces it as an error.
	ErrNotFound = errors.New("record not found")

	// ErrCourseNotFound indicates that no course exists for the given ID.
	ErrCourseNotFound = fmt.Errorf("%w: course", ErrNotFound)

	// ErrEmptyID is returned when a record is missing its identifier.
	ErrEmptyID = errors.New("identifier cannot be empty")

	// ErrEmptyName is returned when a record is missing its display name.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrInvalidLevel is returned when a course level is not one of the known levels.
	ErrInvalidLevel = errors.New("invalid course level")

	// ErrInvalidField is returned when a course field is not one of the known fields.
	ErrInvalidField = errors.New("invalid course field")
)

// ValidationError describes a single field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel so errors.Is works against it.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for field wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
