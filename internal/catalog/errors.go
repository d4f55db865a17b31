package catalog

import (
	"errors"
	"fmt"
)

// Catalog load errors. Lookups on a built catalog never return errors.
var (
	// ErrInvalidCatalog is returned when catalog data cannot be decoded or
	// fails validation. Check the wrapped error for details.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrDuplicateCourseID is returned when two courses share an identifier.
	ErrDuplicateCourseID = fmt.Errorf("%w: duplicate course id", ErrInvalidCatalog)

	// ErrDuplicateCareer is returned when a curated career is listed twice.
	ErrDuplicateCareer = fmt.Errorf("%w: duplicate curated career", ErrInvalidCatalog)

	// ErrInvalidNewsFeed is returned when the news feed cannot be parsed.
	ErrInvalidNewsFeed = errors.New("invalid news feed")
)

// LoadError describes a failure reading one catalog source.
type LoadError struct {
	Source  string // The file or embedded asset being read
	Message string // Error message
	Err     error  // Original error
}

// Error implements the error interface for LoadError.
func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("loading %s failed: %s: %v", e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("loading %s failed: %s", e.Source, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError for source.
func NewLoadError(source, message string, err error) *LoadError {
	return &LoadError{
		Source:  source,
		Message: message,
		Err:     err,
	}
}
