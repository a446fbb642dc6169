package storage

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound reports a lookup for a project, image or category id that does
// not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict reports a unique-constraint violation, e.g. a duplicate
// category name.
var ErrConflict = errors.New("already exists")

// ValidationError reports caller input rejected before any write. Missing
// enumerates every absent required field, not just the first.
type ValidationError struct {
	Missing []string
	Reason  string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
	}
	return e.Reason
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
