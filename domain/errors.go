package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel failures shared across the persistence boundary.
var (
	// ErrNotFound signals an update or lookup that matched zero rows.
	ErrNotFound = errors.New("record not found")

	// ErrNotAuthenticated is returned for both an unknown username and a
	// mismatched password. The two cases are deliberately indistinguishable.
	ErrNotAuthenticated = errors.New("invalid username or password")

	// ErrStorageUnavailable means the store could not be opened or reached.
	// Fatal to the current call; callers must not retry automatically.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ConstraintKind identifies which class of constraint was violated.
type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintCheck      ConstraintKind = "check"
)

// ConstraintViolationError surfaces a uniqueness, foreign-key or
// enumerated-value check failure detected by the storage engine, with the
// violated column identified where derivable.
type ConstraintViolationError struct {
	Kind   ConstraintKind
	Column string
	Err    error
}

func (e *ConstraintViolationError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s constraint violated on %s", e.Kind, e.Column)
	}
	return fmt.Sprintf("%s constraint violated", e.Kind)
}

func (e *ConstraintViolationError) Unwrap() error { return e.Err }

// IsDuplicate reports whether err is a uniqueness violation, optionally on
// the given column.
func IsDuplicate(err error, column string) bool {
	var cv *ConstraintViolationError
	if !errors.As(err, &cv) || cv.Kind != ConstraintUnique {
		return false
	}
	return column == "" || strings.HasSuffix(cv.Column, column)
}

// InvalidTransitionError rejects an illegal appointment status move.
type InvalidTransitionError struct {
	From AppointmentStatus
	To   AppointmentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

// ValidationError carries the human-readable violations produced by a value
// object's Validate. An object must validate clean before persistence.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}
