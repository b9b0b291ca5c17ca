package database

import (
	"errors"
	"strings"

	"DentalDesk/domain"

	"gorm.io/gorm"
)

// TranslateError maps storage engine failures onto the typed failures of
// the domain package, so callers never have to pattern-match driver error
// strings. Unrecognised errors pass through unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return &domain.ConstraintViolationError{
			Kind:   domain.ConstraintUnique,
			Column: constraintColumn(msg, "UNIQUE constraint failed:"),
			Err:    err,
		}
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &domain.ConstraintViolationError{
			Kind: domain.ConstraintForeignKey,
			Err:  err,
		}
	case strings.Contains(msg, "CHECK constraint failed"):
		return &domain.ConstraintViolationError{
			Kind:   domain.ConstraintCheck,
			Column: constraintColumn(msg, "CHECK constraint failed:"),
			Err:    err,
		}
	case strings.Contains(msg, "unable to open database"),
		strings.Contains(msg, "database is locked"):
		return domain.ErrStorageUnavailable
	}
	return err
}

// constraintColumn extracts the "table.column" (or constraint name) that
// follows the driver's constraint prefix, empty when absent.
func constraintColumn(msg, prefix string) string {
	idx := strings.Index(msg, prefix)
	if idx < 0 {
		return ""
	}
	rest := strings.TrimSpace(msg[idx+len(prefix):])
	if end := strings.IndexAny(rest, " (\n"); end > 0 {
		rest = rest[:end]
	}
	return rest
}
