package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstraintViolationError(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed: users.username")
	err := &ConstraintViolationError{Kind: ConstraintUnique, Column: "users.username", Err: cause}

	assert.Equal(t, "unique constraint violated on users.username", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &ConstraintViolationError{Kind: ConstraintForeignKey}
	assert.Equal(t, "foreign_key constraint violated", bare.Error())
}

func TestIsDuplicate(t *testing.T) {
	dup := &ConstraintViolationError{Kind: ConstraintUnique, Column: "users.username"}
	assert.True(t, IsDuplicate(dup, "username"))
	assert.True(t, IsDuplicate(dup, ""))
	assert.False(t, IsDuplicate(dup, "email"))

	check := &ConstraintViolationError{Kind: ConstraintCheck, Column: "users.role"}
	assert.False(t, IsDuplicate(check, "role"))
	assert.False(t, IsDuplicate(errors.New("something else"), "username"))
}

func TestInvalidTransitionError(t *testing.T) {
	err := &InvalidTransitionError{From: StatusCompleted, To: StatusScheduled}
	assert.Equal(t, "invalid status transition completed -> scheduled", err.Error())
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Violations: []string{"first name is required", "invalid email format"}}
	assert.Equal(t, "validation failed: first name is required; invalid email format", err.Error())
}
