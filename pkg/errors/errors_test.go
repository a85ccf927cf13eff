package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsValidation(Validation("bad input", nil)))
	assert.True(t, IsNotFound(NotFound("booking", nil)))
	assert.True(t, IsConflict(Conflict("taken", nil)))
	assert.True(t, IsInvalidTransition(InvalidTransition("completed", "cancelled")))
	assert.True(t, IsAuthentication(Authentication("bad credentials", nil)))

	assert.False(t, IsNotFound(Validation("bad input", nil)))
	assert.False(t, IsConflict(nil))
	assert.False(t, IsValidation(errors.New("plain")))
}

func TestClassificationSurvivesWrapping(t *testing.T) {
	inner := NotFound("salon", nil)
	wrapped := fmt.Errorf("loading salon: %w", inner)

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsConflict(wrapped))
}

func TestInvalidTransitionMessage(t *testing.T) {
	err := InvalidTransition("completed", "cancelled")
	assert.Contains(t, err.Error(), "completed")
	assert.Contains(t, err.Error(), "cancelled")
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("row not found")
	err := NotFound("booking", cause)
	assert.ErrorIs(t, err, cause)
}
