package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsExclusionViolation(t *testing.T) {
	exclusion := &pq.Error{Code: "23P01", Constraint: "bookings_stylist_no_overlap"}
	unique := &pq.Error{Code: "23505"}

	assert.True(t, isExclusionViolation(exclusion))
	assert.True(t, isExclusionViolation(fmt.Errorf("insert failed: %w", exclusion)))
	assert.False(t, isExclusionViolation(unique))
	assert.False(t, isExclusionViolation(errors.New("connection reset")))
	assert.False(t, isExclusionViolation(nil))
}
