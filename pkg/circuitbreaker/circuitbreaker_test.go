package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripsAfterConsecutiveFailures(t *testing.T) {
	cb := NewCircuitBreaker(Settings{Name: "test", MaxFailures: 3, Timeout: time.Minute})
	boom := errors.New("boom")

	for i := 0; i < 3; i++ {
		err := cb.Execute(func() error { return boom })
		assert.ErrorIs(t, err, boom)
	}

	// Now open: calls are rejected without running fn.
	called := false
	err := cb.Execute(func() error { called = true; return nil })
	require.Error(t, err)
	assert.False(t, called)
	assert.Contains(t, err.Error(), "open")
}

func TestSuccessResetsFailureCount(t *testing.T) {
	cb := NewCircuitBreaker(Settings{Name: "test", MaxFailures: 2, Timeout: time.Minute})
	boom := errors.New("boom")

	require.Error(t, cb.Execute(func() error { return boom }))
	require.NoError(t, cb.Execute(func() error { return nil }))
	require.Error(t, cb.Execute(func() error { return boom }))

	// Only one consecutive failure, breaker stays closed.
	assert.NoError(t, cb.Execute(func() error { return nil }))
}

func TestHalfOpenProbeAfterTimeout(t *testing.T) {
	cb := NewCircuitBreaker(Settings{Name: "test", MaxFailures: 1, Timeout: 10 * time.Millisecond})
	boom := errors.New("boom")

	require.Error(t, cb.Execute(func() error { return boom }))
	require.Error(t, cb.Execute(func() error { return nil })) // still open

	time.Sleep(20 * time.Millisecond)

	// Probe allowed; success closes the breaker.
	assert.NoError(t, cb.Execute(func() error { return nil }))
	assert.NoError(t, cb.Execute(func() error { return nil }))
}
