package model

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusPending, BookingStatusNoShow, false},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusNoShow, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCancelled, BookingStatusCancelled, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusNoShow, BookingStatusConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, BookingStatusPending.Terminal())
	assert.False(t, BookingStatusConfirmed.Terminal())
	assert.True(t, BookingStatusCompleted.Terminal())
	assert.True(t, BookingStatusCancelled.Terminal())
	assert.True(t, BookingStatusNoShow.Terminal())
}

func TestOverlapsHalfOpen(t *testing.T) {
	base := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	// Identical windows overlap.
	assert.True(t, Overlaps(base, base.Add(time.Hour), base, base.Add(time.Hour)))

	// Partial overlap in either direction.
	assert.True(t, Overlaps(base, base.Add(time.Hour), base.Add(30*time.Minute), base.Add(90*time.Minute)))
	assert.True(t, Overlaps(base.Add(30*time.Minute), base.Add(90*time.Minute), base, base.Add(time.Hour)))

	// Containment.
	assert.True(t, Overlaps(base, base.Add(2*time.Hour), base.Add(30*time.Minute), base.Add(time.Hour)))

	// Back-to-back windows share only the boundary instant.
	assert.False(t, Overlaps(base, base.Add(time.Hour), base.Add(time.Hour), base.Add(2*time.Hour)))
	assert.False(t, Overlaps(base.Add(time.Hour), base.Add(2*time.Hour), base, base.Add(time.Hour)))

	// Disjoint.
	assert.False(t, Overlaps(base, base.Add(time.Hour), base.Add(3*time.Hour), base.Add(4*time.Hour)))
}

// minuteOverlap is a brute-force oracle: two half-open windows overlap
// iff they share at least one whole minute.
func minuteOverlap(s1, e1, s2, e2 time.Time) bool {
	for m := s1; m.Before(e1); m = m.Add(time.Minute) {
		if !m.Before(s2) && m.Before(e2) {
			return true
		}
	}
	return false
}

func TestOverlapsRandomizedPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	base := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	randomWindow := func() (time.Time, time.Time) {
		start := base.Add(time.Duration(rng.Intn(24*60)) * time.Minute)
		return start, start.Add(time.Duration(1+rng.Intn(180)) * time.Minute)
	}

	for i := 0; i < 5000; i++ {
		s1, e1 := randomWindow()
		s2, e2 := randomWindow()

		want := minuteOverlap(s1, e1, s2, e2)
		assert.Equal(t, want, Overlaps(s1, e1, s2, e2),
			"[%v,%v) vs [%v,%v)", s1, e1, s2, e2)
		assert.Equal(t, want, Overlaps(s2, e2, s1, e1),
			"overlap must be symmetric")
	}
}

func TestOverlapsRandomizedDisjointSets(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	base := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		// Build a pairwise-disjoint schedule by walking forward with
		// random gaps (zero gaps included, so back-to-back windows occur).
		var windows [][2]time.Time
		cursor := base
		for len(windows) < 8 {
			cursor = cursor.Add(time.Duration(rng.Intn(60)) * time.Minute)
			end := cursor.Add(time.Duration(1+rng.Intn(120)) * time.Minute)
			windows = append(windows, [2]time.Time{cursor, end})
			cursor = end
		}

		for a := 0; a < len(windows); a++ {
			for b := a + 1; b < len(windows); b++ {
				require.False(t, Overlaps(windows[a][0], windows[a][1], windows[b][0], windows[b][1]),
					"[%v,%v) vs [%v,%v)", windows[a][0], windows[a][1], windows[b][0], windows[b][1])
			}
		}

		// Stretching any window one minute past its successor's start
		// must make the pair overlap.
		idx := rng.Intn(len(windows) - 1)
		stretched := windows[idx+1][0].Add(time.Minute)
		require.True(t, Overlaps(windows[idx][0], stretched, windows[idx+1][0], windows[idx+1][1]))
	}
}
