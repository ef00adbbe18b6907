package mock

import "time"

// Time is a settable clock. After SetCurrentTime it keeps ticking forward
// from the configured instant at real-time pace.
type Time struct {
	currentStartTime time.Time
	updatedAt        time.Time
}

// NewTime creates a clock starting at the real current time.
func NewTime() *Time {
	now := time.Now()
	return &Time{
		currentStartTime: now,
		updatedAt:        now,
	}
}

// SetCurrentTime rebases the clock onto the given instant.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.currentStartTime = currentTime
	t.updatedAt = time.Now()
}

// Now returns the rebased current time.
func (t *Time) Now() time.Time {
	return t.currentStartTime.Add(time.Since(t.updatedAt))
}
