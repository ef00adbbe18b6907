package adapters

import (
	"time"

	"github.com/smartspend/backend/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface with wall-clock time.
type systemClock struct{}

// NewSystemClock creates a new system clock instance.
func NewSystemClock() adapter.Clock {
	return &systemClock{}
}

// Now returns the current time.
func (c *systemClock) Now() time.Time {
	return time.Now()
}
