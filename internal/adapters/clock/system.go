package clock

import (
	"time"

	"github.com/gitcoords/gitcoords/internal/ports"
)

// SystemClock implements ports.Clock with the local wall clock
type SystemClock struct{}

// Compile-time interface verification
var _ ports.Clock = (*SystemClock)(nil)

// NewSystemClock creates a new system clock
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current local time
func (c *SystemClock) Now() time.Time {
	return time.Now()
}
