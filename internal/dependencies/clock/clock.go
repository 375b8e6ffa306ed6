package clock

import "time"

// Clock stamps games and their events
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock in UTC
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time in UTC so event logs compare across machines
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}
