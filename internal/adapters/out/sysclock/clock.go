// Package sysclock provides the wall-clock implementation of ports.Clock.
package sysclock

import "time"

// SystemClock reads the current time from the operating system.
type SystemClock struct{}

// NewSystemClock creates a wall clock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
