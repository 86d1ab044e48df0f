package session

import "time"

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. Readings from time.Now carry a
// monotonic component, so differences are immune to wall-clock jumps.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }
