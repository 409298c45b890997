package animation

import "time"

// Clock is the time source behind every ticker in the package. Production
// code runs on the wall clock; tests install a fake through SetClock so
// frame pumping is deterministic.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

var clock Clock = ClockFunc(time.Now)

// SetClock installs c as the package time source and returns the clock it
// replaced, so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now reads the current time from the installed clock.
func Now() time.Time { return clock.Now() }
