// Package fluenttest provides deterministic test helpers: a controllable
// clock and a frame pump that advances animations in fixed steps.
package fluenttest

import (
	"sync"
	"time"

	"github.com/go-drift/fluent/pkg/animation"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Install makes the fake clock the animation time source and returns a
// restore function for deferring.
func (c *FakeClock) Install() func() {
	prev := animation.SetClock(c)
	return func() { animation.SetClock(prev) }
}

// PumpFrames advances the clock through total in fixed steps, ticking the
// active animations after each step, the way a host frame loop would.
func (c *FakeClock) PumpFrames(total, step time.Duration) {
	if step <= 0 {
		step = 16 * time.Millisecond
	}
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		remaining := total - elapsed
		if remaining < step {
			c.Advance(remaining)
		} else {
			c.Advance(step)
		}
		animation.StepTickers()
	}
}

// Settle pumps frames until no animation is active, bounded by limit.
func (c *FakeClock) Settle(step, limit time.Duration) bool {
	if step <= 0 {
		step = 16 * time.Millisecond
	}
	for elapsed := time.Duration(0); elapsed < limit; elapsed += step {
		if !animation.HasActiveTickers() {
			return true
		}
		c.Advance(step)
		animation.StepTickers()
	}
	return !animation.HasActiveTickers()
}
