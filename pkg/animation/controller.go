package animation

import (
	"fmt"
	"time"
)

// Status represents the current state of an animation.
//
// While animating, status is StatusForward or StatusReverse. When stopped,
// status is StatusDismissed (at 0) or StatusCompleted (at 1).
type Status int

const (
	// StatusDismissed means the animation is stopped at the lower bound (0.0).
	StatusDismissed Status = iota
	// StatusForward means the animation is playing toward the upper bound (1.0).
	StatusForward
	// StatusReverse means the animation is playing toward the lower bound (0.0).
	StatusReverse
	// StatusCompleted means the animation is stopped at the upper bound (1.0).
	StatusCompleted
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// AnimationController drives a value from 0 to 1 over a duration.
//
// The Curve shapes linear progress into eased motion. Use [Tween] to map the
// 0-1 value to other ranges or types. Always call Dispose when done to stop
// the animation and release the ticker.
type AnimationController struct {
	// Value is the current animation value, ranging from 0.0 to 1.0.
	Value float64

	// Duration is the length of a full 0-to-1 run.
	Duration time.Duration

	// Curve transforms linear progress. Nil means linear.
	Curve Curve

	status          Status
	ticker          *Ticker
	target          float64
	startValue      float64
	runDuration     time.Duration
	runCurve        Curve
	listeners       map[int]func()
	statusListeners map[int]func(Status)
	nextListenerID  int
}

// NewController creates an animation controller with the given duration.
func NewController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		Curve:           Linear,
		status:          StatusDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(Status)),
	}
}

// Forward animates from the current value to 1.
func (c *AnimationController) Forward() {
	c.animateTo(1, StatusForward)
}

// Reverse animates from the current value to 0.
func (c *AnimationController) Reverse() {
	c.animateTo(0, StatusReverse)
}

// animateTo starts a run toward target. Duration and Curve are captured at
// run start: changing them mid-flight affects only the next run.
func (c *AnimationController) animateTo(target float64, direction Status) {
	if c.ticker != nil {
		c.ticker.Stop()
	}

	c.target = target
	c.startValue = c.Value
	c.runDuration = c.Duration
	c.runCurve = c.Curve
	c.setStatus(direction)

	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	if c.runDuration <= 0 {
		c.Value = c.target
		c.notifyListeners()
		c.settle()
		return
	}

	progress := float64(elapsed) / float64(c.runDuration)
	if progress >= 1.0 {
		progress = 1.0
	}

	eased := progress
	if c.runCurve != nil {
		eased = c.runCurve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if progress >= 1.0 {
		c.settle()
	}
}

// settle stops the ticker and resolves the resting status.
func (c *AnimationController) settle() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.Value <= 0 {
		c.setStatus(StatusDismissed)
	} else if c.Value >= 1 {
		c.setStatus(StatusCompleted)
	}
}

// Stop halts the animation at the current value. The status keeps its last
// direction; IsAnimating turns false because the ticker is released.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Reset immediately sets the value back to 0.
func (c *AnimationController) Reset() {
	c.Stop()
	c.Value = 0
	c.setStatus(StatusDismissed)
	c.notifyListeners()
}

// Status returns the current animation status.
func (c *AnimationController) Status() Status {
	return c.status
}

// IsAnimating returns true while a ticker is actively driving the value.
// A run halted by Stop keeps its directional status but no longer animates,
// so this checks the ticker rather than the status.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil && c.ticker.IsActive()
}

// IsCompleted returns true if the animation finished at 1.
func (c *AnimationController) IsCompleted() bool {
	return c.status == StatusCompleted
}

// IsDismissed returns true if the animation rests at 0.
func (c *AnimationController) IsDismissed() bool {
	return c.status == StatusDismissed
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(Status)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *AnimationController) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the animation and drops all listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
