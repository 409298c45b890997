package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring animates a value toward a target with damped spring physics,
// used for gesture settling (a released toggle thumb snapping home).
//
// Unlike [AnimationController], a spring has no fixed duration; it runs
// until the value and velocity both come to rest at the target.
type Spring struct {
	// Value is the current position.
	Value float64

	spring   harmonica.Spring
	velocity float64
	target   float64
	ticker   *Ticker
	lastTick time.Duration
	OnChange func(value float64)
	OnRest   func()
}

// restTolerance bounds how close position and velocity must be to the
// target before the spring is considered settled.
const restTolerance = 0.001

// NewSpring creates a spring stepping at the given frame rate with the
// given angular frequency and damping ratio.
func NewSpring(fps int, frequency, damping float64) *Spring {
	return &Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// DefaultSpring returns a critically-damped spring tuned for control
// settling at 60 frames per second.
func DefaultSpring() *Spring {
	return NewSpring(60, 6.0, 1.0)
}

// AnimateTo runs the spring from the current value toward target. Calling
// it while in flight retargets the simulation, preserving velocity.
func (s *Spring) AnimateTo(target float64) {
	s.target = target
	if s.ticker != nil {
		return
	}
	s.lastTick = 0
	s.ticker = NewTicker(s.tick)
	s.ticker.Start()
}

// Jump moves immediately to target with no motion.
func (s *Spring) Jump(target float64) {
	s.Stop()
	s.Value = target
	s.target = target
	s.velocity = 0
	if s.OnChange != nil {
		s.OnChange(s.Value)
	}
}

// Stop halts the simulation at the current value.
func (s *Spring) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	s.velocity = 0
}

// IsAnimating reports whether the simulation is running.
func (s *Spring) IsAnimating() bool {
	return s.ticker != nil
}

func (s *Spring) tick(elapsed time.Duration) {
	// harmonica steps at a fixed delta; run one update per elapsed frame.
	const frame = time.Second / 60
	for s.lastTick+frame <= elapsed {
		s.lastTick += frame
		s.Value, s.velocity = s.spring.Update(s.Value, s.velocity, s.target)
	}
	if s.OnChange != nil {
		s.OnChange(s.Value)
	}
	if math.Abs(s.Value-s.target) < restTolerance && math.Abs(s.velocity) < restTolerance {
		s.Value = s.target
		s.Stop()
		if s.OnChange != nil {
			s.OnChange(s.Value)
		}
		if s.OnRest != nil {
			s.OnRest()
		}
	}
}
