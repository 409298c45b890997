package pane

import (
	"fmt"
	"time"

	"github.com/go-drift/fluent/pkg/animation"
	"github.com/go-drift/fluent/pkg/layout"
	"github.com/go-drift/fluent/pkg/overlay"
)

// FlyoutPhase is the lifecycle state of the minimal-mode flyout.
type FlyoutPhase int

const (
	// FlyoutClosed means no overlay surface is mounted.
	FlyoutClosed FlyoutPhase = iota
	// FlyoutOpening means the surface is mounted and animating in.
	FlyoutOpening
	// FlyoutOpen means the surface is fully shown.
	FlyoutOpen
	// FlyoutClosing means the surface is animating out; it stays mounted
	// until the reverse run completes.
	FlyoutClosing
)

// String returns a human-readable phase name.
func (p FlyoutPhase) String() string {
	switch p {
	case FlyoutClosed:
		return "closed"
	case FlyoutOpening:
		return "opening"
	case FlyoutOpen:
		return "open"
	case FlyoutClosing:
		return "closing"
	default:
		return fmt.Sprintf("FlyoutPhase(%d)", int(p))
	}
}

// FlyoutController runs the minimal-mode flyout lifecycle:
// closed → opening → open → closing → closed.
//
// Open while opening or open is a no-op. Close runs the reverse animation
// to completion before the overlay entry is removed; removing earlier
// flickers, so the entry stays mounted through the whole closing phase.
// Close while closing or closed is likewise a no-op. Open while closing
// turns the run around from its current progress.
type FlyoutController struct {
	host       *overlay.Host
	entry      *overlay.Entry
	controller *animation.AnimationController
	phase      FlyoutPhase

	// buildSurface builds the flyout box for the current progress.
	buildSurface func(progress float64) layout.Box

	// OnPhaseChanged is called on every phase transition.
	OnPhaseChanged func(FlyoutPhase)
}

// NewFlyoutController creates a controller inserting surfaces into host.
func NewFlyoutController(host *overlay.Host, duration time.Duration, curve animation.Curve, buildSurface func(progress float64) layout.Box) *FlyoutController {
	f := &FlyoutController{
		host:         host,
		buildSurface: buildSurface,
		phase:        FlyoutClosed,
	}
	f.controller = animation.NewController(duration)
	f.controller.Curve = curve
	f.controller.AddStatusListener(f.onStatus)
	return f
}

// Open mounts the flyout surface and animates it in. No-op while already
// opening or open.
func (f *FlyoutController) Open() {
	switch f.phase {
	case FlyoutOpening, FlyoutOpen:
		return
	case FlyoutClosed:
		f.entry = overlay.NewEntry(func() layout.Box {
			return f.buildSurface(f.controller.Value)
		})
		f.entry.Opaque = false
		f.host.Insert(f.entry)
	}
	f.setPhase(FlyoutOpening)
	f.controller.Forward()
}

// Close animates the flyout out and removes the surface when the reverse
// run reaches zero. No-op while already closing or closed.
func (f *FlyoutController) Close() {
	switch f.phase {
	case FlyoutClosing, FlyoutClosed:
		return
	}
	f.setPhase(FlyoutClosing)
	f.controller.Reverse()
}

// Phase returns the current lifecycle phase.
func (f *FlyoutController) Phase() FlyoutPhase {
	return f.phase
}

// Progress returns the animation progress in [0, 1].
func (f *FlyoutController) Progress() float64 {
	return f.controller.Value
}

// Entry returns the mounted overlay entry, or nil when closed.
func (f *FlyoutController) Entry() *overlay.Entry {
	return f.entry
}

// Dispose releases the overlay entry without animating. Used when the
// owning pane is torn down mid-flight.
func (f *FlyoutController) Dispose() {
	f.controller.Dispose()
	if f.entry != nil {
		f.host.Remove(f.entry)
		f.entry = nil
	}
	f.phase = FlyoutClosed
}

func (f *FlyoutController) onStatus(status animation.Status) {
	switch status {
	case animation.StatusCompleted:
		if f.phase == FlyoutOpening {
			f.setPhase(FlyoutOpen)
		}
	case animation.StatusDismissed:
		if f.phase != FlyoutClosing {
			return
		}
		if f.entry != nil {
			f.host.Remove(f.entry)
			f.entry = nil
		}
		f.setPhase(FlyoutClosed)
	}
}

func (f *FlyoutController) setPhase(phase FlyoutPhase) {
	if f.phase == phase {
		return
	}
	f.phase = phase
	if f.OnPhaseChanged != nil {
		f.OnPhaseChanged(phase)
	}
}
