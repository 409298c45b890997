package pane

import (
	"fmt"
	"time"

	"github.com/go-drift/fluent/pkg/animation"
	"github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/layout"
)

// IndicatorTracker animates the selection highlight between item
// geometries.
//
// The tracker is fed once per frame, after layout, with the current
// selection and the geometry table of the just-completed pass. The first
// time a selection has geometry the indicator snaps to it; every later
// selection change animates offset and extent along the layout axis while
// the cross axis snaps to the target. Superseding a run mid-flight
// restarts from the current interpolated rectangle, so rapid re-selection
// never jumps.
//
// Unknown or zero geometry is an expected transient: the indicator keeps
// its previous rectangle and retries on the next frame instead of
// collapsing to a zero-sized rect. An out-of-range selection renders no
// indicator and reports through the errors handler; the caller owns
// keeping Selected consistent with the items.
type IndicatorTracker struct {
	controller *animation.AnimationController

	axis     layout.Axis
	previous graphics.Rect
	target   graphics.Rect
	current  graphics.Rect

	targetKey   ItemKey
	hasGeometry bool
	visible     bool
	reported    bool

	// OnInvalidate is called when the indicator rect changes and a repaint
	// is needed.
	OnInvalidate func()
}

// NewIndicatorTracker creates a tracker animating with the given duration
// and curve. Changing them later, via SetTiming, applies from the next run.
func NewIndicatorTracker(duration time.Duration, curve animation.Curve) *IndicatorTracker {
	t := &IndicatorTracker{}
	t.controller = animation.NewController(duration)
	t.controller.Curve = curve
	t.controller.AddListener(t.step)
	return t
}

// SetTiming updates the animation duration and curve. An in-flight run
// keeps the timing it started with.
func (t *IndicatorTracker) SetTiming(duration time.Duration, curve animation.Curve) {
	t.controller.Duration = duration
	t.controller.Curve = curve
}

// Update feeds the tracker the post-layout state of one frame: the
// selection, the layout axis of the resolved mode, the selectable
// subsequence, and the geometry table of the completed pass.
func (t *IndicatorTracker) Update(selected *int, axis layout.Axis, selectables []SelectableItem, geometry layout.GeometryTable) {
	if selected == nil {
		t.clear()
		return
	}
	if *selected < 0 || *selected >= len(selectables) {
		if !t.reported {
			errors.Report("pane.IndicatorTracker", errors.KindGeometry,
				fmt.Errorf("selected index %d has no selectable item (%d known)", *selected, len(selectables)))
			t.reported = true
		}
		t.clear()
		return
	}
	t.reported = false

	key := selectables[*selected].Key
	rect, ok := geometry.Lookup(key)
	if !ok || rect.IsEmpty() {
		// Not laid out yet. Keep the previous rect and retry next frame.
		return
	}

	if axis != t.axis {
		t.axis = axis
		t.snapTo(key, rect)
		return
	}
	if !t.hasGeometry {
		t.snapTo(key, rect)
		return
	}
	if key == t.targetKey {
		t.visible = true
		if t.controller.IsAnimating() {
			return
		}
		if !rect.ApproxEqual(t.target) {
			// Same selection moved by a relayout or scroll. Follow it
			// without animating.
			t.target = rect
			t.previous = rect
			t.current = rect
			t.invalidate()
		} else if !t.current.ApproxEqual(t.target) {
			// A stopped run left the indicator between rects. Resume
			// toward the target from where it halted.
			t.previous = t.current
			t.controller.Value = 0
			t.controller.Forward()
		}
		return
	}

	// New target. Restart from the current interpolated rect.
	t.controller.Stop()
	t.previous = t.current
	t.target = rect
	t.targetKey = key
	t.visible = true
	t.controller.Value = 0
	t.controller.Forward()
}

// Rect returns the indicator rectangle to paint, and whether one should be
// painted at all.
func (t *IndicatorTracker) Rect() (graphics.Rect, bool) {
	return t.current, t.visible && t.hasGeometry
}

// IsAnimating reports whether a run is in flight.
func (t *IndicatorTracker) IsAnimating() bool {
	return t.controller.IsAnimating()
}

// Dispose stops the animation and releases its ticker.
func (t *IndicatorTracker) Dispose() {
	t.controller.Dispose()
}

// step recomputes the interpolated rect for the current animation value.
// Offset and extent interpolate along the layout axis; the cross axis
// takes the target's position and size directly.
func (t *IndicatorTracker) step() {
	progress := t.controller.Value
	main := animation.LerpFloat64(t.axis.MainOfOffset(t.previous.Offset()), t.axis.MainOfOffset(t.target.Offset()), progress)
	extent := animation.LerpFloat64(t.axis.MainOf(t.previous.Size()), t.axis.MainOf(t.target.Size()), progress)

	cross := t.axis.CrossOf(t.target.Size())
	crossOffset := crossOfOffset(t.axis, t.target.Offset())

	t.current = graphics.RectFromOffsetAndSize(
		t.axis.OffsetAlong(main, crossOffset),
		t.axis.SizeAlong(extent, cross),
	)
	t.invalidate()
}

func (t *IndicatorTracker) snapTo(key ItemKey, rect graphics.Rect) {
	t.controller.Stop()
	t.targetKey = key
	t.previous = rect
	t.target = rect
	t.current = rect
	t.hasGeometry = true
	t.visible = true
	t.invalidate()
}

func (t *IndicatorTracker) clear() {
	if !t.visible {
		return
	}
	t.controller.Stop()
	t.visible = false
	t.invalidate()
}

func (t *IndicatorTracker) invalidate() {
	if t.OnInvalidate != nil {
		t.OnInvalidate()
	}
}

func crossOfOffset(a layout.Axis, offset graphics.Offset) float64 {
	if a == layout.AxisHorizontal {
		return offset.Y
	}
	return offset.X
}
