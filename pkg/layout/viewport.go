package layout

import (
	"math"

	"github.com/go-drift/fluent/pkg/graphics"
)

// Viewport exposes a scrollable window onto a child that may be larger than
// the available space along the scroll axis.
//
// The child is laid out with the main axis unbounded; the viewport then
// shifts it by the clamped scroll offset. Keyed descendants scrolled fully
// outside the viewport are culled from geometry collection, so their
// geometry reads as unknown until they come back into view.
type Viewport struct {
	BoxBase
	Axis         Axis
	ScrollOffset float64
	Child        Box

	contentExtent float64
}

func (v *Viewport) Layout(constraints Constraints) {
	childConstraints := constraints.Loosen()
	if v.Axis == AxisHorizontal {
		childConstraints.MaxWidth = Unbounded
	} else {
		childConstraints.MaxHeight = Unbounded
	}
	if v.Child != nil {
		v.Child.Layout(childConstraints)
	}

	var childSize graphics.Size
	if v.Child != nil {
		childSize = v.Child.Size()
	}
	v.contentExtent = v.Axis.MainOf(childSize)

	size := constraints.Constrain(graphics.Size{
		Width:  pickBounded(constraints.MaxWidth, childSize.Width),
		Height: pickBounded(constraints.MaxHeight, childSize.Height),
	})
	v.SetSize(size)

	v.ScrollOffset = clampDim(v.ScrollOffset, 0, v.MaxScrollOffset())
	if v.Child != nil {
		v.Child.SetOffset(v.Axis.OffsetAlong(-v.ScrollOffset, 0))
	}
}

// pickBounded prefers the constraint extent when finite, falling back to
// the child's extent for unbounded axes.
func pickBounded(max, fallback float64) float64 {
	if math.IsInf(max, 1) {
		return fallback
	}
	return max
}

// ContentExtent returns the child's extent along the scroll axis.
func (v *Viewport) ContentExtent() float64 {
	return v.contentExtent
}

// MaxScrollOffset returns the largest valid scroll offset.
func (v *Viewport) MaxScrollOffset() float64 {
	return math.Max(0, v.contentExtent-v.Axis.MainOf(v.Size()))
}

func (v *Viewport) VisitChildren(visitor func(Box)) {
	if v.Child != nil {
		visitor(v.Child)
	}
}
