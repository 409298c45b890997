// Package layout provides box constraints and the measurable layout tree
// that fluent components project themselves into.
//
// A [Box] is laid out by its parent with [Constraints] and reports a size;
// parents assign each child an offset in their own coordinate space. After a
// layout pass completes, [Collect] resolves the absolute geometry of every
// [Keyed] box into a [GeometryTable]. Geometry is only meaningful once the
// whole pass has finished; reading it mid-layout yields partial results.
package layout

import (
	"math"

	"github.com/go-drift/fluent/pkg/graphics"
)

// Unbounded marks a constraint axis with no upper limit.
var Unbounded = math.Inf(1)

// Constraints describe the min/max box an element may occupy.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that force exactly the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints that allow anything up to the given size.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Constrain clamps size to these constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clampDim(size.Width, c.MinWidth, c.MaxWidth),
		Height: clampDim(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// Loosen removes the minimum constraints, keeping the maximums.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// Deflate shrinks the constraints by the given insets.
func (c Constraints) Deflate(insets EdgeInsets) Constraints {
	horizontal := insets.Left + insets.Right
	vertical := insets.Top + insets.Bottom
	return Constraints{
		MinWidth:  math.Max(0, c.MinWidth-horizontal),
		MaxWidth:  math.Max(0, c.MaxWidth-horizontal),
		MinHeight: math.Max(0, c.MinHeight-vertical),
		MaxHeight: math.Max(0, c.MaxHeight-vertical),
	}
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

func clampDim(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EdgeInsets describe padding on each side of a box.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// EdgeInsetsAll returns equal insets on every side.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric returns insets mirrored across each axis.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns the combined left and right insets.
func (e EdgeInsets) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns the combined top and bottom insets.
func (e EdgeInsets) Vertical() float64 { return e.Top + e.Bottom }

// Axis identifies a layout direction.
type Axis int

const (
	// AxisVertical stacks children top to bottom.
	AxisVertical Axis = iota
	// AxisHorizontal stacks children left to right.
	AxisHorizontal
)

// String returns a human-readable axis name.
func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// MainOf returns the size extent along this axis.
func (a Axis) MainOf(size graphics.Size) float64 {
	if a == AxisHorizontal {
		return size.Width
	}
	return size.Height
}

// CrossOf returns the size extent across this axis.
func (a Axis) CrossOf(size graphics.Size) float64 {
	if a == AxisHorizontal {
		return size.Height
	}
	return size.Width
}

// SizeAlong builds a size from main- and cross-axis extents.
func (a Axis) SizeAlong(main, cross float64) graphics.Size {
	if a == AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

// OffsetAlong builds an offset from main- and cross-axis components.
func (a Axis) OffsetAlong(main, cross float64) graphics.Offset {
	if a == AxisHorizontal {
		return graphics.Offset{X: main, Y: cross}
	}
	return graphics.Offset{X: cross, Y: main}
}

// MainOfOffset returns the offset component along this axis.
func (a Axis) MainOfOffset(offset graphics.Offset) float64 {
	if a == AxisHorizontal {
		return offset.X
	}
	return offset.Y
}
