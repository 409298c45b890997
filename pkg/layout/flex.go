package layout

import (
	"math"

	"github.com/go-drift/fluent/pkg/graphics"
)

// Flexible gives its child a share of the remaining main-axis space inside
// a [Flex]. Children with Flex 0 (or plain boxes) size themselves.
type Flexible struct {
	BoxBase
	Flex  int
	Child Box
}

func (f *Flexible) Layout(constraints Constraints) {
	f.Child.Layout(constraints)
	f.Child.SetOffset(graphics.Offset{})
	f.SetSize(f.Child.Size())
}

func (f *Flexible) VisitChildren(visitor func(Box)) {
	visitor(f.Child)
}

// Flex stacks children along one axis.
//
// Non-flexible children are laid out first with the main axis unbounded;
// remaining space is then divided among [Flexible] children by flex factor.
// With CrossStretch set, children are forced to the full cross extent.
type Flex struct {
	BoxBase
	Axis         Axis
	Spacing      float64
	CrossStretch bool
	Children     []Box
}

func (f *Flex) Layout(constraints Constraints) {
	mainMax := f.Axis.MainOf(graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight})
	crossMax := f.Axis.CrossOf(graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight})
	crossBounded := !math.IsInf(crossMax, 1)

	childConstraints := func(mainExtent float64, tightMain bool) Constraints {
		var crossMin float64
		if f.CrossStretch && crossBounded {
			crossMin = crossMax
		}
		mainMin := 0.0
		if tightMain {
			mainMin = mainExtent
		}
		if f.Axis == AxisHorizontal {
			return Constraints{
				MinWidth:  mainMin,
				MaxWidth:  mainExtent,
				MinHeight: crossMin,
				MaxHeight: crossMax,
			}
		}
		return Constraints{
			MinWidth:  crossMin,
			MaxWidth:  crossMax,
			MinHeight: mainMin,
			MaxHeight: mainExtent,
		}
	}

	// First pass: intrinsic children.
	totalFlex := 0
	used := 0.0
	for _, child := range f.Children {
		if flexible, ok := child.(*Flexible); ok && flexible.Flex > 0 {
			totalFlex += flexible.Flex
			continue
		}
		child.Layout(childConstraints(Unbounded, false))
		used += f.Axis.MainOf(child.Size())
	}
	if len(f.Children) > 1 {
		used += f.Spacing * float64(len(f.Children)-1)
	}

	// Second pass: flexible children split what remains.
	if totalFlex > 0 {
		remaining := 0.0
		if !math.IsInf(mainMax, 1) {
			remaining = math.Max(0, mainMax-used)
		}
		perFlex := remaining / float64(totalFlex)
		for _, child := range f.Children {
			if flexible, ok := child.(*Flexible); ok && flexible.Flex > 0 {
				extent := perFlex * float64(flexible.Flex)
				child.Layout(childConstraints(extent, true))
				used += f.Axis.MainOf(child.Size())
			}
		}
	}

	// Position children sequentially along the main axis.
	position := 0.0
	cross := 0.0
	for i, child := range f.Children {
		if i > 0 {
			position += f.Spacing
		}
		child.SetOffset(f.Axis.OffsetAlong(position, 0))
		position += f.Axis.MainOf(child.Size())
		cross = math.Max(cross, f.Axis.CrossOf(child.Size()))
	}

	main := position
	if totalFlex > 0 && !math.IsInf(mainMax, 1) {
		main = mainMax
	}
	if f.CrossStretch && crossBounded {
		cross = crossMax
	}
	f.SetSize(constraints.Constrain(f.Axis.SizeAlong(main, cross)))
}

func (f *Flex) VisitChildren(visitor func(Box)) {
	for _, child := range f.Children {
		visitor(child)
	}
}
