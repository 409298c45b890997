package layout

import "github.com/go-drift/fluent/pkg/graphics"

// Box is a node in the measurable layout tree.
//
// Layout must set the box's size within the given constraints and assign
// each child an offset relative to this box. Parents assign this box's own
// offset after laying it out.
type Box interface {
	Layout(constraints Constraints)
	Size() graphics.Size
	Offset() graphics.Offset
	SetOffset(offset graphics.Offset)
	VisitChildren(visitor func(Box))
}

// BoxBase provides size and parent-assigned offset storage for boxes.
// Embed it in concrete box types.
type BoxBase struct {
	size   graphics.Size
	offset graphics.Offset
}

// Size returns the size resolved by the last layout pass.
func (b *BoxBase) Size() graphics.Size { return b.size }

// SetSize records the size resolved during layout.
func (b *BoxBase) SetSize(size graphics.Size) { b.size = size }

// Offset returns the parent-assigned offset.
func (b *BoxBase) Offset() graphics.Offset { return b.offset }

// SetOffset assigns this box's offset in its parent's coordinate space.
func (b *BoxBase) SetOffset(offset graphics.Offset) { b.offset = offset }

// VisitChildren is a no-op for leaf boxes; container boxes override it.
func (b *BoxBase) VisitChildren(func(Box)) {}

// SizedBox occupies a fixed size, optionally wrapping a child laid out
// tightly inside it. With no child it acts as a spacer.
type SizedBox struct {
	BoxBase
	Width  float64
	Height float64
	Child  Box
}

func (s *SizedBox) Layout(constraints Constraints) {
	size := constraints.Constrain(graphics.Size{Width: s.Width, Height: s.Height})
	s.SetSize(size)
	if s.Child != nil {
		s.Child.Layout(Tight(size))
		s.Child.SetOffset(graphics.Offset{})
	}
}

func (s *SizedBox) VisitChildren(visitor func(Box)) {
	if s.Child != nil {
		visitor(s.Child)
	}
}

// Padding insets its child on each side.
type Padding struct {
	BoxBase
	Insets EdgeInsets
	Child  Box
}

func (p *Padding) Layout(constraints Constraints) {
	inner := constraints.Deflate(p.Insets)
	if p.Child == nil {
		p.SetSize(constraints.Constrain(graphics.Size{
			Width:  p.Insets.Horizontal(),
			Height: p.Insets.Vertical(),
		}))
		return
	}
	p.Child.Layout(inner)
	p.Child.SetOffset(graphics.Offset{X: p.Insets.Left, Y: p.Insets.Top})
	childSize := p.Child.Size()
	p.SetSize(constraints.Constrain(graphics.Size{
		Width:  childSize.Width + p.Insets.Horizontal(),
		Height: childSize.Height + p.Insets.Vertical(),
	}))
}

func (p *Padding) VisitChildren(visitor func(Box)) {
	if p.Child != nil {
		visitor(p.Child)
	}
}

// Keyed tags its child subtree with a stable identity so the geometry of
// the subtree can be looked up after layout.
type Keyed struct {
	BoxBase
	Key   any
	Child Box
}

func (k *Keyed) Layout(constraints Constraints) {
	k.Child.Layout(constraints)
	k.Child.SetOffset(graphics.Offset{})
	k.SetSize(k.Child.Size())
}

func (k *Keyed) VisitChildren(visitor func(Box)) {
	visitor(k.Child)
}
