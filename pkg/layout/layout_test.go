package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fluent/pkg/graphics"
)

func TestFlex_VerticalStacking(t *testing.T) {
	flex := &Flex{
		Axis: AxisVertical,
		Children: []Box{
			&SizedBox{Width: 100, Height: 40},
			&SizedBox{Width: 100, Height: 40},
			&SizedBox{Width: 100, Height: 40},
		},
	}
	flex.Layout(Loose(graphics.Size{Width: 320, Height: 600}))

	assert.Equal(t, 120.0, flex.Size().Height)
	assert.Equal(t, graphics.Offset{Y: 40}, flex.Children[1].Offset())
	assert.Equal(t, graphics.Offset{Y: 80}, flex.Children[2].Offset())
}

func TestFlex_FlexibleFillsRemaining(t *testing.T) {
	filler := &SizedBox{Width: 100, Height: 10}
	flex := &Flex{
		Axis: AxisVertical,
		Children: []Box{
			&SizedBox{Width: 100, Height: 40},
			&Flexible{Flex: 1, Child: filler},
			&SizedBox{Width: 100, Height: 40},
		},
	}
	flex.Layout(Tight(graphics.Size{Width: 100, Height: 300}))

	assert.Equal(t, 220.0, filler.Size().Height)
	assert.Equal(t, graphics.Offset{Y: 260}, flex.Children[2].Offset())
}

func TestFlex_Spacing(t *testing.T) {
	flex := &Flex{
		Axis:    AxisHorizontal,
		Spacing: 8,
		Children: []Box{
			&SizedBox{Width: 40, Height: 40},
			&SizedBox{Width: 40, Height: 40},
		},
	}
	flex.Layout(Loose(graphics.Size{Width: 400, Height: 40}))

	assert.Equal(t, 88.0, flex.Size().Width)
	assert.Equal(t, graphics.Offset{X: 48}, flex.Children[1].Offset())
}

func TestViewport_ClampsScrollOffset(t *testing.T) {
	vp := &Viewport{
		Axis:         AxisVertical,
		ScrollOffset: 10000,
		Child: &Flex{Axis: AxisVertical, Children: []Box{
			&SizedBox{Width: 100, Height: 300},
		}},
	}
	vp.Layout(Tight(graphics.Size{Width: 100, Height: 200}))

	assert.Equal(t, 100.0, vp.ScrollOffset)
	assert.Equal(t, 100.0, vp.MaxScrollOffset())
}

func TestCollect_AccumulatesOffsets(t *testing.T) {
	inner := &Keyed{Key: "inner", Child: &SizedBox{Width: 50, Height: 20}}
	root := &Flex{Axis: AxisVertical, Children: []Box{
		&SizedBox{Width: 50, Height: 30},
		inner,
	}}
	root.Layout(Loose(graphics.Size{Width: 100, Height: 100}))

	table := Collect(root)
	rect, ok := table.Lookup("inner")
	require.True(t, ok)
	assert.Equal(t, graphics.RectFromLTWH(0, 30, 50, 20), rect)
}

// Keyed subtrees scrolled outside the viewport must not appear in the
// geometry table; a missing entry is how callers learn an item has not
// been laid out on screen.
func TestCollect_CullsOffscreenKeys(t *testing.T) {
	var children []Box
	for i := 0; i < 20; i++ {
		children = append(children, &Keyed{Key: i, Child: &SizedBox{Width: 100, Height: 40}})
	}
	vp := &Viewport{
		Axis:  AxisVertical,
		Child: &Flex{Axis: AxisVertical, Children: children},
	}
	vp.Layout(Tight(graphics.Size{Width: 100, Height: 120}))

	table := Collect(vp)
	_, first := table.Lookup(0)
	_, third := table.Lookup(2)
	_, tenth := table.Lookup(10)

	assert.True(t, first)
	assert.True(t, third, "partially visible rows still have geometry")
	assert.False(t, tenth, "rows far below the viewport are culled")
}

func TestCollect_ScrolledGeometryShifts(t *testing.T) {
	var children []Box
	for i := 0; i < 20; i++ {
		children = append(children, &Keyed{Key: i, Child: &SizedBox{Width: 100, Height: 40}})
	}
	vp := &Viewport{
		Axis:         AxisVertical,
		ScrollOffset: 80,
		Child:        &Flex{Axis: AxisVertical, Children: children},
	}
	vp.Layout(Tight(graphics.Size{Width: 100, Height: 120}))

	table := Collect(vp)
	rect, ok := table.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, 0.0, rect.Top, "row 2 scrolled to the top edge")

	_, zeroVisible := table.Lookup(0)
	assert.False(t, zeroVisible, "row 0 scrolled out above")
}

func TestHitKey_FindsDeepestKey(t *testing.T) {
	root := &Flex{Axis: AxisVertical, Children: []Box{
		&Keyed{Key: "a", Child: &SizedBox{Width: 100, Height: 40}},
		&Keyed{Key: "b", Child: &SizedBox{Width: 100, Height: 40}},
	}}
	root.Layout(Loose(graphics.Size{Width: 100, Height: 100}))

	key, ok := HitKey(root, graphics.Offset{X: 10, Y: 50})
	require.True(t, ok)
	assert.Equal(t, "b", key)

	_, ok = HitKey(root, graphics.Offset{X: 10, Y: 500})
	assert.False(t, ok)
}

func TestHitKey_RespectsViewportClip(t *testing.T) {
	var children []Box
	for i := 0; i < 10; i++ {
		children = append(children, &Keyed{Key: i, Child: &SizedBox{Width: 100, Height: 40}})
	}
	vp := &Viewport{
		Axis:  AxisVertical,
		Child: &Flex{Axis: AxisVertical, Children: children},
	}
	vp.Layout(Tight(graphics.Size{Width: 100, Height: 120}))

	_, ok := HitKey(vp, graphics.Offset{X: 10, Y: 200})
	assert.False(t, ok, "points below the viewport hit nothing")
}

func TestPadding_InsetsChild(t *testing.T) {
	child := &SizedBox{Width: 50, Height: 20}
	pad := &Padding{Insets: EdgeInsetsAll(8), Child: child}
	pad.Layout(Loose(graphics.Size{Width: 200, Height: 200}))

	assert.Equal(t, graphics.Offset{X: 8, Y: 8}, child.Offset())
	assert.Equal(t, graphics.Size{Width: 66, Height: 36}, pad.Size())
}

func TestConstraints_Constrain(t *testing.T) {
	c := Constraints{MinWidth: 10, MaxWidth: 100, MinHeight: 10, MaxHeight: 100}
	assert.Equal(t, graphics.Size{Width: 100, Height: 10}, c.Constrain(graphics.Size{Width: 500, Height: 5}))
}

func TestAxis_Helpers(t *testing.T) {
	size := graphics.Size{Width: 30, Height: 70}
	assert.Equal(t, 70.0, AxisVertical.MainOf(size))
	assert.Equal(t, 30.0, AxisVertical.CrossOf(size))
	assert.Equal(t, 30.0, AxisHorizontal.MainOf(size))
	assert.Equal(t, size, AxisVertical.SizeAlong(70, 30))
	assert.Equal(t, graphics.Offset{X: 5, Y: 9}, AxisVertical.OffsetAlong(9, 5))
}
