package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_ContainsEdges(t *testing.T) {
	r := RectFromLTWH(10, 10, 100, 50)

	assert.True(t, r.Contains(Offset{X: 10, Y: 10}), "left/top edges are inclusive")
	assert.True(t, r.Contains(Offset{X: 50, Y: 30}))
	assert.False(t, r.Contains(Offset{X: 110, Y: 30}), "right edge is exclusive")
	assert.False(t, r.Contains(Offset{X: 50, Y: 60}), "bottom edge is exclusive")
}

func TestRect_Overlaps(t *testing.T) {
	a := RectFromLTWH(0, 0, 100, 100)
	assert.True(t, a.Overlaps(RectFromLTWH(50, 50, 100, 100)))
	assert.False(t, a.Overlaps(RectFromLTWH(100, 0, 10, 10)), "touching edges do not overlap")
	assert.False(t, a.Overlaps(RectFromLTWH(200, 200, 10, 10)))
}

func TestRect_Translate(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40).Translate(Offset{X: 5, Y: -5})
	assert.Equal(t, RectFromLTWH(15, 15, 30, 40), r)
}

func TestRect_OffsetAndSize(t *testing.T) {
	r := RectFromOffsetAndSize(Offset{X: 3, Y: 4}, Size{Width: 10, Height: 20})
	assert.Equal(t, Offset{X: 3, Y: 4}, r.Offset())
	assert.Equal(t, Size{Width: 10, Height: 20}, r.Size())
	assert.Equal(t, Offset{X: 8, Y: 14}, r.Center())
}

func TestRect_ApproxEqual(t *testing.T) {
	a := RectFromLTWH(0, 0, 100, 100)
	b := RectFromLTWH(0.00001, 0, 100, 100)
	assert.True(t, a.ApproxEqual(b))
	assert.False(t, a.ApproxEqual(RectFromLTWH(1, 0, 100, 100)))
}

func TestColor_Channels(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0.5)
	assert.Equal(t, uint8(0x12), c.Red())
	assert.Equal(t, uint8(0x34), c.Green())
	assert.Equal(t, uint8(0x56), c.Blue())
	r, g, b, a := c.RGBAF()
	assert.InDelta(t, float64(0x12)/255, r, 0.01)
	assert.InDelta(t, float64(0x34)/255, g, 0.01)
	assert.InDelta(t, float64(0x56)/255, b, 0.01)
	assert.InDelta(t, 0.5, a, 0.01)
}

func TestColor_WithAlpha(t *testing.T) {
	c := RGB(0x10, 0x20, 0x30)
	assert.InDelta(t, 1.0, c.Alpha(), 0.01)
	assert.InDelta(t, 0.25, c.WithAlpha(0.25).Alpha(), 0.01)
	// RGB channels survive the alpha change.
	assert.Equal(t, c, c.WithAlpha(0.25).WithAlpha8(0xFF))
}

func TestShade_LightenDarken(t *testing.T) {
	base := RGB(0x00, 0x78, 0xD4)
	lighter := Lighten(base, 0.1)
	darker := Darken(base, 0.1)

	assert.NotEqual(t, base, lighter)
	assert.NotEqual(t, base, darker)
	assert.NotEqual(t, lighter, darker)
	// Shading must not touch alpha.
	assert.InDelta(t, 1.0, lighter.Alpha(), 0.01)
	assert.InDelta(t, 1.0, darker.Alpha(), 0.01)
}

func TestShade_BlendEndpoints(t *testing.T) {
	a := RGB(0xFF, 0x00, 0x00)
	b := RGB(0x00, 0x00, 0xFF)
	assertNearColor(t, a, Blend(a, b, 0))
	assertNearColor(t, b, Blend(a, b, 1))
}

func assertNearColor(t *testing.T, want, got Color) {
	t.Helper()
	wr, wg, wb, wa := want.RGBAF()
	gr, gg, gb, ga := got.RGBAF()
	delta := 1.5 / 255
	assert.InDelta(t, wr, gr, delta)
	assert.InDelta(t, wg, gg, delta)
	assert.InDelta(t, wb, gb, delta)
	assert.InDelta(t, wa, ga, delta)
}
