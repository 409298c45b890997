package graphics

import "math"

// Color is a 32-bit ARGB value laid out as 0xAARRGGBB. The zero value is
// fully transparent black.
type Color uint32

const (
	alphaShift = 24
	redShift   = 16
	greenShift = 8
	blueShift  = 0
)

// RGB builds an opaque color from byte channels.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBA builds a color from byte channels and a 0-1 alpha.
func RGBA(r, g, b uint8, a float64) Color {
	return RGBA8(r, g, b, alphaByte(a))
}

// RGBA8 builds a color from four byte channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<alphaShift |
		uint32(r)<<redShift |
		uint32(g)<<greenShift |
		uint32(b)<<blueShift)
}

// Red returns the red channel byte.
func (c Color) Red() uint8 { return uint8(c >> redShift) }

// Green returns the green channel byte.
func (c Color) Green() uint8 { return uint8(c >> greenShift) }

// Blue returns the blue channel byte.
func (c Color) Blue() uint8 { return uint8(c >> blueShift) }

// Alpha returns the alpha channel scaled to 0-1.
func (c Color) Alpha() float64 {
	return float64(uint8(c>>alphaShift)) / 255
}

// RGBAF returns all four channels scaled to 0-1.
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(c.Red()) / 255,
		float64(c.Green()) / 255,
		float64(c.Blue()) / 255,
		c.Alpha()
}

// WithAlpha replaces the alpha channel with a 0-1 value, keeping the
// color channels.
func (c Color) WithAlpha(a float64) Color {
	return c.WithAlpha8(alphaByte(a))
}

// WithAlpha8 replaces the alpha channel byte.
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<alphaShift | uint32(c)&0x00FFFFFF)
}

// alphaByte maps a 0-1 alpha to the nearest byte, clamping out-of-range
// input.
func alphaByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

const (
	ColorTransparent Color = 0x00000000
	ColorBlack       Color = 0xFF000000
	ColorWhite       Color = 0xFFFFFFFF
)
