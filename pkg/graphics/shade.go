package graphics

import colorful "github.com/lucasb-eyer/go-colorful"

// Shading helpers derive tonal variants of a base color. Accent palettes
// and hover/press fills are produced here so component themes never
// hand-pick per-state colors.

// Lighten returns the color moved toward white by amount (0-1) in HSL space.
func Lighten(c Color, amount float64) Color {
	h, s, l := toColorful(c).Hsl()
	l = clamp01(l + amount)
	return fromColorful(colorful.Hsl(h, s, l), c.Alpha())
}

// Darken returns the color moved toward black by amount (0-1) in HSL space.
func Darken(c Color, amount float64) Color {
	h, s, l := toColorful(c).Hsl()
	l = clamp01(l - amount)
	return fromColorful(colorful.Hsl(h, s, l), c.Alpha())
}

// Blend mixes two colors in Luv space, which avoids the muddy midpoints of
// naive RGB interpolation. t=0 yields a, t=1 yields b.
func Blend(a, b Color, t float64) Color {
	t = clamp01(t)
	mixed := toColorful(a).BlendLuv(toColorful(b), t)
	alpha := a.Alpha() + (b.Alpha()-a.Alpha())*t
	return fromColorful(mixed, alpha)
}

func toColorful(c Color) colorful.Color {
	r, g, b, _ := c.RGBAF()
	return colorful.Color{R: r, G: g, B: b}
}

func fromColorful(c colorful.Color, alpha float64) Color {
	cl := c.Clamped()
	r, g, b := cl.RGB255()
	return RGBA(r, g, b, alpha)
}
