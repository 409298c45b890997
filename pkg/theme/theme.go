// Package theme defines the light/dark + accent color configuration and the
// per-component styling data fluent controls resolve their paint
// descriptions from.
//
// Controls map (variant, interaction state) to a [Style] using the data
// here; those mappings are pure functions of their inputs, so the same
// theme, variant and state always produce the same description.
package theme

import "github.com/go-drift/fluent/pkg/graphics"

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	// BrightnessLight is the light theme family.
	BrightnessLight Brightness = iota
	// BrightnessDark is the dark theme family.
	BrightnessDark
)

// String returns a human-readable brightness name.
func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// DefaultAccent is the stock accent color.
var DefaultAccent = graphics.RGB(0x00, 0x78, 0xD4)

// AccentPalette holds tonal variants of the accent color.
type AccentPalette struct {
	Darker  graphics.Color
	Dark    graphics.Color
	Normal  graphics.Color
	Light   graphics.Color
	Lighter graphics.Color
}

// NewAccentPalette derives the tonal variants from a base accent color.
func NewAccentPalette(base graphics.Color) AccentPalette {
	return AccentPalette{
		Darker:  graphics.Darken(base, 0.18),
		Dark:    graphics.Darken(base, 0.09),
		Normal:  base,
		Light:   graphics.Lighten(base, 0.09),
		Lighter: graphics.Lighten(base, 0.18),
	}
}

// ColorScheme defines the color palette shared by all components.
type ColorScheme struct {
	Accent             AccentPalette
	OnAccent           graphics.Color
	Background         graphics.Color
	Surface            graphics.Color
	OnSurface          graphics.Color
	OnSurfaceSecondary graphics.Color
	Divider            graphics.Color
	Disabled           graphics.Color
	Shadow             graphics.Color
}

// LightColorScheme returns the light palette for the given accent.
func LightColorScheme(accent graphics.Color) ColorScheme {
	return ColorScheme{
		Accent:             NewAccentPalette(accent),
		OnAccent:           graphics.ColorWhite,
		Background:         graphics.RGB(0xF3, 0xF3, 0xF3),
		Surface:            graphics.ColorWhite,
		OnSurface:          graphics.RGB(0x1B, 0x1B, 0x1B),
		OnSurfaceSecondary: graphics.RGB(0x5D, 0x5D, 0x5D),
		Divider:            graphics.RGB(0xE0, 0xE0, 0xE0),
		Disabled:           graphics.RGB(0xA0, 0xA0, 0xA0),
		Shadow:             graphics.ColorBlack.WithAlpha(0.14),
	}
}

// DarkColorScheme returns the dark palette for the given accent.
func DarkColorScheme(accent graphics.Color) ColorScheme {
	return ColorScheme{
		Accent:             NewAccentPalette(accent),
		OnAccent:           graphics.ColorBlack,
		Background:         graphics.RGB(0x20, 0x20, 0x20),
		Surface:            graphics.RGB(0x2B, 0x2B, 0x2B),
		OnSurface:          graphics.ColorWhite,
		OnSurfaceSecondary: graphics.RGB(0xC8, 0xC8, 0xC8),
		Divider:            graphics.RGB(0x3D, 0x3D, 0x3D),
		Disabled:           graphics.RGB(0x71, 0x71, 0x71),
		Shadow:             graphics.ColorBlack.WithAlpha(0.28),
	}
}

// Data contains all theme configuration for an application.
type Data struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// Component themes - optional, derived from ColorScheme if nil.
	Checkbox       *CheckboxThemeData
	ToggleSwitch   *ToggleSwitchThemeData
	NavigationPane *NavigationPaneThemeData
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *Data {
	return &Data{
		ColorScheme: LightColorScheme(DefaultAccent),
		Brightness:  BrightnessLight,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *Data {
	return &Data{
		ColorScheme: DarkColorScheme(DefaultAccent),
		Brightness:  BrightnessDark,
	}
}

// CheckboxThemeOf returns the checkbox theme, deriving from ColorScheme if not set.
func (t *Data) CheckboxThemeOf() CheckboxThemeData {
	if t.Checkbox != nil {
		return *t.Checkbox
	}
	return DefaultCheckboxTheme(t.ColorScheme)
}

// ToggleSwitchThemeOf returns the toggle switch theme, deriving from ColorScheme if not set.
func (t *Data) ToggleSwitchThemeOf() ToggleSwitchThemeData {
	if t.ToggleSwitch != nil {
		return *t.ToggleSwitch
	}
	return DefaultToggleSwitchTheme(t.ColorScheme)
}

// NavigationPaneThemeOf returns the navigation pane theme, deriving from ColorScheme if not set.
func (t *Data) NavigationPaneThemeOf() NavigationPaneThemeData {
	if t.NavigationPane != nil {
		return *t.NavigationPane
	}
	return DefaultNavigationPaneTheme(t.ColorScheme)
}
