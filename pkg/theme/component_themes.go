package theme

import (
	"time"

	"github.com/go-drift/fluent/pkg/animation"
	"github.com/go-drift/fluent/pkg/graphics"
)

// CheckboxThemeData defines default styling for Checkbox controls.
type CheckboxThemeData struct {
	// ActiveColor is the fill color when checked or indeterminate.
	ActiveColor graphics.Color
	// ActiveHoverColor is the checked fill while hovered.
	ActiveHoverColor graphics.Color
	// ActivePressColor is the checked fill while pressed.
	ActivePressColor graphics.Color
	// CheckColor is the glyph color.
	CheckColor graphics.Color
	// BorderColor is the outline color when unchecked.
	BorderColor graphics.Color
	// BackgroundColor is the fill color when unchecked.
	BackgroundColor graphics.Color
	// DisabledColor is the fill and border color when disabled.
	DisabledColor graphics.Color
	// Size is the checkbox square size.
	Size float64
	// CornerRadius is the corner radius.
	CornerRadius float64
}

// DefaultCheckboxTheme derives checkbox styling from a color scheme.
func DefaultCheckboxTheme(scheme ColorScheme) CheckboxThemeData {
	return CheckboxThemeData{
		ActiveColor:      scheme.Accent.Normal,
		ActiveHoverColor: scheme.Accent.Dark,
		ActivePressColor: scheme.Accent.Darker,
		CheckColor:       scheme.OnAccent,
		BorderColor:      scheme.OnSurfaceSecondary,
		BackgroundColor:  scheme.Surface,
		DisabledColor:    scheme.Disabled,
		Size:             20,
		CornerRadius:     4,
	}
}

// ToggleSwitchThemeData defines default styling for ToggleSwitch controls.
type ToggleSwitchThemeData struct {
	// ActiveTrackColor is the track color when on.
	ActiveTrackColor graphics.Color
	// ActiveHoverTrackColor is the on-track color while hovered.
	ActiveHoverTrackColor graphics.Color
	// InactiveTrackColor is the track color when off.
	InactiveTrackColor graphics.Color
	// InactiveBorderColor is the track outline when off.
	InactiveBorderColor graphics.Color
	// ThumbColor is the thumb fill when off.
	ThumbColor graphics.Color
	// ActiveThumbColor is the thumb fill when on.
	ActiveThumbColor graphics.Color
	// DisabledTrackColor is the track color when disabled.
	DisabledTrackColor graphics.Color
	// DisabledThumbColor is the thumb color when disabled.
	DisabledThumbColor graphics.Color
	// Width is the overall track width.
	Width float64
	// Height is the overall track height.
	Height float64
}

// DefaultToggleSwitchTheme derives toggle switch styling from a color scheme.
func DefaultToggleSwitchTheme(scheme ColorScheme) ToggleSwitchThemeData {
	return ToggleSwitchThemeData{
		ActiveTrackColor:      scheme.Accent.Normal,
		ActiveHoverTrackColor: scheme.Accent.Dark,
		InactiveTrackColor:    scheme.Surface,
		InactiveBorderColor:   scheme.OnSurfaceSecondary,
		ThumbColor:            scheme.OnSurfaceSecondary,
		ActiveThumbColor:      scheme.OnAccent,
		DisabledTrackColor:    scheme.Disabled.WithAlpha(0.4),
		DisabledThumbColor:    scheme.Disabled,
		Width:                 40,
		Height:                20,
	}
}

// NavigationPaneThemeData defines styling and behavior tuning for the
// navigation pane. Sizes and auto-mode thresholds are presentation tuning,
// not hard contracts; the only requirement is MediumWidth >= NarrowWidth so
// mode resolution stays monotonic in width.
type NavigationPaneThemeData struct {
	// BackgroundColor is the pane background.
	BackgroundColor graphics.Color
	// TileTextColor is the item title color.
	TileTextColor graphics.Color
	// TileIconColor is the item icon color.
	TileIconColor graphics.Color
	// SelectedColor is the icon and title color of the selected item.
	SelectedColor graphics.Color
	// HoverFill is the tile fill while hovered.
	HoverFill graphics.Color
	// PressFill is the tile fill while pressed.
	PressFill graphics.Color
	// SelectedFill is the tile fill of the selected item.
	SelectedFill graphics.Color
	// IndicatorColor is the selection indicator color.
	IndicatorColor graphics.Color
	// IndicatorThickness is the indicator bar thickness across the layout axis.
	IndicatorThickness float64
	// SeparatorColor is the default separator color.
	SeparatorColor graphics.Color
	// SeparatorThickness is the default separator thickness.
	SeparatorThickness float64
	// HeaderTextColor is the group header color.
	HeaderTextColor graphics.Color
	// HeaderHeight is the group header row height.
	HeaderHeight float64
	// TileHeight is the item row height in vertical modes.
	TileHeight float64
	// TopTileWidth is the item width in the top bar.
	TopTileWidth float64
	// CompactWidth is the pane width in compact mode.
	CompactWidth float64
	// OpenWidth is the pane width in open mode.
	OpenWidth float64
	// TopHeight is the bar height in top mode.
	TopHeight float64
	// NarrowWidth is the auto-mode threshold below which minimal is used.
	NarrowWidth float64
	// MediumWidth is the auto-mode threshold below which compact is used.
	MediumWidth float64
	// Duration is the indicator and flyout animation duration.
	Duration time.Duration
	// Curve eases the indicator and flyout animations.
	Curve animation.Curve
}

// DefaultNavigationPaneTheme derives pane styling from a color scheme.
func DefaultNavigationPaneTheme(scheme ColorScheme) NavigationPaneThemeData {
	return NavigationPaneThemeData{
		BackgroundColor:    scheme.Background,
		TileTextColor:      scheme.OnSurface,
		TileIconColor:      scheme.OnSurfaceSecondary,
		SelectedColor:      scheme.Accent.Normal,
		HoverFill:          scheme.OnSurface.WithAlpha(0.06),
		PressFill:          scheme.OnSurface.WithAlpha(0.09),
		SelectedFill:       scheme.OnSurface.WithAlpha(0.08),
		IndicatorColor:     scheme.Accent.Normal,
		IndicatorThickness: 3,
		SeparatorColor:     scheme.Divider,
		SeparatorThickness: 1,
		HeaderTextColor:    scheme.OnSurfaceSecondary,
		HeaderHeight:       36,
		TileHeight:         40,
		TopTileWidth:       96,
		CompactWidth:       48,
		OpenWidth:          320,
		TopHeight:          48,
		NarrowWidth:        400,
		MediumWidth:        650,
		Duration:           300 * time.Millisecond,
		Curve:              animation.PointToPoint,
	}
}
