package pane

import (
	"fmt"

	"github.com/go-drift/fluent/pkg/layout"
)

// DisplayMode selects a pane layout strategy. DisplayModeAuto is never an
// actual strategy; it resolves to one of the concrete four from the
// available width before any layout runs.
type DisplayMode int

const (
	// DisplayModeAuto resolves to minimal, compact, or open by width.
	DisplayModeAuto DisplayMode = iota
	// DisplayModeTop lays items out in a horizontal bar.
	DisplayModeTop
	// DisplayModeOpen shows a full-width rail with icons and titles.
	DisplayModeOpen
	// DisplayModeCompact shows a narrow rail with icons only.
	DisplayModeCompact
	// DisplayModeMinimal hides the rail behind a menu-triggered flyout.
	DisplayModeMinimal
)

// String returns a human-readable mode name.
func (m DisplayMode) String() string {
	switch m {
	case DisplayModeAuto:
		return "auto"
	case DisplayModeTop:
		return "top"
	case DisplayModeOpen:
		return "open"
	case DisplayModeCompact:
		return "compact"
	case DisplayModeMinimal:
		return "minimal"
	default:
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
}

// Axis returns the axis items are laid out along in this mode.
func (m DisplayMode) Axis() layout.Axis {
	if m == DisplayModeTop {
		return layout.AxisHorizontal
	}
	return layout.AxisVertical
}

// ResolveDisplayMode maps a requested mode and the available width to a
// concrete strategy. A non-auto request passes through unchanged. Auto is
// monotonic in width: below narrow it is minimal, below medium compact,
// otherwise open. Callers re-resolve on every width change; the result is
// never cached.
func ResolveDisplayMode(requested DisplayMode, width, narrow, medium float64) DisplayMode {
	if requested != DisplayModeAuto {
		return requested
	}
	switch {
	case width < narrow:
		return DisplayModeMinimal
	case width < medium:
		return DisplayModeCompact
	default:
		return DisplayModeOpen
	}
}
