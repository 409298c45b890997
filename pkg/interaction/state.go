// Package interaction turns pointer and focus signals into the small
// discrete state every fluent control styles itself from, and tracks
// horizontal drags for drag-to-commit controls.
package interaction

import "fmt"

// State is the discrete interaction state of a control.
type State int

const (
	// StateNone means no interaction is in progress.
	StateNone State = iota
	// StateHovering means a pointer is over the control.
	StateHovering
	// StatePressing means a pointer is down on the control.
	StatePressing
	// StateFocused means the control has keyboard focus.
	StateFocused
	// StateDisabled means the control ignores interaction.
	StateDisabled
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateHovering:
		return "hovering"
	case StatePressing:
		return "pressing"
	case StateFocused:
		return "focused"
	case StateDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
