// Package controls provides the simple fluent leaf controls: checkbox and
// toggle switch. Controls are measurable boxes whose visuals are pure
// functions of (value, interaction state, theme); they hold no state beyond
// a toggle switch's transient drag alignment.
package controls

import (
	"fmt"

	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/interaction"
	"github.com/go-drift/fluent/pkg/layout"
	"github.com/go-drift/fluent/pkg/theme"
)

// CheckState is the value of a checkbox.
type CheckState int

const (
	// Unchecked means the box is empty.
	Unchecked CheckState = iota
	// Checked means the box shows a checkmark.
	Checked
	// Indeterminate means the box shows a dash (tri-state only).
	Indeterminate
)

// String returns a human-readable state name.
func (s CheckState) String() string {
	switch s {
	case Unchecked:
		return "unchecked"
	case Checked:
		return "checked"
	case Indeterminate:
		return "indeterminate"
	default:
		return fmt.Sprintf("CheckState(%d)", int(s))
	}
}

// Checkbox is a binary or tri-state check control.
//
// Checkbox is a controlled component: it displays the State you provide and
// calls OnChanged with the next state when activated. To change the visual
// state, update State in response to OnChanged.
type Checkbox struct {
	layout.BoxBase

	// State is the current check state.
	State CheckState
	// TriState enables the indeterminate state in the toggle cycle.
	TriState bool
	// Disabled disables interaction when true.
	Disabled bool
	// OnChanged is called with the next state when the checkbox is activated.
	OnChanged func(CheckState)
	// Theme supplies styling. Nil falls back to the default light theme.
	Theme *theme.Data
}

func (c *Checkbox) Layout(constraints layout.Constraints) {
	data := c.themeData().CheckboxThemeOf()
	c.SetSize(constraints.Constrain(graphics.Size{Width: data.Size, Height: data.Size}))
}

// Next returns the state that follows the current one in the toggle cycle.
// Binary checkboxes alternate unchecked/checked; tri-state checkboxes cycle
// unchecked, checked, indeterminate.
func (c *Checkbox) Next() CheckState {
	switch c.State {
	case Unchecked:
		return Checked
	case Checked:
		if c.TriState {
			return Indeterminate
		}
		return Unchecked
	default:
		return Unchecked
	}
}

// Activate advances the value, notifying OnChanged. No-op when disabled.
func (c *Checkbox) Activate() {
	if c.Disabled || c.OnChanged == nil {
		return
	}
	c.OnChanged(c.Next())
}

// StyleFor resolves the paint description for the current value under the
// given interaction state. Pure: same inputs, same description.
func (c *Checkbox) StyleFor(state interaction.State) theme.Style {
	data := c.themeData().CheckboxThemeOf()

	if c.Disabled || state == interaction.StateDisabled {
		return theme.Style{
			Fill:         data.DisabledColor.WithAlpha(0.4),
			Border:       data.DisabledColor,
			BorderWidth:  1,
			CornerRadius: data.CornerRadius,
			IconTint:     data.DisabledColor,
		}
	}

	filled := c.State != Unchecked
	if filled {
		fill := data.ActiveColor
		switch state {
		case interaction.StateHovering:
			fill = data.ActiveHoverColor
		case interaction.StatePressing:
			fill = data.ActivePressColor
		}
		return theme.Style{
			Fill:         fill,
			CornerRadius: data.CornerRadius,
			IconTint:     data.CheckColor,
		}
	}

	fill := data.BackgroundColor
	switch state {
	case interaction.StateHovering:
		fill = graphics.Blend(data.BackgroundColor, data.BorderColor, 0.1)
	case interaction.StatePressing:
		fill = graphics.Blend(data.BackgroundColor, data.BorderColor, 0.2)
	}
	return theme.Style{
		Fill:         fill,
		Border:       data.BorderColor,
		BorderWidth:  1,
		CornerRadius: data.CornerRadius,
	}
}

func (c *Checkbox) themeData() *theme.Data {
	if c.Theme != nil {
		return c.Theme
	}
	return theme.DefaultLightTheme()
}
