package interaction

import "github.com/go-drift/fluent/pkg/graphics"

// PointerPhase identifies the kind of pointer signal delivered to a control.
type PointerPhase int

const (
	// PhaseEnter means the pointer moved over the control.
	PhaseEnter PointerPhase = iota
	// PhaseExit means the pointer left the control.
	PhaseExit
	// PhaseDown means a button or touch went down on the control.
	PhaseDown
	// PhaseMove means the pointer moved while down.
	PhaseMove
	// PhaseUp means the button or touch was released.
	PhaseUp
	// PhaseCancel means the interaction was taken over (e.g. by a scroll).
	PhaseCancel
)

// PointerEvent is a single pointer signal in control-local coordinates.
type PointerEvent struct {
	Phase    PointerPhase
	Position graphics.Offset
}

// Controller folds pointer and focus signals into a [State].
//
// The derived state follows a fixed precedence: disabled wins over
// pressing, pressing over hovering, hovering over focused.
type Controller struct {
	hovering bool
	pressing bool
	focused  bool
	disabled bool

	// OnChanged fires whenever the derived state changes.
	OnChanged func(State)
	// OnTap fires when a press is released inside the control.
	OnTap func()
}

// NewController returns a controller in the resting state.
func NewController() *Controller {
	return &Controller{}
}

// HandlePointer feeds one pointer signal into the controller.
func (c *Controller) HandlePointer(event PointerEvent) {
	if c.disabled {
		return
	}
	before := c.State()
	tapped := false
	switch event.Phase {
	case PhaseEnter:
		c.hovering = true
	case PhaseExit:
		c.hovering = false
		c.pressing = false
	case PhaseDown:
		c.pressing = true
	case PhaseUp:
		tapped = c.pressing
		c.pressing = false
	case PhaseCancel:
		c.pressing = false
	}
	c.notifyIfChanged(before)
	if tapped && c.OnTap != nil {
		c.OnTap()
	}
}

// SetFocused updates keyboard focus.
func (c *Controller) SetFocused(focused bool) {
	before := c.State()
	c.focused = focused
	c.notifyIfChanged(before)
}

// SetDisabled enables or disables the control. Disabling clears any
// in-flight hover or press.
func (c *Controller) SetDisabled(disabled bool) {
	before := c.State()
	c.disabled = disabled
	if disabled {
		c.hovering = false
		c.pressing = false
	}
	c.notifyIfChanged(before)
}

// State returns the current derived interaction state.
func (c *Controller) State() State {
	switch {
	case c.disabled:
		return StateDisabled
	case c.pressing:
		return StatePressing
	case c.hovering:
		return StateHovering
	case c.focused:
		return StateFocused
	default:
		return StateNone
	}
}

func (c *Controller) notifyIfChanged(before State) {
	after := c.State()
	if after != before && c.OnChanged != nil {
		c.OnChanged(after)
	}
}
