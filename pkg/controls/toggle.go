package controls

import (
	"github.com/go-drift/fluent/pkg/animation"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/interaction"
	"github.com/go-drift/fluent/pkg/layout"
	"github.com/go-drift/fluent/pkg/theme"
)

// ToggleSwitch is an on/off switch whose thumb can be tapped or dragged.
//
// Like Checkbox it is a controlled component: Value is what the host says
// it is, and activation reports the requested value through OnChanged. The
// only state the control itself owns is the transient thumb alignment while
// a drag or settle animation is in flight.
//
// A drag commits on release when the thumb has crossed the midpoint of its
// travel, or when release velocity clearly points at one side; otherwise the
// thumb springs back to the side matching Value. A plain tap (press and
// release without crossing the drag slop) flips the value directly.
type ToggleSwitch struct {
	layout.BoxBase

	// Value is the current on/off value.
	Value bool
	// Disabled disables interaction when true.
	Disabled bool
	// OnChanged is called with the requested value on commit.
	OnChanged func(bool)
	// OnInvalidate is called when the thumb moves and a repaint is needed.
	OnInvalidate func()
	// Theme supplies styling. Nil falls back to the default light theme.
	Theme *theme.Data

	tap      *interaction.Controller
	drag     *interaction.HorizontalDrag
	spring   *animation.Spring
	dragging bool
	settling bool
	// alignment is the thumb position in [0, 1] while dragging or settling.
	alignment float64
}

// commitVelocity is the release speed, in px/s, beyond which the fling
// direction decides the commit side regardless of thumb position.
const commitVelocity = 200.0

// NewToggleSwitch creates a toggle switch reporting commits to onChanged.
func NewToggleSwitch(value bool, onChanged func(bool)) *ToggleSwitch {
	t := &ToggleSwitch{Value: value, OnChanged: onChanged}
	t.tap = interaction.NewController()
	t.tap.OnTap = t.activate
	t.drag = &interaction.HorizontalDrag{
		OnStart:  t.dragStart,
		OnUpdate: t.dragUpdate,
		OnEnd:    t.dragEnd,
		OnCancel: t.dragCancel,
	}
	t.spring = animation.DefaultSpring()
	t.spring.OnChange = func(value float64) {
		t.alignment = value
		t.invalidate()
	}
	t.spring.OnRest = func() {
		t.settling = false
		t.invalidate()
	}
	return t
}

func (t *ToggleSwitch) Layout(constraints layout.Constraints) {
	data := t.themeData().ToggleSwitchThemeOf()
	t.SetSize(constraints.Constrain(graphics.Size{Width: data.Width, Height: data.Height}))
}

// HandlePointer feeds one pointer signal through tap and drag recognition.
func (t *ToggleSwitch) HandlePointer(event interaction.PointerEvent) {
	if t.Disabled {
		return
	}
	wasDragging := t.drag.IsDragging()
	t.drag.HandlePointer(event)
	if !wasDragging && t.drag.IsDragging() {
		// Once a drag is recognized the press must not also fire a tap.
		t.tap.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseCancel})
		return
	}
	if wasDragging {
		return
	}
	t.tap.HandlePointer(event)
}

// InteractionState reports the current hover/press/disabled state.
func (t *ToggleSwitch) InteractionState() interaction.State {
	if t.Disabled {
		return interaction.StateDisabled
	}
	return t.tap.State()
}

// ThumbAlignment reports where the thumb sits along its travel: 0 is the
// off side, 1 the on side. Outside a drag or settle it follows Value.
func (t *ToggleSwitch) ThumbAlignment() float64 {
	if t.dragging || t.settling {
		return t.alignment
	}
	if t.Value {
		return 1
	}
	return 0
}

// IsDragging reports whether the thumb is currently following a pointer.
func (t *ToggleSwitch) IsDragging() bool {
	return t.dragging
}

// IsSettling reports whether the thumb is springing home after a release.
func (t *ToggleSwitch) IsSettling() bool {
	return t.settling
}

// TrackStyleFor resolves the track paint description for the current value
// under the given interaction state. Pure: same inputs, same description.
func (t *ToggleSwitch) TrackStyleFor(state interaction.State) theme.Style {
	data := t.themeData().ToggleSwitchThemeOf()
	radius := data.Height / 2

	if t.Disabled || state == interaction.StateDisabled {
		return theme.Style{Fill: data.DisabledTrackColor, CornerRadius: radius}
	}
	if t.Value {
		fill := data.ActiveTrackColor
		if state == interaction.StateHovering || state == interaction.StatePressing {
			fill = data.ActiveHoverTrackColor
		}
		return theme.Style{Fill: fill, CornerRadius: radius}
	}
	return theme.Style{
		Fill:         data.InactiveTrackColor,
		Border:       data.InactiveBorderColor,
		BorderWidth:  1,
		CornerRadius: radius,
	}
}

// ThumbColorFor resolves the thumb fill for the current value under the
// given interaction state.
func (t *ToggleSwitch) ThumbColorFor(state interaction.State) graphics.Color {
	data := t.themeData().ToggleSwitchThemeOf()
	if t.Disabled || state == interaction.StateDisabled {
		return data.DisabledThumbColor
	}
	if t.Value {
		return data.ActiveThumbColor
	}
	return data.ThumbColor
}

// ThumbRect computes the thumb bounds within the control for the current
// alignment. Valid after layout.
func (t *ToggleSwitch) ThumbRect() graphics.Rect {
	data := t.themeData().ToggleSwitchThemeOf()
	inset := 2.0
	diameter := data.Height - 2*inset
	x := inset + t.ThumbAlignment()*t.travel()
	return graphics.RectFromLTWH(x, inset, diameter, diameter)
}

// Dispose stops any in-flight settle animation.
func (t *ToggleSwitch) Dispose() {
	t.spring.Stop()
	t.settling = false
	t.dragging = false
}

func (t *ToggleSwitch) activate() {
	if t.OnChanged != nil {
		t.OnChanged(!t.Value)
	}
}

func (t *ToggleSwitch) dragStart(interaction.DragStartDetails) {
	t.spring.Stop()
	t.settling = false
	t.dragging = true
	if t.Value {
		t.alignment = 1
	} else {
		t.alignment = 0
	}
	t.invalidate()
}

func (t *ToggleSwitch) dragUpdate(details interaction.DragUpdateDetails) {
	if !t.dragging {
		return
	}
	travel := t.travel()
	if travel <= 0 {
		return
	}
	t.alignment = clamp01(t.alignment + details.PrimaryDelta/travel)
	t.invalidate()
}

func (t *ToggleSwitch) dragEnd(details interaction.DragEndDetails) {
	if !t.dragging {
		return
	}
	t.dragging = false

	target := t.alignment >= 0.5
	if details.PrimaryVelocity > commitVelocity {
		target = true
	} else if details.PrimaryVelocity < -commitVelocity {
		target = false
	}

	if target != t.Value && t.OnChanged != nil {
		t.OnChanged(target)
	}
	t.settleTo(target)
}

func (t *ToggleSwitch) dragCancel() {
	if !t.dragging {
		return
	}
	t.dragging = false
	t.settleTo(t.Value)
}

// settleTo springs the thumb home to the side matching on.
func (t *ToggleSwitch) settleTo(on bool) {
	end := 0.0
	if on {
		end = 1
	}
	if t.alignment == end {
		t.settling = false
		t.invalidate()
		return
	}
	t.settling = true
	t.spring.Jump(t.alignment)
	t.spring.AnimateTo(end)
}

func (t *ToggleSwitch) travel() float64 {
	data := t.themeData().ToggleSwitchThemeOf()
	return data.Width - data.Height
}

func (t *ToggleSwitch) invalidate() {
	if t.OnInvalidate != nil {
		t.OnInvalidate()
	}
}

func (t *ToggleSwitch) themeData() *theme.Data {
	if t.Theme != nil {
		return t.Theme
	}
	return theme.DefaultLightTheme()
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
