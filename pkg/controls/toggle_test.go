package controls

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fluent/pkg/fluenttest"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/interaction"
	"github.com/go-drift/fluent/pkg/layout"
	"github.com/go-drift/fluent/pkg/theme"
)

func pointerAt(phase interaction.PointerPhase, x float64) interaction.PointerEvent {
	return interaction.PointerEvent{Phase: phase, Position: graphics.Offset{X: x, Y: 10}}
}

func TestToggleSwitch_TapFlipsValue(t *testing.T) {
	var got *bool
	ts := NewToggleSwitch(false, func(v bool) { got = &v })

	ts.HandlePointer(pointerAt(interaction.PhaseDown, 10))
	ts.HandlePointer(pointerAt(interaction.PhaseUp, 10))

	require.NotNil(t, got)
	assert.True(t, *got)
}

func TestToggleSwitch_DragPastMidpointCommits(t *testing.T) {
	clk := fluenttest.NewFakeClock()
	defer clk.Install()()

	var got *bool
	ts := NewToggleSwitch(false, func(v bool) { got = &v })
	defer ts.Dispose()

	ts.HandlePointer(pointerAt(interaction.PhaseDown, 2))
	ts.HandlePointer(pointerAt(interaction.PhaseMove, 16))
	require.True(t, ts.IsDragging())
	require.Greater(t, ts.ThumbAlignment(), 0.5)
	ts.HandlePointer(pointerAt(interaction.PhaseUp, 16))

	require.NotNil(t, got, "release past midpoint commits")
	assert.True(t, *got)
	assert.False(t, ts.IsDragging())
}

func TestToggleSwitch_ShortDragSpringsBack(t *testing.T) {
	clk := fluenttest.NewFakeClock()
	defer clk.Install()()

	var got *bool
	ts := NewToggleSwitch(false, func(v bool) { got = &v })

	ts.HandlePointer(pointerAt(interaction.PhaseDown, 2))
	ts.HandlePointer(pointerAt(interaction.PhaseMove, 10))
	drag := ts.ThumbAlignment()
	require.Greater(t, drag, 0.0)
	require.Less(t, drag, 0.5)
	ts.HandlePointer(pointerAt(interaction.PhaseUp, 12))

	assert.Nil(t, got, "release before midpoint does not commit")
	require.True(t, ts.IsSettling())

	ok := clk.Settle(16*time.Millisecond, 10*time.Second)
	require.True(t, ok)
	assert.False(t, ts.IsSettling())
	assert.Equal(t, 0.0, ts.ThumbAlignment())
}

func TestToggleSwitch_DragSuppressesTap(t *testing.T) {
	clk := fluenttest.NewFakeClock()
	defer clk.Install()()

	commits := 0
	ts := NewToggleSwitch(false, func(bool) { commits++ })
	defer ts.Dispose()

	ts.HandlePointer(pointerAt(interaction.PhaseDown, 2))
	ts.HandlePointer(pointerAt(interaction.PhaseMove, 16))
	ts.HandlePointer(pointerAt(interaction.PhaseUp, 16))

	assert.Equal(t, 1, commits, "a recognized drag commits once, never also as a tap")
}

func TestToggleSwitch_CancelSpringsHome(t *testing.T) {
	clk := fluenttest.NewFakeClock()
	defer clk.Install()()

	fired := false
	ts := NewToggleSwitch(true, func(bool) { fired = true })

	ts.HandlePointer(pointerAt(interaction.PhaseDown, 38))
	ts.HandlePointer(pointerAt(interaction.PhaseMove, 20))
	ts.HandlePointer(pointerAt(interaction.PhaseCancel, 20))

	assert.False(t, fired)
	clk.Settle(16*time.Millisecond, 10*time.Second)
	assert.Equal(t, 1.0, ts.ThumbAlignment(), "cancel returns the thumb to the value side")
}

func TestToggleSwitch_DisabledIgnoresPointer(t *testing.T) {
	fired := false
	ts := NewToggleSwitch(false, func(bool) { fired = true })
	ts.Disabled = true

	ts.HandlePointer(pointerAt(interaction.PhaseDown, 10))
	ts.HandlePointer(pointerAt(interaction.PhaseUp, 10))

	assert.False(t, fired)
	assert.Equal(t, interaction.StateDisabled, ts.InteractionState())
}

func TestToggleSwitch_ThumbFollowsValueAtRest(t *testing.T) {
	off := NewToggleSwitch(false, nil)
	on := NewToggleSwitch(true, nil)
	assert.Equal(t, 0.0, off.ThumbAlignment())
	assert.Equal(t, 1.0, on.ThumbAlignment())
}

func TestToggleSwitch_LayoutUsesThemedSize(t *testing.T) {
	ts := NewToggleSwitch(false, nil)
	ts.Layout(layout.Loose(graphics.Size{Width: 200, Height: 200}))

	data := theme.DefaultLightTheme().ToggleSwitchThemeOf()
	assert.Equal(t, graphics.Size{Width: data.Width, Height: data.Height}, ts.Size())
}

func TestToggleSwitch_TrackStyleFor(t *testing.T) {
	data := theme.DefaultLightTheme().ToggleSwitchThemeOf()

	on := NewToggleSwitch(true, nil)
	assert.Equal(t, data.ActiveTrackColor, on.TrackStyleFor(interaction.StateNone).Fill)
	assert.Equal(t, data.ActiveHoverTrackColor, on.TrackStyleFor(interaction.StateHovering).Fill)
	assert.Equal(t, data.ActiveThumbColor, on.ThumbColorFor(interaction.StateNone))

	off := NewToggleSwitch(false, nil)
	style := off.TrackStyleFor(interaction.StateNone)
	assert.Equal(t, data.InactiveTrackColor, style.Fill)
	assert.Equal(t, data.InactiveBorderColor, style.Border)

	disabled := NewToggleSwitch(true, nil)
	disabled.Disabled = true
	assert.Equal(t, data.DisabledTrackColor, disabled.TrackStyleFor(interaction.StateNone).Fill)
	assert.Equal(t, data.DisabledThumbColor, disabled.ThumbColorFor(interaction.StateNone))
}

func TestToggleSwitch_ThumbRectTravels(t *testing.T) {
	data := theme.DefaultLightTheme().ToggleSwitchThemeOf()

	off := NewToggleSwitch(false, nil)
	on := NewToggleSwitch(true, nil)

	left := off.ThumbRect()
	right := on.ThumbRect()
	assert.Equal(t, 2.0, left.Left)
	assert.InDelta(t, 2.0+(data.Width-data.Height), right.Left, 0.0001)
	assert.Equal(t, data.Height-4, left.Width())
}
