package interaction_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fluent/pkg/fluenttest"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/interaction"
)

func TestController_StatePrecedence(t *testing.T) {
	c := interaction.NewController()
	assert.Equal(t, interaction.StateNone, c.State())

	c.SetFocused(true)
	assert.Equal(t, interaction.StateFocused, c.State())

	c.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseEnter})
	assert.Equal(t, interaction.StateHovering, c.State())

	c.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseDown})
	assert.Equal(t, interaction.StatePressing, c.State())

	c.SetDisabled(true)
	assert.Equal(t, interaction.StateDisabled, c.State())
}

func TestController_TapOnRelease(t *testing.T) {
	c := interaction.NewController()
	taps := 0
	c.OnTap = func() { taps++ }

	c.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseDown})
	c.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseUp})
	assert.Equal(t, 1, taps)

	// Release without a press fires nothing.
	c.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseUp})
	assert.Equal(t, 1, taps)
}

func TestController_CancelSuppressesTap(t *testing.T) {
	c := interaction.NewController()
	taps := 0
	c.OnTap = func() { taps++ }

	c.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseDown})
	c.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseCancel})
	c.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseUp})
	assert.Equal(t, 0, taps)
}

func TestController_DisabledIgnoresPointer(t *testing.T) {
	c := interaction.NewController()
	taps := 0
	c.OnTap = func() { taps++ }
	c.SetDisabled(true)

	c.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseDown})
	c.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseUp})
	assert.Equal(t, 0, taps)
	assert.Equal(t, interaction.StateDisabled, c.State())
}

func TestController_OnChangedFiresOncePerTransition(t *testing.T) {
	c := interaction.NewController()
	var states []interaction.State
	c.OnChanged = func(s interaction.State) { states = append(states, s) }

	c.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseEnter})
	c.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseMove})
	c.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseExit})

	assert.Equal(t, []interaction.State{interaction.StateHovering, interaction.StateNone}, states)
}

func TestHorizontalDrag_SlopBeforeStart(t *testing.T) {
	d := &interaction.HorizontalDrag{}
	started := false
	d.OnStart = func(interaction.DragStartDetails) { started = true }

	d.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseDown, Position: graphics.Offset{X: 10}})
	d.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseMove, Position: graphics.Offset{X: 14}})
	assert.False(t, started, "movement inside the slop is not a drag")

	d.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseMove, Position: graphics.Offset{X: 30}})
	assert.True(t, started)
	assert.True(t, d.IsDragging())
}

func TestHorizontalDrag_DeltasAndVelocity(t *testing.T) {
	clk := fluenttest.NewFakeClock()
	defer clk.Install()()

	d := &interaction.HorizontalDrag{}
	var deltas []float64
	var velocity float64
	d.OnUpdate = func(u interaction.DragUpdateDetails) { deltas = append(deltas, u.PrimaryDelta) }
	d.OnEnd = func(e interaction.DragEndDetails) { velocity = e.PrimaryVelocity }

	d.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseDown, Position: graphics.Offset{X: 0}})
	clk.Advance(10 * time.Millisecond)
	d.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseMove, Position: graphics.Offset{X: 20}})
	clk.Advance(10 * time.Millisecond)
	d.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseMove, Position: graphics.Offset{X: 25}})
	d.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseUp})

	require.Equal(t, []float64{20, 5}, deltas)
	assert.InDelta(t, 500.0, velocity, 0.001, "5px over 10ms")
	assert.False(t, d.IsDragging())
}

func TestHorizontalDrag_CancelEndsWithoutCommit(t *testing.T) {
	d := &interaction.HorizontalDrag{}
	ended, cancelled := false, false
	d.OnEnd = func(interaction.DragEndDetails) { ended = true }
	d.OnCancel = func() { cancelled = true }

	d.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseDown, Position: graphics.Offset{X: 0}})
	d.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseMove, Position: graphics.Offset{X: 30}})
	d.HandlePointer(interaction.PointerEvent{Phase: interaction.PhaseCancel})

	assert.False(t, ended)
	assert.True(t, cancelled)
}
