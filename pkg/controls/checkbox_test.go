package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/interaction"
	"github.com/go-drift/fluent/pkg/layout"
	"github.com/go-drift/fluent/pkg/theme"
)

func TestCheckbox_BinaryToggle(t *testing.T) {
	c := &Checkbox{State: Unchecked}
	assert.Equal(t, Checked, c.Next())

	c.State = Checked
	assert.Equal(t, Unchecked, c.Next(), "binary checkboxes skip indeterminate")
}

func TestCheckbox_TriStateCycle(t *testing.T) {
	c := &Checkbox{State: Unchecked, TriState: true}

	order := []CheckState{Checked, Indeterminate, Unchecked}
	for _, want := range order {
		c.State = c.Next()
		assert.Equal(t, want, c.State)
	}
}

func TestCheckbox_ActivateReportsNext(t *testing.T) {
	var got CheckState
	c := &Checkbox{State: Unchecked, OnChanged: func(s CheckState) { got = s }}

	c.Activate()
	assert.Equal(t, Checked, got)

	// The control is controlled: Activate reports, it does not mutate.
	assert.Equal(t, Unchecked, c.State)
}

func TestCheckbox_DisabledIgnoresActivate(t *testing.T) {
	fired := false
	c := &Checkbox{Disabled: true, OnChanged: func(CheckState) { fired = true }}
	c.Activate()
	assert.False(t, fired)
}

func TestCheckbox_LayoutUsesThemedSize(t *testing.T) {
	c := &Checkbox{}
	c.Layout(layout.Loose(graphics.Size{Width: 100, Height: 100}))

	size := theme.DefaultLightTheme().CheckboxThemeOf().Size
	assert.Equal(t, graphics.Size{Width: size, Height: size}, c.Size())
}

func TestCheckbox_StyleIsPure(t *testing.T) {
	c := &Checkbox{State: Checked}
	first := c.StyleFor(interaction.StateHovering)
	second := c.StyleFor(interaction.StateHovering)
	assert.Equal(t, first, second)
}

func TestCheckbox_StyleFor(t *testing.T) {
	data := theme.DefaultLightTheme().CheckboxThemeOf()

	checked := &Checkbox{State: Checked}
	require.Equal(t, data.ActiveColor, checked.StyleFor(interaction.StateNone).Fill)
	require.Equal(t, data.ActiveHoverColor, checked.StyleFor(interaction.StateHovering).Fill)
	require.Equal(t, data.ActivePressColor, checked.StyleFor(interaction.StatePressing).Fill)

	unchecked := &Checkbox{State: Unchecked}
	style := unchecked.StyleFor(interaction.StateNone)
	assert.Equal(t, data.BorderColor, style.Border)
	assert.Equal(t, 1.0, style.BorderWidth)

	disabled := &Checkbox{State: Checked, Disabled: true}
	assert.Equal(t, data.DisabledColor, disabled.StyleFor(interaction.StateNone).IconTint)
}

func TestCheckState_String(t *testing.T) {
	assert.Equal(t, "unchecked", Unchecked.String())
	assert.Equal(t, "checked", Checked.String())
	assert.Equal(t, "indeterminate", Indeterminate.String())
}
