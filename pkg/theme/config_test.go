package theme

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fluent/pkg/graphics"
)

func TestParseConfig_Defaults(t *testing.T) {
	data, err := ParseConfig([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, BrightnessLight, data.Brightness)
	assert.Equal(t, DefaultAccent, data.ColorScheme.Accent.Normal)
	require.NotNil(t, data.NavigationPane)
	assert.Equal(t, 400.0, data.NavigationPane.NarrowWidth)
	assert.Equal(t, 650.0, data.NavigationPane.MediumWidth)
}

func TestParseConfig_Overrides(t *testing.T) {
	raw := `
brightness: dark
accent: "#107C10"
pane:
  narrowWidth: 500
  mediumWidth: 800
  openWidth: 280
  animationMs: 150
`
	data, err := ParseConfig([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, BrightnessDark, data.Brightness)
	assert.Equal(t, graphics.RGB(0x10, 0x7C, 0x10), data.ColorScheme.Accent.Normal)
	assert.Equal(t, 500.0, data.NavigationPane.NarrowWidth)
	assert.Equal(t, 800.0, data.NavigationPane.MediumWidth)
	assert.Equal(t, 280.0, data.NavigationPane.OpenWidth)
	assert.Equal(t, 150*time.Millisecond, data.NavigationPane.Duration)
}

// Thresholds with medium below narrow would make auto-mode resolution
// non-monotonic, so the config is rejected outright.
func TestParseConfig_RejectsInvertedThresholds(t *testing.T) {
	raw := `
pane:
  narrowWidth: 700
  mediumWidth: 500
`
	_, err := ParseConfig([]byte(raw))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mediumWidth")
}

func TestParseConfig_RejectsUnknownBrightness(t *testing.T) {
	_, err := ParseConfig([]byte("brightness: dim"))
	require.Error(t, err)
}

func TestLoadConfig_Reader(t *testing.T) {
	data, err := LoadConfig(strings.NewReader("brightness: dark"))
	require.NoError(t, err)
	assert.Equal(t, BrightnessDark, data.Brightness)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#0078D4")
	require.NoError(t, err)
	assert.Equal(t, graphics.RGB(0x00, 0x78, 0xD4), c)

	c, err = ParseColor("#800078D4")
	require.NoError(t, err)
	assert.Equal(t, graphics.Color(0x800078D4), c)

	c, err = ParseColor("steelblue")
	require.NoError(t, err)
	assert.Equal(t, graphics.RGB(0x46, 0x82, 0xB4), c)

	_, err = ParseColor("#12345")
	assert.Error(t, err)
	_, err = ParseColor("notacolor")
	assert.Error(t, err)
}

func TestThemeOf_DerivesWhenUnset(t *testing.T) {
	data := DefaultLightTheme()
	require.Nil(t, data.Checkbox)

	checkbox := data.CheckboxThemeOf()
	assert.Equal(t, data.ColorScheme.Accent.Normal, checkbox.ActiveColor)

	pane := data.NavigationPaneThemeOf()
	assert.Equal(t, data.ColorScheme.Accent.Normal, pane.IndicatorColor)
}

func TestThemeOf_UsesExplicitOverride(t *testing.T) {
	data := DefaultLightTheme()
	custom := DefaultCheckboxTheme(data.ColorScheme)
	custom.Size = 28
	data.Checkbox = &custom

	assert.Equal(t, 28.0, data.CheckboxThemeOf().Size)
}

func TestAccentPalette_Shades(t *testing.T) {
	palette := NewAccentPalette(DefaultAccent)
	assert.Equal(t, DefaultAccent, palette.Normal)
	assert.NotEqual(t, palette.Light, palette.Normal)
	assert.NotEqual(t, palette.Dark, palette.Normal)
	assert.NotEqual(t, palette.Lighter, palette.Light)
	assert.NotEqual(t, palette.Darker, palette.Dark)
}
