package theme

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/fluent/pkg/graphics"
)

// fileConfig is the on-disk tuning format. All fields are optional;
// omitted values keep their defaults.
type fileConfig struct {
	Brightness string         `yaml:"brightness"`
	Accent     string         `yaml:"accent"`
	Pane       paneFileConfig `yaml:"pane"`
}

type paneFileConfig struct {
	NarrowWidth  float64 `yaml:"narrowWidth"`
	MediumWidth  float64 `yaml:"mediumWidth"`
	CompactWidth float64 `yaml:"compactWidth"`
	OpenWidth    float64 `yaml:"openWidth"`
	AnimationMs  int     `yaml:"animationMs"`
}

// LoadConfig reads a YAML tuning file and builds theme data from it.
func LoadConfig(r io.Reader) (*Data, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("theme: read config: %w", err)
	}
	return ParseConfig(raw)
}

// ParseConfig builds theme data from YAML tuning content.
//
// Supported keys: brightness (light/dark), accent (hex "#RRGGBB",
// "#AARRGGBB", or a CSS color name), and pane sizing/threshold overrides.
// Threshold overrides are validated so auto-mode resolution stays
// monotonic in width.
func ParseConfig(raw []byte) (*Data, error) {
	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("theme: parse config: %w", err)
	}

	accent := DefaultAccent
	if cfg.Accent != "" {
		parsed, err := ParseColor(cfg.Accent)
		if err != nil {
			return nil, err
		}
		accent = parsed
	}

	var data *Data
	switch strings.ToLower(cfg.Brightness) {
	case "", "light":
		data = &Data{ColorScheme: LightColorScheme(accent), Brightness: BrightnessLight}
	case "dark":
		data = &Data{ColorScheme: DarkColorScheme(accent), Brightness: BrightnessDark}
	default:
		return nil, fmt.Errorf("theme: unknown brightness %q", cfg.Brightness)
	}

	pane := DefaultNavigationPaneTheme(data.ColorScheme)
	if cfg.Pane.NarrowWidth > 0 {
		pane.NarrowWidth = cfg.Pane.NarrowWidth
	}
	if cfg.Pane.MediumWidth > 0 {
		pane.MediumWidth = cfg.Pane.MediumWidth
	}
	if cfg.Pane.CompactWidth > 0 {
		pane.CompactWidth = cfg.Pane.CompactWidth
	}
	if cfg.Pane.OpenWidth > 0 {
		pane.OpenWidth = cfg.Pane.OpenWidth
	}
	if cfg.Pane.AnimationMs > 0 {
		pane.Duration = time.Duration(cfg.Pane.AnimationMs) * time.Millisecond
	}
	if pane.MediumWidth < pane.NarrowWidth {
		return nil, fmt.Errorf(
			"theme: pane.mediumWidth (%.0f) must not be below pane.narrowWidth (%.0f)",
			pane.MediumWidth, pane.NarrowWidth)
	}
	data.NavigationPane = &pane

	return data, nil
}

// ParseColor parses "#RRGGBB", "#AARRGGBB", or a CSS color name.
func ParseColor(value string) (graphics.Color, error) {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "#") {
		hex := trimmed[1:]
		switch len(hex) {
		case 6:
			parsed, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return 0, fmt.Errorf("theme: invalid color %q", value)
			}
			return graphics.Color(0xFF000000 | uint32(parsed)), nil
		case 8:
			parsed, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return 0, fmt.Errorf("theme: invalid color %q", value)
			}
			return graphics.Color(uint32(parsed)), nil
		default:
			return 0, fmt.Errorf("theme: invalid color %q", value)
		}
	}
	if named, ok := colornames.Map[strings.ToLower(trimmed)]; ok {
		return graphics.RGBA8(named.R, named.G, named.B, named.A), nil
	}
	return 0, fmt.Errorf("theme: unknown color name %q", value)
}
