package theme

import "github.com/go-drift/fluent/pkg/graphics"

// Style is the themed paint description a control resolves to: the external
// rendering layer consumes it, this library never paints.
type Style struct {
	// Fill is the background color.
	Fill graphics.Color
	// Border is the outline color. Transparent means no border.
	Border graphics.Color
	// BorderWidth is the outline stroke width.
	BorderWidth float64
	// CornerRadius rounds the corners.
	CornerRadius float64
	// IconTint colors any icon content.
	IconTint graphics.Color
	// TextColor colors any text content.
	TextColor graphics.Color
}
