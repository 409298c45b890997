package pane

import (
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/interaction"
	"github.com/go-drift/fluent/pkg/layout"
	"github.com/go-drift/fluent/pkg/theme"
)

// controlKey identifies the pane's fixed affordances in the geometry table
// and hit tests. A distinct type keeps them from ever colliding with an
// ItemKey.
type controlKey string

const (
	// menuKey tags the menu trigger tile.
	menuKey controlKey = "menu"
	// searchKey tags the search affordance slot.
	searchKey controlKey = "search"
	// flyoutKey tags the full-size flyout scrim in minimal mode.
	flyoutKey controlKey = "flyout"
	// railKey tags the rail surface inside the flyout.
	railKey controlKey = "rail"
)

// Tile is the rendered box of one selectable item: a fixed-size interactive
// leaf whose visual is a pure function of (selected, interaction state,
// theme).
type Tile struct {
	layout.BoxBase

	Item      SelectableItem
	Selected  bool
	ShowTitle bool
	Width     float64
	Height    float64
	State     interaction.State
	Theme     theme.NavigationPaneThemeData
}

func (t *Tile) Layout(constraints layout.Constraints) {
	t.SetSize(constraints.Constrain(graphics.Size{Width: t.Width, Height: t.Height}))
}

// Style resolves the tile's paint description.
func (t *Tile) Style() theme.Style {
	data := t.Theme
	style := theme.Style{
		IconTint:  data.TileIconColor,
		TextColor: data.TileTextColor,
	}
	if t.Selected {
		style.Fill = data.SelectedFill
		style.IconTint = data.SelectedColor
		style.TextColor = data.SelectedColor
	}
	switch t.State {
	case interaction.StateHovering:
		style.Fill = data.HoverFill
	case interaction.StatePressing:
		style.Fill = data.PressFill
	}
	return style
}

// Tooltip returns the hover text for the tile. Only compact mode, which
// hides titles, surfaces one.
func (t *Tile) Tooltip() string {
	if t.ShowTitle {
		return ""
	}
	return t.Item.Title
}

// separatorBox is the rendered divider of a SeparatorItem. It spans the
// cross axis and takes its thickness along the layout axis.
type separatorBox struct {
	layout.BoxBase

	Axis      layout.Axis
	Color     graphics.Color
	Thickness float64
}

func (s *separatorBox) Layout(constraints layout.Constraints) {
	max := graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight}
	cross := pickFinite(s.Axis.CrossOf(max))
	s.SetSize(constraints.Constrain(s.Axis.SizeAlong(s.Thickness, cross)))
}

// headerBox is the rendered label of a HeaderItem.
type headerBox struct {
	layout.BoxBase

	Title  string
	Height float64
	Color  graphics.Color
}

func (h *headerBox) Layout(constraints layout.Constraints) {
	width := pickFinite(constraints.MaxWidth)
	h.SetSize(constraints.Constrain(graphics.Size{Width: width, Height: h.Height}))
}

// menuTile is the pane's menu trigger: the hamburger in rail modes, the
// flyout opener in minimal mode.
type menuTile struct {
	layout.BoxBase

	Title     string
	ShowTitle bool
	Width     float64
	Height    float64
	State     interaction.State
	Theme     theme.NavigationPaneThemeData
}

func (m *menuTile) Layout(constraints layout.Constraints) {
	m.SetSize(constraints.Constrain(graphics.Size{Width: m.Width, Height: m.Height}))
}

// Style resolves the menu trigger's paint description.
func (m *menuTile) Style() theme.Style {
	data := m.Theme
	style := theme.Style{
		IconTint:  data.TileIconColor,
		TextColor: data.TileTextColor,
	}
	switch m.State {
	case interaction.StateHovering:
		style.Fill = data.HoverFill
	case interaction.StatePressing:
		style.Fill = data.PressFill
	}
	return style
}

// searchSlot reserves space for the embedding app's search affordance.
type searchSlot struct {
	layout.BoxBase

	Width  float64
	Height float64
}

func (s *searchSlot) Layout(constraints layout.Constraints) {
	s.SetSize(constraints.Constrain(graphics.Size{Width: s.Width, Height: s.Height}))
}

func pickFinite(v float64) float64 {
	if v == layout.Unbounded {
		return 0
	}
	return v
}
