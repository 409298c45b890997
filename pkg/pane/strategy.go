package pane

import (
	"fmt"

	"github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/layout"
)

// buildStrategy projects the pane state into a box tree for the resolved
// mode. Every strategy renders the same sequence: menu trigger, optional
// search slot, the items inside a scrollable viewport, then the footer
// items pinned outside it. Strategies differ only in axis, which
// affordances are visible, and sizing.
func (p *Pane) buildStrategy(mode DisplayMode) layout.Box {
	switch mode {
	case DisplayModeOpen:
		return p.buildRail(mode, p.data.OpenWidth, true, true)
	case DisplayModeCompact:
		return p.buildRail(mode, p.data.CompactWidth, false, false)
	case DisplayModeTop:
		return p.buildTopBar()
	case DisplayModeMinimal:
		return p.buildMinimalBar()
	default:
		panic(&errors.ConfigError{
			Op:     "pane.buildStrategy",
			Reason: fmt.Sprintf("unresolved display mode %s reached a layout strategy", mode),
		})
	}
}

// buildRail builds the vertical open or compact rail. Compact hides titles
// and group headers; open shows both plus the search slot.
func (p *Pane) buildRail(mode DisplayMode, width float64, showTitles, showHeaders bool) layout.Box {
	children := []layout.Box{p.buildMenuTile(width, showTitles)}
	if p.config.ShowSearch && showTitles {
		children = append(children, &layout.Keyed{
			Key:   searchKey,
			Child: &searchSlot{Width: width, Height: p.data.TileHeight},
		})
	}

	viewport := &layout.Viewport{
		Axis:         layout.AxisVertical,
		ScrollOffset: p.scroll[mode],
		Child: &layout.Flex{
			Axis:     layout.AxisVertical,
			Children: p.buildItemBoxes(mode, p.config.Items, p.data.TileHeight, width, showTitles, showHeaders),
		},
	}
	p.viewport = viewport
	children = append(children, &layout.Flexible{Flex: 1, Child: viewport})
	children = append(children, p.buildItemBoxes(mode, p.config.FooterItems, p.data.TileHeight, width, showTitles, showHeaders)...)

	return &layout.SizedBox{
		Width:  width,
		Height: p.height,
		Child: &layout.Flex{
			Axis:         layout.AxisVertical,
			CrossStretch: true,
			Children:     children,
		},
	}
}

// buildTopBar builds the horizontal top strategy: items flow in a row,
// footer items and the search slot sit at the trailing edge.
func (p *Pane) buildTopBar() layout.Box {
	viewport := &layout.Viewport{
		Axis:         layout.AxisHorizontal,
		ScrollOffset: p.scroll[DisplayModeTop],
		Child: &layout.Flex{
			Axis:     layout.AxisHorizontal,
			Children: p.buildItemBoxes(DisplayModeTop, p.config.Items, p.data.TopTileWidth, p.data.TopHeight, true, true),
		},
	}
	p.viewport = viewport

	children := []layout.Box{&layout.Flexible{Flex: 1, Child: viewport}}
	children = append(children, p.buildItemBoxes(DisplayModeTop, p.config.FooterItems, p.data.TopTileWidth, p.data.TopHeight, true, true)...)
	if p.config.ShowSearch {
		children = append(children, &layout.Keyed{
			Key:   searchKey,
			Child: &searchSlot{Width: p.data.TopTileWidth, Height: p.data.TopHeight},
		})
	}

	return &layout.SizedBox{
		Height: p.data.TopHeight,
		Width:  p.width,
		Child: &layout.Flex{
			Axis:         layout.AxisHorizontal,
			CrossStretch: true,
			Children:     children,
		},
	}
}

// buildMinimalBar renders only the menu trigger inline; the expanded item
// list lives on the flyout surface owned by the flyout controller.
func (p *Pane) buildMinimalBar() layout.Box {
	p.viewport = nil
	return &layout.SizedBox{
		Width:  p.width,
		Height: p.data.TopHeight,
		Child: &layout.Flex{
			Axis:     layout.AxisHorizontal,
			Children: []layout.Box{p.buildMenuTile(p.data.CompactWidth, false)},
		},
	}
}

// buildFlyoutSurface builds the open-style rail shown by the minimal-mode
// flyout, slid in from the leading edge by progress in [0, 1].
func (p *Pane) buildFlyoutSurface(progress float64) layout.Box {
	children := []layout.Box{p.buildMenuTile(p.data.OpenWidth, true)}

	viewport := &layout.Viewport{
		Axis:         layout.AxisVertical,
		ScrollOffset: p.scroll[DisplayModeMinimal],
		Child: &layout.Flex{
			Axis:     layout.AxisVertical,
			Children: p.buildItemBoxes(DisplayModeMinimal, p.config.Items, p.data.TileHeight, p.data.OpenWidth, true, true),
		},
	}
	p.viewport = viewport
	children = append(children, &layout.Flexible{Flex: 1, Child: viewport})
	children = append(children, p.buildItemBoxes(DisplayModeMinimal, p.config.FooterItems, p.data.TileHeight, p.data.OpenWidth, true, true)...)

	return &layout.Keyed{
		Key: flyoutKey,
		Child: &flyoutSurface{
			Progress: progress,
			Width:    p.data.OpenWidth,
			Child: &layout.Keyed{
				Key: railKey,
				Child: &layout.Flex{
					Axis:         layout.AxisVertical,
					CrossStretch: true,
					Children:     children,
				},
			},
		},
	}
}

// buildItemBoxes renders one item sequence. The union is closed, but the
// default branch still fails fast so a variant no strategy supports is
// never silently dropped.
func (p *Pane) buildItemBoxes(mode DisplayMode, items []Item, tileMain, tileCross float64, showTitles, showHeaders bool) []layout.Box {
	axis := mode.Axis()
	tileSize := axis.SizeAlong(tileMain, tileCross)
	var boxes []layout.Box
	for _, item := range items {
		switch it := item.(type) {
		case SelectableItem:
			boxes = append(boxes, &layout.Keyed{Key: it.Key, Child: &Tile{
				Item:      it,
				Selected:  IsSelected(p.config.Items, p.config.FooterItems, it.Key, p.config.Selected),
				ShowTitle: showTitles,
				Width:     tileSize.Width,
				Height:    tileSize.Height,
				State:     p.stateFor(it.Key),
				Theme:     p.data,
			}})
		case SeparatorItem:
			color := it.Color
			if color == graphics.ColorTransparent {
				color = p.data.SeparatorColor
			}
			thickness := it.Thickness
			if thickness == 0 {
				thickness = p.data.SeparatorThickness
			}
			boxes = append(boxes, &separatorBox{Axis: axis, Color: color, Thickness: thickness})
		case HeaderItem:
			if !showHeaders {
				continue
			}
			boxes = append(boxes, &headerBox{
				Title:  it.Title,
				Height: p.data.HeaderHeight,
				Color:  p.data.HeaderTextColor,
			})
		default:
			panic(&errors.VariantError{
				Strategy: mode.String(),
				Variant:  fmt.Sprintf("%T", item),
			})
		}
	}
	return boxes
}

func (p *Pane) buildMenuTile(width float64, showTitle bool) layout.Box {
	return &layout.Keyed{Key: menuKey, Child: &menuTile{
		Title:     p.config.MenuTitle,
		ShowTitle: showTitle,
		Width:     width,
		Height:    p.data.TileHeight,
		State:     p.stateFor(menuKey),
		Theme:     p.data,
	}}
}

// flyoutSurface is the minimal-mode overlay: a full-size scrim holding the
// rail, slid in from the leading edge by Progress: 0 is fully offscreen, 1
// fully shown.
type flyoutSurface struct {
	layout.BoxBase

	Progress float64
	Width    float64
	Child    layout.Box
}

func (f *flyoutSurface) Layout(constraints layout.Constraints) {
	width := pickFinite(constraints.MaxWidth)
	height := pickFinite(constraints.MaxHeight)
	f.Child.Layout(layout.Tight(graphics.Size{Width: f.Width, Height: height}))
	f.Child.SetOffset(graphics.Offset{X: (f.Progress - 1) * f.Width})
	f.SetSize(constraints.Constrain(graphics.Size{Width: width, Height: height}))
}

func (f *flyoutSurface) VisitChildren(visitor func(layout.Box)) {
	visitor(f.Child)
}
