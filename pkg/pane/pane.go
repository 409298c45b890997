package pane

import (
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/interaction"
	"github.com/go-drift/fluent/pkg/layout"
	"github.com/go-drift/fluent/pkg/overlay"
	"github.com/go-drift/fluent/pkg/theme"
)

// NavigationPane is the declarative description of a pane. It is immutable
// data owned by the caller; the pane instance never modifies it.
//
// Selected indexes the selectable subsequence of Items followed by
// FooterItems, not the raw lists. The pane reports selection taps through
// OnChanged and mode-toggle taps through OnDisplayModeRequested; the
// caller feeds the new values back via Update.
type NavigationPane struct {
	Items       []Item
	FooterItems []Item

	// Selected is the selection index, nil for no selection.
	Selected *int
	// DisplayMode is the requested mode. DisplayModeAuto resolves by the
	// viewport width on every resize.
	DisplayMode DisplayMode

	// MenuTitle labels the menu trigger in open mode.
	MenuTitle string
	// ShowSearch reserves a search affordance slot.
	ShowSearch bool

	// OnChanged reports a tapped selectable item's selection index.
	OnChanged func(index int)
	// OnDisplayModeRequested reports a requested mode change, such as the
	// menu trigger toggling open and compact.
	OnDisplayModeRequested func(mode DisplayMode)

	// Theme supplies styling. Nil falls back to the default light theme.
	Theme *theme.Data
}

// Pane is one visible navigation pane instance. It owns exactly the
// mutable state the description cannot express: the indicator animation,
// the flyout lifecycle, per-mode scroll offsets, and per-item interaction
// controllers. Everything else is rebuilt from the config each frame.
//
// All methods must be called from the host's frame loop; a Pane is not
// safe for concurrent use.
type Pane struct {
	config NavigationPane
	data   theme.NavigationPaneThemeData

	width  float64
	height float64

	resolved  DisplayMode
	indicator *IndicatorTracker
	flyout    *FlyoutController

	scroll      map[DisplayMode]float64
	controllers map[any]*interaction.Controller

	viewport *layout.Viewport
	root     layout.Box
	geometry layout.GeometryTable

	// OnInvalidate is called whenever the pane needs a repaint: animation
	// progress, interaction state changes, flyout transitions.
	OnInvalidate func()
}

// NewPane creates a pane instance for the given description, mounting
// flyout surfaces into host. Panics with a ConfigError when Selected is
// out of range.
func NewPane(config NavigationPane, host *overlay.Host) *Pane {
	validateSelected("pane.NewPane", config.Selected, len(SelectableItems(config.Items, config.FooterItems)))

	p := &Pane{
		config:      config,
		scroll:      make(map[DisplayMode]float64),
		controllers: make(map[any]*interaction.Controller),
	}
	p.data = p.themeData().NavigationPaneThemeOf()
	p.resolved = p.resolveMode()

	p.indicator = NewIndicatorTracker(p.data.Duration, p.data.Curve)
	p.indicator.OnInvalidate = p.invalidate
	p.flyout = NewFlyoutController(host, p.data.Duration, p.data.Curve, p.buildFlyoutSurface)
	p.flyout.OnPhaseChanged = func(FlyoutPhase) { p.invalidate() }
	return p
}

// Update replaces the pane description, as the caller does after handling
// an OnChanged or OnDisplayModeRequested intent. Panics with a ConfigError
// when the new Selected is out of range.
func (p *Pane) Update(config NavigationPane) {
	validateSelected("pane.Update", config.Selected, len(SelectableItems(config.Items, config.FooterItems)))

	p.config = config
	p.data = p.themeData().NavigationPaneThemeOf()
	p.indicator.SetTiming(p.data.Duration, p.data.Curve)
	p.pruneControllers()
	p.applyResolved(p.resolveMode())
	p.invalidate()
}

// SetViewport informs the pane of its available size. Auto mode
// re-resolves on every call; it is never cached across resizes.
func (p *Pane) SetViewport(size graphics.Size) {
	p.width = size.Width
	p.height = size.Height
	p.applyResolved(p.resolveMode())
}

// ResolvedMode returns the concrete strategy in use.
func (p *Pane) ResolvedMode() DisplayMode {
	return p.resolved
}

// LayoutPass builds the box tree for the current state, lays it out, and
// collects geometry. The indicator reads item geometry only here, after
// the pass completes; geometry read mid-layout is undefined.
func (p *Pane) LayoutPass() layout.Box {
	p.root = p.buildStrategy(p.resolved)
	p.root.Layout(layout.Tight(graphics.Size{Width: p.paneWidth(), Height: p.paneHeight()}))

	if p.viewport != nil {
		p.scroll[p.scrollMode()] = p.viewport.ScrollOffset
	}

	p.geometry = layout.Collect(p.root)
	if p.resolved == DisplayModeMinimal && p.flyout.Phase() != FlyoutClosed {
		// Inline geometry has no tiles in minimal mode; the flyout surface
		// carries them.
		surface := p.buildFlyoutSurface(p.flyout.Progress())
		surface.Layout(layout.Tight(graphics.Size{Width: p.width, Height: p.height}))
		if p.viewport != nil {
			p.scroll[p.scrollMode()] = p.viewport.ScrollOffset
		}
		p.geometry = layout.Collect(surface)
		p.root = surface
	}

	selectables := SelectableItems(p.config.Items, p.config.FooterItems)
	p.indicator.Update(p.config.Selected, p.resolved.Axis(), selectables, p.geometry)
	return p.root
}

// Geometry returns the geometry table of the last layout pass.
func (p *Pane) Geometry() layout.GeometryTable {
	return p.geometry
}

// IndicatorRect returns the selection indicator rectangle, if one should
// be painted.
func (p *Pane) IndicatorRect() (graphics.Rect, bool) {
	return p.indicator.Rect()
}

// TapAt routes a tap at a point in pane coordinates. A selectable tile
// reports its selection index through OnChanged; the menu trigger opens
// the flyout in minimal mode and requests an open/compact toggle
// otherwise; a tap outside an open flyout closes it. Returns whether the
// tap hit anything.
func (p *Pane) TapAt(point graphics.Offset) bool {
	if p.root == nil {
		return false
	}
	key, ok := layout.HitKey(p.root, point)
	if !ok {
		if p.flyout.Phase() == FlyoutOpening || p.flyout.Phase() == FlyoutOpen {
			p.flyout.Close()
			return true
		}
		return false
	}

	switch k := key.(type) {
	case ItemKey:
		index := IndexOf(p.config.Items, p.config.FooterItems, k)
		if index < 0 {
			return false
		}
		if p.flyout.Phase() == FlyoutOpening || p.flyout.Phase() == FlyoutOpen {
			p.flyout.Close()
		}
		if p.config.OnChanged != nil {
			p.config.OnChanged(index)
		}
		return true
	case controlKey:
		return p.tapControl(k)
	default:
		return false
	}
}

// HandlePointer feeds a pointer event to the tile under it, driving
// hover and press visuals. Taps are still routed through TapAt.
func (p *Pane) HandlePointer(event interaction.PointerEvent) {
	if p.root == nil {
		return
	}
	key, ok := layout.HitKey(p.root, event.Position)
	if !ok {
		return
	}
	if _, isControl := key.(controlKey); !isControl {
		if _, isItem := key.(ItemKey); !isItem {
			return
		}
	}
	p.controllerFor(key).HandlePointer(event)
}

// ScrollBy scrolls the active viewport by delta along its axis, clamped
// to the content extent. Each mode keeps its own scroll offset.
func (p *Pane) ScrollBy(delta float64) {
	if p.viewport == nil {
		return
	}
	offset := p.viewport.ScrollOffset + delta
	if max := p.viewport.MaxScrollOffset(); offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	p.viewport.ScrollOffset = offset
	p.scroll[p.scrollMode()] = offset
	p.invalidate()
}

// ScrollOffset returns the active mode's scroll offset.
func (p *Pane) ScrollOffset() float64 {
	return p.scroll[p.scrollMode()]
}

// Flyout returns the minimal-mode flyout controller.
func (p *Pane) Flyout() *FlyoutController {
	return p.flyout
}

// Dispose tears the pane down, releasing the flyout entry without
// animating and stopping the indicator.
func (p *Pane) Dispose() {
	p.indicator.Dispose()
	p.flyout.Dispose()
}

func (p *Pane) tapControl(key controlKey) bool {
	switch key {
	case menuKey:
		switch p.resolved {
		case DisplayModeMinimal:
			p.flyout.Open()
		case DisplayModeOpen:
			p.requestMode(DisplayModeCompact)
		case DisplayModeCompact:
			p.requestMode(DisplayModeOpen)
		}
		return true
	case flyoutKey:
		// The scrim outside the rail.
		p.flyout.Close()
		return true
	case railKey:
		// Rail background between tiles; consumed, nothing to do.
		return true
	default:
		return false
	}
}

func (p *Pane) requestMode(mode DisplayMode) {
	if p.config.OnDisplayModeRequested != nil {
		p.config.OnDisplayModeRequested(mode)
	}
}

// resolveMode maps the requested mode and current width to a strategy.
func (p *Pane) resolveMode() DisplayMode {
	return ResolveDisplayMode(p.config.DisplayMode, p.width, p.data.NarrowWidth, p.data.MediumWidth)
}

// applyResolved installs a newly resolved mode. Leaving minimal with the
// flyout up cancels the open animation into the closing sequence.
func (p *Pane) applyResolved(mode DisplayMode) {
	if mode == p.resolved {
		return
	}
	p.resolved = mode
	if mode != DisplayModeMinimal {
		p.flyout.Close()
	}
	p.invalidate()
}

// scrollMode keys the per-mode scroll offsets.
func (p *Pane) scrollMode() DisplayMode {
	return p.resolved
}

func (p *Pane) paneWidth() float64 {
	switch p.resolved {
	case DisplayModeOpen:
		return p.data.OpenWidth
	case DisplayModeCompact:
		return p.data.CompactWidth
	default:
		return p.width
	}
}

func (p *Pane) paneHeight() float64 {
	switch p.resolved {
	case DisplayModeTop, DisplayModeMinimal:
		return p.data.TopHeight
	default:
		return p.height
	}
}

func (p *Pane) stateFor(key any) interaction.State {
	if c, ok := p.controllers[key]; ok {
		return c.State()
	}
	return interaction.StateNone
}

// pruneControllers drops interaction state for item keys no longer in the
// config. Control keys are a fixed set and always stay.
func (p *Pane) pruneControllers() {
	live := make(map[ItemKey]struct{})
	for _, item := range SelectableItems(p.config.Items, p.config.FooterItems) {
		live[item.Key] = struct{}{}
	}
	for key := range p.controllers {
		if itemKey, ok := key.(ItemKey); ok {
			if _, kept := live[itemKey]; !kept {
				delete(p.controllers, key)
			}
		}
	}
}

func (p *Pane) controllerFor(key any) *interaction.Controller {
	if c, ok := p.controllers[key]; ok {
		return c
	}
	c := interaction.NewController()
	c.OnChanged = func(interaction.State) { p.invalidate() }
	p.controllers[key] = c
	return c
}

func (p *Pane) themeData() *theme.Data {
	if p.config.Theme != nil {
		return p.config.Theme
	}
	return theme.DefaultLightTheme()
}

func (p *Pane) invalidate() {
	if p.OnInvalidate != nil {
		p.OnInvalidate()
	}
}
