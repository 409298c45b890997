// Package pane implements the adaptive navigation shell: a pane item model,
// four display-mode layout strategies, an animated selection indicator, and
// the minimal-mode flyout.
//
// The pane is a projection, not an owner: selection and display mode live
// with the caller, and the pane reports intents (OnChanged,
// OnDisplayModeRequested) instead of mutating its own inputs. The only
// mutable state a pane instance holds is the indicator animation, the
// flyout lifecycle, per-mode scroll offsets, and per-item interaction
// states.
package pane

import (
	"fmt"
	"sync/atomic"

	"github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
)

// ItemKey is the stable identity of a selectable item. Keys persist across
// rebuilds of the same logical item so geometry lookups and the indicator
// animation survive item content changes.
type ItemKey uint64

var nextItemKey atomic.Uint64

// NewItemKey generates a fresh item identity. Callers create one key per
// logical item and reuse it on every rebuild.
func NewItemKey() ItemKey {
	return ItemKey(nextItemKey.Add(1))
}

// Item is one entry in a navigation pane. The union is closed: the only
// variants are [SelectableItem], [SeparatorItem], and [HeaderItem].
type Item interface {
	paneItem()
}

// SelectableItem is a navigable destination. It participates in selection
// indexing; Key is its stable identity.
type SelectableItem struct {
	Key   ItemKey
	Icon  string
	Title string
}

func (SelectableItem) paneItem() {}

// SeparatorItem is a thin divider between groups. Never selectable.
// Zero Color and Thickness fall back to the pane theme.
type SeparatorItem struct {
	Color     graphics.Color
	Thickness float64
}

func (SeparatorItem) paneItem() {}

// HeaderItem is a group label. Never selectable; hidden in compact mode.
type HeaderItem struct {
	Title string
}

func (HeaderItem) paneItem() {}

// SelectableItems returns the selectable subsequence of items followed by
// footer, preserving order. Selection indices are indices into this
// subsequence, not into the raw lists; every strategy and the indicator
// tracker index through this one function.
func SelectableItems(items, footer []Item) []SelectableItem {
	var out []SelectableItem
	for _, item := range items {
		if s, ok := item.(SelectableItem); ok {
			out = append(out, s)
		}
	}
	for _, item := range footer {
		if s, ok := item.(SelectableItem); ok {
			out = append(out, s)
		}
	}
	return out
}

// IndexOf returns the selection index of the item with the given key, or -1
// if no selectable item carries it.
func IndexOf(items, footer []Item, key ItemKey) int {
	for i, s := range SelectableItems(items, footer) {
		if s.Key == key {
			return i
		}
	}
	return -1
}

// IsSelected reports whether the item with the given key is the selected
// one. A nil selection selects nothing.
func IsSelected(items, footer []Item, key ItemKey, selected *int) bool {
	if selected == nil {
		return false
	}
	return IndexOf(items, footer, key) == *selected
}

// validateSelected panics with a ConfigError when selected is out of range
// against the selectable count. Called at pane construction and update so
// caller bugs surface immediately instead of being clamped away.
func validateSelected(op string, selected *int, count int) {
	if selected == nil {
		return
	}
	if *selected < 0 || *selected >= count {
		panic(&errors.ConfigError{
			Op:     op,
			Reason: fmt.Sprintf("selected index %d out of range for %d selectable items", *selected, count),
		})
	}
}
