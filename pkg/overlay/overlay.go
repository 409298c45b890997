// Package overlay hosts transient surfaces that float above normal
// content: flyouts, dialogs, the minimal-mode navigation pane.
//
// A [Host] owns an ordered stack of [Entry] values. Insert and Remove are
// idempotent: inserting an entry twice yields exactly one surface, and a
// second removal is a no-op. Controllers that animate a surface out are
// responsible for removing the entry only after the reverse animation has
// completed.
package overlay

import (
	"sync/atomic"

	"github.com/go-drift/fluent/pkg/layout"
)

var nextEntryID uint64

// Entry is one transient surface.
type Entry struct {
	id   uint64
	host *Host

	// Build returns the surface's layout tree. Called on each frame the
	// host is (re)built.
	Build func() layout.Box

	// Opaque blocks interaction with content beneath the entry.
	Opaque bool
}

// NewEntry creates an entry with a unique id.
func NewEntry(build func() layout.Box) *Entry {
	return &Entry{
		id:    atomic.AddUint64(&nextEntryID, 1),
		Build: build,
	}
}

// ID returns the entry's unique id.
func (e *Entry) ID() uint64 {
	return e.id
}

// Mounted reports whether the entry is currently inserted in a host.
func (e *Entry) Mounted() bool {
	return e.host != nil
}

// Remove detaches the entry from its host. No-op when not mounted.
func (e *Entry) Remove() {
	if e.host != nil {
		e.host.Remove(e)
	}
}

// Host owns the overlay stack for one window of content.
type Host struct {
	entries []*Entry

	// OnChanged fires after the entry stack changes, so the embedding
	// surface can schedule a rebuild.
	OnChanged func()
}

// NewHost creates an empty overlay host.
func NewHost() *Host {
	return &Host{}
}

// Insert pushes an entry on top of the stack. Inserting an entry that is
// already mounted is a no-op.
func (h *Host) Insert(entry *Entry) {
	if entry == nil || entry.host != nil {
		return
	}
	entry.host = h
	h.entries = append(h.entries, entry)
	h.notify()
}

// Remove detaches an entry. Removing an entry that is not mounted in this
// host is a no-op.
func (h *Host) Remove(entry *Entry) {
	if entry == nil || entry.host != h {
		return
	}
	for i, e := range h.entries {
		if e == entry {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			break
		}
	}
	entry.host = nil
	h.notify()
}

// Entries returns the current stack, bottom first.
func (h *Host) Entries() []*Entry {
	return h.entries
}

// Len returns the number of mounted entries.
func (h *Host) Len() int {
	return len(h.entries)
}

// Contains reports whether the entry is mounted in this host.
func (h *Host) Contains(entry *Entry) bool {
	return entry != nil && entry.host == h
}

func (h *Host) notify() {
	if h.OnChanged != nil {
		h.OnChanged()
	}
}
