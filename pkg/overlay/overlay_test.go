package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fluent/pkg/layout"
	"github.com/go-drift/fluent/pkg/overlay"
)

func build() layout.Box {
	return &layout.SizedBox{Width: 100, Height: 100}
}

func TestHost_InsertIsIdempotent(t *testing.T) {
	host := overlay.NewHost()
	entry := overlay.NewEntry(build)

	host.Insert(entry)
	host.Insert(entry)

	assert.Equal(t, 1, host.Len())
	assert.True(t, entry.Mounted())
}

func TestHost_RemoveIsIdempotent(t *testing.T) {
	host := overlay.NewHost()
	entry := overlay.NewEntry(build)
	host.Insert(entry)

	host.Remove(entry)
	host.Remove(entry)

	assert.Equal(t, 0, host.Len())
	assert.False(t, entry.Mounted())
}

func TestHost_EntriesBottomFirst(t *testing.T) {
	host := overlay.NewHost()
	first := overlay.NewEntry(build)
	second := overlay.NewEntry(build)
	host.Insert(first)
	host.Insert(second)

	entries := host.Entries()
	require.Len(t, entries, 2)
	assert.Same(t, first, entries[0])
	assert.Same(t, second, entries[1])
}

func TestHost_NotifiesOnChange(t *testing.T) {
	host := overlay.NewHost()
	changes := 0
	host.OnChanged = func() { changes++ }

	entry := overlay.NewEntry(build)
	host.Insert(entry)
	host.Insert(entry) // no-op, no notification
	host.Remove(entry)

	assert.Equal(t, 2, changes)
}

func TestEntry_RemoveDetachesFromHost(t *testing.T) {
	host := overlay.NewHost()
	entry := overlay.NewEntry(build)
	host.Insert(entry)

	entry.Remove()

	assert.False(t, entry.Mounted())
	assert.False(t, host.Contains(entry))
}
