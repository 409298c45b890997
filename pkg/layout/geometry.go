package layout

import "github.com/go-drift/fluent/pkg/graphics"

// GeometryTable maps stable identity keys to the absolute geometry their
// boxes resolved to in the last layout pass. It implements the
// geometry-query capability: a missing entry means "not laid out yet" and
// callers are expected to retry on a later frame.
type GeometryTable map[any]graphics.Rect

// Lookup returns the geometry recorded for key, if any.
func (t GeometryTable) Lookup(key any) (graphics.Rect, bool) {
	rect, ok := t[key]
	return rect, ok
}

// Collect walks a laid-out tree and resolves the absolute geometry of every
// [Keyed] box, in the root's coordinate space.
//
// Collect must only be called after Layout has completed on root; partial
// trees yield partial geometry. Keyed boxes scrolled fully outside an
// enclosing [Viewport] are omitted.
func Collect(root Box) GeometryTable {
	table := make(GeometryTable)
	collectInto(root, graphics.Offset{}, nil, table)
	return table
}

func collectInto(box Box, origin graphics.Offset, clip *graphics.Rect, table GeometryTable) {
	position := origin.Add(box.Offset())
	bounds := graphics.RectFromOffsetAndSize(position, box.Size())

	if viewport, ok := box.(*Viewport); ok {
		window := graphics.RectFromOffsetAndSize(position, viewport.Size())
		if clip != nil {
			window = intersect(*clip, window)
		}
		clip = &window
	}

	if keyed, ok := box.(*Keyed); ok && keyed.Key != nil {
		if clip == nil || clip.Overlaps(bounds) {
			table[keyed.Key] = bounds
		} else {
			// Fully culled: skip the subtree so descendants stay unknown too.
			return
		}
	}

	box.VisitChildren(func(child Box) {
		collectInto(child, position, clip, table)
	})
}

func intersect(a, b graphics.Rect) graphics.Rect {
	result := graphics.Rect{
		Left:   maxFloat(a.Left, b.Left),
		Top:    maxFloat(a.Top, b.Top),
		Right:  minFloat(a.Right, b.Right),
		Bottom: minFloat(a.Bottom, b.Bottom),
	}
	if result.Right < result.Left {
		result.Right = result.Left
	}
	if result.Bottom < result.Top {
		result.Bottom = result.Top
	}
	return result
}

// HitKey returns the key of the deepest [Keyed] box containing point,
// respecting viewport clipping. The bool result is false when no keyed box
// contains the point.
func HitKey(root Box, point graphics.Offset) (any, bool) {
	var hit any
	found := false
	var walk func(box Box, origin graphics.Offset, clip *graphics.Rect)
	walk = func(box Box, origin graphics.Offset, clip *graphics.Rect) {
		position := origin.Add(box.Offset())
		bounds := graphics.RectFromOffsetAndSize(position, box.Size())

		if viewport, ok := box.(*Viewport); ok {
			window := graphics.RectFromOffsetAndSize(position, viewport.Size())
			if clip != nil {
				window = intersect(*clip, window)
			}
			if !window.Contains(point) {
				return
			}
			clip = &window
		}

		if keyed, ok := box.(*Keyed); ok && keyed.Key != nil && bounds.Contains(point) {
			hit = keyed.Key
			found = true
		}

		box.VisitChildren(func(child Box) {
			walk(child, position, clip)
		})
	}
	walk(root, graphics.Offset{}, nil)
	return hit, found
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
