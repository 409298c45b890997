package interaction

import (
	"time"

	"github.com/go-drift/fluent/pkg/animation"
	"github.com/go-drift/fluent/pkg/graphics"
)

// dragSlop is the horizontal distance a pointer must travel before a drag
// is recognized, so taps don't register as zero-length drags.
const dragSlop = 8.0

// DragStartDetails describes the start of a horizontal drag.
type DragStartDetails struct {
	Position graphics.Offset
}

// DragUpdateDetails describes one step of a horizontal drag.
type DragUpdateDetails struct {
	Position graphics.Offset
	// PrimaryDelta is the horizontal movement since the previous update.
	PrimaryDelta float64
}

// DragEndDetails describes the end of a horizontal drag.
type DragEndDetails struct {
	// PrimaryVelocity is the horizontal velocity at release, in px/s.
	PrimaryVelocity float64
}

// HorizontalDrag recognizes horizontal drags from raw pointer signals.
// It is the drag half of the interaction primitive: controls like the
// toggle switch consume its deltas to move a thumb with the pointer.
type HorizontalDrag struct {
	OnStart  func(DragStartDetails)
	OnUpdate func(DragUpdateDetails)
	OnEnd    func(DragEndDetails)
	OnCancel func()

	tracking bool
	dragging bool
	downAt   graphics.Offset
	last     graphics.Offset
	lastTime time.Time
	velocity float64
}

// HandlePointer feeds one pointer signal into the recognizer.
func (d *HorizontalDrag) HandlePointer(event PointerEvent) {
	switch event.Phase {
	case PhaseDown:
		d.tracking = true
		d.dragging = false
		d.downAt = event.Position
		d.last = event.Position
		d.lastTime = animation.Now()
		d.velocity = 0

	case PhaseMove:
		if !d.tracking {
			return
		}
		if !d.dragging {
			if abs(event.Position.X-d.downAt.X) < dragSlop {
				return
			}
			d.dragging = true
			if d.OnStart != nil {
				d.OnStart(DragStartDetails{Position: d.downAt})
			}
		}
		now := animation.Now()
		dx := event.Position.X - d.last.X
		if dt := now.Sub(d.lastTime).Seconds(); dt > 0 {
			d.velocity = dx / dt
		}
		d.last = event.Position
		d.lastTime = now
		if d.OnUpdate != nil {
			d.OnUpdate(DragUpdateDetails{Position: event.Position, PrimaryDelta: dx})
		}

	case PhaseUp:
		if d.tracking && d.dragging && d.OnEnd != nil {
			d.OnEnd(DragEndDetails{PrimaryVelocity: d.velocity})
		}
		d.tracking = false
		d.dragging = false

	case PhaseCancel, PhaseExit:
		if d.tracking && d.dragging && d.OnCancel != nil {
			d.OnCancel()
		}
		d.tracking = false
		d.dragging = false
	}
}

// IsDragging reports whether a drag is currently recognized.
func (d *HorizontalDrag) IsDragging() bool {
	return d.dragging
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
