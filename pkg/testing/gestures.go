package testing

import (
	"fmt"

	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
)

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// Tap simulates a tap at the center of the first node matched by finder.
func (t *WidgetTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no nodes: %s", finder.Description())
	}
	return t.TapAt(result.First().Rect.Center())
}

// TapAt simulates a primary press and release at pos.
func (t *WidgetTester) TapAt(pos graphics.Offset) error {
	id := int(allocPointerID())
	if err := t.SendPointerDown(pos, id); err != nil {
		return err
	}
	return t.SendPointerUp(pos, id)
}

// MoveTo moves the mouse cursor to pos.
func (t *WidgetTester) MoveTo(pos graphics.Offset) error {
	return t.SendPointerMove(pos, 0)
}

// DragFrom simulates a press at start, a move by delta, and a release.
func (t *WidgetTester) DragFrom(start, delta graphics.Offset) error {
	id := int(allocPointerID())
	if err := t.SendPointerDown(start, id); err != nil {
		return err
	}
	end := start.Add(delta)
	if err := t.SendPointerMove(end, id); err != nil {
		return err
	}
	return t.SendPointerUp(end, id)
}

// SendPointerDown sends a primary mouse press at pos.
func (t *WidgetTester) SendPointerDown(pos graphics.Offset, pointerID int) error {
	return t.SendEvent(gestures.PointerEvent{
		PointerID: int64(pointerID),
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
	})
}

// SendPointerMove sends mouse motion to pos.
func (t *WidgetTester) SendPointerMove(pos graphics.Offset, pointerID int) error {
	return t.SendEvent(gestures.PointerEvent{
		PointerID: int64(pointerID),
		Position:  pos,
		Phase:     gestures.PointerPhaseMove,
	})
}

// SendPointerUp sends a primary mouse release at pos.
func (t *WidgetTester) SendPointerUp(pos graphics.Offset, pointerID int) error {
	return t.SendEvent(gestures.PointerEvent{
		PointerID: int64(pointerID),
		Position:  pos,
		Phase:     gestures.PointerPhaseUp,
	})
}

// SendPointerExit reports the cursor leaving the surface.
func (t *WidgetTester) SendPointerExit() error {
	return t.SendEvent(gestures.PointerEvent{Phase: gestures.PointerPhaseExit, Position: graphics.Outside})
}

// SendTouch sends a touch event for finger pointerID.
func (t *WidgetTester) SendTouch(phase gestures.PointerPhase, pos graphics.Offset, pointerID int) error {
	return t.SendEvent(gestures.PointerEvent{
		PointerID: int64(pointerID),
		Device:    gestures.DeviceTouch,
		Position:  pos,
		Phase:     phase,
	})
}

// SendEvent delivers event to the mounted tree and records its status.
func (t *WidgetTester) SendEvent(event gestures.PointerEvent) error {
	if t.runtime == nil {
		return ErrNotMounted
	}
	status, err := t.runtime.HandlePointer(event)
	if err != nil {
		return err
	}
	t.statuses = append(t.statuses, status)
	return nil
}
