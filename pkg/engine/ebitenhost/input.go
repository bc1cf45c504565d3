package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
)

const mousePointer = 0

// poller turns ebiten's polled input state into pointer events by comparing
// each tick against the previous one.
type poller struct {
	inside   bool
	last     graphics.Offset
	buttons  [3]bool
	touches  map[ebiten.TouchID]graphics.Offset
	touchIDs []ebiten.TouchID
}

var mouseButtons = [3]struct {
	ebiten ebiten.MouseButton
	button gestures.MouseButton
}{
	{ebiten.MouseButtonLeft, gestures.ButtonPrimary},
	{ebiten.MouseButtonRight, gestures.ButtonSecondary},
	{ebiten.MouseButtonMiddle, gestures.ButtonMiddle},
}

func newPoller() *poller {
	return &poller{touches: make(map[ebiten.TouchID]graphics.Offset)}
}

// poll appends the events since the previous tick to events.
func (p *poller) poll(events []gestures.PointerEvent, surface graphics.Size) []gestures.PointerEvent {
	events = p.pollMouse(events, surface)
	return p.pollTouches(events)
}

func (p *poller) pollMouse(events []gestures.PointerEvent, surface graphics.Size) []gestures.PointerEvent {
	mx, my := ebiten.CursorPosition()
	pos := graphics.Offset{X: float64(mx), Y: float64(my)}
	inside := ebiten.IsFocused() &&
		pos.X >= 0 && pos.Y >= 0 && pos.X < surface.Width && pos.Y < surface.Height

	mouse := func(phase gestures.PointerPhase, button gestures.MouseButton) gestures.PointerEvent {
		return gestures.PointerEvent{
			PointerID: mousePointer,
			Device:    gestures.DeviceMouse,
			Phase:     phase,
			Button:    button,
			Position:  pos,
		}
	}

	held := false
	for i, b := range mouseButtons {
		down := ebiten.IsMouseButtonPressed(b.ebiten)
		switch {
		case down && !p.buttons[i]:
			events = append(events, mouse(gestures.PointerPhaseDown, b.button))
		case !down && p.buttons[i]:
			events = append(events, mouse(gestures.PointerPhaseUp, b.button))
		}
		p.buttons[i] = down
		held = held || down
	}

	// A held button keeps the pointer captured by the window.
	switch {
	case inside || held:
		if pos != p.last || !p.inside {
			events = append(events, mouse(gestures.PointerPhaseMove, gestures.ButtonPrimary))
		}
		p.inside = true
	case p.inside:
		events = append(events, gestures.PointerEvent{
			PointerID: mousePointer,
			Phase:     gestures.PointerPhaseExit,
			Position:  graphics.Outside,
		})
		p.inside = false
	}
	p.last = pos
	return events
}

func (p *poller) pollTouches(events []gestures.PointerEvent) []gestures.PointerEvent {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	seen := make(map[ebiten.TouchID]bool, len(p.touchIDs))
	for _, id := range p.touchIDs {
		seen[id] = true
		tx, ty := ebiten.TouchPosition(id)
		pos := graphics.Offset{X: float64(tx), Y: float64(ty)}
		prev, known := p.touches[id]
		switch {
		case !known:
			events = append(events, touch(id, gestures.PointerPhaseDown, pos))
		case prev != pos:
			events = append(events, touch(id, gestures.PointerPhaseMove, pos))
		}
		p.touches[id] = pos
	}
	for id, pos := range p.touches {
		if !seen[id] {
			events = append(events, touch(id, gestures.PointerPhaseUp, pos))
			delete(p.touches, id)
		}
	}
	return events
}

func touch(id ebiten.TouchID, phase gestures.PointerPhase, pos graphics.Offset) gestures.PointerEvent {
	return gestures.PointerEvent{
		// Touch ids are offset past the mouse pointer.
		PointerID: int64(id) + 1,
		Device:    gestures.DeviceTouch,
		Phase:     phase,
		Position:  pos,
	}
}
