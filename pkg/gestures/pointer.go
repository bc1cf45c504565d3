// Package gestures defines the raw pointer events delivered to widgets.
package gestures

import (
	"fmt"

	"github.com/go-drift/mousearea/pkg/graphics"
)

// PointerDevice identifies the input device that produced an event.
type PointerDevice int

const (
	DeviceMouse PointerDevice = iota
	DeviceTouch
)

func (d PointerDevice) String() string {
	switch d {
	case DeviceTouch:
		return "touch"
	default:
		return "mouse"
	}
}

// PointerPhase describes what happened to the pointer.
type PointerPhase int

const (
	// PointerPhaseMove reports motion, with or without a button held.
	PointerPhaseMove PointerPhase = iota
	// PointerPhaseDown reports a button press or a finger touching down.
	PointerPhaseDown
	// PointerPhaseUp reports a button release or a finger lifting.
	PointerPhaseUp
	// PointerPhaseCancel reports a touch the platform stopped tracking.
	PointerPhaseCancel
	// PointerPhaseExit reports the cursor leaving the surface.
	PointerPhaseExit
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	case PointerPhaseExit:
		return "exit"
	default:
		return "move"
	}
}

// MouseButton identifies a mouse button. Touch events use ButtonPrimary.
type MouseButton int

const (
	ButtonPrimary MouseButton = iota
	ButtonSecondary
	ButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return "primary"
	}
}

// PointerEvent is a single raw pointer input.
type PointerEvent struct {
	PointerID int64
	Device    PointerDevice
	Phase     PointerPhase
	Button    MouseButton
	Position  graphics.Offset
}

// StartsPress reports whether the event begins a primary press: a primary
// mouse button going down or a finger touching down.
func (e PointerEvent) StartsPress() bool {
	if e.Phase != PointerPhaseDown {
		return false
	}
	return e.Device == DeviceTouch || e.Button == ButtonPrimary
}

// EndsPress reports whether the event ends a primary press: a primary mouse
// button release, a finger lifting, or a touch cancel.
func (e PointerEvent) EndsPress() bool {
	switch e.Phase {
	case PointerPhaseUp:
		return e.Device == DeviceTouch || e.Button == ButtonPrimary
	case PointerPhaseCancel:
		return true
	default:
		return false
	}
}

func (e PointerEvent) String() string {
	return fmt.Sprintf("%s %s %s at (%g, %g)", e.Device, e.Button, e.Phase, e.Position.X, e.Position.Y)
}
