package mousearea

import (
	"fmt"

	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
)

// MouseState is the interaction state content is built from.
type MouseState struct {
	Hovered bool
	Pressed bool
}

func (s MouseState) String() string {
	return fmt.Sprintf("hovered=%t pressed=%t", s.Hovered, s.Pressed)
}

// State is what a MouseArea persists at its tree position between frames.
type State struct {
	Mouse MouseState

	// owner is the cache of the MouseArea last diffed at this position.
	owner *Resolver
}

// Track folds one pointer event into the state and returns the result.
//
// Hover is recomputed before any press logic so a press that lands inside
// bounds on the same event it entered them still counts.
func (s *State) Track(event gestures.PointerEvent, bounds graphics.Rect, cursor graphics.Offset) MouseState {
	s.Mouse.Hovered = bounds.Contains(cursor)
	switch {
	case event.StartsPress():
		if s.Mouse.Hovered {
			s.Mouse.Pressed = true
		}
	case event.EndsPress():
		s.Mouse.Pressed = false
	}
	return s.Mouse
}
