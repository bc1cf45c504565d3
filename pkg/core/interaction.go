package core

import (
	"fmt"
	"strings"
)

// Interaction is the cursor affordance a node asks the host to show.
type Interaction int

const (
	InteractionIdle Interaction = iota
	InteractionPointer
	InteractionGrab
	InteractionText
	InteractionCrosshair
	InteractionNotAllowed
)

var interactionNames = map[Interaction]string{
	InteractionIdle:       "idle",
	InteractionPointer:    "pointer",
	InteractionGrab:       "grab",
	InteractionText:       "text",
	InteractionCrosshair:  "crosshair",
	InteractionNotAllowed: "not-allowed",
}

func (i Interaction) String() string {
	if name, ok := interactionNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Interaction(%d)", int(i))
}

// ParseInteraction maps a name back to an Interaction. The empty string is
// idle.
func ParseInteraction(s string) (Interaction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return InteractionIdle, nil
	}
	for i, name := range interactionNames {
		if name == s {
			return i, nil
		}
	}
	return InteractionIdle, fmt.Errorf("unknown cursor %q", s)
}
