package config

import (
	"fmt"
	"strings"

	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
)

var phases = map[string]gestures.PointerPhase{
	"move":   gestures.PointerPhaseMove,
	"down":   gestures.PointerPhaseDown,
	"up":     gestures.PointerPhaseUp,
	"cancel": gestures.PointerPhaseCancel,
	"exit":   gestures.PointerPhaseExit,
}

var devices = map[string]gestures.PointerDevice{
	"":      gestures.DeviceMouse,
	"mouse": gestures.DeviceMouse,
	"touch": gestures.DeviceTouch,
}

var buttons = map[string]gestures.MouseButton{
	"":          gestures.ButtonPrimary,
	"primary":   gestures.ButtonPrimary,
	"secondary": gestures.ButtonSecondary,
	"middle":    gestures.ButtonMiddle,
}

// LookFor picks the look for state. The pressed look shows only while the
// pointer is also over the area.
func (a Area) LookFor(hovered, pressed bool) Look {
	switch {
	case hovered && pressed:
		return a.Pressed
	case hovered:
		return a.Hovered
	default:
		return a.Idle
	}
}

func resolveAreas(cfgs []AreaConfig) ([]Area, error) {
	if len(cfgs) == 0 {
		return nil, fmt.Errorf("at least one area is required")
	}

	seen := make(map[string]bool, len(cfgs))
	areas := make([]Area, 0, len(cfgs))
	for i, cfg := range cfgs {
		id := strings.TrimSpace(cfg.ID)
		if id == "" {
			return nil, fmt.Errorf("areas[%d]: id is required", i)
		}
		if seen[id] {
			return nil, fmt.Errorf("areas[%d]: duplicate id %q", i, id)
		}
		seen[id] = true

		idle, err := resolveLook(cfg.Idle, Look{})
		if err != nil {
			return nil, fmt.Errorf("area %q idle: %w", id, err)
		}
		hovered, err := resolveLook(cfg.Hovered, idle)
		if err != nil {
			return nil, fmt.Errorf("area %q hovered: %w", id, err)
		}
		pressed, err := resolveLook(cfg.Pressed, hovered)
		if err != nil {
			return nil, fmt.Errorf("area %q pressed: %w", id, err)
		}
		cursor, err := core.ParseInteraction(cfg.Cursor)
		if err != nil {
			return nil, fmt.Errorf("area %q cursor: %w", id, err)
		}

		areas = append(areas, Area{
			ID:      id,
			Idle:    idle,
			Hovered: hovered,
			Pressed: pressed,
			Tooltip: cfg.Tooltip,
			Cursor:  cursor,
		})
	}
	return areas, nil
}

// resolveLook fills fields cfg leaves empty from fallback.
func resolveLook(cfg LookConfig, fallback Look) (Look, error) {
	look := fallback
	if cfg.Text != "" {
		look.Text = cfg.Text
	}
	if cfg.Background != "" {
		c, err := graphics.ParseHex(cfg.Background)
		if err != nil {
			return Look{}, err
		}
		look.Background = c
	}
	if cfg.Padding < 0 {
		return Look{}, fmt.Errorf("padding cannot be negative (got %g)", cfg.Padding)
	}
	if cfg.Padding > 0 {
		look.Padding = cfg.Padding
	}
	return look, nil
}

func resolveScript(steps []StepConfig) ([]gestures.PointerEvent, error) {
	events := make([]gestures.PointerEvent, 0, len(steps))
	for i, step := range steps {
		phase, ok := phases[strings.ToLower(step.Phase)]
		if !ok {
			return nil, fmt.Errorf("script[%d]: unknown phase %q", i, step.Phase)
		}
		device, ok := devices[strings.ToLower(step.Device)]
		if !ok {
			return nil, fmt.Errorf("script[%d]: unknown device %q", i, step.Device)
		}
		button, ok := buttons[strings.ToLower(step.Button)]
		if !ok {
			return nil, fmt.Errorf("script[%d]: unknown button %q", i, step.Button)
		}

		event := gestures.PointerEvent{
			Device:   device,
			Phase:    phase,
			Button:   button,
			Position: graphics.Offset{X: step.X, Y: step.Y},
		}
		if device == gestures.DeviceTouch {
			event.PointerID = 1
		}
		if phase == gestures.PointerPhaseExit {
			event.Position = graphics.Outside
		}
		events = append(events, event)
	}
	return events, nil
}
