// Package scene turns resolved configuration into a widget tree of mouse
// areas.
package scene

import (
	"fmt"
	"strings"

	"github.com/go-drift/mousearea/cmd/mousearea/internal/config"
	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/mousearea"
	"github.com/go-drift/mousearea/pkg/widgets"
)

const (
	spacing    = 8
	margin     = 16
	tooltipGap = 4
)

// Scene is a column of configured mouse areas.
type Scene struct {
	areas   []config.Area
	widgets []*mousearea.MouseArea
	root    core.Widget
}

// AreaState is what one area currently shows.
type AreaState struct {
	ID    string
	Mouse mousearea.MouseState
	Text  string
}

func (s AreaState) String() string {
	return fmt.Sprintf("%s[%s] %q", s.ID, s.Mouse, s.Text)
}

// FormatStates joins states on one line.
func FormatStates(states []AreaState) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = s.String()
	}
	return strings.Join(parts, "  ")
}

// New builds the scene for areas.
func New(areas []config.Area) *Scene {
	s := &Scene{areas: areas}
	children := make([]core.Widget, len(areas))
	for i, area := range areas {
		w := mousearea.New(mousearea.Builder[config.Area]{Params: area, View: View})
		s.widgets = append(s.widgets, w)
		children[i] = w
	}
	s.root = widgets.ColumnOf(children...).
		WithSpacing(spacing).
		WithPadding(graphics.EdgeInsetsAll(margin))
	return s
}

// Root returns the scene's root widget.
func (s *Scene) Root() core.Widget {
	return s.root
}

// States reports the cached state and text of every area.
func (s *Scene) States() []AreaState {
	states := make([]AreaState, len(s.areas))
	for i, area := range s.areas {
		mouse, _ := s.widgets[i].Content().State()
		states[i] = AreaState{
			ID:    area.ID,
			Mouse: mouse,
			Text:  area.LookFor(mouse.Hovered, mouse.Pressed).Text,
		}
	}
	return states
}

// View renders area for one pointer state.
func View(area config.Area, state mousearea.MouseState) core.Widget {
	look := area.LookFor(state.Hovered, state.Pressed)
	var content core.Widget = widgets.Container{
		ID:          area.ID,
		Color:       look.Background,
		Padding:     graphics.EdgeInsetsAll(look.Padding),
		Cursor:      area.Cursor,
		ChildWidget: widgets.Text{Content: look.Text},
	}
	if state.Hovered && area.Tooltip != "" {
		content = widgets.Tooltip{ChildWidget: content, Text: area.Tooltip, Gap: tooltipGap}
	}
	return content
}
