package scene

import (
	"reflect"
	"testing"

	"github.com/go-drift/mousearea/cmd/mousearea/internal/config"
	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/mousearea"
	matest "github.com/go-drift/mousearea/pkg/testing"
)

var testAreas = []config.Area{
	{
		ID:      "first",
		Idle:    config.Look{Text: "one"},
		Hovered: config.Look{Text: "ONE"},
		Pressed: config.Look{Text: "1"},
		Tooltip: "first area",
		Cursor:  core.InteractionPointer,
	},
	{
		ID:      "second",
		Idle:    config.Look{Text: "two"},
		Hovered: config.Look{Text: "TWO"},
		Pressed: config.Look{Text: "2"},
	},
}

func texts(states []AreaState) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.Text
	}
	return out
}

func TestScene_HoverAndPress(t *testing.T) {
	s := New(testAreas)
	tester := matest.NewWidgetTesterWithT(t)
	tester.PumpWidget(s.Root())

	if got := texts(s.States()); !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Fatalf("initial texts = %v", got)
	}

	// The first area spans y in [16, 29].
	tester.MoveTo(graphics.Offset{X: 20, Y: 20})
	if got := texts(s.States()); !reflect.DeepEqual(got, []string{"ONE", "two"}) {
		t.Errorf("hovered texts = %v", got)
	}
	tester.SendPointerDown(graphics.Offset{X: 20, Y: 20}, 0)
	if got := s.States()[0].Mouse; got != (mousearea.MouseState{Hovered: true, Pressed: true}) {
		t.Errorf("first state = %v", got)
	}
	if got := texts(s.States()); !reflect.DeepEqual(got, []string{"1", "two"}) {
		t.Errorf("pressed texts = %v", got)
	}
}

func TestScene_TooltipWhileHovered(t *testing.T) {
	s := New(testAreas)
	tester := matest.NewWidgetTesterWithT(t)
	tester.PumpWidget(s.Root())

	tester.MoveTo(graphics.Offset{X: 20, Y: 20})
	tester.Pump()
	if got := tester.DrawnTexts(); !reflect.DeepEqual(got, []string{"ONE", "two", "first area"}) {
		t.Errorf("texts = %v", got)
	}
	if got := tester.Cursor(); got != core.InteractionPointer {
		t.Errorf("Cursor() = %v, want pointer", got)
	}

	tester.SendPointerExit()
	tester.Pump()
	if got := tester.DrawnTexts(); !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Errorf("texts after exit = %v", got)
	}
}

func TestAreaState_String(t *testing.T) {
	s := AreaState{ID: "row", Mouse: mousearea.MouseState{Hovered: true}, Text: "Hi"}
	if got, want := s.String(), `row[hovered=true pressed=false] "Hi"`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
