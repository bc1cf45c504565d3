package testing

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/engine"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/mousearea"
	"github.com/go-drift/mousearea/pkg/widgets"
)

type doneMsg struct{}

// todoRow shows a Done button next to the title while hovered.
func todoRow(title string) core.Widget {
	return mousearea.NewFunc(func(s mousearea.MouseState) core.Widget {
		text := widgets.Text{Content: title}
		if !s.Hovered {
			return widgets.RowOf(text)
		}
		return widgets.RowOf(text, widgets.HSpace(8), widgets.Button{Label: "Done", OnPress: doneMsg{}})
	})
}

func TestWidgetTester_PumpWidgetDrawsText(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	if err := tester.PumpWidget(widgets.Text{Content: "hello"}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	if got := tester.DrawnTexts(); !reflect.DeepEqual(got, []string{"hello"}) {
		t.Errorf("DrawnTexts() = %v, want [hello]", got)
	}
	if got := tester.RootBounds(); got != graphics.RectFromLTWH(0, 0, 35, 13) {
		t.Errorf("RootBounds() = %v", got)
	}
}

func TestWidgetTester_HoverRevealsButton(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(todoRow("Buy milk"))

	if tester.Find(ByText("Done")).Exists() {
		t.Fatal("Done button visible before hover")
	}

	tester.MoveTo(graphics.Offset{X: 5, Y: 5})
	if !tester.NeedsLayout() {
		t.Error("expected hover to invalidate layout")
	}
	tester.Pump()

	if !tester.Find(ByText("Done")).Exists() {
		t.Error("expected Done button while hovered")
	}
	if got := tester.DrawnTexts(); !reflect.DeepEqual(got, []string{"Buy milk", "Done"}) {
		t.Errorf("DrawnTexts() = %v", got)
	}
	if got := tester.Invalidations(); got != 1 {
		t.Errorf("Invalidations() = %d, want 1", got)
	}
}

func TestWidgetTester_TapPublishes(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(todoRow("Buy milk"))
	tester.MoveTo(graphics.Offset{X: 5, Y: 5})
	tester.Pump()

	if err := tester.Tap(ByText("Done")); err != nil {
		t.Fatalf("Tap: %v", err)
	}
	if got := tester.Messages(); !reflect.DeepEqual(got, []any{doneMsg{}}) {
		t.Errorf("Messages() = %v, want [doneMsg]", got)
	}
	statuses := tester.Statuses()
	if len(statuses) != 3 || statuses[1] != core.StatusCaptured || statuses[2] != core.StatusCaptured {
		t.Errorf("Statuses() = %v, want move then two captured", statuses)
	}
}

func TestWidgetTester_TapMissing(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(todoRow("Buy milk"))
	if err := tester.Tap(ByText("Done")); err == nil {
		t.Error("expected error tapping a missing node")
	}
}

func TestWidgetTester_PumpAppRebuilds(t *testing.T) {
	done := false
	tester := NewWidgetTesterWithT(t)
	tester.PumpApp(engine.App{
		View: func() core.Widget {
			if done {
				return widgets.Text{Content: "all done"}
			}
			return todoRow("Buy milk")
		},
		Update: func(msg any) { done = true },
	})

	tester.MoveTo(graphics.Offset{X: 5, Y: 5})
	tester.Tap(ByText("Done"))
	tester.Pump()

	if got := tester.DrawnTexts(); !reflect.DeepEqual(got, []string{"all done"}) {
		t.Errorf("DrawnTexts() = %v, want [all done]", got)
	}
}

func TestWidgetTester_CursorAndExit(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Button{Label: "Go"})

	tester.MoveTo(graphics.Offset{X: 2, Y: 2})
	if got := tester.Cursor(); got != core.InteractionPointer {
		t.Errorf("Cursor() = %v, want pointer", got)
	}
	tester.SendPointerExit()
	if got := tester.Cursor(); got != core.InteractionIdle {
		t.Errorf("Cursor() after exit = %v, want idle", got)
	}
}

func TestWidgetTester_ReportsMissingRoot(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	err := tester.PumpWidget(nil)
	if !stderrors.Is(err, engine.ErrNoRoot) {
		t.Fatalf("PumpWidget(nil) = %v, want ErrNoRoot", err)
	}
	if len(tester.Reported()) != 1 {
		t.Errorf("Reported() = %v, want one error", tester.Reported())
	}
}

func TestWidgetTester_NotMounted(t *testing.T) {
	tester := NewWidgetTester()
	if err := tester.Pump(); !stderrors.Is(err, ErrNotMounted) {
		t.Errorf("Pump() = %v, want ErrNotMounted", err)
	}
	if err := tester.MoveTo(graphics.Offset{}); !stderrors.Is(err, ErrNotMounted) {
		t.Errorf("MoveTo() = %v, want ErrNotMounted", err)
	}
}
