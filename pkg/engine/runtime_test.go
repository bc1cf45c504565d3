package engine_test

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/engine"
	"github.com/go-drift/mousearea/pkg/errors"
	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/layout"
	"github.com/go-drift/mousearea/pkg/mousearea"
	"github.com/go-drift/mousearea/pkg/widgets"
)

var surface = graphics.Size{Width: 320, Height: 240}

// hoverApp shows "idle" or "hovered" in a 100x40 area at the origin.
func hoverApp() engine.App {
	return engine.App{
		View: func() core.Widget {
			return mousearea.NewFunc(func(s mousearea.MouseState) core.Widget {
				label := "idle"
				if s.Hovered {
					label = "hovered"
				}
				return widgets.Container{
					Sizing:      fixed(100, 40),
					ChildWidget: widgets.Text{Content: label},
				}
			})
		},
	}
}

func fixed(w, h float64) layout.Sizing {
	return layout.Sizing{Width: layout.Fixed(w), Height: layout.Fixed(h)}
}

func move(x, y float64) gestures.PointerEvent {
	return gestures.PointerEvent{Phase: gestures.PointerPhaseMove, Position: graphics.Offset{X: x, Y: y}}
}

func press(phase gestures.PointerPhase, x, y float64) gestures.PointerEvent {
	return gestures.PointerEvent{Phase: phase, Position: graphics.Offset{X: x, Y: y}}
}

func frameTexts(t *testing.T, rt *engine.Runtime) []string {
	t.Helper()
	var pr graphics.PictureRecorder
	canvas := pr.BeginRecording(rt.Surface())
	if err := rt.Frame(canvas); err != nil {
		t.Fatalf("Frame() error: %v", err)
	}
	var texts []string
	for _, op := range pr.EndRecording().Ops() {
		if op.Kind == graphics.OpText {
			texts = append(texts, op.Text)
		}
	}
	return texts
}

func handle(t *testing.T, rt *engine.Runtime, event gestures.PointerEvent) core.Status {
	t.Helper()
	status, err := rt.HandlePointer(event)
	if err != nil {
		t.Fatalf("HandlePointer(%v) error: %v", event, err)
	}
	return status
}

func TestRuntime_LayoutOnlyAfterInvalidation(t *testing.T) {
	rt := engine.New(hoverApp(), surface)

	frameTexts(t, rt)
	frameTexts(t, rt)
	if got := rt.Stats().Layouts; got != 1 {
		t.Fatalf("Layouts = %d after two frames, want 1", got)
	}

	handle(t, rt, move(10, 10))
	if !rt.NeedsLayout() {
		t.Error("expected hover change to schedule a layout")
	}
	if got := rt.Stats().Invalidations; got != 1 {
		t.Errorf("Invalidations = %d, want 1", got)
	}

	handle(t, rt, move(20, 10))
	frameTexts(t, rt)
	if got := rt.Stats().Layouts; got != 2 {
		t.Errorf("Layouts = %d, want 2", got)
	}
}

func TestRuntime_DrawsCurrentContent(t *testing.T) {
	rt := engine.New(hoverApp(), surface)

	if got := frameTexts(t, rt); !reflect.DeepEqual(got, []string{"idle"}) {
		t.Errorf("initial texts = %v, want [idle]", got)
	}
	handle(t, rt, move(10, 10))
	if got := frameTexts(t, rt); !reflect.DeepEqual(got, []string{"hovered"}) {
		t.Errorf("hovered texts = %v, want [hovered]", got)
	}
	handle(t, rt, gestures.PointerEvent{Phase: gestures.PointerPhaseExit})
	if got := frameTexts(t, rt); !reflect.DeepEqual(got, []string{"idle"}) {
		t.Errorf("after exit texts = %v, want [idle]", got)
	}
	if rt.Cursor() != graphics.Outside {
		t.Errorf("Cursor() = %v after exit, want Outside", rt.Cursor())
	}
}

type increment struct{}

func TestRuntime_MessagesRebuildView(t *testing.T) {
	count := 0
	app := engine.App{
		View: func() core.Widget {
			return widgets.ColumnOf(
				widgets.Text{Content: fmt.Sprintf("count %d", count)},
				widgets.Button{Label: "Add", OnPress: increment{}},
			)
		},
		Update: func(msg any) {
			if _, ok := msg.(increment); ok {
				count++
			}
		},
	}
	rt := engine.New(app, surface)

	// The button sits below one line of text.
	if got := handle(t, rt, press(gestures.PointerPhaseDown, 5, 20)); got != core.StatusCaptured {
		t.Errorf("press status = %v, want captured", got)
	}
	handle(t, rt, press(gestures.PointerPhaseUp, 5, 20))

	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	stats := rt.Stats()
	if stats.Messages != 1 || stats.Rebuilds != 1 {
		t.Errorf("Messages = %d, Rebuilds = %d; want 1 and 1", stats.Messages, stats.Rebuilds)
	}
	if got := frameTexts(t, rt); !reflect.DeepEqual(got, []string{"count 1", "Add"}) {
		t.Errorf("texts = %v", got)
	}
}

func TestRuntime_DrawsOverlayLast(t *testing.T) {
	app := engine.App{
		View: func() core.Widget {
			return mousearea.NewFunc(func(s mousearea.MouseState) core.Widget {
				text := widgets.Text{Content: "Buy milk"}
				if !s.Hovered {
					return text
				}
				return widgets.Tooltip{ChildWidget: text, Text: "due today", Gap: 2}
			})
		},
	}
	rt := engine.New(app, surface)

	if got := frameTexts(t, rt); !reflect.DeepEqual(got, []string{"Buy milk"}) {
		t.Errorf("texts = %v before hover", got)
	}
	handle(t, rt, move(5, 5))
	if got := frameTexts(t, rt); !reflect.DeepEqual(got, []string{"Buy milk", "due today"}) {
		t.Errorf("texts = %v while hovered, want text then tooltip", got)
	}
}

func TestRuntime_MouseInteraction(t *testing.T) {
	app := engine.App{
		View: func() core.Widget {
			return widgets.Button{Label: "Go"}
		},
	}
	rt := engine.New(app, surface)

	if got := rt.MouseInteraction(); got != core.InteractionIdle {
		t.Errorf("before any event: %v, want idle", got)
	}
	handle(t, rt, move(4, 4))
	if got := rt.MouseInteraction(); got != core.InteractionPointer {
		t.Errorf("over button: %v, want pointer", got)
	}
}

func TestRuntime_Semantics(t *testing.T) {
	rt := engine.New(hoverApp(), surface)
	if got := rt.Semantics().Labels(); !reflect.DeepEqual(got, []string{"idle"}) {
		t.Errorf("labels = %v, want [idle]", got)
	}
	handle(t, rt, move(10, 10))
	if got := rt.Semantics().Labels(); !reflect.DeepEqual(got, []string{"hovered"}) {
		t.Errorf("labels = %v, want [hovered]", got)
	}
}

type captureHandler struct {
	frames []*errors.FrameError
}

func (c *captureHandler) HandleError(err *errors.FrameError)      { c.frames = append(c.frames, err) }
func (c *captureHandler) HandlePanic(err *errors.PanicError)      {}
func (c *captureHandler) HandleBuildError(err *errors.BuildError) {}

func TestRuntime_NoRoot(t *testing.T) {
	h := &captureHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	rt := engine.New(engine.App{View: func() core.Widget { return nil }}, surface)
	var pr graphics.PictureRecorder
	err := rt.Frame(pr.BeginRecording(surface))
	if !stderrors.Is(err, engine.ErrNoRoot) {
		t.Fatalf("Frame() error = %v, want ErrNoRoot", err)
	}
	if len(h.frames) != 1 || h.frames[0].Kind != errors.KindStructure {
		t.Errorf("reported %v", h.frames)
	}
}

func TestRuntime_TraceRecordsFrames(t *testing.T) {
	buffer := engine.NewFrameTraceBuffer(8, 0)
	rt := engine.New(hoverApp(), surface, engine.WithTrace(buffer))

	frameTexts(t, rt)
	handle(t, rt, move(10, 10))
	frameTexts(t, rt)
	frameTexts(t, rt)

	samples := buffer.Snapshot().Samples
	if len(samples) != 3 {
		t.Fatalf("recorded %d samples, want 3", len(samples))
	}
	relayouts := []bool{samples[0].Relayout, samples[1].Relayout, samples[2].Relayout}
	if !reflect.DeepEqual(relayouts, []bool{true, true, false}) {
		t.Errorf("relayouts = %v", relayouts)
	}
	if samples[1].Counts.Invalidations != 1 || samples[2].Counts.Invalidations != 0 {
		t.Errorf("invalidation counts = %d, %d; want 1, 0", samples[1].Counts.Invalidations, samples[2].Counts.Invalidations)
	}
}

func TestRuntime_EventAfterSteadyFrame(t *testing.T) {
	rt := engine.New(hoverApp(), surface)

	frameTexts(t, rt)
	if rt.NeedsLayout() {
		t.Fatal("layout still pending after the first frame")
	}

	// The cached layout is valid here, so the event must reuse it.
	status, err := rt.HandlePointer(move(10, 10))
	if err != nil {
		t.Fatalf("HandlePointer() after a steady frame: %v", err)
	}
	if status != core.StatusIgnored {
		t.Errorf("status = %v, want ignored", status)
	}
	if got := rt.Stats().Invalidations; got != 1 {
		t.Errorf("Invalidations = %d, want 1", got)
	}
	if got := frameTexts(t, rt); !reflect.DeepEqual(got, []string{"hovered"}) {
		t.Errorf("texts = %v, want [hovered]", got)
	}
	if got := rt.Stats().Layouts; got != 2 {
		t.Errorf("Layouts = %d, want 2", got)
	}
}

func TestRuntime_NestedAreaAfterSteadyFrame(t *testing.T) {
	app := engine.App{
		View: func() core.Widget {
			return widgets.ColumnOf(
				widgets.Container{Sizing: fixed(100, 40), ChildWidget: widgets.Text{Content: "header"}},
				hoverApp().View(),
			)
		},
	}
	rt := engine.New(app, surface)
	frameTexts(t, rt)

	handle(t, rt, move(10, 60))
	if got := frameTexts(t, rt); !reflect.DeepEqual(got, []string{"header", "hovered"}) {
		t.Fatalf("texts = %v, want [header hovered]", got)
	}

	// A rebuilt view finds the hover state persisted at the same position.
	rt.Rebuild()
	if got := frameTexts(t, rt); !reflect.DeepEqual(got, []string{"header", "hovered"}) {
		t.Errorf("texts after rebuild = %v, want [header hovered]", got)
	}

	handle(t, rt, move(10, 10))
	if got := frameTexts(t, rt); !reflect.DeepEqual(got, []string{"header", "idle"}) {
		t.Errorf("texts = %v, want [header idle]", got)
	}
	if got := rt.Stats().Invalidations; got != 2 {
		t.Errorf("Invalidations = %d, want 2", got)
	}
}

type panicOnDraw struct {
	core.WidgetBase
}

func (panicOnDraw) Draw(tree *core.Tree, ctx *core.DrawContext, l layout.Layout, cursor graphics.Offset) {
	panic("draw failed")
}

func TestRuntime_KeepsFirstFailure(t *testing.T) {
	errors.SetHandler(&captureHandler{})
	t.Cleanup(func() { errors.SetHandler(nil) })

	rt := engine.New(engine.App{View: func() core.Widget { return panicOnDraw{} }}, surface)
	if rt.Err() != nil {
		t.Fatalf("Err() = %v before any frame", rt.Err())
	}

	var pr graphics.PictureRecorder
	err := rt.Frame(pr.BeginRecording(surface))
	var perr *errors.PanicError
	if !stderrors.As(err, &perr) || perr.Op != "engine.Frame" {
		t.Fatalf("Frame() error = %v, want a PanicError from engine.Frame", err)
	}
	if rt.Err() != err {
		t.Errorf("Err() = %v, want the frame error", rt.Err())
	}

	second := rt.Frame(pr.BeginRecording(surface))
	if second == nil {
		t.Fatal("second Frame() succeeded")
	}
	if rt.Err() != err {
		t.Error("Err() changed after a later failure")
	}
}
