package testing

import (
	"errors"
	"testing"

	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/engine"
	maerrors "github.com/go-drift/mousearea/pkg/errors"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/semantics"
	"github.com/go-drift/mousearea/pkg/theme"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// ErrNotMounted is returned when an operation needs a pumped widget.
var ErrNotMounted = errors.New("no widget mounted")

// WidgetTester drives a widget through a headless engine.Runtime with a
// recording canvas.
type WidgetTester struct {
	runtime  *engine.Runtime
	size     graphics.Size
	theme    *theme.ThemeData
	messages []any
	statuses []core.Status
	frame    *graphics.DisplayList
	reported []error
}

// NewWidgetTester creates a tester with the default surface and light theme.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{
		size:  graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		theme: theme.DefaultLightTheme(),
	}
}

// NewWidgetTesterWithT creates a tester that also receives everything
// reported to the errors package until the test ends. See Reported.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	maerrors.SetHandler(tester)
	t.Cleanup(func() { maerrors.SetHandler(nil) })
	return tester
}

// HandleError records a reported frame error.
func (t *WidgetTester) HandleError(err *maerrors.FrameError) {
	t.reported = append(t.reported, err)
}

// HandlePanic records a reported panic.
func (t *WidgetTester) HandlePanic(err *maerrors.PanicError) {
	t.reported = append(t.reported, err)
}

// HandleBuildError records a reported builder failure.
func (t *WidgetTester) HandleBuildError(err *maerrors.BuildError) {
	t.reported = append(t.reported, err)
}

// Reported returns the errors reported while this tester was the handler.
func (t *WidgetTester) Reported() []error {
	return t.reported
}

// SetSize sets the logical surface size. Must be called before PumpWidget.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.size = size
}

// SetTheme replaces the theme data. Must be called before PumpWidget.
func (t *WidgetTester) SetTheme(td *theme.ThemeData) {
	t.theme = td
}

// PumpWidget mounts widget as a fixed root and runs one frame. Published
// messages are recorded; the widget is never rebuilt.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	return t.PumpApp(engine.App{
		View: func() core.Widget { return widget },
	})
}

// PumpApp mounts app and runs one frame. Messages are recorded before they
// reach app.Update.
func (t *WidgetTester) PumpApp(app engine.App) error {
	update := app.Update
	app.Update = func(msg any) {
		t.messages = append(t.messages, msg)
		if update != nil {
			update(msg)
		}
	}
	t.messages = nil
	t.statuses = nil
	t.runtime = engine.New(app, t.size, engine.WithTheme(t.theme))
	return t.Pump()
}

// Pump paints one frame, laying out first if the tree was invalidated.
func (t *WidgetTester) Pump() error {
	if t.runtime == nil {
		return ErrNotMounted
	}
	var recorder graphics.PictureRecorder
	canvas := recorder.BeginRecording(t.size)
	err := t.runtime.Frame(canvas)
	t.frame = recorder.EndRecording()
	return err
}

// Runtime returns the engine driving the mounted widget.
func (t *WidgetTester) Runtime() *engine.Runtime {
	return t.runtime
}

// Tree returns the persisted tree of the mounted widget.
func (t *WidgetTester) Tree() *core.Tree {
	if t.runtime == nil {
		return nil
	}
	return t.runtime.Tree()
}

// RootBounds returns the root's laid out bounds.
func (t *WidgetTester) RootBounds() graphics.Rect {
	if t.runtime == nil {
		return graphics.Rect{}
	}
	return t.runtime.Bounds()
}

// NeedsLayout reports whether the next Pump will re-measure the tree.
func (t *WidgetTester) NeedsLayout() bool {
	return t.runtime != nil && t.runtime.NeedsLayout()
}

// Invalidations returns how many layout invalidations events have caused.
func (t *WidgetTester) Invalidations() int {
	if t.runtime == nil {
		return 0
	}
	return t.runtime.Stats().Invalidations
}

// Messages returns every message published since the last mount.
func (t *WidgetTester) Messages() []any {
	return t.messages
}

// Statuses returns the status of every event sent since the last mount.
func (t *WidgetTester) Statuses() []core.Status {
	return t.statuses
}

// Cursor returns the interaction the tree asks for at the current cursor.
func (t *WidgetTester) Cursor() core.Interaction {
	if t.runtime == nil {
		return core.InteractionIdle
	}
	return t.runtime.MouseInteraction()
}

// Semantics returns the semantics tree of what is currently displayed.
func (t *WidgetTester) Semantics() *semantics.SemanticsNode {
	if t.runtime == nil {
		return nil
	}
	return t.runtime.Semantics()
}

// Frame returns the display list of the last pumped frame.
func (t *WidgetTester) Frame() *graphics.DisplayList {
	return t.frame
}

// DrawnTexts returns the text painted by the last pumped frame, in paint
// order.
func (t *WidgetTester) DrawnTexts() []string {
	if t.frame == nil {
		return nil
	}
	var texts []string
	for _, op := range t.frame.Ops() {
		if op.Kind == graphics.OpText {
			texts = append(texts, op.Text)
		}
	}
	return texts
}
