package mousearea

import (
	"testing"

	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/errors"
	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/layout"
)

// recorder collects what probes see across rebuilds.
type recorder struct {
	events []string
}

// probe is a leaf whose behavior is set per test.
type probe struct {
	core.WidgetBase
	label       string
	size        graphics.Size
	width       layout.Length
	status      core.Status
	interaction core.Interaction
	overlay     core.Overlay
	rec         *recorder
}

func (p *probe) Width() layout.Length { return p.width }

func (p *probe) Layout(c layout.Constraints) *layout.Node {
	return layout.NewNode(c.Constrain(p.size))
}

func (p *probe) Draw(tree *core.Tree, ctx *core.DrawContext, l layout.Layout, cursor graphics.Offset) {
	ctx.Canvas.DrawText(p.label, l.Position(), graphics.TextStyle{})
}

func (p *probe) OnEvent(tree *core.Tree, event gestures.PointerEvent, l layout.Layout, cursor graphics.Offset, shell *core.Shell) core.Status {
	if p.rec != nil {
		p.rec.events = append(p.rec.events, p.label+":"+event.Phase.String())
	}
	return p.status
}

func (p *probe) MouseInteraction(tree *core.Tree, l layout.Layout, cursor graphics.Offset, viewport graphics.Rect) core.Interaction {
	return p.interaction
}

func (p *probe) Operate(tree *core.Tree, l layout.Layout, op core.Operation) {
	op.Text("", l.Bounds(), p.label)
}

func (p *probe) Overlay(tree *core.Tree, l layout.Layout) core.Overlay {
	return p.overlay
}

type probeState struct{ touched int }

// statefulProbe persists state, so swapping to it changes the child tag.
type statefulProbe struct {
	probe
}

func (p *statefulProbe) Tag() core.Tag { return core.TagOf[probeState]() }
func (p *statefulProbe) State() any    { return &probeState{} }

// labelFor names each of the four states.
func labelFor(s MouseState) string {
	switch {
	case s.Hovered && s.Pressed:
		return "hovered+pressed"
	case s.Hovered:
		return "hovered"
	case s.Pressed:
		return "pressed"
	default:
		return "idle"
	}
}

func probeBuilder(rec *recorder) BuilderFunc {
	return func(s MouseState) core.Widget {
		return &probe{label: labelFor(s), size: graphics.Size{Width: 50, Height: 20}, rec: rec}
	}
}

func labelOf(t *testing.T, w core.Widget) string {
	t.Helper()
	switch p := w.(type) {
	case *probe:
		return p.label
	case *statefulProbe:
		return p.label
	}
	t.Fatalf("unexpected content %T", w)
	return ""
}

// harness mounts a MouseArea at (10, 10) so its bounds are [10,60]x[10,30].
type harness struct {
	area  *MouseArea
	tree  *core.Tree
	shell *core.Shell
}

func newHarness(area *MouseArea) *harness {
	return &harness{area: area, tree: core.NewTree(area), shell: &core.Shell{}}
}

func (h *harness) layout() layout.Layout {
	node := h.area.Layout(layout.Loose(graphics.Size{Width: 200, Height: 100}))
	return layout.NewLayout(node, graphics.Offset{X: 10, Y: 10})
}

func (h *harness) send(phase gestures.PointerPhase, x, y float64) core.Status {
	return h.sendEvent(gestures.PointerEvent{Phase: phase, Position: graphics.Offset{X: x, Y: y}})
}

func (h *harness) sendEvent(event gestures.PointerEvent) core.Status {
	return h.area.OnEvent(h.tree, event, h.layout(), event.Position, h.shell)
}

func (h *harness) mouse() MouseState {
	return core.StateOf[State](h.tree).Mouse
}

type captureHandler struct {
	frames []*errors.FrameError
	panics []*errors.PanicError
	builds []*errors.BuildError
}

func (c *captureHandler) HandleError(err *errors.FrameError)      { c.frames = append(c.frames, err) }
func (c *captureHandler) HandlePanic(err *errors.PanicError)      { c.panics = append(c.panics, err) }
func (c *captureHandler) HandleBuildError(err *errors.BuildError) { c.builds = append(c.builds, err) }

func installHandler(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}
