// Package engine runs a widget tree headlessly: it owns the persisted tree,
// lays it out on demand, routes pointer events, and paints frames onto any
// graphics.Canvas. Tests, the replay command, and the window host share it.
package engine

import (
	stderrors "errors"
	"sync"
	"time"

	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/errors"
	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/layout"
	"github.com/go-drift/mousearea/pkg/semantics"
	"github.com/go-drift/mousearea/pkg/theme"
)

// ErrNoRoot is returned when the view produced no widget.
var ErrNoRoot = stderrors.New("view returned no root widget")

// App is the application driven by a Runtime.
type App struct {
	// View builds the widget tree from application state.
	View func() core.Widget
	// Update applies a published message to application state. The view is
	// rebuilt after every batch of messages.
	Update func(msg any)
}

// Stats counts what the runtime has done.
type Stats struct {
	Frames        int
	Layouts       int
	Events        int
	Invalidations int
	Messages      int
	Rebuilds      int
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithTheme sets the theme used for drawing.
func WithTheme(t *theme.ThemeData) Option {
	return func(r *Runtime) {
		if t != nil {
			r.theme = t
		}
	}
}

// WithTrace records a sample per frame into buffer.
func WithTrace(buffer *FrameTraceBuffer) Option {
	return func(r *Runtime) {
		r.trace = buffer
	}
}

// Runtime drives one widget tree. Its methods are safe for concurrent use.
type Runtime struct {
	mu      sync.Mutex
	app     App
	theme   *theme.ThemeData
	surface graphics.Size
	trace   *FrameTraceBuffer

	root        core.Widget
	tree        *core.Tree
	node        *layout.Node
	needsLayout bool
	cursor      graphics.Offset
	stats       Stats
	failure     error

	pendingInvalidations int
	pendingMessages      int
}

// New mounts app on a surface of the given size.
func New(app App, surface graphics.Size, opts ...Option) *Runtime {
	r := &Runtime{
		app:     app,
		theme:   theme.DefaultLightTheme(),
		surface: surface,
		cursor:  graphics.Outside,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.mountLocked()
	return r
}

func (r *Runtime) mountLocked() {
	r.root = nil
	if r.app.View != nil {
		r.root = r.app.View()
	}
	r.tree = nil
	if r.root != nil {
		r.tree = core.NewTree(r.root)
	}
	r.node = nil
	r.needsLayout = true
}

// rebuildLocked asks the app for a new view and reconciles it with the
// persisted tree.
func (r *Runtime) rebuildLocked() {
	if r.app.View == nil {
		return
	}
	root := r.app.View()
	r.stats.Rebuilds++
	if root == nil || r.tree == nil {
		r.root = root
		r.tree = nil
		if root != nil {
			r.tree = core.NewTree(root)
		}
	} else {
		r.root = root
		r.tree.Diff(root)
	}
	r.needsLayout = true
}

// layoutLocked re-measures the tree when it was invalidated. relayout reports
// whether it did; ok is false when there is no root to lay out.
func (r *Runtime) layoutLocked() (l layout.Layout, relayout, ok bool) {
	if r.root == nil {
		return layout.Layout{}, false, false
	}
	if r.needsLayout || r.node == nil {
		r.node = r.root.Layout(layout.Loose(r.surface))
		r.needsLayout = false
		r.stats.Layouts++
		relayout = true
	}
	return layout.NewLayout(r.node, graphics.Offset{}), relayout, true
}

// noteFailure keeps the first error returned by a frame or an event.
func (r *Runtime) noteFailure(errp *error) {
	if *errp != nil && r.failure == nil {
		r.failure = *errp
	}
}

// Err returns the first error a frame or an event returned, or nil. Hosts
// that cannot propagate a frame error directly stop on it.
func (r *Runtime) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failure
}

func (r *Runtime) noRoot(op string) error {
	err := &errors.FrameError{Op: op, Kind: errors.KindStructure, Err: ErrNoRoot}
	errors.Report(err)
	return err
}

// Resize changes the surface size and schedules a layout.
func (r *Runtime) Resize(surface graphics.Size) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if surface != r.surface {
		r.surface = surface
		r.needsLayout = true
	}
}

// Surface returns the surface size.
func (r *Runtime) Surface() graphics.Size {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.surface
}

// HandlePointer routes one event: the root overlay sees it first, then the
// tree. Published messages are applied and the view is rebuilt.
func (r *Runtime) HandlePointer(event gestures.PointerEvent) (status core.Status, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer r.noteFailure(&err)
	defer errors.RecoverInto("engine.HandlePointer", &err)

	if event.Phase == gestures.PointerPhaseExit {
		r.cursor = graphics.Outside
	} else {
		r.cursor = event.Position
	}

	l, _, ok := r.layoutLocked()
	if !ok {
		return core.StatusIgnored, r.noRoot("engine.HandlePointer")
	}
	r.stats.Events++

	shell := &core.Shell{}
	status = core.StatusIgnored
	if overlay := r.root.Overlay(r.tree, l); overlay != nil {
		node := overlay.Layout(r.surface, graphics.Offset{})
		status = overlay.OnEvent(event, layout.NewLayout(node, graphics.Offset{}), r.cursor, shell)
	}
	if status != core.StatusCaptured {
		status = r.root.OnEvent(r.tree, event, l, r.cursor, shell)
	}

	r.stats.Invalidations += shell.Invalidations()
	r.pendingInvalidations += shell.Invalidations()
	if shell.IsLayoutInvalid() {
		r.needsLayout = true
	}

	messages := shell.Messages()
	if len(messages) > 0 {
		for _, msg := range messages {
			if r.app.Update != nil {
				r.app.Update(msg)
			}
		}
		r.stats.Messages += len(messages)
		r.pendingMessages += len(messages)
		r.rebuildLocked()
	}
	return status, nil
}

// Frame paints the tree and its overlay onto canvas, laying out first if
// anything invalidated the previous layout.
func (r *Runtime) Frame(canvas graphics.Canvas) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer r.noteFailure(&err)
	defer errors.RecoverInto("engine.Frame", &err)

	start := time.Now()
	l, relayout, ok := r.layoutLocked()
	if !ok {
		return r.noRoot("engine.Frame")
	}
	layoutDone := time.Now()

	viewport := graphics.RectFromOffsetSize(graphics.Offset{}, r.surface)
	ctx := &core.DrawContext{
		Canvas:   canvas,
		Theme:    r.theme,
		Style:    core.Style{TextColor: r.theme.ColorScheme.OnSurface},
		Viewport: viewport,
	}
	canvas.DrawRect(viewport, graphics.FillPaint(r.theme.ColorScheme.Background))
	r.root.Draw(r.tree, ctx, l, r.cursor)
	drawDone := time.Now()

	if overlay := r.root.Overlay(r.tree, l); overlay != nil {
		node := overlay.Layout(r.surface, graphics.Offset{})
		overlay.Draw(ctx, layout.NewLayout(node, graphics.Offset{}), r.cursor)
	}
	end := time.Now()
	r.stats.Frames++

	if r.trace != nil {
		r.trace.Add(FrameSample{
			Timestamp: end.UnixMilli(),
			FrameMs:   millis(end.Sub(start)),
			Relayout:  relayout,
			Phases: FramePhaseTimings{
				LayoutMs:  millis(layoutDone.Sub(start)),
				DrawMs:    millis(drawDone.Sub(layoutDone)),
				OverlayMs: millis(end.Sub(drawDone)),
			},
			Counts: FrameCounts{
				Invalidations: r.pendingInvalidations,
				Messages:      r.pendingMessages,
				TreeNodes:     countTree(r.tree),
			},
		})
	}
	r.pendingInvalidations = 0
	r.pendingMessages = 0
	return nil
}

// NeedsLayout reports whether the next frame will re-measure the tree.
func (r *Runtime) NeedsLayout() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.needsLayout || r.node == nil
}

// Cursor returns the last known cursor position. It is graphics.Outside
// before the first event and after the cursor exits.
func (r *Runtime) Cursor() graphics.Offset {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor
}

// MouseInteraction asks the tree which cursor to show.
func (r *Runtime) MouseInteraction() core.Interaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, _, ok := r.layoutLocked()
	if !ok {
		return core.InteractionIdle
	}
	viewport := graphics.RectFromOffsetSize(graphics.Offset{}, r.surface)
	return r.root.MouseInteraction(r.tree, l, r.cursor, viewport)
}

// Semantics walks the tree and returns what it currently describes.
func (r *Runtime) Semantics() *semantics.SemanticsNode {
	r.mu.Lock()
	defer r.mu.Unlock()
	collector := semantics.NewCollector(graphics.RectFromOffsetSize(graphics.Offset{}, r.surface))
	if l, _, ok := r.layoutLocked(); ok {
		r.root.Operate(r.tree, l, collector)
	}
	return collector.Root()
}

// Layout returns the root layout, re-measuring first if it was invalidated.
func (r *Runtime) Layout() (layout.Layout, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, _, ok := r.layoutLocked()
	return l, ok
}

// Bounds returns the root's laid out bounds.
func (r *Runtime) Bounds() graphics.Rect {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, _, ok := r.layoutLocked()
	if !ok {
		return graphics.Rect{}
	}
	return l.Bounds()
}

// Root returns the current root widget.
func (r *Runtime) Root() core.Widget {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.root
}

// Tree returns the persisted tree.
func (r *Runtime) Tree() *core.Tree {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tree
}

// Rebuild asks the app for a new view, as after a message.
func (r *Runtime) Rebuild() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rebuildLocked()
}

// Stats returns the counters so far.
func (r *Runtime) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Theme returns the drawing theme.
func (r *Runtime) Theme() *theme.ThemeData {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.theme
}
