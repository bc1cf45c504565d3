package mousearea

import (
	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/layout"
)

// MouseArea shows the content its builder produces for the current pointer
// state. It has exactly one child: the cached content.
type MouseArea struct {
	content Resolver
}

var _ core.Widget = (*MouseArea)(nil)

// New returns a MouseArea that renders content with builder.
func New(builder ContentBuilder) *MouseArea {
	return &MouseArea{content: Resolver{builder: builder}}
}

// NewFunc returns a MouseArea that renders content with fn.
func NewFunc(fn func(state MouseState) core.Widget) *MouseArea {
	return New(BuilderFunc(fn))
}

// Content exposes the content cache.
func (m *MouseArea) Content() *Resolver {
	return &m.content
}

// Tag returns the tag of State.
func (m *MouseArea) Tag() core.Tag {
	return core.TagOf[State]()
}

// State returns a fresh State: not hovered, not pressed.
func (m *MouseArea) State() any {
	return &State{owner: &m.content}
}

// Diff brings the content in line with the persisted pointer state, then
// reconciles the single child position with it. When the previous MouseArea
// at this position had an equal builder, its cached content is reused.
func (m *MouseArea) Diff(tree *core.Tree) {
	state := core.StateOf[State](tree)
	m.content.takeOver(state.owner)
	state.owner = &m.content
	m.content.Update(state.Mouse)
	tree.DiffChildren([]core.Widget{m.content.Resolve()})
}

// Children mounts the current content.
func (m *MouseArea) Children() []*core.Tree {
	return []*core.Tree{core.NewTree(m.content.Resolve())}
}

// Width is the content's width policy.
func (m *MouseArea) Width() layout.Length {
	return m.content.Resolve().Width()
}

// Height is the content's height policy.
func (m *MouseArea) Height() layout.Length {
	return m.content.Resolve().Height()
}

// Layout is the content's layout. The MouseArea takes exactly the content's
// bounds.
func (m *MouseArea) Layout(constraints layout.Constraints) *layout.Node {
	return m.content.Resolve().Layout(constraints)
}

// Draw paints the content.
func (m *MouseArea) Draw(tree *core.Tree, ctx *core.DrawContext, l layout.Layout, cursor graphics.Offset) {
	m.content.Resolve().Draw(tree.Only(m), ctx, l, cursor)
}

// OnEvent updates hover and press from the event, rebuilds the content if
// that changed the state, and forwards the event to the content. When the
// content changes, the layout is invalidated once and the child position is
// reconciled before the event is forwarded. The status is the content's.
//
// The event reaches the content with the layout measured for the previous
// content; the host re-lays out before the next draw.
func (m *MouseArea) OnEvent(tree *core.Tree, event gestures.PointerEvent, l layout.Layout, cursor graphics.Offset, shell *core.Shell) core.Status {
	state := core.StateOf[State](tree)
	next := state.Track(event, l.Bounds(), cursor)
	if m.content.Update(next) {
		shell.InvalidateLayout()
		tree.DiffChildren([]core.Widget{m.content.Resolve()})
	}
	return m.content.Resolve().OnEvent(tree.Only(m), event, l, cursor, shell)
}

// MouseInteraction is the content's interaction.
func (m *MouseArea) MouseInteraction(tree *core.Tree, l layout.Layout, cursor graphics.Offset, viewport graphics.Rect) core.Interaction {
	return m.content.Resolve().MouseInteraction(tree.Only(m), l, cursor, viewport)
}

// Operate walks op through the content.
func (m *MouseArea) Operate(tree *core.Tree, l layout.Layout, op core.Operation) {
	m.content.Resolve().Operate(tree.Only(m), l, op)
}

// Overlay is the content's overlay.
func (m *MouseArea) Overlay(tree *core.Tree, l layout.Layout) core.Overlay {
	return m.content.Resolve().Overlay(tree.Only(m), l)
}
