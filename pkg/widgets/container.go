package widgets

import (
	"math"

	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/layout"
)

// Container pads an optional child, fills its bounds with a background color,
// and can request a cursor over its area.
//
// Without sizing policies, Container sizes to its child plus padding.
//
//	Container{
//	    Color:       graphics.RGB(0xEE, 0xEE, 0xEE),
//	    Padding:     graphics.EdgeInsetsAll(8),
//	    Sizing:      layout.Sizing{Width: layout.Fill},
//	    ChildWidget: Text{Content: "Hello"},
//	}
type Container struct {
	ChildWidget core.Widget
	Padding     graphics.EdgeInsets
	Sizing      layout.Sizing
	// Color is the background. Zero paints nothing.
	Color graphics.Color
	// Cursor is reported while the cursor is over the container and the
	// child has no preference of its own.
	Cursor core.Interaction
	// ID names the container for semantics walks.
	ID string
}

// Tag returns core.NoTag.
func (c Container) Tag() core.Tag { return core.NoTag }

// State returns nil.
func (c Container) State() any { return nil }

// Diff reconciles the child position.
func (c Container) Diff(tree *core.Tree) {
	tree.DiffChildren(single(c.ChildWidget))
}

// Children mounts the child, if any.
func (c Container) Children() []*core.Tree {
	return childTrees(single(c.ChildWidget))
}

// Width returns the horizontal policy.
func (c Container) Width() layout.Length { return c.Sizing.Width }

// Height returns the vertical policy.
func (c Container) Height() layout.Length { return c.Sizing.Height }

// Layout lays the child out inside the padding and sizes the container
// around it.
func (c Container) Layout(constraints layout.Constraints) *layout.Node {
	if c.ChildWidget == nil {
		size := constraints.Resolve(c.Sizing.Width, c.Sizing.Height, graphics.Size{
			Width:  c.Padding.Horizontal(),
			Height: c.Padding.Vertical(),
		})
		return layout.NewNode(size)
	}

	inner := constraints.Loosen()
	if c.Sizing.Width.Kind == layout.LengthFixed {
		inner.MaxWidth = math.Min(inner.MaxWidth, c.Sizing.Width.Value)
	}
	if c.Sizing.Height.Kind == layout.LengthFixed {
		inner.MaxHeight = math.Min(inner.MaxHeight, c.Sizing.Height.Value)
	}
	inner = inner.Deflate(c.Padding)

	child := c.ChildWidget.Layout(inner)
	child.Move(graphics.Offset{X: c.Padding.Left, Y: c.Padding.Top})
	intrinsic := graphics.Size{
		Width:  child.Size().Width + c.Padding.Horizontal(),
		Height: child.Size().Height + c.Padding.Vertical(),
	}
	size := constraints.Resolve(c.Sizing.Width, c.Sizing.Height, intrinsic)
	return layout.WithChildren(size, child)
}

// Draw fills the background and paints the child clipped to the bounds.
func (c Container) Draw(tree *core.Tree, ctx *core.DrawContext, l layout.Layout, cursor graphics.Offset) {
	bounds := l.Bounds()
	if c.Color.Alpha() != 0 {
		ctx.Canvas.DrawRect(bounds, graphics.FillPaint(c.Color))
	}
	ctx.Canvas.Save()
	ctx.Canvas.ClipRect(bounds)
	zip(single(c.ChildWidget), tree, l, func(child core.Widget, tree *core.Tree, l layout.Layout) bool {
		child.Draw(tree, ctx, l, cursor)
		return true
	})
	ctx.Canvas.Restore()
}

// OnEvent forwards the event to the child.
func (c Container) OnEvent(tree *core.Tree, event gestures.PointerEvent, l layout.Layout, cursor graphics.Offset, shell *core.Shell) core.Status {
	status := core.StatusIgnored
	zip(single(c.ChildWidget), tree, l, func(child core.Widget, tree *core.Tree, l layout.Layout) bool {
		status = child.OnEvent(tree, event, l, cursor, shell)
		return true
	})
	return status
}

// MouseInteraction prefers the child's interaction, then Cursor.
func (c Container) MouseInteraction(tree *core.Tree, l layout.Layout, cursor graphics.Offset, viewport graphics.Rect) core.Interaction {
	interaction := core.InteractionIdle
	zip(single(c.ChildWidget), tree, l, func(child core.Widget, tree *core.Tree, l layout.Layout) bool {
		interaction = child.MouseInteraction(tree, l, cursor, viewport)
		return true
	})
	if interaction == core.InteractionIdle && l.Bounds().Contains(cursor) {
		return c.Cursor
	}
	return interaction
}

// Operate reports the container as a group around its child.
func (c Container) Operate(tree *core.Tree, l layout.Layout, op core.Operation) {
	op.Container(c.ID, l.Bounds(), func(op core.Operation) {
		zip(single(c.ChildWidget), tree, l, func(child core.Widget, tree *core.Tree, l layout.Layout) bool {
			child.Operate(tree, l, op)
			return true
		})
	})
}

// Overlay returns the child's overlay.
func (c Container) Overlay(tree *core.Tree, l layout.Layout) core.Overlay {
	var overlay core.Overlay
	zip(single(c.ChildWidget), tree, l, func(child core.Widget, tree *core.Tree, l layout.Layout) bool {
		overlay = child.Overlay(tree, l)
		return true
	})
	return overlay
}
