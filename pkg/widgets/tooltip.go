package widgets

import (
	"math"

	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/layout"
	"github.com/go-drift/mousearea/pkg/theme"
)

// Tooltip shows Text in a floating box below its child. It always offers the
// box as an overlay; wrap it in a MouseArea to show it only while hovered.
type Tooltip struct {
	ChildWidget core.Widget
	Text        string
	// Gap is the distance between the child and the box.
	Gap float64
}

var tooltipPadding = graphics.EdgeInsetsAll(4)

// Tag returns core.NoTag.
func (t Tooltip) Tag() core.Tag { return core.NoTag }

// State returns nil.
func (t Tooltip) State() any { return nil }

// Diff reconciles the child position.
func (t Tooltip) Diff(tree *core.Tree) { tree.DiffChildren(single(t.ChildWidget)) }

// Children mounts the child.
func (t Tooltip) Children() []*core.Tree { return childTrees(single(t.ChildWidget)) }

// Width is the child's width policy.
func (t Tooltip) Width() layout.Length {
	if t.ChildWidget == nil {
		return layout.Shrink
	}
	return t.ChildWidget.Width()
}

// Height is the child's height policy.
func (t Tooltip) Height() layout.Length {
	if t.ChildWidget == nil {
		return layout.Shrink
	}
	return t.ChildWidget.Height()
}

// Layout wraps the child's node so the tooltip occupies exactly its bounds.
func (t Tooltip) Layout(constraints layout.Constraints) *layout.Node {
	if t.ChildWidget == nil {
		return layout.NewNode(constraints.Constrain(graphics.Size{}))
	}
	child := t.ChildWidget.Layout(constraints)
	return layout.WithChildren(child.Size(), child)
}

// Draw paints the child.
func (t Tooltip) Draw(tree *core.Tree, ctx *core.DrawContext, l layout.Layout, cursor graphics.Offset) {
	zip(single(t.ChildWidget), tree, l, func(child core.Widget, tree *core.Tree, l layout.Layout) bool {
		child.Draw(tree, ctx, l, cursor)
		return true
	})
}

// OnEvent forwards to the child.
func (t Tooltip) OnEvent(tree *core.Tree, event gestures.PointerEvent, l layout.Layout, cursor graphics.Offset, shell *core.Shell) core.Status {
	status := core.StatusIgnored
	zip(single(t.ChildWidget), tree, l, func(child core.Widget, tree *core.Tree, l layout.Layout) bool {
		status = child.OnEvent(tree, event, l, cursor, shell)
		return true
	})
	return status
}

// MouseInteraction is the child's interaction.
func (t Tooltip) MouseInteraction(tree *core.Tree, l layout.Layout, cursor graphics.Offset, viewport graphics.Rect) core.Interaction {
	interaction := core.InteractionIdle
	zip(single(t.ChildWidget), tree, l, func(child core.Widget, tree *core.Tree, l layout.Layout) bool {
		interaction = child.MouseInteraction(tree, l, cursor, viewport)
		return true
	})
	return interaction
}

// Operate walks the child.
func (t Tooltip) Operate(tree *core.Tree, l layout.Layout, op core.Operation) {
	zip(single(t.ChildWidget), tree, l, func(child core.Widget, tree *core.Tree, l layout.Layout) bool {
		child.Operate(tree, l, op)
		return true
	})
}

// Overlay returns the tooltip box anchored below the child.
func (t Tooltip) Overlay(tree *core.Tree, l layout.Layout) core.Overlay {
	if t.Text == "" {
		return nil
	}
	return &tooltipOverlay{text: t.Text, target: l.Bounds(), gap: t.Gap}
}

type tooltipOverlay struct {
	text   string
	target graphics.Rect
	gap    float64
}

// Layout places the box under the target, shifted by anchor and kept inside
// the surface.
func (o *tooltipOverlay) Layout(surface graphics.Size, anchor graphics.Offset) *layout.Node {
	text := graphics.MeasureText(o.text, graphics.TextStyle{})
	size := graphics.Size{
		Width:  text.Width + tooltipPadding.Horizontal(),
		Height: text.Height + tooltipPadding.Vertical(),
	}
	x := o.target.Left + anchor.X
	y := o.target.Bottom + o.gap + anchor.Y
	if y+size.Height > surface.Height {
		y = o.target.Top + anchor.Y - o.gap - size.Height
	}
	x = math.Max(0, math.Min(x, surface.Width-size.Width))
	y = math.Max(0, y)

	node := layout.NewNode(size)
	node.Move(graphics.Offset{X: x, Y: y})
	return node
}

// Draw paints the box and text with the theme's surface colors.
func (o *tooltipOverlay) Draw(ctx *core.DrawContext, l layout.Layout, cursor graphics.Offset) {
	th := ctx.Theme
	if th == nil {
		th = theme.DefaultLightTheme()
	}
	bounds := l.Bounds()
	ctx.Canvas.DrawRect(bounds, graphics.FillPaint(th.ColorScheme.Surface))
	ctx.Canvas.DrawRect(bounds, graphics.Paint{Color: th.ColorScheme.Outline, Style: graphics.PaintStyleStroke, StrokeWidth: 1})
	origin := bounds.Origin().Add(graphics.Offset{X: tooltipPadding.Left, Y: tooltipPadding.Top})
	ctx.Canvas.DrawText(o.text, origin, graphics.TextStyle{Color: th.ColorScheme.OnSurface})
}

// OnEvent ignores events; tooltips are not interactive.
func (o *tooltipOverlay) OnEvent(event gestures.PointerEvent, l layout.Layout, cursor graphics.Offset, shell *core.Shell) core.Status {
	return core.StatusIgnored
}
