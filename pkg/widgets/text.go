package widgets

import (
	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/layout"
)

// Text displays a string on a single line per newline-separated segment.
//
//	Text{Content: "Buy milk"}
//	Text{Content: "Overdue", Color: graphics.ColorRed}
type Text struct {
	core.WidgetBase
	// Content is the text to display.
	Content string
	// Color overrides the inherited text color when non-zero.
	Color graphics.Color
	// ID names the text for semantics walks.
	ID string
}

func (t Text) style(ctx *core.DrawContext) graphics.TextStyle {
	color := t.Color
	if color == 0 {
		color = ctx.Style.TextColor
	}
	return graphics.TextStyle{Color: color}
}

// Layout sizes the text to its measured extent.
func (t Text) Layout(constraints layout.Constraints) *layout.Node {
	return layout.NewNode(constraints.Constrain(graphics.MeasureText(t.Content, graphics.TextStyle{})))
}

// Draw paints the text at the node's position.
func (t Text) Draw(tree *core.Tree, ctx *core.DrawContext, l layout.Layout, cursor graphics.Offset) {
	ctx.Canvas.DrawText(t.Content, l.Position(), t.style(ctx))
}

// Operate reports the text.
func (t Text) Operate(tree *core.Tree, l layout.Layout, op core.Operation) {
	op.Text(t.ID, l.Bounds(), t.Content)
}
