package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/layout"
)

// Axis represents the layout direction.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// CrossAxisAlignment controls where children sit across the flex axis.
type CrossAxisAlignment int

const (
	CrossAxisAlignmentStart CrossAxisAlignment = iota
	CrossAxisAlignmentCenter
	CrossAxisAlignmentEnd
)

// Flex lays children out one after another along Axis.
//
// Children whose main-axis policy is layout.Fill share the space left over by
// the others. A Flex fills along an axis when any child does.
type Flex struct {
	Axis           Axis
	Items          []core.Widget
	Spacing        float64
	CrossAlignment CrossAxisAlignment
	Padding        graphics.EdgeInsets
}

// RowOf lays children out horizontally.
func RowOf(children ...core.Widget) Flex {
	return Flex{Axis: AxisHorizontal, Items: children}
}

// ColumnOf lays children out vertically.
func ColumnOf(children ...core.Widget) Flex {
	return Flex{Axis: AxisVertical, Items: children}
}

// WithSpacing returns a copy with spacing between children.
func (f Flex) WithSpacing(spacing float64) Flex {
	f.Spacing = spacing
	return f
}

// WithPadding returns a copy with padding around the children.
func (f Flex) WithPadding(padding graphics.EdgeInsets) Flex {
	f.Padding = padding
	return f
}

// WithCrossAlignment returns a copy with the given cross-axis alignment.
func (f Flex) WithCrossAlignment(alignment CrossAxisAlignment) Flex {
	f.CrossAlignment = alignment
	return f
}

// Tag returns core.NoTag.
func (f Flex) Tag() core.Tag { return core.NoTag }

// State returns nil.
func (f Flex) State() any { return nil }

// Diff reconciles child positions by index.
func (f Flex) Diff(tree *core.Tree) {
	tree.DiffChildren(f.Items)
}

// Children mounts every child.
func (f Flex) Children() []*core.Tree {
	return childTrees(f.Items)
}

// Width fills when a child fills horizontally.
func (f Flex) Width() layout.Length {
	for _, child := range f.Items {
		if child.Width().Kind == layout.LengthFill {
			return layout.Fill
		}
	}
	return layout.Shrink
}

// Height fills when a child fills vertically.
func (f Flex) Height() layout.Length {
	for _, child := range f.Items {
		if child.Height().Kind == layout.LengthFill {
			return layout.Fill
		}
	}
	return layout.Shrink
}

func (f Flex) mainPolicy(child core.Widget) layout.Length {
	if f.Axis == AxisHorizontal {
		return child.Width()
	}
	return child.Height()
}

// main and cross split a size into flex axes.
func (f Flex) main(s graphics.Size) float64 {
	if f.Axis == AxisHorizontal {
		return s.Width
	}
	return s.Height
}

func (f Flex) cross(s graphics.Size) float64 {
	if f.Axis == AxisHorizontal {
		return s.Height
	}
	return s.Width
}

func (f Flex) size(main, cross float64) graphics.Size {
	if f.Axis == AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func (f Flex) offset(main, cross float64) graphics.Offset {
	if f.Axis == AxisHorizontal {
		return graphics.Offset{X: main, Y: cross}
	}
	return graphics.Offset{X: cross, Y: main}
}

// Layout measures non-filling children first, then splits the remaining
// main-axis space between filling ones.
func (f Flex) Layout(constraints layout.Constraints) *layout.Node {
	inner := constraints.Loosen().Deflate(f.Padding)
	maxMain := f.main(graphics.Size{Width: inner.MaxWidth, Height: inner.MaxHeight})
	maxCross := f.cross(graphics.Size{Width: inner.MaxWidth, Height: inner.MaxHeight})

	nodes := make([]*layout.Node, len(f.Items))
	spacing := 0.0
	if len(f.Items) > 1 {
		spacing = f.Spacing * float64(len(f.Items)-1)
	}

	used := spacing
	fills := 0
	for i, child := range f.Items {
		if f.mainPolicy(child).Kind == layout.LengthFill && !math.IsInf(maxMain, 1) {
			fills++
			continue
		}
		remaining := math.Max(0, maxMain-used)
		nodes[i] = child.Layout(layout.Loose(f.size(remaining, maxCross)))
		used += f.main(nodes[i].Size())
	}

	if fills > 0 {
		share := math.Max(0, maxMain-used) / float64(fills)
		for i, child := range f.Items {
			if nodes[i] != nil {
				continue
			}
			c := layout.Loose(f.size(share, maxCross))
			if f.Axis == AxisHorizontal {
				c.MinWidth = share
			} else {
				c.MinHeight = share
			}
			nodes[i] = child.Layout(c)
			used += f.main(nodes[i].Size())
		}
	}

	crossExtent := 0.0
	for _, node := range nodes {
		crossExtent = math.Max(crossExtent, f.cross(node.Size()))
	}

	pos := 0.0
	for _, node := range nodes {
		c := 0.0
		switch f.CrossAlignment {
		case CrossAxisAlignmentCenter:
			c = (crossExtent - f.cross(node.Size())) / 2
		case CrossAxisAlignmentEnd:
			c = crossExtent - f.cross(node.Size())
		}
		node.Move(f.offset(pos, c).Add(graphics.Offset{X: f.Padding.Left, Y: f.Padding.Top}))
		pos += f.main(node.Size()) + f.Spacing
	}

	intrinsic := f.size(used, crossExtent)
	intrinsic.Width += f.Padding.Horizontal()
	intrinsic.Height += f.Padding.Vertical()
	return layout.WithChildren(constraints.Resolve(f.Width(), f.Height(), intrinsic), nodes...)
}

// Draw paints every child.
func (f Flex) Draw(tree *core.Tree, ctx *core.DrawContext, l layout.Layout, cursor graphics.Offset) {
	zip(f.Items, tree, l, func(child core.Widget, tree *core.Tree, l layout.Layout) bool {
		child.Draw(tree, ctx, l, cursor)
		return true
	})
}

// OnEvent offers the event to every child and merges their statuses.
func (f Flex) OnEvent(tree *core.Tree, event gestures.PointerEvent, l layout.Layout, cursor graphics.Offset, shell *core.Shell) core.Status {
	status := core.StatusIgnored
	zip(f.Items, tree, l, func(child core.Widget, tree *core.Tree, l layout.Layout) bool {
		status = status.Merge(child.OnEvent(tree, event, l, cursor, shell))
		return true
	})
	return status
}

// MouseInteraction returns the first child preference that is not idle.
func (f Flex) MouseInteraction(tree *core.Tree, l layout.Layout, cursor graphics.Offset, viewport graphics.Rect) core.Interaction {
	interaction := core.InteractionIdle
	zip(f.Items, tree, l, func(child core.Widget, tree *core.Tree, l layout.Layout) bool {
		interaction = child.MouseInteraction(tree, l, cursor, viewport)
		return interaction == core.InteractionIdle
	})
	return interaction
}

// Operate reports an anonymous group around the children.
func (f Flex) Operate(tree *core.Tree, l layout.Layout, op core.Operation) {
	op.Container("", l.Bounds(), func(op core.Operation) {
		zip(f.Items, tree, l, func(child core.Widget, tree *core.Tree, l layout.Layout) bool {
			child.Operate(tree, l, op)
			return true
		})
	})
}

// Overlay returns the first child overlay.
func (f Flex) Overlay(tree *core.Tree, l layout.Layout) core.Overlay {
	var overlay core.Overlay
	zip(f.Items, tree, l, func(child core.Widget, tree *core.Tree, l layout.Layout) bool {
		overlay = child.Overlay(tree, l)
		return overlay == nil
	})
	return overlay
}
