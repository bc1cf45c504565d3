package core

import (
	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/layout"
	"github.com/go-drift/mousearea/pkg/semantics"
)

// Operation is a visitor walked through the tree by Operate.
type Operation = semantics.Operation

// Widget is one node of the tree, as seen by the host.
type Widget interface {
	// Tag identifies the type of state this widget persists at its position.
	Tag() Tag

	// State returns the initial persisted state for a freshly mounted
	// position. Widgets without state return nil.
	State() any

	// Diff reconciles the persisted tree with this widget, including its
	// children.
	Diff(tree *Tree)

	// Children returns fresh trees for this widget's children.
	Children() []*Tree

	// Width returns the horizontal sizing policy.
	Width() layout.Length

	// Height returns the vertical sizing policy.
	Height() layout.Length

	// Layout computes this node's size and its children's placement.
	Layout(constraints layout.Constraints) *layout.Node

	// Draw paints the node at its assigned layout.
	Draw(tree *Tree, ctx *DrawContext, l layout.Layout, cursor graphics.Offset)

	// OnEvent handles a pointer event. It reports StatusCaptured only when
	// the event must not reach other nodes.
	OnEvent(tree *Tree, event gestures.PointerEvent, l layout.Layout, cursor graphics.Offset, shell *Shell) Status

	// MouseInteraction reports the cursor affordance the node wants.
	MouseInteraction(tree *Tree, l layout.Layout, cursor graphics.Offset, viewport graphics.Rect) Interaction

	// Operate walks op through the node and its children.
	Operate(tree *Tree, l layout.Layout, op Operation)

	// Overlay returns floating content anchored at this node, or nil.
	Overlay(tree *Tree, l layout.Layout) Overlay
}

// WidgetBase provides neutral defaults for leaf widgets. Embed it and
// override the methods the widget needs.
type WidgetBase struct{}

// Tag returns NoTag.
func (WidgetBase) Tag() Tag { return NoTag }

// State returns nil.
func (WidgetBase) State() any { return nil }

// Diff drops any child trees.
func (WidgetBase) Diff(tree *Tree) { tree.DiffChildren(nil) }

// Children returns no trees.
func (WidgetBase) Children() []*Tree { return nil }

// Width returns layout.Shrink.
func (WidgetBase) Width() layout.Length { return layout.Shrink }

// Height returns layout.Shrink.
func (WidgetBase) Height() layout.Length { return layout.Shrink }

// Layout returns an empty node.
func (WidgetBase) Layout(constraints layout.Constraints) *layout.Node {
	return layout.NewNode(constraints.Constrain(graphics.Size{}))
}

// Draw paints nothing.
func (WidgetBase) Draw(tree *Tree, ctx *DrawContext, l layout.Layout, cursor graphics.Offset) {}

// OnEvent ignores the event.
func (WidgetBase) OnEvent(tree *Tree, event gestures.PointerEvent, l layout.Layout, cursor graphics.Offset, shell *Shell) Status {
	return StatusIgnored
}

// MouseInteraction returns InteractionIdle.
func (WidgetBase) MouseInteraction(tree *Tree, l layout.Layout, cursor graphics.Offset, viewport graphics.Rect) Interaction {
	return InteractionIdle
}

// Operate reports nothing.
func (WidgetBase) Operate(tree *Tree, l layout.Layout, op Operation) {}

// Overlay returns nil.
func (WidgetBase) Overlay(tree *Tree, l layout.Layout) Overlay { return nil }
