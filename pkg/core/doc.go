// Package core defines the contract between a retained widget tree and the
// host that drives it.
//
// A Widget is a description of one node. The host keeps a Tree alongside the
// widgets: one Tree per tree position, holding the state that must survive
// from frame to frame and the trees of the node's children. Widgets are
// rebuilt freely; Trees persist as long as the position keeps a widget with
// the same Tag.
//
// # Frame Protocol
//
// Each frame the host:
//
//  1. Diffs the widget tree into the persisted Tree (Tree.Diff).
//  2. Lays the root out under the surface constraints, if the previous frame
//     left the layout invalid.
//  3. Draws the root at its assigned layout.
//
// Pointer input is delivered through OnEvent with the node's assigned Layout
// and a Shell. Widgets call Shell.InvalidateLayout when the geometry the host
// measured for them is no longer valid, and Shell.Publish to hand messages to
// the application.
//
// # Leaf Widgets
//
// Leaves embed WidgetBase to inherit neutral defaults and override what they
// need:
//
//	type Label struct {
//	    core.WidgetBase
//	    Text string
//	}
//
//	func (l Label) Layout(c layout.Constraints) *layout.Node { ... }
//	func (l Label) Draw(tree *core.Tree, ctx *core.DrawContext, lay layout.Layout, cursor graphics.Offset) { ... }
//
// Widgets that keep per-position state return a distinct Tag and an initial
// value from State, then read it back with StateOf.
package core
