package layout

import "github.com/go-drift/mousearea/pkg/graphics"

// Node is the result of laying out one widget: its size, its offset inside
// the parent, and the nodes of its children.
type Node struct {
	size     graphics.Size
	offset   graphics.Offset
	children []*Node
}

// NewNode creates a leaf node of the given size.
func NewNode(size graphics.Size) *Node {
	return &Node{size: size}
}

// WithChildren creates a node that owns child nodes.
func WithChildren(size graphics.Size, children ...*Node) *Node {
	return &Node{size: size, children: children}
}

// Size returns the laid out size.
func (n *Node) Size() graphics.Size {
	return n.size
}

// Offset returns the position relative to the parent node.
func (n *Node) Offset() graphics.Offset {
	return n.offset
}

// Move sets the position relative to the parent node.
func (n *Node) Move(offset graphics.Offset) {
	n.offset = offset
}

// Children returns the child nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// Layout is a positioned, read-only view of a Node. It resolves absolute
// bounds by accumulating parent offsets.
type Layout struct {
	node   *Node
	origin graphics.Offset
}

// NewLayout returns the root view of node placed at origin.
func NewLayout(node *Node, origin graphics.Offset) Layout {
	return Layout{node: node, origin: origin}
}

// Node returns the underlying node.
func (l Layout) Node() *Node {
	return l.node
}

// Position returns the absolute top-left corner.
func (l Layout) Position() graphics.Offset {
	if l.node == nil {
		return l.origin
	}
	return l.origin.Add(l.node.offset)
}

// Bounds returns the absolute rectangle assigned to the node.
func (l Layout) Bounds() graphics.Rect {
	if l.node == nil {
		return graphics.Rect{}
	}
	return graphics.RectFromOffsetSize(l.Position(), l.node.size)
}

// Children returns views over the child nodes.
func (l Layout) Children() []Layout {
	if l.node == nil || len(l.node.children) == 0 {
		return nil
	}
	pos := l.Position()
	out := make([]Layout, len(l.node.children))
	for i, child := range l.node.children {
		out[i] = Layout{node: child, origin: pos}
	}
	return out
}
