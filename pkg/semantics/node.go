package semantics

import (
	"fmt"
	"strings"

	"github.com/go-drift/mousearea/pkg/graphics"
)

// SemanticsNode represents a node in the semantics tree.
type SemanticsNode struct {
	// ID uniquely identifies this node within one collection.
	ID int64

	// Rect is the bounding rectangle in global coordinates.
	Rect graphics.Rect

	// Config contains the semantic configuration.
	Config SemanticsConfiguration

	// Children are the child nodes.
	Children []*SemanticsNode
}

// Walk visits n and its descendants depth first. Returning false stops the
// walk below that node.
func (n *SemanticsNode) Walk(visit func(*SemanticsNode) bool) {
	if n == nil || !visit(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// Labels returns every non-empty label in depth-first order.
func (n *SemanticsNode) Labels() []string {
	var out []string
	n.Walk(func(node *SemanticsNode) bool {
		if node.Config.Label != "" {
			out = append(out, node.Config.Label)
		}
		return true
	})
	return out
}

// String renders the subtree as an indented outline, one node per line.
func (n *SemanticsNode) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *SemanticsNode) write(sb *strings.Builder, depth int) {
	if n == nil {
		return
	}
	fmt.Fprintf(sb, "%s%s", strings.Repeat("  ", depth), n.Config.Role)
	if n.Config.Label != "" {
		fmt.Fprintf(sb, " %q", n.Config.Label)
	}
	if n.Config.Flags.Has(SemanticsIsPressed) {
		sb.WriteString(" pressed")
	}
	sb.WriteString("\n")
	for _, child := range n.Children {
		child.write(sb, depth+1)
	}
}

// Collector is an Operation that builds a SemanticsNode tree from whatever a
// widget tree reports.
type Collector struct {
	root   *SemanticsNode
	stack  []*SemanticsNode
	nextID int64
}

// NewCollector returns a collector whose root group spans bounds.
func NewCollector(bounds graphics.Rect) *Collector {
	c := &Collector{}
	c.root = c.newNode(bounds, SemanticsConfiguration{Role: SemanticsRoleGroup})
	c.stack = []*SemanticsNode{c.root}
	return c
}

// Root returns the collected tree.
func (c *Collector) Root() *SemanticsNode {
	return c.root
}

func (c *Collector) newNode(bounds graphics.Rect, config SemanticsConfiguration) *SemanticsNode {
	c.nextID++
	return &SemanticsNode{ID: c.nextID, Rect: bounds, Config: config}
}

func (c *Collector) top() *SemanticsNode {
	return c.stack[len(c.stack)-1]
}

func (c *Collector) add(node *SemanticsNode) {
	parent := c.top()
	parent.Children = append(parent.Children, node)
}

// Container opens a group node and walks its children inside it.
func (c *Collector) Container(id string, bounds graphics.Rect, visit func(Operation)) {
	node := c.newNode(bounds, SemanticsConfiguration{Role: SemanticsRoleGroup, Label: id})
	c.add(node)
	c.stack = append(c.stack, node)
	visit(c)
	c.stack = c.stack[:len(c.stack)-1]
	// Unlabelled groups with a single child collapse into that child.
	if id == "" && len(node.Children) == 1 {
		parent := c.top()
		parent.Children[len(parent.Children)-1] = node.Children[0]
	}
}

// Semantics records a described node.
func (c *Collector) Semantics(bounds graphics.Rect, config SemanticsConfiguration) {
	if config.IsEmpty() {
		return
	}
	config.EnsureFocusable()
	c.add(c.newNode(bounds, config))
}

// Text records a text node.
func (c *Collector) Text(id string, bounds graphics.Rect, text string) {
	if text == "" {
		return
	}
	c.add(c.newNode(bounds, SemanticsConfiguration{Role: SemanticsRoleText, Label: text}))
}
