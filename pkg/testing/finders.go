package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/mousearea/pkg/semantics"
)

// Finder locates nodes in the semantics tree of what is displayed.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root *semantics.SemanticsNode) []*semantics.SemanticsNode
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*semantics.SemanticsNode
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *semantics.SemanticsNode {
	if len(r.nodes) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no nodes: %s", desc))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *semantics.SemanticsNode {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*semantics.SemanticsNode {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// Find evaluates a finder against the current semantics tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	root := t.Semantics()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{nodes: finder.Evaluate(root), finder: finder}
}

// predicateFinder matches nodes satisfying a predicate.
type predicateFinder struct {
	fn   func(*semantics.SemanticsNode) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *semantics.SemanticsNode) []*semantics.SemanticsNode {
	var out []*semantics.SemanticsNode
	root.Walk(func(n *semantics.SemanticsNode) bool {
		if f.fn(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(desc string, fn func(*semantics.SemanticsNode) bool) Finder {
	return &predicateFinder{fn: fn, desc: desc}
}

// ByText matches nodes whose label equals text: text widgets, buttons, and
// named containers.
func ByText(text string) Finder {
	return ByPredicate(fmt.Sprintf("ByText(%q)", text), func(n *semantics.SemanticsNode) bool {
		return n.Config.Label == text
	})
}

// ByTextContaining matches nodes whose label contains substring.
func ByTextContaining(substring string) Finder {
	return ByPredicate(fmt.Sprintf("ByTextContaining(%q)", substring), func(n *semantics.SemanticsNode) bool {
		return strings.Contains(n.Config.Label, substring)
	})
}

// ByRole matches nodes with the given role.
func ByRole(role semantics.SemanticsRole) Finder {
	return ByPredicate(fmt.Sprintf("ByRole(%s)", role), func(n *semantics.SemanticsNode) bool {
		return n.Config.Role == role
	})
}

// ByID matches groups reported with the given id.
func ByID(id string) Finder {
	return ByPredicate(fmt.Sprintf("ByID(%q)", id), func(n *semantics.SemanticsNode) bool {
		return n.Config.Role == semantics.SemanticsRoleGroup && n.Config.Label == id
	})
}
