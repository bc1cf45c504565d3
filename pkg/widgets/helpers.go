package widgets

import (
	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/layout"
)

// VSpace returns a fixed-height gap.
func VSpace(height float64) Space {
	return Space{Sizing: layout.Sizing{Height: layout.Fixed(height)}}
}

// HSpace returns a fixed-width gap.
func HSpace(width float64) Space {
	return Space{Sizing: layout.Sizing{Width: layout.Fixed(width)}}
}

// childTrees mounts a position for each widget.
func childTrees(children []core.Widget) []*core.Tree {
	if len(children) == 0 {
		return nil
	}
	trees := make([]*core.Tree, len(children))
	for i, child := range children {
		trees[i] = core.NewTree(child)
	}
	return trees
}

// zip calls fn for each child that has both a tree and a layout node.
func zip(children []core.Widget, tree *core.Tree, l layout.Layout, fn func(child core.Widget, tree *core.Tree, l layout.Layout) bool) {
	nodes := l.Children()
	n := min(len(children), len(tree.Children), len(nodes))
	for i := 0; i < n; i++ {
		if !fn(children[i], tree.Children[i], nodes[i]) {
			return
		}
	}
}

// single wraps an optional child in a slice.
func single(child core.Widget) []core.Widget {
	if child == nil {
		return nil
	}
	return []core.Widget{child}
}
