package core

import (
	"fmt"
	"reflect"

	"github.com/go-drift/mousearea/pkg/errors"
)

// Tag identifies the type of state a widget persists. Two widgets with equal
// tags may share a tree position across frames.
type Tag struct {
	typ reflect.Type
}

// NoTag is the tag of widgets without persisted state.
var NoTag = Tag{}

// TagOf returns the tag for state of type T.
func TagOf[T any]() Tag {
	return Tag{typ: reflect.TypeOf((*T)(nil)).Elem()}
}

func (t Tag) String() string {
	if t.typ == nil {
		return "none"
	}
	return t.typ.String()
}

// Tree is the persisted record of one tree position: the tag and state of
// the widget mounted there, and the trees of its children.
type Tree struct {
	Tag      Tag
	State    any
	Children []*Tree
}

// NewTree mounts w at a fresh position.
func NewTree(w Widget) *Tree {
	return &Tree{
		Tag:      w.Tag(),
		State:    w.State(),
		Children: w.Children(),
	}
}

// Diff reconciles the position with w. When the tag matches, the persisted
// state is kept and w diffs its own children; otherwise the position is
// recreated from scratch and the old state is dropped.
func (t *Tree) Diff(w Widget) {
	if t.Tag == w.Tag() {
		w.Diff(t)
		return
	}
	*t = *NewTree(w)
}

// DiffChildren reconciles child positions with widgets by index. Surplus
// positions are dropped and missing ones are mounted.
func (t *Tree) DiffChildren(widgets []Widget) {
	if len(t.Children) > len(widgets) {
		t.Children = t.Children[:len(widgets)]
	}
	for i, w := range widgets {
		if i < len(t.Children) {
			t.Children[i].Diff(w)
			continue
		}
		t.Children = append(t.Children, NewTree(w))
	}
}

// Only returns the single child tree of a position owned by a widget that
// always reports exactly one child. Any other count is a broken invariant and
// panics with *errors.ArityError.
func (t *Tree) Only(owner Widget) *Tree {
	if len(t.Children) != 1 {
		panic(&errors.ArityError{
			Widget: fmt.Sprintf("%T", owner),
			Want:   1,
			Got:    len(t.Children),
		})
	}
	return t.Children[0]
}

// StateOf returns the persisted state of tree as *T. A mismatch means the
// host paired the tree with the wrong widget and panics.
func StateOf[T any](tree *Tree) *T {
	state, ok := tree.State.(*T)
	if !ok {
		panic(&errors.FrameError{
			Op:   "core.StateOf",
			Kind: errors.KindStructure,
			Err:  fmt.Errorf("tree state is %T, want *%s", tree.State, reflect.TypeOf((*T)(nil)).Elem()),
		})
	}
	return state
}
