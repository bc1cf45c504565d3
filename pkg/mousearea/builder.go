package mousearea

import (
	"reflect"

	"github.com/go-drift/mousearea/pkg/core"
)

// ContentBuilder produces the subtree shown for a MouseState. Build must be
// deterministic and free of side effects.
type ContentBuilder interface {
	Build(state MouseState) core.Widget
}

// BuilderFunc adapts a plain function to ContentBuilder.
type BuilderFunc func(state MouseState) core.Widget

// Build calls f.
func (f BuilderFunc) Build(state MouseState) core.Widget {
	return f(state)
}

// Builder is a ContentBuilder with its captured inputs spelled out. Keeping
// Params separate from View gives builders a well-defined identity: two
// builders are equal when their params are equal and they share a view
// function. A MouseArea rebuilt with an equal Builder keeps the content
// cached by its predecessor instead of building it again.
type Builder[P comparable] struct {
	Params P
	View   func(params P, state MouseState) core.Widget
}

// Build renders Params for state.
func (b Builder[P]) Build(state MouseState) core.Widget {
	return b.View(b.Params, state)
}

// Equal reports whether other is a Builder of the same params type with equal
// params and the same view function.
func (b Builder[P]) Equal(other ContentBuilder) bool {
	o, ok := other.(Builder[P])
	if !ok {
		return false
	}
	return b.Params == o.Params && sameFunc(b.View, o.View)
}

// equaler is a ContentBuilder that can tell when another one builds the
// same content.
type equaler interface {
	Equal(other ContentBuilder) bool
}

// sameBuilder reports whether a and b are known to build the same content.
// Plain functions have no identity and never match.
func sameBuilder(a, b ContentBuilder) bool {
	eq, ok := a.(equaler)
	return ok && eq.Equal(b)
}

func sameFunc(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.IsNil() || vb.IsNil() {
		return va.IsNil() && vb.IsNil()
	}
	return va.Pointer() == vb.Pointer()
}
