package semantics

import "github.com/go-drift/mousearea/pkg/graphics"

// Operation is a visitor carried through a widget tree. Each widget reports
// itself to the operation and decides which children to walk.
type Operation interface {
	// Container reports a node that groups children. visit walks them with
	// the operation that should observe them.
	Container(id string, bounds graphics.Rect, visit func(Operation))

	// Semantics reports a node's accessibility description.
	Semantics(bounds graphics.Rect, config SemanticsConfiguration)

	// Text reports visible text.
	Text(id string, bounds graphics.Rect, text string)
}
