package widgets

import (
	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/layout"
)

// Space is empty room with the given sizing policies.
type Space struct {
	core.WidgetBase
	Sizing layout.Sizing
}

// Width returns the horizontal policy.
func (s Space) Width() layout.Length { return s.Sizing.Width }

// Height returns the vertical policy.
func (s Space) Height() layout.Length { return s.Sizing.Height }

// Layout resolves the policies against an empty intrinsic size.
func (s Space) Layout(constraints layout.Constraints) *layout.Node {
	return layout.NewNode(constraints.Resolve(s.Sizing.Width, s.Sizing.Height, graphics.Size{}))
}
