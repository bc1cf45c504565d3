package core

import (
	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/layout"
	"github.com/go-drift/mousearea/pkg/theme"
)

// Style carries inherited drawing defaults.
type Style struct {
	TextColor graphics.Color
}

// DrawContext is everything a widget needs to paint itself.
type DrawContext struct {
	Canvas   graphics.Canvas
	Theme    *theme.ThemeData
	Style    Style
	Viewport graphics.Rect
}

// Overlay is floating content a widget anchors at its own position, drawn
// above the rest of the tree.
type Overlay interface {
	// Layout sizes the overlay within the surface and places it near anchor.
	Layout(surface graphics.Size, anchor graphics.Offset) *layout.Node

	// Draw paints the overlay.
	Draw(ctx *DrawContext, l layout.Layout, cursor graphics.Offset)

	// OnEvent handles an event before the main tree sees it.
	OnEvent(event gestures.PointerEvent, l layout.Layout, cursor graphics.Offset, shell *Shell) Status
}
