// Package ebitenhost runs an engine.Runtime in an ebiten window.
package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/engine"
	"github.com/go-drift/mousearea/pkg/errors"
	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
)

// Options configures the window.
type Options struct {
	Title  string
	Width  int
	Height int
	// OnEvent, when set, observes every delivered event and its status.
	OnEvent func(event gestures.PointerEvent, status core.Status)
}

// Game adapts a runtime to ebiten.Game.
type Game struct {
	runtime *engine.Runtime
	opts    Options
	input   *poller
	canvas  *Canvas
	events  []gestures.PointerEvent
	cursor  core.Interaction
}

// NewGame wraps runtime. The runtime is resized to the window on every
// layout pass.
func NewGame(runtime *engine.Runtime, opts Options) *Game {
	return &Game{
		runtime: runtime,
		opts:    opts,
		input:   newPoller(),
		cursor:  -1,
	}
}

// Update polls input and delivers it to the runtime.
func (g *Game) Update() (err error) {
	defer errors.RecoverInto("ebitenhost.Update", &err)
	if ferr := g.runtime.Err(); ferr != nil {
		return ferr
	}

	g.events = g.input.poll(g.events[:0], g.runtime.Surface())
	for _, event := range g.events {
		status, herr := g.runtime.HandlePointer(event)
		if herr != nil {
			return herr
		}
		if g.opts.OnEvent != nil {
			g.opts.OnEvent(event, status)
		}
	}

	if interaction := g.runtime.MouseInteraction(); interaction != g.cursor {
		ebiten.SetCursorShape(cursorShape(interaction))
		g.cursor = interaction
	}
	return nil
}

// Draw paints one frame. ebiten gives Draw no error return, so a failed
// frame is kept by the runtime and the next Update returns it.
func (g *Game) Draw(screen *ebiten.Image) {
	defer errors.Recover("ebitenhost.Draw")
	if g.canvas == nil {
		g.canvas = NewCanvas(screen)
	} else {
		g.canvas.Reset(screen)
	}
	_ = g.runtime.Frame(g.canvas)
}

// Layout keeps the logical surface equal to the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.runtime.Resize(graphics.Size{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(runtime *engine.Runtime, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("ebitenhost: invalid window size %dx%d", opts.Width, opts.Height)
	}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	runtime.Resize(graphics.Size{Width: float64(opts.Width), Height: float64(opts.Height)})
	return ebiten.RunGame(NewGame(runtime, opts))
}

func cursorShape(interaction core.Interaction) ebiten.CursorShapeType {
	switch interaction {
	case core.InteractionPointer:
		return ebiten.CursorShapePointer
	case core.InteractionGrab:
		return ebiten.CursorShapeMove
	case core.InteractionText:
		return ebiten.CursorShapeText
	case core.InteractionCrosshair:
		return ebiten.CursorShapeCrosshair
	case core.InteractionNotAllowed:
		return ebiten.CursorShapeNotAllowed
	default:
		return ebiten.CursorShapeDefault
	}
}
