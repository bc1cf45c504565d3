package ebitenhost

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/go-drift/mousearea/pkg/graphics"
)

type canvasState struct {
	origin graphics.Offset
	clip   image.Rectangle
}

// Canvas paints onto an ebiten image. Clips are kept as integer device
// rectangles and applied by drawing into sub-images.
type Canvas struct {
	dst   *ebiten.Image
	state canvasState
	stack []canvasState
	faces map[any]*text.GoXFace
}

// NewCanvas wraps dst.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{
		dst:   dst,
		state: canvasState{clip: dst.Bounds()},
		faces: make(map[any]*text.GoXFace),
	}
}

// Reset retargets the canvas at dst and clears its state stack.
func (c *Canvas) Reset(dst *ebiten.Image) {
	c.dst = dst
	c.state = canvasState{clip: dst.Bounds()}
	c.stack = c.stack[:0]
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(dx, dy float64) {
	c.state.origin = c.state.origin.Add(graphics.Offset{X: dx, Y: dy})
}

func (c *Canvas) ClipRect(rect graphics.Rect) {
	c.state.clip = c.state.clip.Intersect(c.device(rect))
}

func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	target := c.target()
	if target == nil {
		return
	}
	x := float32(rect.Left + c.state.origin.X)
	y := float32(rect.Top + c.state.origin.Y)
	w := float32(rect.Width())
	h := float32(rect.Height())
	if paint.Style == graphics.PaintStyleStroke {
		width := paint.StrokeWidth
		if width <= 0 {
			width = 1
		}
		vector.StrokeRect(target, x, y, w, h, float32(width), paint.Color.NRGBA(), false)
		return
	}
	vector.DrawFilledRect(target, x, y, w, h, paint.Color.NRGBA(), false)
}

func (c *Canvas) DrawText(s string, position graphics.Offset, style graphics.TextStyle) {
	target := c.target()
	if target == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(position.X+c.state.origin.X, position.Y+c.state.origin.Y)
	op.ColorScale.ScaleWithColor(style.Color.NRGBA())
	op.LineSpacing = style.LineHeight()
	text.Draw(target, s, c.face(style), op)
}

func (c *Canvas) Size() graphics.Size {
	b := c.dst.Bounds()
	return graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *Canvas) face(style graphics.TextStyle) *text.GoXFace {
	key := any(style.FontFace())
	if face, ok := c.faces[key]; ok {
		return face
	}
	face := text.NewGoXFace(style.FontFace())
	c.faces[key] = face
	return face
}

// target returns the clipped destination, or nil when the clip is empty.
func (c *Canvas) target() *ebiten.Image {
	if c.state.clip.Empty() {
		return nil
	}
	if c.state.clip == c.dst.Bounds() {
		return c.dst
	}
	return c.dst.SubImage(c.state.clip).(*ebiten.Image)
}

func (c *Canvas) device(rect graphics.Rect) image.Rectangle {
	o := c.state.origin
	return image.Rect(
		int(rect.Left+o.X), int(rect.Top+o.Y),
		int(rect.Right+o.X+0.5), int(rect.Bottom+o.Y+0.5),
	)
}
