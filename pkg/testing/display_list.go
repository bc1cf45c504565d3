package testing

import (
	"math"

	"github.com/go-drift/mousearea/pkg/graphics"
)

// DisplayOp is a recorded drawing operation in snapshot form. Coordinates are
// rounded to two decimals so snapshots are stable across platforms.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	ops := dl.Ops()
	out := make([]DisplayOp, 0, len(ops))
	for _, op := range ops {
		out = append(out, serializeOp(op))
	}
	return out
}

func serializeOp(op graphics.DisplayOp) DisplayOp {
	switch op.Kind {
	case graphics.OpTranslate:
		return DisplayOp{Op: "translate", Params: map[string]any{
			"dx": round2(op.Offset.X),
			"dy": round2(op.Offset.Y),
		}}
	case graphics.OpClipRect:
		return DisplayOp{Op: "clipRect", Params: map[string]any{"rect": serializeRect(op.Rect)}}
	case graphics.OpRect:
		name := "drawRect"
		if op.Paint.Style == graphics.PaintStyleStroke {
			name = "strokeRect"
		}
		return DisplayOp{Op: name, Params: map[string]any{
			"rect":  serializeRect(op.Rect),
			"color": op.Paint.Color.String(),
		}}
	case graphics.OpText:
		return DisplayOp{Op: "drawText", Params: map[string]any{
			"text":  op.Text,
			"x":     round2(op.Offset.X),
			"y":     round2(op.Offset.Y),
			"color": op.Style.Color.String(),
		}}
	default:
		return DisplayOp{Op: op.Kind.String()}
	}
}

func serializeRect(r graphics.Rect) [4]float64 {
	return [4]float64{round2(r.Left), round2(r.Top), round2(r.Right), round2(r.Bottom)}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
