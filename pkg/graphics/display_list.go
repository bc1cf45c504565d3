package graphics

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpSave OpKind = iota
	OpRestore
	OpTranslate
	OpClipRect
	OpRect
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpSave:
		return "save"
	case OpRestore:
		return "restore"
	case OpTranslate:
		return "translate"
	case OpClipRect:
		return "clipRect"
	case OpRect:
		return "rect"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// DisplayOp is one recorded drawing operation. Only the fields relevant to
// Kind are set.
type DisplayOp struct {
	Kind   OpKind
	Rect   Rect
	Offset Offset
	Paint  Paint
	Text   string
	Style  TextStyle
}

func (op DisplayOp) execute(canvas Canvas) {
	switch op.Kind {
	case OpSave:
		canvas.Save()
	case OpRestore:
		canvas.Restore()
	case OpTranslate:
		canvas.Translate(op.Offset.X, op.Offset.Y)
	case OpClipRect:
		canvas.ClipRect(op.Rect)
	case OpRect:
		canvas.DrawRect(op.Rect, op.Paint)
	case OpText:
		canvas.DrawText(op.Text, op.Offset, op.Style)
	}
}

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []DisplayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Ops returns a copy of the recorded operations.
func (d *DisplayList) Ops() []DisplayOp {
	ops := make([]DisplayOp, len(d.ops))
	copy(ops, d.ops)
	return ops
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []DisplayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]DisplayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op DisplayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(DisplayOp{Kind: OpSave})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(DisplayOp{Kind: OpRestore})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(DisplayOp{Kind: OpTranslate, Offset: Offset{X: dx, Y: dy}})
}

func (c *recordingCanvas) ClipRect(rect Rect) {
	c.recorder.append(DisplayOp{Kind: OpClipRect, Rect: rect})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(DisplayOp{Kind: OpRect, Rect: rect, Paint: paint})
}

func (c *recordingCanvas) DrawText(text string, position Offset, style TextStyle) {
	c.recorder.append(DisplayOp{Kind: OpText, Text: text, Offset: position, Style: style})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}
