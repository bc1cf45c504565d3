package widgets

import (
	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/layout"
	"github.com/go-drift/mousearea/pkg/semantics"
	"github.com/go-drift/mousearea/pkg/theme"
)

// Button is a labelled button that publishes OnPress when a primary press
// that started on it is released on it.
//
// Colors come from the theme's [theme.ButtonThemeData] unless overridden.
//
//	Button{Label: "Done", OnPress: DoneMsg{ID: 3}}
type Button struct {
	// Label is the text displayed on the button.
	Label string
	// OnPress is published through the shell when the button is pressed.
	// Nil publishes nothing.
	OnPress any
	// Disabled ignores presses and dims the button.
	Disabled bool
	// Color overrides the theme background when non-zero.
	Color graphics.Color
	// Padding around the label. Defaults to DefaultButtonPadding if zero.
	Padding graphics.EdgeInsets
	Sizing  layout.Sizing
}

// DefaultButtonPadding is used when Button.Padding is zero.
var DefaultButtonPadding = graphics.EdgeInsets{Left: 8, Top: 4, Right: 8, Bottom: 4}

type buttonState struct {
	pressed bool
}

func (b Button) padding() graphics.EdgeInsets {
	if b.Padding == (graphics.EdgeInsets{}) {
		return DefaultButtonPadding
	}
	return b.Padding
}

// Tag returns the tag of the button's press state.
func (b Button) Tag() core.Tag { return core.TagOf[buttonState]() }

// State returns an unpressed state.
func (b Button) State() any { return &buttonState{} }

// Diff keeps the press state. Buttons have no children.
func (b Button) Diff(tree *core.Tree) { tree.DiffChildren(nil) }

// Children returns no trees.
func (b Button) Children() []*core.Tree { return nil }

// Width returns the horizontal policy.
func (b Button) Width() layout.Length { return b.Sizing.Width }

// Height returns the vertical policy.
func (b Button) Height() layout.Length { return b.Sizing.Height }

// Layout sizes the button to its padded label.
func (b Button) Layout(constraints layout.Constraints) *layout.Node {
	pad := b.padding()
	text := graphics.MeasureText(b.Label, graphics.TextStyle{})
	intrinsic := graphics.Size{Width: text.Width + pad.Horizontal(), Height: text.Height + pad.Vertical()}
	return layout.NewNode(constraints.Resolve(b.Sizing.Width, b.Sizing.Height, intrinsic))
}

// Draw paints the background and label.
func (b Button) Draw(tree *core.Tree, ctx *core.DrawContext, l layout.Layout, cursor graphics.Offset) {
	th := ctx.Theme
	if th == nil {
		th = theme.DefaultLightTheme()
	}
	bt := th.ButtonThemeOf()
	bg := bt.BackgroundColor
	if b.Color != 0 {
		bg = b.Color
	}
	if pressed(tree) {
		bg = bt.PressedBackgroundColor
	}
	fg := bt.ForegroundColor
	if b.Disabled {
		bg = bg.WithAlpha(0x60)
		fg = fg.WithAlpha(0x90)
	}

	bounds := l.Bounds()
	ctx.Canvas.DrawRect(bounds, graphics.FillPaint(bg))
	pad := b.padding()
	origin := bounds.Origin().Add(graphics.Offset{X: pad.Left, Y: pad.Top})
	ctx.Canvas.DrawText(b.Label, origin, graphics.TextStyle{Color: fg})
}

// OnEvent captures presses that start inside the button and the release
// that ends them.
func (b Button) OnEvent(tree *core.Tree, event gestures.PointerEvent, l layout.Layout, cursor graphics.Offset, shell *core.Shell) core.Status {
	state := core.StateOf[buttonState](tree)
	inside := l.Bounds().Contains(cursor)
	switch {
	case event.StartsPress():
		if inside && !b.Disabled {
			state.pressed = true
			return core.StatusCaptured
		}
	case event.EndsPress():
		if !state.pressed {
			return core.StatusIgnored
		}
		state.pressed = false
		if event.Phase == gestures.PointerPhaseUp && inside && b.OnPress != nil {
			shell.Publish(b.OnPress)
		}
		return core.StatusCaptured
	}
	return core.StatusIgnored
}

// MouseInteraction asks for a pointer over an enabled button.
func (b Button) MouseInteraction(tree *core.Tree, l layout.Layout, cursor graphics.Offset, viewport graphics.Rect) core.Interaction {
	if !l.Bounds().Contains(cursor) {
		return core.InteractionIdle
	}
	if b.Disabled {
		return core.InteractionNotAllowed
	}
	return core.InteractionPointer
}

// Operate describes the button.
func (b Button) Operate(tree *core.Tree, l layout.Layout, op core.Operation) {
	var flags semantics.SemanticsFlag
	if !b.Disabled {
		flags = flags.Set(semantics.SemanticsIsEnabled)
	}
	if pressed(tree) {
		flags = flags.Set(semantics.SemanticsIsPressed)
	}
	op.Semantics(l.Bounds(), semantics.SemanticsConfiguration{
		Role:  semantics.SemanticsRoleButton,
		Label: b.Label,
		Flags: flags,
	})
}

// Overlay returns nil.
func (b Button) Overlay(tree *core.Tree, l layout.Layout) core.Overlay { return nil }

func pressed(tree *core.Tree) bool {
	state, ok := tree.State.(*buttonState)
	return ok && state.pressed
}
