package theme

import "github.com/go-drift/mousearea/pkg/graphics"

// ButtonThemeData defines default styling for Button widgets.
type ButtonThemeData struct {
	// BackgroundColor is the default button background.
	BackgroundColor graphics.Color
	// ForegroundColor is the default label color.
	ForegroundColor graphics.Color
	// PressedBackgroundColor is the background while a press is held.
	PressedBackgroundColor graphics.Color
	// Padding is the default button padding.
	Padding graphics.EdgeInsets
}

// ButtonThemeOf returns the button theme, deriving it from the color scheme
// when none is set.
func (t *ThemeData) ButtonThemeOf() ButtonThemeData {
	if t.ButtonTheme != nil {
		return *t.ButtonTheme
	}
	cs := t.ColorScheme
	return ButtonThemeData{
		BackgroundColor:        cs.Primary,
		ForegroundColor:        cs.OnPrimary,
		PressedBackgroundColor: cs.Primary.WithAlpha(0xC0),
		Padding:                graphics.EdgeInsets{Left: 8, Top: 4, Right: 8, Bottom: 4},
	}
}
