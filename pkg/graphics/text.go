package graphics

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextStyle describes how a run of text is drawn and measured.
type TextStyle struct {
	Color Color
	// Face overrides the measuring face. Nil selects the bundled 7x13 face.
	Face font.Face
}

// FontFace returns the face used to measure text in this style.
func (s TextStyle) FontFace() font.Face {
	if s.Face != nil {
		return s.Face
	}
	return basicfont.Face7x13
}

// LineHeight returns the height of one line of text.
func (s TextStyle) LineHeight() float64 {
	return float64(s.FontFace().Metrics().Height.Ceil())
}

// MeasureText returns the size of text laid out without wrapping. Newlines
// start new lines.
func MeasureText(text string, style TextStyle) Size {
	face := style.FontFace()
	lines := strings.Split(text, "\n")
	var width float64
	for _, line := range lines {
		w := float64(font.MeasureString(face, line).Ceil())
		if w > width {
			width = w
		}
	}
	return Size{Width: width, Height: style.LineHeight() * float64(len(lines))}
}
