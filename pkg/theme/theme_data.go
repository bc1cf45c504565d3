// Package theme provides the colors and text styles handed to widgets at
// draw time.
package theme

import (
	"fmt"
	"strings"

	"github.com/go-drift/mousearea/pkg/graphics"
)

// Brightness indicates a light or dark palette.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ParseBrightness accepts "light", "dark" or the empty string (light).
func ParseBrightness(s string) (Brightness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "light":
		return BrightnessLight, nil
	case "dark":
		return BrightnessDark, nil
	default:
		return BrightnessLight, fmt.Errorf("unknown theme %q", s)
	}
}

// ColorScheme is the palette widgets draw with.
type ColorScheme struct {
	Background graphics.Color
	Surface    graphics.Color
	OnSurface  graphics.Color
	Primary    graphics.Color
	OnPrimary  graphics.Color
	Outline    graphics.Color
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Background: graphics.RGB(0xFA, 0xFA, 0xFA),
		Surface:    graphics.RGB(0xFF, 0xFF, 0xFF),
		OnSurface:  graphics.RGB(0x1C, 0x1B, 0x1F),
		Primary:    graphics.RGB(0x67, 0x50, 0xA4),
		OnPrimary:  graphics.RGB(0xFF, 0xFF, 0xFF),
		Outline:    graphics.RGB(0x79, 0x74, 0x7E),
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Background: graphics.RGB(0x1C, 0x1B, 0x1F),
		Surface:    graphics.RGB(0x2B, 0x29, 0x30),
		OnSurface:  graphics.RGB(0xE6, 0xE1, 0xE5),
		Primary:    graphics.RGB(0xD0, 0xBC, 0xFF),
		OnPrimary:  graphics.RGB(0x38, 0x1E, 0x72),
		Outline:    graphics.RGB(0x93, 0x8F, 0x99),
	}
}

// ThemeData contains all theme configuration handed to draw.
type ThemeData struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// ButtonTheme overrides button styling. Derived from ColorScheme if nil.
	ButtonTheme *ButtonThemeData
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{ColorScheme: LightColorScheme(), Brightness: BrightnessLight}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{ColorScheme: DarkColorScheme(), Brightness: BrightnessDark}
}

// ForBrightness returns the default theme for b.
func ForBrightness(b Brightness) *ThemeData {
	if b == BrightnessDark {
		return DefaultDarkTheme()
	}
	return DefaultLightTheme()
}

// TextStyle returns the default text style for surface content.
func (t *ThemeData) TextStyle() graphics.TextStyle {
	return graphics.TextStyle{Color: t.ColorScheme.OnSurface}
}
