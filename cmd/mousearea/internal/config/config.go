// Package config loads mousearea.yaml: the window, the areas to show, and
// the pointer script the replay command feeds them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/theme"
)

// FileName is the configuration file looked up in the project root.
const FileName = "mousearea.yaml"

const (
	defaultWidth  = 480
	defaultHeight = 320
)

// Config represents the optional mousearea.yaml configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Areas  []AreaConfig `yaml:"areas"`
	Script []StepConfig `yaml:"script,omitempty"`
}

// WindowConfig contains window settings.
type WindowConfig struct {
	Title  string `yaml:"title,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Theme  string `yaml:"theme,omitempty"`
}

// LookConfig is what an area shows in one pointer state.
type LookConfig struct {
	Text       string  `yaml:"text,omitempty"`
	Background string  `yaml:"background,omitempty"`
	Padding    float64 `yaml:"padding,omitempty"`
}

// AreaConfig describes one mouse area.
type AreaConfig struct {
	ID      string     `yaml:"id"`
	Idle    LookConfig `yaml:"idle"`
	Hovered LookConfig `yaml:"hovered,omitempty"`
	Pressed LookConfig `yaml:"pressed,omitempty"`
	Tooltip string     `yaml:"tooltip,omitempty"`
	Cursor  string     `yaml:"cursor,omitempty"`
}

// StepConfig is one scripted pointer event.
type StepConfig struct {
	Phase  string  `yaml:"phase"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Device string  `yaml:"device,omitempty"`
	Button string  `yaml:"button,omitempty"`
}

// Look is a resolved LookConfig.
type Look struct {
	Text       string
	Background graphics.Color
	Padding    float64
}

// Area is a resolved AreaConfig. It is comparable so it can serve as
// builder parameters.
type Area struct {
	ID      string
	Idle    Look
	Hovered Look
	Pressed Look
	Tooltip string
	Cursor  core.Interaction
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	File       string
	ModulePath string
	Title      string
	Width      int
	Height     int
	Brightness theme.Brightness
	Areas      []Area
	Script     []gestures.PointerEvent
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Areas: []AreaConfig{{
			ID:      "demo",
			Idle:    LookConfig{Text: "Hover me", Background: "#E8DEF8", Padding: 12},
			Hovered: LookConfig{Text: "Press me", Background: "#D0BCFF", Padding: 12},
			Pressed: LookConfig{Text: "Pressed", Background: "#B69DF8", Padding: 12},
			Tooltip: "a mouse area",
			Cursor:  "pointer",
		}},
	}
}

// LoadOptional reads path if present and returns Default otherwise.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	return &cfg, nil
}

// Resolve loads the configuration file (mousearea.yaml in dir when file is
// empty), resolves defaults, and validates the result.
func Resolve(dir, file string) (*Resolved, error) {
	if file == "" {
		file = filepath.Join(dir, FileName)
	}

	cfg, err := LoadOptional(file)
	if err != nil {
		return nil, err
	}

	// go.mod is only needed for the default title.
	modPath, _ := modulePath(dir)

	title := strings.TrimSpace(cfg.Window.Title)
	if title == "" {
		title = defaultTitle(modPath, dir)
	}

	width, height := cfg.Window.Width, cfg.Window.Height
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("window size must be positive (got %dx%d)", width, height)
	}

	brightness, err := theme.ParseBrightness(cfg.Window.Theme)
	if err != nil {
		return nil, fmt.Errorf("window.theme: %w", err)
	}

	areas, err := resolveAreas(cfg.Areas)
	if err != nil {
		return nil, err
	}

	script, err := resolveScript(cfg.Script)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Root:       dir,
		File:       file,
		ModulePath: modPath,
		Title:      title,
		Width:      width,
		Height:     height,
		Brightness: brightness,
		Areas:      areas,
		Script:     script,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod. It
// falls back to the current directory outside a module.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := start; ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultTitle(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "mousearea"
	}
	return base
}
