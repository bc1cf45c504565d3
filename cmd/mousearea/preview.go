package main

import (
	"fmt"
	"os"

	"github.com/go-drift/mousearea/cmd/mousearea/cmd"
	"github.com/go-drift/mousearea/cmd/mousearea/internal/scene"
	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/engine"
	"github.com/go-drift/mousearea/pkg/engine/ebitenhost"
	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/theme"
)

// preview lives in package main so that package cmd and its tests do not
// link the windowing backend.
func init() {
	cmd.RegisterCommand(&cmd.Command{
		Name:  "preview",
		Short: "Open the areas in a window",
		Long: `Open a window showing the configured areas and track the real pointer.

Flags:
  --config FILE   Read FILE instead of mousearea.yaml in the project root
  --verbose       Print every pointer event and the resulting area states`,
		Usage: "mousearea preview [--config FILE] [--verbose]",
		Run:   runPreview,
	})
}

func runPreview(args []string) error {
	flags, positional, err := cmd.ParseFlags(args, []string{"--config"}, []string{"--verbose"})
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("unexpected argument %q", positional[0])
	}

	cfg, err := cmd.LoadConfig(flags["--config"])
	if err != nil {
		return err
	}

	sc := scene.New(cfg.Areas)
	size := graphics.Size{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	runtime := engine.New(engine.App{View: sc.Root}, size, engine.WithTheme(theme.ForBrightness(cfg.Brightness)))

	opts := ebitenhost.Options{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height}
	if flags["--verbose"] != "" {
		opts.OnEvent = func(event gestures.PointerEvent, status core.Status) {
			fmt.Printf("%-40s %-8s %s\n", event, status, scene.FormatStates(sc.States()))
		}
	}

	fmt.Fprintf(os.Stdout, "Previewing %d areas from %s\n", len(cfg.Areas), cfg.File)
	return ebitenhost.Run(runtime, opts)
}
