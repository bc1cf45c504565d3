package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-drift/mousearea/cmd/mousearea/internal/config"
	"github.com/go-drift/mousearea/cmd/mousearea/internal/scene"
	"github.com/go-drift/mousearea/pkg/engine"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Run the pointer script headlessly",
		Long: `Feed the script from mousearea.yaml to the configured areas without
opening a window, painting a frame after every event.

Each line shows the event, the status the tree returned, how many layout
invalidations it caused, and what every area shows afterwards.

Flags:
  --config FILE   Read FILE instead of mousearea.yaml in the project root
  --trace FILE    Write per-frame timings as JSON to FILE`,
		Usage: "mousearea replay [--config FILE] [--trace FILE]",
		Run:   runReplay,
	})
}

// ReplayResult summarizes a replay.
type ReplayResult struct {
	Stats    engine.Stats
	Timeline engine.FrameTimeline
}

func runReplay(args []string) error {
	flags, positional, err := ParseFlags(args, []string{"--config", "--trace"}, nil)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("unexpected argument %q", positional[0])
	}

	cfg, err := LoadConfig(flags["--config"])
	if err != nil {
		return err
	}
	if len(cfg.Script) == 0 {
		return fmt.Errorf("%s has no script to replay", cfg.File)
	}

	result, err := replay(stdout, cfg)
	if err != nil {
		return err
	}

	if path := flags["--trace"]; path != "" {
		data, err := json.MarshalIndent(result.Timeline, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode trace: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write trace: %w", err)
		}
		tl := result.Timeline
		fmt.Fprintf(stdout, "Trace written to %s (%d frames, %d relayouts, max %.2fms)\n",
			path, len(tl.Samples), tl.Relayouts, tl.MaxFrameMs)
	}
	return nil
}

// replay runs cfg.Script against the configured areas and writes one line
// per event to w.
func replay(w io.Writer, cfg *config.Resolved) (*ReplayResult, error) {
	sc := scene.New(cfg.Areas)
	size := graphics.Size{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	trace := engine.NewFrameTraceBuffer(len(cfg.Script)+1, 0)
	runtime := engine.New(
		engine.App{View: sc.Root},
		size,
		engine.WithTheme(theme.ForBrightness(cfg.Brightness)),
		engine.WithTrace(trace),
	)

	frame := func() error {
		var recorder graphics.PictureRecorder
		return runtime.Frame(recorder.BeginRecording(size))
	}
	if err := frame(); err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "%4s  %s\n", "init", scene.FormatStates(sc.States()))

	for i, event := range cfg.Script {
		before := runtime.Stats().Invalidations
		status, err := runtime.HandlePointer(event)
		if err != nil {
			return nil, fmt.Errorf("event %d (%s): %w", i+1, event, err)
		}
		invalidated := runtime.Stats().Invalidations - before
		if err := frame(); err != nil {
			return nil, fmt.Errorf("frame after event %d: %w", i+1, err)
		}
		fmt.Fprintf(w, "%4d  %-40s %-8s %s  %s\n",
			i+1, event, status, formatInvalidations(invalidated), scene.FormatStates(sc.States()))
	}

	stats := runtime.Stats()
	fmt.Fprintf(w, "\n%d events, %d frames, %d layouts, %d invalidations\n",
		stats.Events, stats.Frames, stats.Layouts, stats.Invalidations)
	return &ReplayResult{Stats: stats, Timeline: trace.Snapshot()}, nil
}

func formatInvalidations(n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("+%d", n)
}
