package cmd

import (
	"fmt"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate the configuration",
		Long: `Load mousearea.yaml, resolve defaults, and print the result.

Missing files are not an error: the built-in demo area is used instead.

Flags:
  --config FILE   Read FILE instead of mousearea.yaml in the project root`,
		Usage: "mousearea check [--config FILE]",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	flags, positional, err := ParseFlags(args, []string{"--config"}, nil)
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

	fmt.Fprintf(stdout, "Config: %s\n", cfg.File)
	if cfg.ModulePath != "" {
		fmt.Fprintf(stdout, "Module: %s\n", cfg.ModulePath)
	}
	fmt.Fprintf(stdout, "Window: %q %dx%d (%s)\n", cfg.Title, cfg.Width, cfg.Height, cfg.Brightness)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Areas:")
	for _, area := range cfg.Areas {
		fmt.Fprintf(stdout, "  %s\n", area.ID)
		fmt.Fprintf(stdout, "    idle:    %q %s\n", area.Idle.Text, area.Idle.Background)
		fmt.Fprintf(stdout, "    hovered: %q %s\n", area.Hovered.Text, area.Hovered.Background)
		fmt.Fprintf(stdout, "    pressed: %q %s\n", area.Pressed.Text, area.Pressed.Background)
		if area.Tooltip != "" {
			fmt.Fprintf(stdout, "    tooltip: %q\n", area.Tooltip)
		}
		fmt.Fprintf(stdout, "    cursor:  %s\n", area.Cursor)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "Script: %d events\n", len(cfg.Script))
	return nil
}
