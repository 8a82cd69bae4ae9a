// Package cli wires the pulse commands: the live canvas on the root
// command, plus metrics, styles, init, version, and completion.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/pulse/internal/config"
	"github.com/rileyhilliard/pulse/internal/errors"
)

// canvasFlags holds the root command's flag values. Each command
// instance owns its own set so flag state never leaks between them.
type canvasFlags struct {
	config   string
	style    string
	width    uint16
	height   uint16
	interval string
	seed     uint64
	once     bool
	json     bool
}

// rootCmd renders the live canvas. Subcommands cover everything else.
var rootCmd, _ = newRootCmd()

// newRootCmd builds the root command with a fresh flag set.
func newRootCmd() (*cobra.Command, *canvasFlags) {
	f := &canvasFlags{}
	cmd := &cobra.Command{
		Use:   "pulse",
		Short: "Terminal generative art driven by system metrics",
		Long: `pulse turns live host telemetry (CPU, memory, disk, network) into a
continuously-updating ASCII art animation.

Each frame is seeded deterministically from the sampled metrics, so the
same machine state paints the same picture. Pass --seed for fully
reproducible output.

Examples:
  pulse
  pulse --style ember --interval 250ms
  pulse --once --json > frame.json
  pulse --seed 42 --width 120 --height 40`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, f)
			if err != nil {
				return err
			}
			return runCanvas(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&f.config, "config", "", "config file (default .pulse.yaml in current directory)")

	cmd.Flags().StringVar(&f.style, "style", "", "art style: plasma, waves, or ember")
	cmd.Flags().Uint16Var(&f.width, "width", 0, "canvas width in columns")
	cmd.Flags().Uint16Var(&f.height, "height", 0, "canvas height in rows")
	cmd.Flags().StringVar(&f.interval, "interval", "", "frame interval (e.g. 500ms, 2s, or milliseconds like 400)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed override for deterministic art")
	cmd.Flags().BoolVar(&f.once, "once", false, "render a single frame and exit")
	cmd.Flags().BoolVar(&f.json, "json", false, "emit a JSON snapshot instead of live art")

	return cmd, f
}

// resolveOptions layers defaults, the optional config file, and any
// flags the user actually set, then validates the result. Everything
// rejected here never reaches the renderer.
func resolveOptions(cmd *cobra.Command, f *canvasFlags) (config.Options, error) {
	file, err := config.LoadFile(f.config)
	if err != nil {
		return config.Options{}, err
	}

	opts, err := config.Apply(file)
	if err != nil {
		return config.Options{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("style") {
		style, err := config.ParseStyle(f.style)
		if err != nil {
			return config.Options{}, err
		}
		opts.Style = style
	}
	if flags.Changed("width") {
		opts.Width = f.width
	}
	if flags.Changed("height") {
		opts.Height = f.height
	}
	if flags.Changed("interval") {
		interval, err := config.ParseInterval(f.interval)
		if err != nil {
			return config.Options{}, err
		}
		opts.Interval = interval
	}
	if flags.Changed("seed") {
		opts.Seed = f.seed
		opts.HasSeed = true
	}
	opts.Once = f.once
	opts.JSON = f.json

	if err := config.Validate(opts); err != nil {
		return config.Options{}, err
	}
	return opts, nil
}

// Execute runs the CLI. Config errors exit 1; display failures exit 2
// (the terminal has already been restored by then).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.IsCode(err, errors.ErrDisplay) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
