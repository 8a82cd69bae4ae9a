package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/pulse/internal/config"
	"github.com/rileyhilliard/pulse/internal/display"
	"github.com/rileyhilliard/pulse/internal/errors"
	"github.com/rileyhilliard/pulse/internal/render"
	"github.com/rileyhilliard/pulse/internal/ui"
)

var initForce bool

// initCmd creates a .pulse.yaml configuration file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .pulse.yaml configuration",
	Long: `Initialize a pulse configuration file in the current directory.

Walks through style and canvas options interactively when run in a
terminal; --force skips prompts and writes the defaults.

Examples:
  pulse init
  pulse init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit()
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config without asking")
	rootCmd.AddCommand(initCmd)
}

func runInit() error {
	path := config.ConfigFileName

	// Check for existing config
	if _, err := os.Stat(path); err == nil && !initForce {
		if !display.IsTTY() {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	file := config.File{
		Style:    render.DefaultStyle.String(),
		Width:    int(config.DefaultWidth),
		Height:   int(config.DefaultHeight),
		Interval: config.DefaultInterval.String(),
	}

	if display.IsTTY() && !initForce {
		if err := promptOptions(&file); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"This is a bug; please report it")
	}

	content := "# pulse configuration\n# Flags override anything set here.\n" + string(data)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check directory permissions")
	}

	success := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	fmt.Printf("%s Created %s\n", success.Render(ui.SymbolComplete), path)
	fmt.Println("Run 'pulse' to start the canvas.")
	return nil
}

// promptOptions collects style and canvas values interactively.
func promptOptions(file *config.File) error {
	widthStr := strconv.Itoa(file.Width)
	heightStr := strconv.Itoa(file.Height)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Art style").
				Options(huh.NewOptions(render.StyleNames()...)...).
				Value(&file.Style),
			huh.NewInput().
				Title("Canvas width").
				Value(&widthStr).
				Validate(validateDimension),
			huh.NewInput().
				Title("Canvas height").
				Value(&heightStr).
				Validate(validateDimension),
			huh.NewInput().
				Title("Frame interval").
				Value(&file.Interval).
				Validate(func(s string) error {
					_, err := config.ParseInterval(s)
					return err
				}),
		),
	)
	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Run 'pulse init --force' to write defaults without prompts")
	}

	file.Width, _ = strconv.Atoi(widthStr)
	file.Height, _ = strconv.Atoi(heightStr)
	return nil
}

func validateDimension(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("must be between 1 and 65535")
	}
	return nil
}
