// Package display owns the terminal while the live canvas is on screen.
// The Terminal is a scoped resource: Open flips the terminal into the
// alternate screen with raw mode, and Close restores the original mode
// on every exit path, error paths included.
package display

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/rileyhilliard/pulse/internal/errors"
	"github.com/rileyhilliard/pulse/internal/logger"
	"github.com/rileyhilliard/pulse/internal/render"
)

// Terminal drives frame output: alternate screen, cursor positioning,
// per-row background color, and mode restoration.
type Terminal struct {
	out  *termenv.Output
	fd   int
	prev *term.State
	open bool
	log  logger.Logger
}

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Open enters the alternate screen, hides the cursor, and enables raw
// mode. The caller must defer Close so the user's terminal is restored
// however the run ends.
func Open(log logger.Logger) (*Terminal, error) {
	if log == nil {
		log = logger.Noop()
	}
	if !IsTTY() {
		return nil, errors.New(errors.ErrDisplay,
			"stdout is not a terminal",
			"Live mode needs a TTY. Use --once or --json for non-interactive output.")
	}

	t := &Terminal{
		out: termenv.NewOutput(os.Stdout),
		fd:  int(os.Stdin.Fd()),
		log: log,
	}

	prev, err := term.MakeRaw(t.fd)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrDisplay,
			"Failed to enable raw mode",
			"Check that pulse is running in a real terminal")
	}
	t.prev = prev

	t.out.AltScreen()
	t.out.HideCursor()
	t.open = true
	t.log.Debug("terminal opened (alt screen, raw mode)")

	return t, nil
}

// Close restores the terminal to its original mode. Safe to call more
// than once; only the first call does work.
func (t *Terminal) Close() {
	if !t.open {
		return
	}
	t.open = false

	t.out.ShowCursor()
	t.out.ExitAltScreen()
	if t.prev != nil {
		if err := term.Restore(t.fd, t.prev); err != nil {
			t.log.Warn("failed to restore terminal mode: %v", err)
		}
	}
	t.log.Debug("terminal restored")
}

// Draw clears the screen and paints the frame, one draw call per row:
// move cursor, set the row's palette background, print, reset. There are
// no partial-row updates; the frame is always painted whole.
func (t *Terminal) Draw(frame []string, style render.Style) error {
	t.out.ClearScreen()
	for i, row := range frame {
		t.out.MoveCursor(i+1, 1)
		styled := lipgloss.NewStyle().Background(style.RowColor(i)).Render(row)
		if _, err := t.out.WriteString(styled); err != nil {
			return errors.WrapWithCode(err, errors.ErrDisplay,
				"Failed to write frame to terminal",
				"The terminal may have been closed or resized away")
		}
	}
	return nil
}
