package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/pulse/internal/display"
	"github.com/rileyhilliard/pulse/internal/errors"
	"github.com/rileyhilliard/pulse/internal/metrics"
	"github.com/rileyhilliard/pulse/internal/render"
	"github.com/rileyhilliard/pulse/internal/ui"
)

// Preview canvas dimensions for the gallery.
const (
	previewWidth  uint16 = 60
	previewHeight uint16 = 16
	previewSeed   uint64 = 42
)

// stylesCmd opens an interactive gallery of the available styles.
var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "Browse the available art styles",
	Long: `Open an interactive gallery that previews each style on a
fixed-seed demo frame.

Keyboard shortcuts:
  left/h   Previous style
  right/l  Next style
  q / Esc  Quit

Examples:
  pulse styles`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !display.IsTTY() {
			return errors.New(errors.ErrConfig,
				"The style gallery needs a terminal",
				"Valid styles: "+strings.Join(render.StyleNames(), ", "))
		}

		model := newGalleryModel()
		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return errors.Wrap(err, "Style gallery failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}

// demoSnapshot returns a fixed telemetry sample so every gallery run
// paints the same previews.
func demoSnapshot() *metrics.Snapshot {
	snap := &metrics.Snapshot{
		CPUUsage:    42.5,
		LoadAvg:     1.2,
		TotalMemory: 16 << 30,
		UsedMemory:  9 << 30,
		NetworkRx:   2 << 20,
		NetworkTx:   1 << 20,
		DiskUsage: []metrics.DiskMetrics{
			{Name: "/dev/sda1", TotalSpace: 512 << 30, AvailableSpace: 128 << 30},
		},
	}
	snap.Entropy = metrics.DeriveEntropy(snap)
	return snap
}

// galleryModel is the Bubble Tea model for the style gallery.
type galleryModel struct {
	styles   []render.Style
	index    int
	previews map[render.Style]string
	viewport viewport.Model
	ready    bool
}

func newGalleryModel() galleryModel {
	snap := demoSnapshot()
	styles := []render.Style{render.StylePlasma, render.StyleWaves, render.StyleEmber}

	// Each preview gets its own fixed-seed generator so switching back
	// and forth always shows the same frame.
	previews := make(map[render.Style]string, len(styles))
	for _, style := range styles {
		gen := render.NewGenerator(previewSeed)
		frame := render.New(style, previewWidth, previewHeight, gen).Frame(snap)

		var b strings.Builder
		for i, row := range frame {
			b.WriteString(lipgloss.NewStyle().Background(style.RowColor(i)).Render(row))
			b.WriteString("\n")
		}
		previews[style] = b.String()
	}

	return galleryModel{
		styles:   styles,
		previews: previews,
	}
}

func (m galleryModel) Init() tea.Cmd {
	return nil
}

func (m galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Leave room for the title and footer lines.
		m.viewport = viewport.New(msg.Width, msg.Height-4)
		m.viewport.SetContent(m.previews[m.current()])
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.index = (m.index + len(m.styles) - 1) % len(m.styles)
			m.viewport.SetContent(m.previews[m.current()])
		case "right", "l":
			m.index = (m.index + 1) % len(m.styles)
			m.viewport.SetContent(m.previews[m.current()])
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m galleryModel) View() string {
	if !m.ready {
		return "Loading gallery..."
	}

	title := lipgloss.NewStyle().Foreground(ui.ColorSecondary).Bold(true).
		Render(fmt.Sprintf("Style: %s (%d/%d)", m.current(), m.index+1, len(m.styles)))
	footer := lipgloss.NewStyle().Foreground(ui.ColorMuted).
		Render("←/→ switch style • q quit")

	return fmt.Sprintf("%s\n\n%s\n%s", title, m.viewport.View(), footer)
}

func (m galleryModel) current() render.Style {
	return m.styles[m.index]
}
