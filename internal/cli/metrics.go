package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/pulse/internal/logger"
	"github.com/rileyhilliard/pulse/internal/metrics"
	"github.com/rileyhilliard/pulse/internal/ui"
)

var metricsJSONFlag bool

// metricsCmd prints one telemetry sample without rendering anything.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Print current system metrics",
	Long: `Sample host telemetry once and print it.

The default output is a human-readable summary; --json emits the same
fields the snapshot document embeds under "metrics".

Examples:
  pulse metrics
  pulse metrics --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sampler := metrics.NewSampler(logger.NewEnvLogger("[metrics]"))
		snap := sampler.Sample()

		if metricsJSONFlag {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(snap)
		}

		printMetricsSummary(snap)
		return nil
	},
}

func init() {
	metricsCmd.Flags().BoolVar(&metricsJSONFlag, "json", false, "emit metrics as JSON")
	rootCmd.AddCommand(metricsCmd)
}

// printMetricsSummary renders the sample as a labeled list with
// humanized sizes.
func printMetricsSummary(snap *metrics.Snapshot) {
	label := lipgloss.NewStyle().Foreground(ui.ColorSecondary).Bold(true)
	muted := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	fmt.Println(label.Render("System Metrics"))
	fmt.Println()
	fmt.Printf("  CPU      %5.1f%%  %s\n", snap.CPUUsage,
		muted.Render(fmt.Sprintf("load %.2f", snap.LoadAvg)))
	fmt.Printf("  Memory   %5.1f%%  %s\n", snap.MemRatio()*100,
		muted.Render(fmt.Sprintf("%s of %s used",
			humanize.IBytes(snap.UsedMemory), humanize.IBytes(snap.TotalMemory))))
	fmt.Printf("  Network  rx %s, tx %s\n",
		humanize.IBytes(snap.NetworkRx), humanize.IBytes(snap.NetworkTx))

	for _, d := range snap.DiskUsage {
		used := d.TotalSpace - d.AvailableSpace
		fmt.Printf("  Disk     %-16s %s\n", d.Name,
			muted.Render(fmt.Sprintf("%s of %s used",
				humanize.IBytes(used), humanize.IBytes(d.TotalSpace))))
	}

	fmt.Println()
	fmt.Printf("  Entropy  %d\n", snap.Entropy)
}
