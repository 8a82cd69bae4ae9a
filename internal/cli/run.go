package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rileyhilliard/pulse/internal/config"
	"github.com/rileyhilliard/pulse/internal/display"
	"github.com/rileyhilliard/pulse/internal/logger"
	"github.com/rileyhilliard/pulse/internal/metrics"
	"github.com/rileyhilliard/pulse/internal/render"
	"github.com/rileyhilliard/pulse/internal/snapshot"
	"github.com/rileyhilliard/pulse/internal/ui"
)

// runCanvas dispatches to single-frame or live mode. Options are fully
// validated by this point.
func runCanvas(opts config.Options) error {
	log := logger.NewEnvLogger("[pulse]")

	if opts.JSON || opts.Once {
		return renderOnce(os.Stdout, opts, log)
	}
	return runLive(opts, log)
}

// seedFor picks the generator seed: an explicit --seed wins, otherwise
// the first sample's derived entropy.
func seedFor(opts config.Options, snap *metrics.Snapshot) uint64 {
	if opts.HasSeed {
		return opts.Seed
	}
	return snap.Entropy
}

// renderOnce produces exactly one frame with no terminal takeover and
// emits the full snapshot document. --once and --json share this path,
// so either flag yields the same machine-readable output.
func renderOnce(w io.Writer, opts config.Options, log logger.Logger) error {
	sampler := metrics.NewSampler(log)
	snap := sampler.Sample()

	gen := render.NewGenerator(seedFor(opts, snap))
	renderer := render.New(opts.Style, opts.Width, opts.Height, gen)
	frame := renderer.Frame(snap)

	doc := snapshot.New(snap, frame, opts.Width, opts.Height, opts.Style.String())
	return doc.Write(w)
}

// runLive owns the terminal for the run: sample, render, draw, sleep.
// The generator is seeded once from the warm-up sample and advanced for
// the life of the loop so the noise field never repeats.
func runLive(opts config.Options, log logger.Logger) error {
	spin := ui.NewSpinner("Sampling system metrics")
	spin.Start()
	sampler := metrics.NewSampler(log)
	first := sampler.Sample()
	spin.Success()

	gen := render.NewGenerator(seedFor(opts, first))
	renderer := render.New(opts.Style, opts.Width, opts.Height, gen)

	term, err := display.Open(log)
	if err != nil {
		return err
	}
	defer term.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watchQuit(cancel)

	for {
		// Cancellation is checked before each sample and before each
		// sleep so quitting never waits out a full interval twice.
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		snap := sampler.Sample()
		frame := renderer.Frame(snap)
		if err := term.Draw(frame, opts.Style); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(opts.Interval):
		}
	}
}

// watchQuit cancels the run on SIGINT/SIGTERM or a quit keypress. Raw
// mode swallows Ctrl+C as a plain byte (0x03), so stdin is watched too.
func watchQuit(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		switch buf[0] {
		case 'q', 'Q', 0x03, 0x1b:
			cancel()
			return
		}
	}
}
