// Package render turns a metrics snapshot into a frame of glyphs.
// The pipeline is: per-cell noise draw -> swirl signal -> intensity ->
// ramp glyph, then overlay compositing on the finished rows.
package render

import (
	"math"
	"strings"

	"github.com/rileyhilliard/pulse/internal/metrics"
)

// Renderer assembles frames for a fixed style and canvas size.
// Dimensions and style are validated at the configuration boundary;
// the renderer assumes width > 0 and height > 0.
type Renderer struct {
	style  Style
	width  int
	height int
	gen    *Generator
}

// New creates a renderer. The generator is shared for the run's lifetime
// and advanced strictly in row-major cell order on every frame.
func New(style Style, width, height uint16, gen *Generator) *Renderer {
	return &Renderer{
		style:  style,
		width:  int(width),
		height: int(height),
		gen:    gen,
	}
}

// Style returns the renderer's active style.
func (r *Renderer) Style() Style {
	return r.style
}

// Frame renders one complete frame from the snapshot: the noise field and
// glyph mapping per cell, then the status and signature overlays. Every
// row is exactly width characters; the frame has exactly height rows.
func (r *Renderer) Frame(snap *metrics.Snapshot) []string {
	cpuRatio := snap.CPURatio()
	memRatio := snap.MemRatio()
	netSignal := snap.NetSignal()
	ramp := []rune(r.style.Ramp())

	frame := make([]string, 0, r.height)
	var row strings.Builder
	for y := 0; y < r.height; y++ {
		row.Reset()
		row.Grow(r.width)
		for x := 0; x < r.width; x++ {
			// Draw order is significant: one draw per cell, left to
			// right, top to bottom, so a fixed seed reproduces the
			// exact same field.
			noise := r.gen.Next()
			swirl := math.Sin(
				float64(x)/float64(r.width)*cpuRatio +
					float64(y)/float64(r.height)*memRatio +
					noise*netSignal)
			row.WriteRune(glyphFor(ramp, swirl, cpuRatio, memRatio))
		}
		frame = append(frame, row.String())
	}

	compositeStatus(frame, snap, r.width, r.height)
	compositeSignature(frame, snap, r.style, r.width)

	return frame
}

// glyphFor maps a swirl sample to a ramp glyph. Intensity is the
// fractional part of the scaled signal, so it always lands in [0, 1)
// and the index stays within the ramp.
func glyphFor(ramp []rune, swirl, cpuRatio, memRatio float64) rune {
	intensity := (swirl+1)/2*memRatio + cpuRatio
	intensity -= math.Floor(intensity)

	idx := int(math.Round(clamp01(intensity) * float64(len(ramp)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ramp) {
		idx = len(ramp) - 1
	}
	return ramp[idx]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
