package render

import (
	"fmt"

	"github.com/rileyhilliard/pulse/internal/metrics"
)

// signatureModulus controls how often the signature row appears:
// whenever the snapshot's entropy is divisible by it.
const signatureModulus = 7

// StatusLine formats the human-readable status overlay with fixed-width
// numeric fields, e.g. "CPU  42.0% | MEM  63.1% | NET   128.5k/s".
func StatusLine(snap *metrics.Snapshot) string {
	return fmt.Sprintf("CPU %5.1f%% | MEM %5.1f%% | NET %7.1fk/s",
		snap.CPUUsage, snap.MemRatio()*100, snap.NetRateKB())
}

// compositeStatus writes the status line centered into the middle row,
// left-biased on odd remainders. The write replaces exactly len(text)
// characters; if the text does not fit within the row width the frame is
// left untouched.
func compositeStatus(frame []string, snap *metrics.Snapshot, width, height int) {
	if height == 0 {
		return
	}
	writeCentered(frame, StatusLine(snap), width, height/2)
}

// writeCentered overwrites exactly len(text) characters of frame[y],
// centered by character count with the left bias on odd remainders.
// Text wider than the row is skipped entirely; partial writes would
// break the fixed-width numeric formatting.
func writeCentered(frame []string, text string, width, y int) {
	if len(text) > width || y >= len(frame) {
		return
	}
	start := (width - len(text)) / 2
	row := frame[y]
	frame[y] = row[:start] + text + row[start+len(text):]
}

// compositeSignature replaces row 0 with the signature line whenever the
// snapshot's entropy hits the modulus. The signature is truncated and
// padded to width so the row-shape invariant holds. It is applied after
// the status overlay and wins if the two ever land on the same row
// (only possible when height <= 1).
func compositeSignature(frame []string, snap *metrics.Snapshot, style Style, width int) {
	if snap.Entropy%signatureModulus != 0 || len(frame) == 0 {
		return
	}
	sig := fmt.Sprintf("Style: %s | Frames seeded by entropy %d", style, snap.Entropy)
	if len(sig) > width {
		sig = sig[:width]
	}
	frame[0] = fmt.Sprintf("%-*s", width, sig)
}
