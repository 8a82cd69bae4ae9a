// Package snapshot serializes one rendered frame together with the
// metrics and configuration that produced it.
package snapshot

import (
	"encoding/json"
	"io"

	"github.com/rileyhilliard/pulse/internal/metrics"
)

// Document is the exported JSON view of a single render. The field names
// are a compatibility surface and must not change.
type Document struct {
	Metrics *metrics.Snapshot `json:"metrics"`
	Frame   []string          `json:"frame"`
	Width   uint16            `json:"width"`
	Height  uint16            `json:"height"`
	Style   string            `json:"style"`
}

// New assembles a document from a render's inputs and output.
func New(snap *metrics.Snapshot, frame []string, width, height uint16, style string) *Document {
	return &Document{
		Metrics: snap,
		Frame:   frame,
		Width:   width,
		Height:  height,
		Style:   style,
	}
}

// Write pretty-prints the document as JSON.
func (d *Document) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
