// Package config resolves the per-run options from defaults, an optional
// .pulse.yaml file, and command-line flags (flags win). All validation
// happens here, before any rendering starts.
package config

import (
	"time"

	"github.com/rileyhilliard/pulse/internal/render"
)

const (
	// ConfigFileName is the default config file name, looked up in the
	// current directory.
	ConfigFileName = ".pulse.yaml"

	// DefaultWidth and DefaultHeight size the canvas when nothing is
	// configured.
	DefaultWidth  uint16 = 80
	DefaultHeight uint16 = 24

	// DefaultInterval is the delay between frames in live mode.
	DefaultInterval = 500 * time.Millisecond

	// MinInterval floors the frame delay; anything faster just burns CPU
	// repainting identical telemetry.
	MinInterval = 16 * time.Millisecond
)

// Options holds the effectively-immutable per-run configuration.
type Options struct {
	Style    render.Style
	Width    uint16
	Height   uint16
	Interval time.Duration
	Seed     uint64
	HasSeed  bool
	Once     bool
	JSON     bool
}

// Defaults returns options with every field at its default value.
func Defaults() Options {
	return Options{
		Style:    render.DefaultStyle,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Interval: DefaultInterval,
	}
}

// File mirrors the .pulse.yaml schema.
type File struct {
	Style    string `yaml:"style" mapstructure:"style"`
	Width    int    `yaml:"width" mapstructure:"width"`
	Height   int    `yaml:"height" mapstructure:"height"`
	Interval string `yaml:"interval" mapstructure:"interval"`
}
