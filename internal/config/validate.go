package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/pulse/internal/errors"
	"github.com/rileyhilliard/pulse/internal/render"
)

// Apply layers file values over defaults. Flag values are layered on top
// by the CLI, which knows which flags were actually set.
func Apply(f *File) (Options, error) {
	opts := Defaults()
	if f == nil {
		return opts, nil
	}

	if f.Style != "" {
		style, err := ParseStyle(f.Style)
		if err != nil {
			return opts, err
		}
		opts.Style = style
	}
	if f.Width != 0 {
		if f.Width < 0 || f.Width > int(^uint16(0)) {
			return opts, dimensionError("width", f.Width)
		}
		opts.Width = uint16(f.Width)
	}
	if f.Height != 0 {
		if f.Height < 0 || f.Height > int(^uint16(0)) {
			return opts, dimensionError("height", f.Height)
		}
		opts.Height = uint16(f.Height)
	}
	if f.Interval != "" {
		interval, err := ParseInterval(f.Interval)
		if err != nil {
			return opts, err
		}
		opts.Interval = interval
	}
	return opts, nil
}

// Validate rejects malformed options before the renderer ever runs.
// Zero dimensions and invalid styles are configuration errors, never
// something to discover mid-frame.
func Validate(opts Options) error {
	if opts.Width == 0 {
		return errors.New(errors.ErrConfig,
			"Canvas width must be at least 1",
			"Pass --width with a positive value")
	}
	if opts.Height == 0 {
		return errors.New(errors.ErrConfig,
			"Canvas height must be at least 1",
			"Pass --height with a positive value")
	}
	if opts.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval %s is below the %s minimum", opts.Interval, MinInterval),
			"Use a slower interval like 500ms or 2s")
	}
	return nil
}

// ParseStyle validates a style name at the configuration boundary.
func ParseStyle(name string) (render.Style, error) {
	style, err := render.ParseStyle(name)
	if err != nil {
		return style, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' is not a style pulse knows", name),
			"Valid styles: "+strings.Join(render.StyleNames(), ", "))
	}
	return style, nil
}

// ParseInterval accepts Go durations ("500ms", "2s") and, for parity
// with older tooling, bare integers meaning milliseconds ("400").
func ParseInterval(raw string) (time.Duration, error) {
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", raw),
			"Try something like 500ms, 2s, or a millisecond count like 400")
	}
	return d, nil
}

func dimensionError(name string, value int) error {
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("Canvas %s %d is out of range", name, value),
		fmt.Sprintf("Use a %s between 1 and 65535", name))
}
