package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/pulse/internal/errors"
	"github.com/rileyhilliard/pulse/internal/render"
)

func TestDefaults(t *testing.T) {
	opts := Defaults()
	assert.Equal(t, render.StylePlasma, opts.Style)
	assert.Equal(t, uint16(80), opts.Width)
	assert.Equal(t, uint16(24), opts.Height)
	assert.Equal(t, 500*time.Millisecond, opts.Interval)
	assert.False(t, opts.HasSeed)
}

func TestApply_NilFileKeepsDefaults(t *testing.T) {
	opts, err := Apply(nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), opts)
}

func TestApply_FileOverridesDefaults(t *testing.T) {
	opts, err := Apply(&File{Style: "ember", Width: 120, Height: 40, Interval: "2s"})
	require.NoError(t, err)
	assert.Equal(t, render.StyleEmber, opts.Style)
	assert.Equal(t, uint16(120), opts.Width)
	assert.Equal(t, uint16(40), opts.Height)
	assert.Equal(t, 2*time.Second, opts.Interval)
}

func TestApply_UnknownStyleRejected(t *testing.T) {
	_, err := Apply(&File{Style: "neon"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig), "bad style should be a CONFIG error")
}

func TestApply_OutOfRangeWidthRejected(t *testing.T) {
	_, err := Apply(&File{Width: 70000})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestValidate_ZeroWidthRejected(t *testing.T) {
	opts := Defaults()
	opts.Width = 0
	err := Validate(opts)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestValidate_ZeroHeightRejected(t *testing.T) {
	opts := Defaults()
	opts.Height = 0
	err := Validate(opts)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestValidate_IntervalBelowFloorRejected(t *testing.T) {
	opts := Defaults()
	opts.Interval = 5 * time.Millisecond
	err := Validate(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minimum")
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, Validate(Defaults()))
}

func TestParseInterval_BareIntegerMeansMilliseconds(t *testing.T) {
	d, err := ParseInterval("400")
	require.NoError(t, err)
	assert.Equal(t, 400*time.Millisecond, d)
}

func TestParseInterval_GoDuration(t *testing.T) {
	d, err := ParseInterval("2s")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, d)
}

func TestParseInterval_GarbageRejected(t *testing.T) {
	_, err := ParseInterval("soon")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestParseStyle_WrapsAsConfigError(t *testing.T) {
	_, err := ParseStyle("glitch")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "plasma", "error should list the valid styles")
}
