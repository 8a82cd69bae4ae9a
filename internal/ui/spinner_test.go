package ui

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput collects spinner writes safely across goroutines.
type captureOutput struct {
	mu    sync.Mutex
	parts []string
}

func (c *captureOutput) write(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parts = append(c.parts, s)
}

func (c *captureOutput) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.Join(c.parts, "")
}

func TestSpinner_StartsPending(t *testing.T) {
	s := NewSpinner("Sampling")
	assert.Equal(t, SpinnerPending, s.State())
}

func TestSpinner_SuccessRendersCheckmark(t *testing.T) {
	out := &captureOutput{}
	s := NewSpinner("Sampling system metrics")
	s.SetOutput(out.write)

	s.Start()
	s.Success()

	assert.Equal(t, SpinnerSuccess, s.State())
	assert.Contains(t, out.String(), SymbolComplete)
	assert.Contains(t, out.String(), "Sampling system metrics")
}

func TestSpinner_FailRendersCross(t *testing.T) {
	out := &captureOutput{}
	s := NewSpinner("Opening terminal")
	s.SetOutput(out.write)

	s.Start()
	s.Fail()

	assert.Equal(t, SpinnerFailed, s.State())
	assert.Contains(t, out.String(), SymbolFail)
}

func TestSpinner_DoubleStartIsSafe(t *testing.T) {
	out := &captureOutput{}
	s := NewSpinner("x")
	s.SetOutput(out.write)

	s.Start()
	s.Start()
	s.Success()

	require.Equal(t, SpinnerSuccess, s.State())
}

func TestSpinner_StopWithoutStartIsSafe(t *testing.T) {
	s := NewSpinner("x")
	s.Stop()
	assert.Equal(t, SpinnerPending, s.State())
}
