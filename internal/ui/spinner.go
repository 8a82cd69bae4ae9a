// Package ui provides small terminal presentation helpers: semantic
// colors and an inline spinner for operations that take a moment.
package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// SpinnerState represents the current state of a spinner.
type SpinnerState int

const (
	SpinnerPending SpinnerState = iota
	SpinnerInProgress
	SpinnerSuccess
	SpinnerFailed
)

// Spinner animation frames - braille scan pattern.
var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// Spinner displays an animated status indicator with a label.
type Spinner struct {
	mu           sync.Mutex
	label        string
	state        SpinnerState
	frame        int
	stopChan     chan struct{}
	doneChan     chan struct{}
	output       func(string)
	running      bool
	lastRendered string
}

// NewSpinner creates a new spinner with the given label.
// Output defaults to fmt.Print; use SetOutput to customize.
func NewSpinner(label string) *Spinner {
	return &Spinner{
		label:  label,
		state:  SpinnerPending,
		output: func(s string) { fmt.Print(s) },
	}
}

// SetOutput sets the output function for the spinner.
// Useful for testing or redirecting output.
func (s *Spinner) SetOutput(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.output = fn
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.state = SpinnerInProgress
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})
	s.mu.Unlock()

	s.render()

	go s.animate()
}

// Stop halts the spinner animation without changing state.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	<-s.doneChan
}

// Success stops the spinner and marks it as successful.
func (s *Spinner) Success() {
	s.Stop()
	s.mu.Lock()
	s.state = SpinnerSuccess
	s.mu.Unlock()
	s.renderFinal()
}

// Fail stops the spinner and marks it as failed.
func (s *Spinner) Fail() {
	s.Stop()
	s.mu.Lock()
	s.state = SpinnerFailed
	s.mu.Unlock()
	s.renderFinal()
}

// State returns the current spinner state.
func (s *Spinner) State() SpinnerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Spinner) animate() {
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()
	defer close(s.doneChan)

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(spinnerFrames)
			s.mu.Unlock()
			s.render()
		}
	}
}

func (s *Spinner) render() {
	s.mu.Lock()
	defer s.mu.Unlock()

	symbol := lipgloss.NewStyle().Foreground(ColorInfo).Render(spinnerFrames[s.frame])
	line := fmt.Sprintf("\r%s %s...", symbol, s.label)

	if s.lastRendered != "" {
		// Clear the previous line
		clearLen := len([]rune(s.lastRendered))
		s.output("\r" + strings.Repeat(" ", clearLen) + "\r")
	}

	s.output(line)
	s.lastRendered = line
}

func (s *Spinner) renderFinal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var line string
	switch s.state {
	case SpinnerSuccess:
		symbol := lipgloss.NewStyle().Foreground(ColorSuccess).Render(SymbolComplete)
		line = fmt.Sprintf("\r%s %s\n", symbol, s.label)
	case SpinnerFailed:
		symbol := lipgloss.NewStyle().Foreground(ColorError).Render(SymbolFail)
		line = fmt.Sprintf("\r%s %s\n", symbol, s.label)
	default:
		line = "\r\n"
	}

	if s.lastRendered != "" {
		clearLen := len([]rune(s.lastRendered))
		s.output("\r" + strings.Repeat(" ", clearLen) + "\r")
	}
	s.output(line)
	s.lastRendered = ""
}
