package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Spinner is a text spinner for indeterminate operations like dependency
// installs and sync fetches.
type Spinner struct {
	writer   io.Writer
	message  string
	frames   []string
	interval time.Duration
	active   bool
	done     chan bool
	noColor  bool
	mu       sync.RWMutex
}

var defaultFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// NewSpinner creates a spinner writing to w.
func NewSpinner(w io.Writer, message string, noColor bool) *Spinner {
	return &Spinner{
		writer:   w,
		message:  message,
		frames:   defaultFrames,
		interval: 100 * time.Millisecond,
		done:     make(chan bool),
		noColor:  noColor,
	}
}

// Start begins the animation on a background goroutine.
func (s *Spinner) Start() {
	s.active = true
	go s.animate()
}

// Stop halts the animation and clears the line.
func (s *Spinner) Stop() {
	if !s.active {
		return
	}
	s.active = false
	s.done <- true
	fmt.Fprint(s.writer, "\r\033[K")
}

// Success stops the spinner and prints a success line.
func (s *Spinner) Success(message string) {
	s.Stop()
	fmt.Fprintln(s.writer, FormatSuccess(message, s.noColor))
}

// Error stops the spinner and prints an error line.
func (s *Spinner) Error(message string) {
	s.Stop()
	red := color.New(color.FgRed, color.Bold)
	if s.noColor {
		red.DisableColor()
	}
	red.Fprintf(s.writer, "✗ %s\n", message)
}

// SetMessage updates the text shown next to the spinner.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

func (s *Spinner) animate() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	cyan := color.New(color.FgCyan)
	if s.noColor {
		cyan.DisableColor()
	}

	i := 0
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.RLock()
			msg := s.message
			s.mu.RUnlock()
			fmt.Fprint(s.writer, "\r\033[K")
			cyan.Fprintf(s.writer, "%s %s", s.frames[i%len(s.frames)], msg)
			i++
		}
	}
}
