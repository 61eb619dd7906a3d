// Package cliui holds terminal rendering helpers shared by the hidoku CLI
// subcommands: a spinner wrapper for long-running generation attempts and a
// colorized grid renderer that drops color when stdout is not a terminal.
package cliui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/sbj42/hidoku/internal/clilog"
)

// Spinner wraps github.com/briandowns/spinner, silencing itself under
// --verbose so it doesn't interleave with clilog.Verbosef output.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a spinner with the given initial message.
func NewSpinner(msg string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &Spinner{s: s}
}

// Start starts the spinner, unless verbose logging is enabled.
func (sp *Spinner) Start() {
	if !clilog.Verbose {
		sp.s.Start()
	}
}

// Stop stops the spinner.
func (sp *Spinner) Stop() {
	sp.s.Stop()
}

// UpdateMessage changes the spinner's suffix text.
func (sp *Spinner) UpdateMessage(format string, args ...interface{}) {
	sp.s.Suffix = " " + fmt.Sprintf(format, args...)
}
