// Package clilog provides the CLI's terminal logging helpers: an
// always-shown Info, a --verbose-gated Verbosef, and colored
// Error/Warning. Modeled on the pack's CLI-builder example's
// pkg/common/log.go (Info/Verbose/Error/Warning over fmt.Println), with
// color wired in via github.com/fatih/color the way that example's
// rendering and progress output lean on terminal color/spinner libraries.
package clilog

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Verbose controls whether Verbosef messages are shown.
var Verbose = false

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
	infoColor = color.New(color.FgCyan)
)

// Info prints a message to stdout, always shown.
func Info(format string, args ...interface{}) {
	fmt.Println(infoColor.Sprintf(format, args...))
}

// Verbosef prints a message only when Verbose is enabled.
func Verbosef(format string, args ...interface{}) {
	if Verbose {
		fmt.Printf("[verbose] "+format+"\n", args...)
	}
}

// Error prints an error message to stderr, always shown.
func Error(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, errColor.Sprintf("error: "+format, args...))
}

// Warning prints a warning message to stdout, always shown.
func Warning(format string, args ...interface{}) {
	fmt.Println(warnColor.Sprintf("warning: "+format, args...))
}
