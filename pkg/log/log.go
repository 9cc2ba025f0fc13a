// Package log provides colored console output for diagnostics written to
// stderr.
package log

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()

// Setup decides whether diagnostics are colored. Colors stay off when
// noColor is set or stderr is not a terminal.
func Setup(noColor bool) {
	color.NoColor = noColor || !term.IsTerminal(int(os.Stderr.Fd()))
}

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) {
	red(os.Stderr, "[!] Error: "+format, a...)
}

// InfoMsg prints an informational message to stderr in blue color.
func InfoMsg(format string, a ...interface{}) {
	blue(os.Stderr, "[+] "+format, a...)
}
