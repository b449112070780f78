package cmd

import (
	"os"

	"github.com/mattn/go-isatty"

	"clite/config"
)

// isTerminal returns whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorEnabled decides whether coloured output should be written to f under
// the given colour mode.  In auto mode, the NO_COLOR convention and dumb
// terminals are respected.
func colorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return isTerminal(f)
}
