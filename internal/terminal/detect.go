// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stdout are both interactive terminals.
// This is the canonical implementation for terminal detection across the codebase.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// ConfigureColor disables colored output when stdout is not a terminal.
// Progress lines end up in logs or pipes unchanged that way.
func ConfigureColor() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
}
