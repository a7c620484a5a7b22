package ui

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether a controlling terminal is attached by
// probing /dev/tty directly. Stdout is no use here: the shell wrapper
// captures it on every invocation, so a stdout check would always say
// non-interactive and the picker would never appear.
func IsInteractive() bool {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return false
	}
	defer tty.Close()
	return term.IsTerminal(int(tty.Fd()))
}
