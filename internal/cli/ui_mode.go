package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// isTerminal reports whether a writer is a TTY. Tests pin the answer.
var isTerminal = defaultIsTerminal

// resolveUIMode maps the --ui flag to a concrete choice. It returns
// whether to run the full-screen UI, plus a warning when a live request
// cannot be honored.
func resolveUIMode(mode string, stdout io.Writer) (bool, string, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return isTerminal(stdout), "", nil
	case "live":
		if isTerminal(stdout) {
			return true, "", nil
		}
		return false, "Live UI needs a TTY; using plain output.", nil
	case "plain":
		return false, "", nil
	default:
		return false, "", fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	fder, ok := stdout.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(fder.Fd()))
}
