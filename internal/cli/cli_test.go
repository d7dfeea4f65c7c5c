package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestRootHelp verifies --help lists every command with the carquiz
// invocation line.
func TestRootHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run([]string{"--help"}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if errOut.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", errOut.String())
	}
	output := out.String()
	if !strings.Contains(output, "carquiz <command> [options]") {
		t.Fatalf("expected invocation line, got %q", output)
	}
	for _, name := range []string{"init", "validate", "index", "play", "report", "stats", "serve"} {
		if !strings.Contains(output, name) {
			t.Fatalf("expected command %q in help output", name)
		}
	}
}

// TestNoArgsShowsUsage verifies a bare invocation prints usage and exits
// with the usage code.
func TestNoArgsShowsUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run(nil, &out, &errOut); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("expected usage output, got %q", out.String())
	}
}

// TestUnknownCommand verifies unknown commands are reported on stderr.
func TestUnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run([]string{"nope"}, &out, &errOut); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Unknown command: nope") {
		t.Fatalf("expected unknown command error, got %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "Usage:") {
		t.Fatalf("expected usage in stderr, got %q", errOut.String())
	}
}

// TestCommandHelp verifies each command prints its usage lines for both
// help flags.
func TestCommandHelp(t *testing.T) {
	for _, cmd := range commands {
		for _, helpFlag := range []string{"--help", "-h"} {
			var out, errOut bytes.Buffer
			if code := Run([]string{cmd.Name, helpFlag}, &out, &errOut); code != ExitOK {
				t.Fatalf("%s %s: expected exit %d, got %d", cmd.Name, helpFlag, ExitOK, code)
			}
			for _, line := range cmd.Usage {
				if !strings.Contains(out.String(), line) {
					t.Fatalf("%s: expected usage line %q, got %q", cmd.Name, line, out.String())
				}
			}
		}
	}
}

// TestHelpCommandAlias verifies "help" behaves like --help.
func TestHelpCommandAlias(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run([]string{"help"}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(out.String(), "Commands:") {
		t.Fatalf("expected command listing, got %q", out.String())
	}
}
