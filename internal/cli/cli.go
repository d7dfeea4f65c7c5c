// Package cli implements the carquiz command line interface.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd, ok := commandIndex[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  carquiz <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"carquiz <command> --help\" for more information.")
}

// printUsage writes the command's usage lines and summary.
func (c *Command) printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range c.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if c.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", c.Summary)
	}
}

// parseFlags handles help requests, flag errors, and stray positional
// arguments for a command. done means the handler should return code
// without running.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (code int, done bool) {
	if wantsHelp(args) {
		cmd.printUsage(stdout)
		return ExitOK, true
	}
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			cmd.printUsage(stdout)
			return ExitOK, true
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		cmd.printUsage(stderr)
		return ExitUsage, true
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		cmd.printUsage(stderr)
		return ExitUsage, true
	}
	return ExitOK, false
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

// commandIndex resolves a name to its table entry.
var commandIndex = func() map[string]*Command {
	idx := make(map[string]*Command, len(commands))
	for _, cmd := range commands {
		idx[cmd.Name] = cmd
	}
	return idx
}()

var commands = []*Command{
	command("init", "Scaffold config.yaml and the project folders", []string{
		"carquiz init [--config <path>]",
	}, runInit),
	command("validate", "Validate config.yaml", []string{
		"carquiz validate [--config <path>]",
	}, runValidate),
	command("index", "Build the car image index", []string{
		"carquiz index [--config <path>] [--rebuild]",
	}, runIndex),
	command("play", "Play a quiz session", []string{
		"carquiz play [--config <path>] [--ui auto|live|plain] [--seed <n>]",
		"             [--choices <n>] [--rounds <n>] [--no-color]",
	}, runPlay),
	command("report", "Render the HTML session report", []string{
		"carquiz report [--config <path>] [--session <id>] [--out <path>]",
	}, runReport),
	command("stats", "Ingest session results and print accuracy summaries", []string{
		"carquiz stats [--config <path>]",
	}, runStats),
	command("serve", "Serve the session report over HTTP", []string{
		"carquiz serve [--config <path>] [--addr <host:port>]",
	}, runServe),
}
