package cli

import (
	"flag"
	"fmt"
	"io"

	"carquiz/internal/config"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for config.yaml)")
		if code, done := parseFlags(cmd, flags, args, stdout, stderr); done {
			return code
		}

		resolved, err := resolveConfigPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		cfg, err := config.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Config OK (%s)\n", resolved)
		printConfigSummary(stdout, cfg, config.RootFromConfigPath(resolved))
		return ExitOK
	}
}

// printConfigSummary echoes the effective settings so a wrong path or a
// stray env override is visible without opening the file.
func printConfigSummary(w io.Writer, cfg config.Config, root string) {
	fmt.Fprintf(w, "  data dir:   %s\n", cfg.DataDir(root))
	fmt.Fprintf(w, "  results:    %s\n", cfg.ResultsDir(root))
	fmt.Fprintf(w, "  choices:    %d\n", cfg.Quiz.NumChoices)
	fmt.Fprintf(w, "  thumbnails: %dpx\n", cfg.Images.ThumbnailWidth)
}
