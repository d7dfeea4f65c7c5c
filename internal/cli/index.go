package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"carquiz/internal/catalog"
	"carquiz/internal/lexicon"
)

// runIndex builds the handler for the index command.
func runIndex(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for config.yaml)")
		rebuild := flags.Bool("rebuild", false, "Rescan the data directory even when an index exists")
		if code, done := parseFlags(cmd, flags, args, stdout, stderr); done {
			return code
		}

		cfg, root, err := loadProject(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Index failed: %v\n", err)
			return ExitError
		}

		indexPath := cfg.IndexPath(root)
		if !*rebuild {
			if _, err := os.Stat(indexPath); err == nil {
				records, err := catalog.LoadIndex(indexPath)
				if err != nil {
					fmt.Fprintf(stderr, "Index failed: %v\n", err)
					return ExitError
				}
				fmt.Fprintf(stdout, "Index already has %d cars at %s\n", len(records), indexPath)
				fmt.Fprintln(stdout, "Use --rebuild to rescan the data directory.")
				return ExitOK
			} else if !os.IsNotExist(err) {
				fmt.Fprintf(stderr, "Index failed: stat index: %v\n", err)
				return ExitError
			}
		}

		lex, err := lexicon.Ensure(cfg.LexiconPath(root))
		if err != nil {
			fmt.Fprintf(stderr, "Index failed: %v\n", err)
			return ExitError
		}
		result, err := catalog.Scan(cfg.DataDir(root), lex)
		if err != nil {
			fmt.Fprintf(stderr, "Index failed: %v\n", err)
			return ExitError
		}
		if err := catalog.SaveIndex(indexPath, result.Records); err != nil {
			fmt.Fprintf(stderr, "Index failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Indexed %d cars (%d files skipped)\n", len(result.Records), len(result.Skipped))
		for _, rel := range result.Skipped {
			fmt.Fprintf(stdout, "Skipped: %s\n", rel)
		}
		fmt.Fprintf(stdout, "Index written to %s\n", indexPath)
		return ExitOK
	}
}
