package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"carquiz/internal/duckdb"
	"carquiz/internal/report"
)

// runStats builds the handler for the stats command.
func runStats(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for config.yaml)")
		if code, done := parseFlags(cmd, flags, args, stdout, stderr); done {
			return code
		}

		cfg, root, err := loadProject(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Stats failed: %v\n", err)
			return ExitError
		}

		sessions, err := report.LoadAllResults(cfg.ResultsDir(root))
		if err != nil {
			fmt.Fprintf(stderr, "Stats failed: %v\n", err)
			return ExitError
		}
		if len(sessions) == 0 {
			fmt.Fprintln(stderr, "No session results found. Play a round first.")
			return ExitError
		}

		ctx := context.Background()
		dbPath := cfg.StatsDBPath(root)
		db, err := duckdb.Open(ctx, dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Stats failed: %v\n", err)
			return ExitError
		}
		defer db.Close()

		ingested, err := duckdb.IngestResults(ctx, db, sessions)
		if err != nil {
			fmt.Fprintf(stderr, "Stats failed: %v\n", err)
			return ExitError
		}
		totals, err := duckdb.QueryTotals(ctx, db)
		if err != nil {
			fmt.Fprintf(stderr, "Stats failed: %v\n", err)
			return ExitError
		}
		makeRows, err := duckdb.QueryMakeAccuracy(ctx, db)
		if err != nil {
			fmt.Fprintf(stderr, "Stats failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Ingested %d sessions into %s\n\n", ingested, dbPath)
		fmt.Fprintf(stdout, "Sessions: %d\n", totals.SessionsTotal)
		fmt.Fprintf(stdout, "Rounds:   %d\n", totals.RoundsTotal)
		fmt.Fprintf(stdout, "Correct:  %d\n", totals.CorrectTotal)
		fmt.Fprintf(stdout, "Accuracy: %s\n", formatPercent(totals.Accuracy))
		if len(makeRows) > 0 {
			fmt.Fprintf(stdout, "\n%-20s %7s %8s %9s\n", "Make", "Rounds", "Correct", "Accuracy")
			for _, row := range makeRows {
				fmt.Fprintf(stdout, "%-20s %7d %8d %9s\n",
					row.Make, row.RoundsTotal, row.CorrectTotal, formatPercent(row.Accuracy))
			}
		}
		return ExitOK
	}
}

// formatPercent renders an accuracy fraction with one decimal place.
func formatPercent(accuracy float64) string {
	return fmt.Sprintf("%.1f%%", accuracy*100)
}
