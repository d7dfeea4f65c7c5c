package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"carquiz/internal/report"
	"carquiz/internal/session"
)

// buildReportHTML is a test seam for rendering the report body.
var buildReportHTML = report.BuildReportHTML

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for config.yaml)")
		sessionRef := flags.String("session", "", "Session id to report on (default: all sessions)")
		outPath := flags.String("out", "", "Report output path")
		if code, done := parseFlags(cmd, flags, args, stdout, stderr); done {
			return code
		}

		cfg, root, err := loadProject(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}
		resultsDir := cfg.ResultsDir(root)

		var sessions []session.Results
		reportPath := *outPath
		if *sessionRef != "" {
			results, sessionDir, err := report.ResolveSession(resultsDir, *sessionRef)
			if err != nil {
				fmt.Fprintf(stderr, "Report failed: %v\n", err)
				return ExitError
			}
			sessions = []session.Results{results}
			if reportPath == "" {
				reportPath = filepath.Join(sessionDir, "report.html")
			}
		} else {
			sessions, err = report.LoadAllResults(resultsDir)
			if err != nil {
				fmt.Fprintf(stderr, "Report failed: %v\n", err)
				return ExitError
			}
			if reportPath == "" {
				reportPath = filepath.Join(resultsDir, "report.html")
			}
		}
		if len(sessions) == 0 {
			fmt.Fprintln(stderr, "No session results found. Play a round first.")
			return ExitError
		}

		html := buildReportHTML(sessions)
		if err := os.MkdirAll(filepath.Dir(reportPath), 0o755); err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}
		if err := os.WriteFile(reportPath, []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Report written to %s\n", reportPath)
		return ExitOK
	}
}
