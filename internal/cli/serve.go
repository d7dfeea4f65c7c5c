package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"carquiz/internal/reportserver"
)

// serveReport is a test seam for running the report server.
var serveReport = reportserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for config.yaml)")
		addr := flags.String("addr", "127.0.0.1:5000", "Address to listen on")
		if code, done := parseFlags(cmd, flags, args, stdout, stderr); done {
			return code
		}
		if *addr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
			return ExitUsage
		}

		cfg, root, err := loadProject(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Serve failed: %v\n", err)
			return ExitError
		}

		serverCfg := reportserver.Config{
			Addr:       *addr,
			ResultsDir: cfg.ResultsDir(root),
			DBPath:     cfg.StatsDBPath(root),
			DataDir:    cfg.DataDir(root),
			ThumbsDir:  cfg.ThumbsDir(root),
			ThumbWidth: cfg.Images.ThumbnailWidth,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(stdout, "Serving report at http://%s\n", serverCfg.Addr)
		if err := serveReport(ctx, serverCfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
