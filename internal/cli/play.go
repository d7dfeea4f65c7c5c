package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"carquiz/internal/catalog"
	"carquiz/internal/session"
	"carquiz/internal/ui/play"
)

// playInput allows tests to override stdin for plain-mode answers.
var playInput io.Reader = os.Stdin

// runLiveUI is a test seam for launching the full-screen UI.
var runLiveUI = play.Run

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for config.yaml)")
		uiMode := flags.String("ui", "auto", "UI mode: auto, live, or plain")
		seed := flags.Uint64("seed", 0, "Random seed (default: random)")
		choices := flags.Int("choices", 0, "Choices per question (default: from config)")
		rounds := flags.Int("rounds", 0, "Round limit, 0 plays until quit")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, done := parseFlags(cmd, flags, args, stdout, stderr); done {
			return code
		}
		seedSet := false
		flags.Visit(func(f *flag.Flag) {
			if f.Name == "seed" {
				seedSet = true
			}
		})
		if *choices == 1 || *choices < 0 {
			fmt.Fprintln(stderr, "Invalid --choices: need at least 2")
			return ExitUsage
		}
		if *rounds < 0 {
			fmt.Fprintln(stderr, "Invalid --rounds: cannot be negative")
			return ExitUsage
		}

		cfg, root, err := loadProject(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		numChoices := cfg.Quiz.NumChoices
		if *choices > 0 {
			numChoices = *choices
		}

		records, err := catalog.LoadOrBuild(cfg.DataDir(root), cfg.IndexPath(root), cfg.LexiconPath(root), false)
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		if len(records) == 0 {
			fmt.Fprintf(stderr, "No cars indexed. Add photos to %s and run \"carquiz index\".\n", cfg.DataDir(root))
			return ExitError
		}

		seedValue := *seed
		if !seedSet {
			seedValue, err = session.NewSeed()
			if err != nil {
				fmt.Fprintf(stderr, "Play failed: %v\n", err)
				return ExitError
			}
		}
		sess, err := session.New(seedValue, cfg.Quiz.HistoryLimit)
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}

		useLive, warning, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if warning != "" {
			fmt.Fprintln(stderr, warning)
		}

		var playErr error
		if useLive {
			playErr = runLiveUI(sess, records, play.Options{
				NoColor:    *noColor,
				NumChoices: numChoices,
				Rounds:     *rounds,
			}, stdout)
		} else {
			in := playInput
			if in == nil {
				in = os.Stdin
			}
			playErr = playPlain(sess, records, numChoices, *rounds, bufio.NewReader(in), stdout)
		}

		if sess.RoundsPlayed > 0 {
			results := sess.Results(numChoices, time.Now())
			paths, writeErr := session.WriteSessionOutputs(results, cfg.ResultsDir(root))
			if writeErr != nil {
				fmt.Fprintf(stderr, "Play failed: write outputs: %v\n", writeErr)
				return ExitError
			}
			fmt.Fprintf(stdout, "Session %s: %d/%d correct (%.0f%%)\n",
				sess.ID, sess.Score, sess.RoundsPlayed, sess.Accuracy()*100)
			fmt.Fprintf(stdout, "Results: %s\n", paths.ResultsPath())
			fmt.Fprintf(stdout, "Report: %s\n", paths.ReportPath())
		}
		if playErr != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", playErr)
			return ExitError
		}
		return ExitOK
	}
}
