package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"carquiz/internal/cli"
	"carquiz/internal/config"
	"carquiz/internal/session"

	"github.com/cucumber/godog"
)

const fixtureSessionID = "20240506T070809Z-feedfacecafe"

type featureState struct {
	projectDir  string
	configPath  string
	previousWD  string
	sessionID   string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
	initialized bool
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a project with car photos$`, state.aProjectWithCarPhotos)
	ctx.Step(`^the config is invalid$`, state.theConfigIsInvalid)
	ctx.Step(`^a project with a recorded session$`, state.aProjectWithRecordedSession)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the error message points to the invalid field$`, state.theErrorMessagePointsToInvalidField)
	ctx.Step(`^a report file lists the recorded session$`, state.aReportFileListsTheSession)
}

func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.sessionID = ""
	s.initialized = false
}

func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
		s.previousWD = ""
	}
	if s.projectDir != "" {
		_ = os.RemoveAll(s.projectDir)
		s.projectDir = ""
	}
}

func (s *featureState) aProjectWithCarPhotos() error {
	if s.initialized {
		return nil
	}
	dir, err := os.MkdirTemp("", "carquiz-feature-*")
	if err != nil {
		return fmt.Errorf("create temp project: %w", err)
	}
	s.projectDir = dir
	s.configPath = filepath.Join(dir, config.ConfigFileName)
	if err := config.Scaffold(s.configPath, ""); err != nil {
		return fmt.Errorf("scaffold project: %w", err)
	}

	dataDir := filepath.Join(dir, "data", "cars")
	photos := []string{
		"ford_mustang_2018_01.jpg",
		"honda_civic_2019_01.jpg",
		"bmw_m3_2015_01.jpg",
		"toyota_corolla_2020_01.jpg",
	}
	for _, name := range photos {
		if err := os.WriteFile(filepath.Join(dataDir, name), []byte("jpg"), 0o644); err != nil {
			return fmt.Errorf("write photo %s: %w", name, err)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	s.initialized = true
	return nil
}

func (s *featureState) theConfigIsInvalid() error {
	if err := s.aProjectWithCarPhotos(); err != nil {
		return err
	}
	payload, err := os.ReadFile(s.configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	broken := strings.Replace(string(payload), "version: 1", "version: 2", 1)
	if err := os.WriteFile(s.configPath, []byte(broken), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (s *featureState) aProjectWithRecordedSession() error {
	if err := s.aProjectWithCarPhotos(); err != nil {
		return err
	}
	results := session.Results{
		SessionID:  fixtureSessionID,
		Seed:       3,
		NumChoices: 2,
		StartedAt:  time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
		FinishedAt: time.Date(2024, 5, 6, 7, 18, 9, 0, time.UTC),
		Rounds: []session.RoundResult{
			{
				Round:         1,
				QuestionID:    "q-feature",
				ImagePath:     "ford_mustang_2018_01.jpg",
				Make:          "Ford",
				Model:         "Mustang",
				Year:          2018,
				Choices:       []string{"Ford Mustang 2018", "Honda Civic 2019"},
				SelectedLabel: "Ford Mustang 2018",
				CorrectLabel:  "Ford Mustang 2018",
				Correct:       true,
				AnsweredAt:    time.Date(2024, 5, 6, 7, 9, 9, 0, time.UTC),
			},
		},
		Summary: session.Summary{RoundsTotal: 1, CorrectTotal: 1, Accuracy: 1},
	}
	if _, err := session.WriteSessionOutputs(results, filepath.Join(s.projectDir, "results")); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	s.sessionID = fixtureSessionID
	return nil
}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "carquiz" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d (stderr: %s)", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theOutputContains(expected string) error {
	if !strings.Contains(s.stdout.String(), expected) {
		return fmt.Errorf("expected output to contain %q, got %q", expected, s.stdout.String())
	}
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theErrorMessagePointsToInvalidField() error {
	errOutput := s.stderr.String()
	if !strings.Contains(errOutput, "version") {
		return fmt.Errorf("expected error to mention version, got %q", errOutput)
	}
	return nil
}

func (s *featureState) aReportFileListsTheSession() error {
	if s.sessionID == "" {
		return fmt.Errorf("no recorded session in this scenario")
	}
	reportPath := filepath.Join(s.projectDir, "results", "report.html")
	payload, err := os.ReadFile(reportPath)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}
	if !strings.Contains(string(payload), s.sessionID) {
		return fmt.Errorf("expected report to mention session %s", s.sessionID)
	}
	return nil
}
