// Command generate_fixture builds a stats database populated with
// synthetic quiz sessions. Useful for exercising the stats and serve
// commands without playing rounds by hand.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"carquiz/internal/duckdb"
	"carquiz/internal/session"

	"github.com/google/uuid"
)

var fixtureCars = []struct {
	make  string
	model string
	year  int
}{
	{"Ford", "Mustang", 2018},
	{"Honda", "Civic", 2019},
	{"BMW", "M3", 2015},
	{"Toyota", "Corolla", 2020},
	{"Porsche", "911", 2017},
}

func main() {
	outPath := flag.String("out", "", "output duckdb file path")
	sessions := flag.Int("sessions", 5, "number of synthetic sessions")
	rounds := flag.Int("rounds", 8, "rounds per session")
	seed := flag.Uint64("seed", 1, "rng seed for answer outcomes")
	flag.Parse()
	if *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_fixture --out <duckdb file> [--sessions N] [--rounds N]")
		os.Exit(2)
	}
	if *sessions < 1 || *rounds < 1 {
		fmt.Fprintln(os.Stderr, "--sessions and --rounds must be positive")
		os.Exit(2)
	}

	if err := removeIfExists(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir output dir: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := generateFixture(ctx, *outPath, *sessions, *rounds, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d sessions to %s\n", *sessions, *outPath)
}

func generateFixture(ctx context.Context, path string, sessions, rounds int, seed uint64) error {
	db, err := duckdb.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	batch := make([]session.Results, 0, sessions)
	rng := rand.New(rand.NewPCG(seed, seed))
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < sessions; i++ {
		batch = append(batch, fixtureSession(rng, i, rounds, start.Add(time.Duration(i)*time.Hour)))
	}
	ingested, err := duckdb.IngestResults(ctx, db, batch)
	if err != nil {
		return err
	}
	if ingested != sessions {
		return fmt.Errorf("expected %d sessions ingested, got %d", sessions, ingested)
	}
	return nil
}

// fixtureSession fabricates one finished session with plausible rounds.
func fixtureSession(rng *rand.Rand, index, rounds int, startedAt time.Time) session.Results {
	suffix := strings.ReplaceAll(deterministicID("session", index), "-", "")[:12]
	sessionID := fmt.Sprintf("%s-%s", startedAt.UTC().Format("20060102T150405Z"), suffix)

	results := session.Results{
		SessionID:  sessionID,
		Seed:       uint64(index + 1),
		NumChoices: 4,
		StartedAt:  startedAt,
		FinishedAt: startedAt.Add(time.Duration(rounds) * time.Minute),
	}
	correct := 0
	for round := 1; round <= rounds; round++ {
		carIdx := rng.IntN(len(fixtureCars))
		wrongIdx := (carIdx + 1 + rng.IntN(len(fixtureCars)-1)) % len(fixtureCars)
		car := fixtureCars[carIdx]
		wrong := fixtureCars[wrongIdx]
		label := fmt.Sprintf("%s %s %d", car.make, car.model, car.year)
		wrongLabel := fmt.Sprintf("%s %s %d", wrong.make, wrong.model, wrong.year)

		hit := rng.IntN(2) == 0
		selected := label
		if !hit {
			selected = wrongLabel
		} else {
			correct++
		}
		results.Rounds = append(results.Rounds, session.RoundResult{
			Round:         round,
			QuestionID:    deterministicID("question", index*1000+round),
			ImagePath:     fmt.Sprintf("%s_%s_%d_01.jpg", strings.ToLower(car.make), strings.ToLower(car.model), car.year),
			Make:          car.make,
			Model:         car.model,
			Year:          car.year,
			Choices:       []string{label, wrongLabel},
			SelectedLabel: selected,
			CorrectLabel:  label,
			Correct:       hit,
			AnsweredAt:    startedAt.Add(time.Duration(round) * time.Minute),
		})
	}
	results.Summary = session.Summary{
		RoundsTotal:  rounds,
		CorrectTotal: correct,
		Accuracy:     float64(correct) / float64(rounds),
	}
	return results
}

// removeIfExists deletes an existing fixture file so runs start fresh.
func removeIfExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove existing fixture: %w", err)
		}
		return nil
	}
	if os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("stat fixture: %w", err)
}

// deterministicID generates a repeatable id for fixture rows.
func deterministicID(prefix string, index int) string {
	return uuid.NewSHA1(fixtureNamespace, []byte(fmt.Sprintf("%s-%d", prefix, index))).String()
}

// fixtureNamespace keeps ids stable across fixture runs.
var fixtureNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
