package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"carquiz/internal/config"
	"carquiz/internal/session"
)

// sampleImageNames cover four distinct (make, model, year) groups so
// the default four-choice quiz has enough material.
var sampleImageNames = []string{
	"ford_mustang_2018_01.jpg",
	"honda_civic_2019_01.jpg",
	"bmw_m3_2015_01.jpg",
	"toyota_corolla_2020_01.jpg",
}

// writeProject scaffolds a playable project in a temp dir and returns
// the project root and config path.
func writeProject(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	configPath := filepath.Join(root, config.ConfigFileName)
	if err := config.Scaffold(configPath, ""); err != nil {
		t.Fatalf("scaffold project: %v", err)
	}
	dataDir := filepath.Join(root, "data", "cars")
	for _, name := range sampleImageNames {
		if err := os.WriteFile(filepath.Join(dataDir, name), []byte("jpg"), 0o644); err != nil {
			t.Fatalf("write image %s: %v", name, err)
		}
	}
	return root, configPath
}

// storeSession writes a prebuilt results.json under the project results
// dir and returns the session id.
func storeSession(t *testing.T, root, sessionID string, correct bool) string {
	t.Helper()
	selected := "Ford Mustang 2018"
	if !correct {
		selected = "Honda Civic 2019"
	}
	results := session.Results{
		SessionID:  sessionID,
		Seed:       3,
		NumChoices: 2,
		StartedAt:  time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
		FinishedAt: time.Date(2024, 5, 6, 7, 18, 9, 0, time.UTC),
		Rounds: []session.RoundResult{
			{
				Round:         1,
				QuestionID:    "q-" + sessionID,
				ImagePath:     "ford_mustang_2018_01.jpg",
				Make:          "Ford",
				Model:         "Mustang",
				Year:          2018,
				Choices:       []string{"Ford Mustang 2018", "Honda Civic 2019"},
				SelectedLabel: selected,
				CorrectLabel:  "Ford Mustang 2018",
				Correct:       correct,
				AnsweredAt:    time.Date(2024, 5, 6, 7, 9, 9, 0, time.UTC),
			},
		},
		Summary: session.Summary{RoundsTotal: 1, CorrectTotal: boolToInt(correct), Accuracy: float64(boolToInt(correct))},
	}
	if _, err := session.WriteSessionOutputs(results, filepath.Join(root, "results")); err != nil {
		t.Fatalf("store session %s: %v", sessionID, err)
	}
	return sessionID
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
