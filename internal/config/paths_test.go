package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDerivedPaths(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{
			DataDir:    "data/cars",
			IndexDir:   "index",
			AssetsDir:  "assets",
			ResultsDir: "results",
		},
	}
	root := filepath.Join("home", "quiz")

	if got := cfg.DataDir(root); got != filepath.Join(root, "data", "cars") {
		t.Fatalf("unexpected data dir: %q", got)
	}
	if got := cfg.IndexPath(root); got != filepath.Join(root, "index", "cars_index.json") {
		t.Fatalf("unexpected index path: %q", got)
	}
	if got := cfg.LexiconPath(root); got != filepath.Join(root, "index", "lexicon.json") {
		t.Fatalf("unexpected lexicon path: %q", got)
	}
	if got := cfg.StatsDBPath(root); got != filepath.Join(root, "index", "stats.duckdb") {
		t.Fatalf("unexpected stats db path: %q", got)
	}
	if got := cfg.ThumbsDir(root); got != filepath.Join(root, "assets", "thumbnails") {
		t.Fatalf("unexpected thumbs dir: %q", got)
	}
	if got := cfg.ResultsDir(root); got != filepath.Join(root, "results") {
		t.Fatalf("unexpected results dir: %q", got)
	}
}

func TestDerivedPathsKeepAbsolute(t *testing.T) {
	abs := string(filepath.Separator) + filepath.Join("srv", "cars")
	cfg := Config{Paths: PathsConfig{DataDir: abs}}

	if got := cfg.DataDir("ignored"); got != abs {
		t.Fatalf("absolute path must pass through, got %q", got)
	}
}

func TestRootFromConfigPath(t *testing.T) {
	configPath := filepath.Join("home", "quiz", ConfigFileName)
	if got := RootFromConfigPath(configPath); got != filepath.Join("home", "quiz") {
		t.Fatalf("unexpected root: %q", got)
	}
}

func TestFindConfigPathWalksUp(t *testing.T) {
	root := t.TempDir()
	configPath := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("version: 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	got, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find config: %v", err)
	}
	if got != configPath {
		t.Fatalf("unexpected config path: %q", got)
	}
}

func TestFindConfigPathMissing(t *testing.T) {
	if _, err := FindConfigPath(t.TempDir()); err == nil {
		t.Fatalf("expected error when no config exists")
	}
}
