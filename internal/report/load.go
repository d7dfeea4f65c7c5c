package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"carquiz/internal/session"
)

// LoadResults reads one results.json file.
func LoadResults(path string) (session.Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return session.Results{}, err
	}
	var results session.Results
	if err := json.Unmarshal(data, &results); err != nil {
		return session.Results{}, err
	}
	return results, nil
}

// LoadAllResults loads every stored session under resultsDir, oldest
// first. A missing directory yields an empty slice.
func LoadAllResults(resultsDir string) ([]session.Results, error) {
	dirs, err := sessionDirs(resultsDir)
	if err != nil {
		return nil, err
	}
	out := make([]session.Results, 0, len(dirs))
	for _, dir := range dirs {
		results, err := LoadResults(filepath.Join(resultsDir, dir, "results.json"))
		if err != nil {
			return nil, fmt.Errorf("load session %s: %w", dir, err)
		}
		out = append(out, results)
	}
	return out, nil
}

// ResolveSession loads one session by reference. An empty ref resolves
// to the most recent session.
func ResolveSession(resultsDir, ref string) (session.Results, string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		latest, err := findLatestSessionDir(resultsDir)
		if err != nil {
			return session.Results{}, "", err
		}
		ref = latest
	}
	sessionDir := filepath.Join(resultsDir, ref)
	if info, err := os.Stat(sessionDir); err != nil || !info.IsDir() {
		return session.Results{}, "", fmt.Errorf("session %s not found", ref)
	}
	results, err := LoadResults(filepath.Join(sessionDir, "results.json"))
	return results, sessionDir, err
}

// sessionDirs lists session directories sorted ascending, which is
// chronological because ids start with a UTC timestamp.
func sessionDirs(resultsDir string) ([]string, error) {
	entries, err := os.ReadDir(resultsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(resultsDir, entry.Name(), "results.json")); err != nil {
			continue
		}
		dirs = append(dirs, entry.Name())
	}
	sort.Strings(dirs)
	return dirs, nil
}

func findLatestSessionDir(resultsDir string) (string, error) {
	dirs, err := sessionDirs(resultsDir)
	if err != nil {
		return "", err
	}
	if len(dirs) == 0 {
		return "", fmt.Errorf("no sessions found in %s", resultsDir)
	}
	return dirs[len(dirs)-1], nil
}
