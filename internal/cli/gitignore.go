package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// addGitignoreEntry appends the results folder to the repository
// .gitignore unless a line already covers it. Returns whether the file
// changed.
func addGitignoreEntry(repoRoot, resultsDir string) (bool, error) {
	entry, err := normalizeGitignorePath(repoRoot, resultsDir)
	if err != nil {
		return false, err
	}

	path := filepath.Join(repoRoot, ".gitignore")
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("read .gitignore: %w", err)
	}
	if gitignoreLists(data, entry) {
		return false, nil
	}

	suffix := entry + "\n"
	if n := len(data); n > 0 && data[n-1] != '\n' {
		suffix = "\n" + suffix
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return false, fmt.Errorf("open .gitignore: %w", err)
	}
	if _, err := file.WriteString(suffix); err != nil {
		file.Close()
		return false, fmt.Errorf("append to .gitignore: %w", err)
	}
	if err := file.Close(); err != nil {
		return false, fmt.Errorf("close .gitignore: %w", err)
	}
	return true, nil
}

// gitignoreLists reports whether a line already covers the entry. A
// trailing slash on the existing line counts as the same directory.
func gitignoreLists(data []byte, entry string) bool {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == entry || line == entry+"/" {
			return true
		}
	}
	return false
}

// normalizeGitignorePath converts the results dir to a slash-separated
// path relative to the repo root.
func normalizeGitignorePath(repoRoot, resultsDir string) (string, error) {
	if strings.TrimSpace(resultsDir) == "" {
		return "", fmt.Errorf("results dir is required")
	}
	abs := filepath.Clean(resultsDir)
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(repoRoot, abs)
	}
	rel, err := filepath.Rel(repoRoot, abs)
	if err != nil {
		return "", fmt.Errorf("resolve results dir: %w", err)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("results dir %q is outside the repo root", resultsDir)
	}
	return filepath.ToSlash(rel), nil
}
