package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const configTemplate = `version: 1

ui:
  title: "Car Quiz"
  subtitle: "Guess the make, model, and year from the photo"

paths:
  data_dir: "data/cars"
  index_dir: "index"
  assets_dir: "assets"
  results_dir: %q

quiz:
  num_choices: 4
  history_limit: 25

images:
  thumbnail_width: 640
`

// Scaffold writes a starter config and creates the image directory.
// An empty resultsDir keeps the default results folder. Scaffold
// refuses to overwrite an existing config file.
func Scaffold(configPath, resultsDir string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if strings.TrimSpace(resultsDir) == "" {
		resultsDir = DefaultResultsDir
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	root := RootFromConfigPath(configPath)
	dataDir := filepath.Join(root, DefaultDataDir)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	keepPath := filepath.Join(dataDir, ".gitkeep")
	if _, err := os.Stat(keepPath); os.IsNotExist(err) {
		if err := os.WriteFile(keepPath, nil, 0o644); err != nil {
			return fmt.Errorf("write .gitkeep: %w", err)
		}
	}

	payload := fmt.Sprintf(configTemplate, resultsDir)
	if err := os.WriteFile(configPath, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
