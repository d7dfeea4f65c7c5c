package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Path constants used by the CLI and loaders.
const (
	ConfigFileName  = "config.yaml"
	IndexFileName   = "cars_index.json"
	LexiconFileName = "lexicon.json"
	StatsDBFileName = "stats.duckdb"
	ThumbsDirName   = "thumbnails"
)

// ConfigPath returns the config file path under the project root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFileName)
}

// RootFromConfigPath derives the project root from a config file path.
func RootFromConfigPath(configPath string) string {
	return filepath.Dir(configPath)
}

// FindConfigPath searches upward from a directory for a config file.
// An empty startDir means the working directory.
func FindConfigPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		dir = "."
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	start := dir

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		switch info, err := os.Stat(configPath); {
		case err == nil && info.IsDir():
			return "", fmt.Errorf("config path %q is a directory", configPath)
		case err == nil:
			return configPath, nil
		case !os.IsNotExist(err):
			return "", fmt.Errorf("stat config path %q: %w", configPath, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in %s or parent directories", ConfigFileName, start)
		}
		dir = parent
	}
}

// resolvePath resolves a configured path against the project root.
func resolvePath(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// DataDir returns the image collection directory.
func (c Config) DataDir(root string) string {
	return resolvePath(root, c.Paths.DataDir)
}

// IndexPath returns the path to the catalog index file.
func (c Config) IndexPath(root string) string {
	return filepath.Join(resolvePath(root, c.Paths.IndexDir), IndexFileName)
}

// LexiconPath returns the path to the make lexicon file.
func (c Config) LexiconPath(root string) string {
	return filepath.Join(resolvePath(root, c.Paths.IndexDir), LexiconFileName)
}

// StatsDBPath returns the path to the stats database.
func (c Config) StatsDBPath(root string) string {
	return filepath.Join(resolvePath(root, c.Paths.IndexDir), StatsDBFileName)
}

// ThumbsDir returns the thumbnail cache directory.
func (c Config) ThumbsDir(root string) string {
	return filepath.Join(resolvePath(root, c.Paths.AssetsDir), ThumbsDirName)
}

// ResultsDir returns the session output directory.
func (c Config) ResultsDir(root string) string {
	return resolvePath(root, c.Paths.ResultsDir)
}
