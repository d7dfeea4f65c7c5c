package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

func (err *ValidationError) add(field, message string) {
	err.Issues = append(err.Issues, Issue{Field: field, Message: message})
}

// Error renders one line per issue.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	var b strings.Builder
	for i, issue := range err.Issues {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(issue.Field)
		b.WriteString(": ")
		b.WriteString(issue.Message)
	}
	return b.String()
}

// Validate checks a config for correctness and referenced directories.
func Validate(cfg *Config, baseDir string) error {
	verr := &ValidationError{}

	if cfg.Version == 0 {
		verr.add("version", "is required")
	} else if cfg.Version != 1 {
		verr.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	required := []struct{ field, value string }{
		{"paths.data_dir", cfg.Paths.DataDir},
		{"paths.index_dir", cfg.Paths.IndexDir},
		{"paths.assets_dir", cfg.Paths.AssetsDir},
		{"paths.results_dir", cfg.Paths.ResultsDir},
	}
	for _, p := range required {
		if strings.TrimSpace(p.value) == "" {
			verr.add(p.field, "is required")
		}
	}

	if cfg.Quiz.NumChoices < 2 {
		verr.add("quiz.num_choices", "must be >= 2")
	}
	if cfg.Quiz.HistoryLimit < 1 {
		verr.add("quiz.history_limit", "must be >= 1")
	}
	if cfg.Images.ThumbnailWidth < 1 {
		verr.add("images.thumbnail_width", "must be >= 1")
	}

	if baseDir == "" {
		baseDir = "."
	}
	if dataDir := strings.TrimSpace(cfg.Paths.DataDir); dataDir != "" {
		dataPath := dataDir
		if !filepath.IsAbs(dataPath) {
			dataPath = filepath.Join(baseDir, dataPath)
		}
		switch info, err := os.Stat(dataPath); {
		case err != nil:
			verr.add("paths.data_dir", fmt.Sprintf("directory not found at %q", dataDir))
		case !info.IsDir():
			verr.add("paths.data_dir", fmt.Sprintf("path %q is not a directory", dataDir))
		}
	}

	if len(verr.Issues) > 0 {
		return verr
	}
	return nil
}
