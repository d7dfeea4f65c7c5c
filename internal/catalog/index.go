package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"carquiz/internal/lexicon"
)

// LoadIndex reads a previously saved record index from a JSON file.
func LoadIndex(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	var records []Record
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse index: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse index: %w", err)
	}
	return records, nil
}

// SaveIndex persists records to a JSON file using an atomic rename.
func SaveIndex(path string, records []Record) error {
	if path == "" {
		return fmt.Errorf("index path is required")
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmpPath := path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	_, writeErr := file.Write(payload)
	syncErr := file.Sync()
	closeErr := file.Close()
	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return writeErr
	}
	if syncErr != nil {
		_ = os.Remove(tmpPath)
		return syncErr
	}
	if closeErr != nil {
		_ = os.Remove(tmpPath)
		return closeErr
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// LoadOrBuild returns the saved index when present, otherwise scans the
// data directory and saves the result. forceRebuild always rescans. The
// lexicon file is created from the built-in table on first use.
func LoadOrBuild(dataDir, indexPath, lexiconPath string, forceRebuild bool) ([]Record, error) {
	lex, err := lexicon.Ensure(lexiconPath)
	if err != nil {
		return nil, err
	}
	if !forceRebuild {
		if _, err := os.Stat(indexPath); err == nil {
			return LoadIndex(indexPath)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat index: %w", err)
		}
	}
	records, err := Build(dataDir, lex)
	if err != nil {
		return nil, err
	}
	if err := SaveIndex(indexPath, records); err != nil {
		return nil, err
	}
	return records, nil
}
