package lexicon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// fileShape is the on-disk JSON encoding of a lexicon.
type fileShape struct {
	Makes map[string][]string `json:"makes"`
}

// Load reads a lexicon from a JSON file. A file without makes falls back
// to the built-in table so an emptied lexicon never disables resolution.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	var shape fileShape
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&shape); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse lexicon: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	if len(shape.Makes) == 0 {
		return Default(), nil
	}
	return New(shape.Makes), nil
}

// Save persists a lexicon to a JSON file using an atomic rename.
func Save(path string, lex *Lexicon) error {
	if path == "" {
		return fmt.Errorf("lexicon path is required")
	}
	payload, err := json.MarshalIndent(fileShape{Makes: lex.Makes()}, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(path, payload)
}

// Ensure loads the lexicon at path, writing the default table first when
// no file exists yet.
func Ensure(path string) (*Lexicon, error) {
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat lexicon: %w", err)
	}
	lex := Default()
	if err := Save(path, lex); err != nil {
		return nil, err
	}
	return lex, nil
}

func writeFileAtomic(path string, payload []byte) error {
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
