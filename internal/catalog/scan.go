package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"carquiz/internal/lexicon"
)

// Supported image extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ScanResult carries the parsed records plus the relative paths of
// image files whose names could not be parsed.
type ScanResult struct {
	Records []Record
	Skipped []string
}

// Scan walks root, parses every image filename, and returns records in
// lexicographic full-path order for reproducible indexes. Files that
// fail to parse are skipped, never fatal. Returns DirectoryNotFoundError
// when root does not exist.
func Scan(root string, lex *lexicon.Lexicon) (ScanResult, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return ScanResult{}, &DirectoryNotFoundError{Path: root}
		}
		return ScanResult{}, err
	}

	var candidates []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if imageExtensions[ext] {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return ScanResult{}, err
	}
	sort.Strings(candidates)

	result := ScanResult{}
	for _, path := range candidates {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return ScanResult{}, err
		}
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		record, ok := ParseStem(stem, lex)
		if !ok {
			result.Skipped = append(result.Skipped, rel)
			continue
		}
		record.Path = rel
		result.Records = append(result.Records, record)
	}
	return result, nil
}

// Build returns the parsed records for root in scan order.
func Build(root string, lex *lexicon.Lexicon) ([]Record, error) {
	result, err := Scan(root, lex)
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}
