package catalog

import (
	"errors"
	"fmt"
)

// ErrDirectoryNotFound matches any missing-data-directory failure.
var ErrDirectoryNotFound = errors.New("directory not found")

// DirectoryNotFoundError reports a scan root that does not exist.
// Fatal to catalog construction; per-file parse failures are not errors.
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("data directory not found: %s", e.Path)
}

func (e *DirectoryNotFoundError) Unwrap() error {
	return ErrDirectoryNotFound
}
