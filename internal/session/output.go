package session

import (
	"fmt"
	"path/filepath"
	"strings"
)

// OutputPaths describes filesystem locations for session outputs.
type OutputPaths struct {
	Root      string
	SessionID string
}

// NewOutputPaths validates and constructs output paths metadata.
func NewOutputPaths(root, sessionID string) (OutputPaths, error) {
	if strings.TrimSpace(root) == "" {
		return OutputPaths{}, fmt.Errorf("output root is empty")
	}
	if strings.TrimSpace(sessionID) == "" {
		return OutputPaths{}, fmt.Errorf("session ID is empty")
	}
	return OutputPaths{
		Root:      root,
		SessionID: sessionID,
	}, nil
}

// SessionDir returns the directory for a specific session.
func (o OutputPaths) SessionDir() string {
	return filepath.Join(o.Root, o.SessionID)
}

// ResultsPath returns the path to results.json.
func (o OutputPaths) ResultsPath() string {
	return filepath.Join(o.SessionDir(), "results.json")
}

// ReportPath returns the path to the HTML report.
func (o OutputPaths) ReportPath() string {
	return filepath.Join(o.SessionDir(), "report.html")
}
