// Package vcs locates the enclosing git repository for project setup.
package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// runGit executes a git subcommand and returns trimmed stdout. Tests
// swap it for a canned runner.
var runGit = func(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		detail := "no stderr"
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := bytes.TrimSpace(exitErr.Stderr); len(msg) > 0 {
				detail = string(msg)
			}
		}
		return "", fmt.Errorf("git %s: %w (%s)", strings.Join(args, " "), err, detail)
	}
	return string(bytes.TrimSpace(out)), nil
}

// DiscoverRepoRoot resolves the git worktree root enclosing startDir.
// An empty startDir means the working directory. Callers treat failure
// as "not inside a repository".
func DiscoverRepoRoot(ctx context.Context, startDir string) (string, error) {
	root, err := runGit(ctx, strings.TrimSpace(startDir), "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("discover git root: %w", err)
	}
	return root, nil
}
