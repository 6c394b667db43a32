// Package vcsutil is the version-control collaborator for checkpoints: it
// stages the data paths and commits only when the staged diff is
// non-empty. It shells out to the git binary in the repository clone.
package vcsutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

type Git struct {
	RepoDir string
	// Paths staged on every checkpoint, relative to RepoDir: the
	// equipment data directory and the ledger file.
	Paths []string
}

// Summarize renders up to three item names plus a remainder count, the
// fixed shape of checkpoint commit subjects.
func Summarize(names []string) string {
	shown := names
	if len(shown) > 3 {
		shown = shown[:3]
	}
	summary := strings.Join(shown, ", ")
	if len(names) > 3 {
		summary += fmt.Sprintf(" (+%d more)", len(names)-3)
	}
	return summary
}

// Checkpoint stages the configured paths and commits them with a message
// naming the batch. A clean staged diff is a no-op, not an error.
func (g Git) Checkpoint(ctx context.Context, names []string, status string) error {
	// paths are staged one by one: early runs have no ledger or data dir
	// yet and an unmatched pathspec must not sink the whole checkpoint
	for _, path := range g.Paths {
		err := g.run(ctx, "add", "--", path)
		if err != nil {
			slog.DebugContext(ctx, "could not stage path", "path", path, "err", err)
		}
	}

	staged, err := g.hasStagedChanges(ctx)
	if err != nil {
		return err
	}
	if !staged {
		slog.InfoContext(ctx, "no staged changes to commit")
		return nil
	}

	message := fmt.Sprintf("Update: %s - %s", Summarize(names), status)
	err = g.run(ctx, "commit", "-m", message)
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	slog.InfoContext(ctx, "checkpoint committed", "items", len(names), "status", status)
	return nil
}

func (g Git) hasStagedChanges(ctx context.Context) (bool, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", g.RepoDir, "diff", "--cached", "--quiet")
	err := cmd.Run()
	if err == nil {
		return false, nil
	}
	// exit code 1 just means the diff is non-empty
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return true, nil
	}
	return false, fmt.Errorf("diff --cached: %w", err)
}

func (g Git) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", g.RepoDir}, args...)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}
