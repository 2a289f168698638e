// Package gitops drives the Git lifecycle of a run: worktree preparation,
// branch-per-run, commit, push, and draft pull request, all through the
// git and gh CLIs.
package gitops

import (
	"errors"
)

// Typed conditions callers treat as non-fatal: the run records them and
// finishes without Git artifacts rather than failing outright.
var (
	// ErrAuthFailed indicates the remote rejected our credentials.
	ErrAuthFailed = errors.New("git authentication failed")

	// ErrBranchExists indicates the target branch already exists.
	ErrBranchExists = errors.New("branch already exists")

	// ErrPRExists indicates a pull request for the branch already exists.
	ErrPRExists = errors.New("pull request already exists")
)
