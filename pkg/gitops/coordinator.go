package gitops

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mgx-dev/mgx/pkg/models"
)

// Coordinator orchestrates the per-run Git lifecycle. All paths it hands
// out live under its workDir and are deleted by Cleanup; remote branches
// persist for review.
type Coordinator struct {
	workDir string
	pr      PRClient
}

// NewCoordinator creates a coordinator rooting worktrees under workDir.
func NewCoordinator(workDir string, pr PRClient) *Coordinator {
	return &Coordinator{workDir: workDir, pr: pr}
}

// PrepareWorktree clones repoURL at baseBranch into a fresh directory and
// checks out newBranch. Returns the local path.
func (c *Coordinator) PrepareWorktree(ctx context.Context, repoURL, baseBranch, newBranch string) (string, error) {
	path, err := os.MkdirTemp(c.workDir, "worktree-*")
	if err != nil {
		return "", models.WrapFailure(models.ErrKindGitFailed, err, "failed to create worktree dir")
	}
	// MkdirTemp creates the directory; git clone wants to create it itself.
	if err := os.Remove(path); err != nil {
		return "", models.WrapFailure(models.ErrKindGitFailed, err, "failed to prepare worktree dir")
	}

	git := NewGitClient(path)
	if err := git.Clone(ctx, repoURL, baseBranch); err != nil {
		c.Cleanup(path)
		return "", err
	}
	if err := git.CreateBranch(ctx, newBranch); err != nil {
		c.Cleanup(path)
		return "", err
	}
	return path, nil
}

// StageAndCommit stages files (all when empty) and commits with message.
// Returns the commit SHA, or empty with no error when nothing changed.
func (c *Coordinator) StageAndCommit(ctx context.Context, path, message string, files ...string) (string, error) {
	git := NewGitClient(path)
	if err := git.StageAll(ctx, files...); err != nil {
		return "", err
	}
	staged, err := git.HasStagedChanges(ctx)
	if err != nil {
		return "", err
	}
	if !staged {
		slog.Info("Nothing to commit", "path", path)
		return "", nil
	}
	return git.Commit(ctx, message)
}

// Push pushes the branch to origin with upstream tracking.
func (c *Coordinator) Push(ctx context.Context, path, branch string) error {
	return NewGitClient(path).Push(ctx, branch)
}

// OpenPullRequest opens a draft PR for the pushed branch.
func (c *Coordinator) OpenPullRequest(ctx context.Context, path string, spec *PullRequestSpec) (string, error) {
	spec.Draft = true
	return c.pr.OpenPullRequest(ctx, path, spec)
}

// Rollback discards uncommitted local changes in the worktree. Used on
// cancellation; pushed branches are left untouched.
func (c *Coordinator) Rollback(ctx context.Context, path string) error {
	return NewGitClient(path).ResetHard(ctx)
}

// Cleanup removes the local worktree. Local state only.
func (c *Coordinator) Cleanup(path string) {
	// Refuse paths outside workDir so a bug cannot delete arbitrary trees.
	rel, err := filepath.Rel(c.workDir, path)
	if err != nil || rel == ".." || filepath.IsAbs(rel) || len(rel) >= 2 && rel[:2] == ".." {
		slog.Error("Refusing to clean up path outside work dir", "path", path)
		return
	}
	if err := os.RemoveAll(path); err != nil {
		slog.Warn("Worktree cleanup failed", "path", path, "error", err)
	}
}
