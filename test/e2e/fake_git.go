package e2e

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/mgx-dev/mgx/pkg/executor"
	"github.com/mgx-dev/mgx/pkg/gitops"
	"github.com/mgx-dev/mgx/pkg/models"
)

// FakeGit implements the executor's git port on local temp directories.
// It records every operation so scenarios can assert the git lifecycle
// without a remote.
type FakeGit struct {
	t *testing.T

	mu       sync.Mutex
	Branches []string
	Commits  []string
	Pushed   []string
	PRs      []string

	FailPrepare bool // forces the scratch-directory fallback
}

// NewFakeGit creates a FakeGit rooted in the test's temp space.
func NewFakeGit(t *testing.T) *FakeGit {
	return &FakeGit{t: t}
}

// PrepareWorktree implements executor.Git.
func (g *FakeGit) PrepareWorktree(_ context.Context, repoURL, baseBranch, newBranch string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailPrepare {
		return "", models.NewFailure(models.ErrKindGitFailed, "clone of %s refused", repoURL)
	}
	dir, err := os.MkdirTemp(g.t.TempDir(), "worktree-*")
	if err != nil {
		return "", err
	}
	g.Branches = append(g.Branches, newBranch)
	return dir, nil
}

// StageAndCommit implements executor.Git.
func (g *FakeGit) StageAndCommit(_ context.Context, path, message string, files ...string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Commits = append(g.Commits, message)
	return fmt.Sprintf("%040d", len(g.Commits)), nil
}

// Push implements executor.Git.
func (g *FakeGit) Push(_ context.Context, path, branch string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Pushed = append(g.Pushed, branch)
	return nil
}

// OpenPullRequest implements executor.Git.
func (g *FakeGit) OpenPullRequest(_ context.Context, path string, spec *gitops.PullRequestSpec) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	url := fmt.Sprintf("https://git.example.test/pulls/%d", len(g.PRs)+1)
	g.PRs = append(g.PRs, url)
	return url, nil
}

// Rollback implements executor.Git.
func (g *FakeGit) Rollback(_ context.Context, path string) error {
	return nil
}

// Cleanup implements executor.Git.
func (g *FakeGit) Cleanup(path string) {
	_ = os.RemoveAll(path)
}

var _ executor.Git = (*FakeGit)(nil)
