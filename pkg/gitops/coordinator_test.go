package gitops

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePRClient records the last spec and returns a canned URL.
type fakePRClient struct {
	lastSpec *PullRequestSpec
	url      string
	err      error
}

func (f *fakePRClient) OpenPullRequest(_ context.Context, _ string, spec *PullRequestSpec) (string, error) {
	f.lastSpec = spec
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func TestCoordinatorWorktreeLifecycle(t *testing.T) {
	requireGit(t)
	ctx := context.Background()

	// A bare upstream repo to clone from.
	upstream := initRepo(t)

	workDir := t.TempDir()
	coord := NewCoordinator(workDir, &fakePRClient{url: "https://example.com/pr/1"})

	path, err := coord.PrepareWorktree(ctx, upstream.Dir(), "main", "mgx/demo/run-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, workDir))

	// The new branch is checked out.
	branch, err := NewGitClient(path).run(ctx, commandTimeout, "rev-parse", "--abbrev-ref", "HEAD")
	require.NoError(t, err)
	assert.Equal(t, "mgx/demo/run-1", branch)

	// Write and commit a change.
	require.NoError(t, os.WriteFile(filepath.Join(path, "app.py"), []byte("print('hi')\n"), 0o644))
	sha, err := coord.StageAndCommit(ctx, path, "MGX: demo (run #1)")
	require.NoError(t, err)
	assert.Len(t, sha, 40)

	// Committing again with no changes is a no-op, not an error.
	sha, err = coord.StageAndCommit(ctx, path, "MGX: demo (run #1)")
	require.NoError(t, err)
	assert.Empty(t, sha)

	coord.Cleanup(path)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestCoordinatorOpenPullRequestForcesDraft(t *testing.T) {
	pr := &fakePRClient{url: "https://example.com/pr/2"}
	coord := NewCoordinator(t.TempDir(), pr)

	url, err := coord.OpenPullRequest(context.Background(), "/tmp/x", &PullRequestSpec{
		Repo:   "acme/app",
		Branch: "mgx/demo/run-1",
		Title:  PullRequestTitle("demo", 1),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/pr/2", url)
	assert.True(t, pr.lastSpec.Draft)
}

func TestCoordinatorCleanupRefusesOutsidePaths(t *testing.T) {
	workDir := t.TempDir()
	coord := NewCoordinator(workDir, &fakePRClient{})

	outside := t.TempDir()
	victim := filepath.Join(outside, "data.txt")
	require.NoError(t, os.WriteFile(victim, []byte("keep me"), 0o644))

	coord.Cleanup(outside)

	// The outside directory survives.
	_, err := os.Stat(victim)
	assert.NoError(t, err)
}

func TestCoordinatorRollback(t *testing.T) {
	requireGit(t)
	ctx := context.Background()

	upstream := initRepo(t)
	workDir := t.TempDir()
	coord := NewCoordinator(workDir, &fakePRClient{})

	path, err := coord.PrepareWorktree(ctx, upstream.Dir(), "main", "mgx/demo/run-1")
	require.NoError(t, err)
	defer coord.Cleanup(path)

	require.NoError(t, os.WriteFile(filepath.Join(path, "junk.txt"), []byte("x"), 0o644))
	require.NoError(t, coord.Rollback(ctx, path))

	_, err = os.Stat(filepath.Join(path, "junk.txt"))
	assert.True(t, os.IsNotExist(err))
}
