package gitops

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/models"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// initRepo creates a git repository with one commit.
func initRepo(t *testing.T) *GitClient {
	t.Helper()
	requireGit(t)

	dir := t.TempDir()
	git := NewGitClient(dir)
	ctx := context.Background()

	for _, args := range [][]string{
		{"init", "-b", "main"},
		{"config", "user.email", "test@example.com"},
		{"config", "user.name", "Test"},
	} {
		_, err := git.run(ctx, commandTimeout, args...)
		require.NoError(t, err)
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0o644))
	require.NoError(t, git.StageAll(ctx))
	_, err := git.Commit(ctx, "initial")
	require.NoError(t, err)
	return git
}

func TestGitClientCreateBranch(t *testing.T) {
	git := initRepo(t)
	ctx := context.Background()

	require.NoError(t, git.CreateBranch(ctx, "mgx/demo/run-1"))

	branch, err := git.run(ctx, commandTimeout, "rev-parse", "--abbrev-ref", "HEAD")
	require.NoError(t, err)
	assert.Equal(t, "mgx/demo/run-1", branch)
}

func TestGitClientCreateBranchExists(t *testing.T) {
	git := initRepo(t)
	ctx := context.Background()

	require.NoError(t, git.CreateBranch(ctx, "mgx/demo/run-1"))
	err := git.CreateBranch(ctx, "mgx/demo/run-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBranchExists))
	assert.True(t, models.IsKind(err, models.ErrKindGitFailed))
}

func TestGitClientCommitFlow(t *testing.T) {
	git := initRepo(t)
	ctx := context.Background()

	staged, err := git.HasStagedChanges(ctx)
	require.NoError(t, err)
	assert.False(t, staged)

	require.NoError(t, os.WriteFile(filepath.Join(git.Dir(), "main.go"), []byte("package main\n"), 0o644))
	require.NoError(t, git.StageAll(ctx))

	staged, err = git.HasStagedChanges(ctx)
	require.NoError(t, err)
	assert.True(t, staged)

	sha, err := git.Commit(ctx, "add main")
	require.NoError(t, err)
	assert.Len(t, sha, 40)

	head, err := git.CurrentCommit(ctx)
	require.NoError(t, err)
	assert.Equal(t, sha, head)
}

func TestGitClientResetHard(t *testing.T) {
	git := initRepo(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(git.Dir(), "junk.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(git.Dir(), "README.md"), []byte("changed"), 0o644))

	require.NoError(t, git.ResetHard(ctx))

	_, err := os.Stat(filepath.Join(git.Dir(), "junk.txt"))
	assert.True(t, os.IsNotExist(err))
	content, err := os.ReadFile(filepath.Join(git.Dir(), "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# test\n", string(content))
}

func TestClassifyGitError(t *testing.T) {
	tests := []struct {
		name     string
		stderr   string
		sentinel error
	}{
		{"auth", "fatal: Authentication failed for 'https://x'", ErrAuthFailed},
		{"username prompt", "fatal: could not read Username for 'https://x'", ErrAuthFailed},
		{"permission", "git@github.com: Permission denied (publickey).", ErrAuthFailed},
		{"branch exists", "fatal: a branch named 'x' already exists", ErrBranchExists},
		{"other", "fatal: some other error", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyGitError([]string{"checkout"}, tt.stderr, errors.New("exit status 128"))
			assert.True(t, models.IsKind(err, models.ErrKindGitFailed))
			if tt.sentinel != nil {
				assert.True(t, errors.Is(err, tt.sentinel))
			} else {
				assert.False(t, errors.Is(err, ErrAuthFailed))
				assert.False(t, errors.Is(err, ErrBranchExists))
			}
		})
	}
}
