package gitops

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/mgx-dev/mgx/pkg/models"
)

// commandTimeout bounds a single git invocation. Network operations
// (clone, push) get a longer leash.
const (
	commandTimeout = 30 * time.Second
	networkTimeout = 3 * time.Minute
)

// GitClient wraps git CLI operations rooted at a working directory.
type GitClient struct {
	dir string
}

// NewGitClient creates a client for the given directory. The directory
// need not exist yet; Clone creates it.
func NewGitClient(dir string) *GitClient {
	return &GitClient{dir: dir}
}

// Dir returns the working directory.
func (c *GitClient) Dir() string {
	return c.dir
}

// run executes a git command in the client's directory.
func (c *GitClient) run(ctx context.Context, timeout time.Duration, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", models.WrapFailure(models.ErrKindDeadlineExceeded, ctx.Err(),
				"git %s timed out", args[0])
		}
		return "", classifyGitError(args, stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// classifyGitError maps stderr patterns onto the typed conditions callers
// handle as non-fatal.
func classifyGitError(args []string, stderr string, err error) error {
	lower := strings.ToLower(stderr)
	switch {
	case strings.Contains(lower, "authentication failed"),
		strings.Contains(lower, "could not read username"),
		strings.Contains(lower, "permission denied"):
		return models.WrapFailure(models.ErrKindGitFailed, ErrAuthFailed,
			"git %s: %s", args[0], strings.TrimSpace(stderr))
	case strings.Contains(lower, "already exists") && strings.Contains(lower, "branch"):
		return models.WrapFailure(models.ErrKindGitFailed, ErrBranchExists,
			"git %s: %s", args[0], strings.TrimSpace(stderr))
	default:
		return models.WrapFailure(models.ErrKindGitFailed, err,
			"git %s: %s", strings.Join(args, " "), strings.TrimSpace(stderr))
	}
}

// Clone clones repoURL at baseBranch into the client directory.
func (c *GitClient) Clone(ctx context.Context, repoURL, baseBranch string) error {
	args := []string{"clone", "--single-branch"}
	if baseBranch != "" {
		args = append(args, "--branch", baseBranch)
	}
	args = append(args, repoURL, c.dir)

	// Clone runs from the parent: the target directory does not exist yet.
	clone := &GitClient{dir: ""}
	_, err := clone.run(ctx, networkTimeout, args...)
	return err
}

// CreateBranch creates and checks out a new branch.
func (c *GitClient) CreateBranch(ctx context.Context, name string) error {
	// Distinguish "exists" from other failures up front: checkout -b says
	// "already exists" too, but only for local branches.
	if _, err := c.run(ctx, commandTimeout, "rev-parse", "--verify", "refs/heads/"+name); err == nil {
		return models.WrapFailure(models.ErrKindGitFailed, ErrBranchExists,
			"branch %s already exists", name)
	}
	_, err := c.run(ctx, commandTimeout, "checkout", "-b", name)
	return err
}

// StageAll stages the given paths, or everything when paths is empty.
func (c *GitClient) StageAll(ctx context.Context, paths ...string) error {
	args := []string{"add", "--"}
	if len(paths) == 0 {
		args = []string{"add", "-A"}
	} else {
		args = append(args, paths...)
	}
	_, err := c.run(ctx, commandTimeout, args...)
	return err
}

// Commit records staged changes and returns the commit SHA. Committing
// with nothing staged is an error.
func (c *GitClient) Commit(ctx context.Context, message string) (string, error) {
	if _, err := c.run(ctx, commandTimeout, "commit", "-m", message); err != nil {
		return "", err
	}
	return c.run(ctx, commandTimeout, "rev-parse", "HEAD")
}

// HasStagedChanges reports whether anything is staged.
func (c *GitClient) HasStagedChanges(ctx context.Context) (bool, error) {
	_, err := c.run(ctx, commandTimeout, "diff", "--cached", "--quiet")
	if err == nil {
		return false, nil
	}
	// diff --quiet exits 1 when differences exist.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return true, nil
	}
	return false, err
}

// Push pushes the branch to origin.
func (c *GitClient) Push(ctx context.Context, branch string) error {
	_, err := c.run(ctx, networkTimeout, "push", "--set-upstream", "origin", branch)
	return err
}

// ResetHard discards all local changes back to HEAD.
func (c *GitClient) ResetHard(ctx context.Context) error {
	if _, err := c.run(ctx, commandTimeout, "reset", "--hard", "HEAD"); err != nil {
		return err
	}
	_, err := c.run(ctx, commandTimeout, "clean", "-fd")
	return err
}

// CurrentCommit returns the HEAD commit SHA.
func (c *GitClient) CurrentCommit(ctx context.Context) (string, error) {
	return c.run(ctx, commandTimeout, "rev-parse", "HEAD")
}

