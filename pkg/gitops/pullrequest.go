package gitops

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/mgx-dev/mgx/pkg/models"
)

// PullRequestSpec describes the PR to open.
type PullRequestSpec struct {
	Repo   string // owner/name
	Branch string
	Base   string
	Title  string
	Body   string
	Draft  bool
}

// PRClient opens pull requests. Implemented by GHClient; faked in tests.
type PRClient interface {
	OpenPullRequest(ctx context.Context, dir string, spec *PullRequestSpec) (string, error)
}

// GHClient opens pull requests through the gh CLI, which resolves
// authentication from its own config or GH_TOKEN.
type GHClient struct{}

// NewGHClient creates a GHClient.
func NewGHClient() *GHClient {
	return &GHClient{}
}

// OpenPullRequest creates a PR and returns its URL. A PR already open for
// the branch surfaces as ErrPRExists.
func (g *GHClient) OpenPullRequest(ctx context.Context, dir string, spec *PullRequestSpec) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	args := []string{"pr", "create",
		"--title", spec.Title,
		"--body", spec.Body,
		"--head", spec.Branch,
	}
	if spec.Base != "" {
		args = append(args, "--base", spec.Base)
	}
	if spec.Repo != "" {
		args = append(args, "--repo", spec.Repo)
	}
	if spec.Draft {
		args = append(args, "--draft")
	}

	cmd := exec.CommandContext(ctx, "gh", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", models.WrapFailure(models.ErrKindDeadlineExceeded, ctx.Err(), "gh pr create timed out")
		}
		lower := strings.ToLower(stderr.String())
		switch {
		case strings.Contains(lower, "already exists"):
			return "", models.WrapFailure(models.ErrKindGitFailed, ErrPRExists,
				"pull request for %s already exists", spec.Branch)
		case strings.Contains(lower, "authentication"), strings.Contains(lower, "gh auth login"):
			return "", models.WrapFailure(models.ErrKindGitFailed, ErrAuthFailed,
				"gh pr create: %s", strings.TrimSpace(stderr.String()))
		default:
			return "", models.WrapFailure(models.ErrKindGitFailed, err,
				"gh pr create: %s", strings.TrimSpace(stderr.String()))
		}
	}

	// gh prints the PR URL on the last stdout line.
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	url := strings.TrimSpace(lines[len(lines)-1])
	if !strings.HasPrefix(url, "http") {
		return "", models.NewFailure(models.ErrKindGitFailed,
			"gh pr create returned no URL: %q", url)
	}
	return url, nil
}
