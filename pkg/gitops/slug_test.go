package gitops

import (
	"regexp"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Build API", "build-api"},
		{"punctuation", "Fix: login / signup!!", "fix-login-signup"},
		{"already slug", "fix-login-signup", "fix-login-signup"},
		{"unicode", "café menü", "caf-men"},
		{"leading trailing junk", "  --Hello World--  ", "hello-world"},
		{"empty", "", "task"},
		{"only junk", "!!!", "task"},
		{"long name truncated", "a very long task name that keeps going and going and going and going", "a-very-long-task-name-that-keeps-going-and-going-a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugifyProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("output is always branch-safe", prop.ForAll(
		func(s string) bool {
			slug := Slugify(s)
			return len(slug) <= maxSlugLen && slugShape.MatchString(slug)
		},
		gen.AnyString(),
	))

	properties.Property("idempotent", prop.ForAll(
		func(s string) bool {
			once := Slugify(s)
			return Slugify(once) == once
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestBranchName(t *testing.T) {
	assert.Equal(t, "mgx/build-api/run-3", BranchName("mgx", "Build API", 3))
}

func TestCommitMessage(t *testing.T) {
	got := CommitMessage("MGX: {task_name} (run #{run_number})", "Build API", 7)
	assert.Equal(t, "MGX: Build API (run #7)", got)

	// Templates without placeholders pass through.
	assert.Equal(t, "chore: update", CommitMessage("chore: update", "x", 1))
}

func TestPullRequestTitle(t *testing.T) {
	assert.Equal(t, "MGX: Build API - Run #2", PullRequestTitle("Build API", 2))
}
