package gitops

import (
	"fmt"
	"strings"
)

// maxSlugLen bounds task slugs so branch names stay manageable.
const maxSlugLen = 50

// Slugify turns a task name into a branch-safe slug: lowercase, runs of
// non-alphanumerics collapsed to single hyphens, trimmed to maxSlugLen.
// Idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	prevHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if len(slug) > maxSlugLen {
		slug = strings.TrimRight(slug[:maxSlugLen], "-")
	}
	if slug == "" {
		slug = "task"
	}
	return slug
}

// BranchName formats the per-run branch: {prefix}/{task-slug}/run-{n}.
func BranchName(prefix, taskName string, runNumber int) string {
	return fmt.Sprintf("%s/%s/run-%d", prefix, Slugify(taskName), runNumber)
}

// CommitMessage expands the {task_name} and {run_number} placeholders of a
// project commit template.
func CommitMessage(template, taskName string, runNumber int) string {
	msg := strings.ReplaceAll(template, "{task_name}", taskName)
	return strings.ReplaceAll(msg, "{run_number}", fmt.Sprintf("%d", runNumber))
}

// PullRequestTitle formats the standard draft PR title.
func PullRequestTitle(taskName string, runNumber int) string {
	return fmt.Sprintf("MGX: %s - Run #%d", taskName, runNumber)
}
