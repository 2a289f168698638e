package stack

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mgx-dev/mgx/pkg/models"
)

// ApplyMode selects multi-file patch failure behavior.
type ApplyMode int

const (
	// ApplyAllOrNothing rolls every file back from backups on any failure.
	ApplyAllOrNothing ApplyMode = iota
	// ApplyBestEffort applies what succeeds and records the rest.
	ApplyBestEffort
)

// FailedFile describes one file that could not be patched.
type FailedFile struct {
	Path      string
	Err       error
	Candidate string // path of the .mgx_new review candidate
}

// ApplyReport is the outcome of a multi-file patch.
type ApplyReport struct {
	Applied    []string
	Failed     []FailedFile
	RolledBack bool
}

// Patcher applies unified diffs to a project tree.
type Patcher struct {
	root string
}

// NewPatcher creates a patcher rooted at the project directory.
func NewPatcher(root string) *Patcher {
	return &Patcher{root: root}
}

// Apply patches the tree with the given diffs. In all-or-nothing mode any
// failure restores every touched file from its timestamped .mgx_bak.*
// backup; in best-effort mode failures leave the original untouched and
// write a .mgx_new candidate plus log for human review.
func (p *Patcher) Apply(diffs []FileDiff, mode ApplyMode) (*ApplyReport, error) {
	report := &ApplyReport{}
	backupSuffix := fmt.Sprintf(".mgx_bak.%d", time.Now().Unix())
	var backups []string // relative paths that have backups

	for _, d := range diffs {
		rel, err := ValidatePath(d.Path)
		if err != nil {
			if failErr := p.recordFailure(report, d, rel, err); failErr != nil {
				return report, failErr
			}
			if mode == ApplyAllOrNothing {
				p.rollback(backups, backupSuffix, report)
				return report, err
			}
			continue
		}

		abs := filepath.Join(p.root, rel)
		original, err := os.ReadFile(abs)
		if err != nil {
			err = models.WrapFailure(models.ErrKindInvalidInput, err, "cannot read patch target %s", rel)
			if failErr := p.recordFailure(report, d, rel, err); failErr != nil {
				return report, failErr
			}
			if mode == ApplyAllOrNothing {
				p.rollback(backups, backupSuffix, report)
				return report, err
			}
			continue
		}

		patched, err := d.Apply(string(original))
		if err != nil {
			if failErr := p.recordFailure(report, d, rel, err); failErr != nil {
				return report, failErr
			}
			if mode == ApplyAllOrNothing {
				p.rollback(backups, backupSuffix, report)
				return report, err
			}
			continue
		}

		if mode == ApplyAllOrNothing {
			if err := os.WriteFile(abs+backupSuffix, original, 0o644); err != nil {
				return report, models.WrapFailure(models.ErrKindInternal, err, "cannot back up %s", rel)
			}
			backups = append(backups, rel)
		}
		if err := os.WriteFile(abs, []byte(patched), 0o644); err != nil {
			err = models.WrapFailure(models.ErrKindInternal, err, "cannot write %s", rel)
			if mode == ApplyAllOrNothing {
				p.rollback(backups, backupSuffix, report)
				return report, err
			}
			if failErr := p.recordFailure(report, d, rel, err); failErr != nil {
				return report, failErr
			}
			continue
		}
		report.Applied = append(report.Applied, rel)
	}

	if mode == ApplyAllOrNothing {
		// Success: drop the backups.
		for _, rel := range backups {
			if err := os.Remove(filepath.Join(p.root, rel+backupSuffix)); err != nil {
				slog.Warn("Failed to remove patch backup", "path", rel, "error", err)
			}
		}
	}
	return report, nil
}

// recordFailure preserves the original and writes the review candidate:
// the file's diff at <path>.mgx_new and the failure at <path>.mgx_new.log.
func (p *Patcher) recordFailure(report *ApplyReport, d FileDiff, rel string, cause error) error {
	if rel == "" {
		// Path failed validation; no safe place for a candidate.
		report.Failed = append(report.Failed, FailedFile{Path: d.Path, Err: cause})
		return nil
	}
	abs := filepath.Join(p.root, rel)
	candidate := abs + ".mgx_new"

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err == nil {
		if err := os.WriteFile(candidate, []byte(renderDiff(&d)), 0o644); err != nil {
			slog.Warn("Failed to write patch candidate", "path", candidate, "error", err)
		}
		logBody := fmt.Sprintf("patch failed at %s: %v\n", time.Now().UTC().Format(time.RFC3339), cause)
		if err := os.WriteFile(candidate+".log", []byte(logBody), 0o644); err != nil {
			slog.Warn("Failed to write patch log", "path", candidate, "error", err)
		}
	}

	report.Failed = append(report.Failed, FailedFile{Path: rel, Err: cause, Candidate: candidate})
	return nil
}

// rollback restores every backed-up file.
func (p *Patcher) rollback(backups []string, suffix string, report *ApplyReport) {
	for _, rel := range backups {
		abs := filepath.Join(p.root, rel)
		if err := os.Rename(abs+suffix, abs); err != nil {
			slog.Error("Patch rollback failed", "path", rel, "error", err)
		}
	}
	report.RolledBack = len(backups) > 0
	report.Applied = nil
}

// renderDiff serializes a FileDiff back into unified diff form.
func renderDiff(d *FileDiff) string {
	out := fmt.Sprintf("--- a/%s\n+++ b/%s\n", d.Path, d.Path)
	for _, h := range d.Hunks {
		out += fmt.Sprintf("@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
		for _, hl := range h.Lines {
			out += string(hl.Op) + hl.Content + "\n"
		}
	}
	return out
}
