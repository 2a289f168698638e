package stack

import (
	"strconv"
	"strings"

	"github.com/mgx-dev/mgx/pkg/models"
)

// FileDiff is a unified diff for one file.
type FileDiff struct {
	Path  string
	Hunks []Hunk
}

// Hunk is one @@ block.
type Hunk struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int
	Lines    []HunkLine
}

// HunkLine is one line of a hunk body.
type HunkLine struct {
	Op      byte // ' ', '+', '-'
	Content string
}

// ParseUnifiedDiff parses a (possibly multi-file) unified diff. Git-style
// headers (diff --git, index, mode lines) are tolerated and skipped.
func ParseUnifiedDiff(text string) ([]FileDiff, error) {
	var diffs []FileDiff
	var current *FileDiff
	var hunk *Hunk

	flushHunk := func() {
		if hunk != nil && current != nil {
			current.Hunks = append(current.Hunks, *hunk)
			hunk = nil
		}
	}
	flushFile := func() {
		flushHunk()
		if current != nil {
			diffs = append(diffs, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "--- "):
			flushFile()
			current = &FileDiff{}
		case strings.HasPrefix(line, "+++ "):
			if current == nil {
				return nil, models.NewFailure(models.ErrKindInvalidInput, "+++ without ---")
			}
			current.Path = cleanDiffPath(strings.TrimPrefix(line, "+++ "))
		case strings.HasPrefix(line, "@@ "):
			if current == nil || current.Path == "" {
				return nil, models.NewFailure(models.ErrKindInvalidInput, "hunk header before file header")
			}
			flushHunk()
			h, err := parseHunkHeader(line)
			if err != nil {
				return nil, err
			}
			hunk = h
		case hunk != nil && len(line) > 0 && (line[0] == ' ' || line[0] == '+' || line[0] == '-'):
			hunk.Lines = append(hunk.Lines, HunkLine{Op: line[0], Content: line[1:]})
		case hunk != nil && line == "":
			// Blank context line with the leading space trimmed by the model.
			hunk.Lines = append(hunk.Lines, HunkLine{Op: ' ', Content: ""})
		case strings.HasPrefix(line, "\\ No newline"):
			// Marker only; content handling keeps the line as-is.
		default:
			// Git headers and prose between files.
		}
	}
	flushFile()

	if len(diffs) == 0 {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "no file diffs found")
	}
	for _, d := range diffs {
		if len(d.Hunks) == 0 {
			return nil, models.NewFailure(models.ErrKindInvalidInput, "diff for %s has no hunks", d.Path)
		}
	}
	return diffs, nil
}

// cleanDiffPath strips a/ b/ prefixes and timestamps.
func cleanDiffPath(p string) string {
	if tab := strings.IndexByte(p, '\t'); tab >= 0 {
		p = p[:tab]
	}
	p = strings.TrimSpace(p)
	p = strings.TrimPrefix(p, "a/")
	p = strings.TrimPrefix(p, "b/")
	return p
}

// parseHunkHeader parses "@@ -l,s +l,s @@ ...".
func parseHunkHeader(line string) (*Hunk, error) {
	rest := strings.TrimPrefix(line, "@@ ")
	end := strings.Index(rest, " @@")
	if end < 0 {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "malformed hunk header %q", line)
	}
	parts := strings.Fields(rest[:end])
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "-") || !strings.HasPrefix(parts[1], "+") {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "malformed hunk header %q", line)
	}

	h := &Hunk{}
	var err error
	if h.OldStart, h.OldLines, err = parseRange(parts[0][1:]); err != nil {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "malformed hunk range %q", line)
	}
	if h.NewStart, h.NewLines, err = parseRange(parts[1][1:]); err != nil {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "malformed hunk range %q", line)
	}
	return h, nil
}

func parseRange(s string) (start, count int, err error) {
	count = 1
	if comma := strings.IndexByte(s, ','); comma >= 0 {
		if count, err = strconv.Atoi(s[comma+1:]); err != nil {
			return 0, 0, err
		}
		s = s[:comma]
	}
	start, err = strconv.Atoi(s)
	return start, count, err
}

// Apply applies the diff to content, verifying every context and deletion
// line against the original. Returns the patched content.
func (d *FileDiff) Apply(content string) (string, error) {
	lines := splitKeepingTrailing(content)
	var out []string
	cursor := 0 // 0-based index into lines

	for i, hunk := range d.Hunks {
		start := hunk.OldStart - 1
		if hunk.OldLines == 0 {
			// Pure insertion hunks anchor after OldStart.
			start = hunk.OldStart
		}
		if start < cursor || start > len(lines) {
			return "", models.NewFailure(models.ErrKindInvalidInput,
				"hunk %d of %s out of range (line %d)", i+1, d.Path, hunk.OldStart)
		}
		out = append(out, lines[cursor:start]...)
		cursor = start

		for _, hl := range hunk.Lines {
			switch hl.Op {
			case ' ':
				if cursor >= len(lines) || lines[cursor] != hl.Content {
					return "", contextMismatch(d.Path, i, cursor, hl.Content, lineAt(lines, cursor))
				}
				out = append(out, lines[cursor])
				cursor++
			case '-':
				if cursor >= len(lines) || lines[cursor] != hl.Content {
					return "", contextMismatch(d.Path, i, cursor, hl.Content, lineAt(lines, cursor))
				}
				cursor++
			case '+':
				out = append(out, hl.Content)
			}
		}
	}
	out = append(out, lines[cursor:]...)
	return strings.Join(out, "\n"), nil
}

// Reverse returns a diff that undoes this one.
func (d *FileDiff) Reverse() *FileDiff {
	rev := &FileDiff{Path: d.Path, Hunks: make([]Hunk, len(d.Hunks))}
	for i, h := range d.Hunks {
		rh := Hunk{
			OldStart: h.NewStart, OldLines: h.NewLines,
			NewStart: h.OldStart, NewLines: h.OldLines,
			Lines: make([]HunkLine, len(h.Lines)),
		}
		for j, hl := range h.Lines {
			switch hl.Op {
			case '+':
				rh.Lines[j] = HunkLine{Op: '-', Content: hl.Content}
			case '-':
				rh.Lines[j] = HunkLine{Op: '+', Content: hl.Content}
			default:
				rh.Lines[j] = hl
			}
		}
		rev.Hunks[i] = rh
	}
	return rev
}

func contextMismatch(path string, hunk, lineIdx int, want, got string) error {
	return models.NewFailure(models.ErrKindInvalidInput,
		"context mismatch in %s hunk %d at line %d: want %q, have %q",
		path, hunk+1, lineIdx+1, want, got)
}

func lineAt(lines []string, idx int) string {
	if idx < 0 || idx >= len(lines) {
		return "<EOF>"
	}
	return lines[idx]
}

// splitKeepingTrailing splits on newlines; a trailing newline does not
// produce a phantom empty line beyond what Join restores.
func splitKeepingTrailing(content string) []string {
	return strings.Split(content, "\n")
}
