package stack

import (
	"strings"

	"github.com/mgx-dev/mgx/pkg/models"
)

// filePrefix marks a manifest entry. Must start at column 0.
const filePrefix = "FILE: "

// ManifestFile is one file of an engineer-produced manifest.
type ManifestFile struct {
	Path    string
	Content string
}

// ParseManifest extracts the FILE manifest from a model response:
//
//	FILE: <relative path>
//	<content until the next "FILE: " line or end of message>
//
// Prose before the first FILE: line is ignored (models preface output).
// No escaping: a content line starting with "FILE: " starts a new entry.
func ParseManifest(text string) ([]ManifestFile, error) {
	var files []ManifestFile
	var current *ManifestFile
	var content strings.Builder

	flush := func() {
		if current != nil {
			current.Content = content.String()
			files = append(files, *current)
			content.Reset()
			current = nil
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		trimmed := strings.TrimSuffix(line, "\n")
		trimmed = strings.TrimSuffix(trimmed, "\r")
		if strings.HasPrefix(trimmed, filePrefix) {
			flush()
			path := strings.TrimSpace(strings.TrimPrefix(trimmed, filePrefix))
			if path == "" {
				return nil, models.NewFailure(models.ErrKindInvalidInput, "manifest entry with empty path")
			}
			current = &ManifestFile{Path: path}
			continue
		}
		if current != nil {
			content.WriteString(line)
		}
	}
	flush()

	if len(files) == 0 {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "no FILE entries in manifest")
	}

	// Duplicate paths: last one wins, matching overwrite-on-write order.
	seen := make(map[string]int, len(files))
	out := files[:0]
	for _, f := range files {
		if idx, dup := seen[f.Path]; dup {
			out[idx] = f
			continue
		}
		seen[f.Path] = len(out)
		out = append(out, f)
	}
	return out, nil
}

// EmitManifest renders files back into manifest form, used when feeding a
// previous round's output into a revision prompt. Content bytes are
// preserved, so parsing the result yields the input files unchanged: a
// separator newline is only inserted when an entry's content does not
// already end with one and another entry follows. The final entry is
// emitted byte-exact, trailing newline or not.
func EmitManifest(files []ManifestFile) string {
	var b strings.Builder
	for i, f := range files {
		b.WriteString(filePrefix)
		b.WriteString(f.Path)
		b.WriteString("\n")
		b.WriteString(f.Content)
		if i < len(files)-1 && !strings.HasSuffix(f.Content, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}
