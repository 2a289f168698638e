package stack

import (
	"path"
	"strings"

	"github.com/mgx-dev/mgx/pkg/models"
)

// Violation is one guardrail finding. Blocking violations abort the write;
// the rest are surfaced to the reviewer.
type Violation struct {
	Path     string
	Rule     string
	Message  string
	Blocking bool
}

// Guardrail rule names.
const (
	RulePathEscape        = "path_escape"
	RuleMissingExpected   = "missing_expected_file"
	RuleUnexpectedExt     = "unexpected_extension"
	RuleForbiddenLibrary  = "forbidden_library"
	RuleKeywordConstraint = "keyword_constraint"
)

// KeywordConstraint is a simple declarative content check, e.g.
// {Path: "package.json", MustContain: ["pnpm"]}.
type KeywordConstraint struct {
	Description string   `json:"description"`
	Path        string   `json:"path"`
	MustContain []string `json:"must_contain,omitempty"`
	MustOmit    []string `json:"must_omit,omitempty"`
}

// ValidatePath rejects absolute paths, parent traversal, and anything that
// would land outside the project root. Returns the cleaned relative path.
func ValidatePath(p string) (string, error) {
	if p == "" {
		return "", models.NewFailure(models.ErrKindInvalidInput, "empty path")
	}
	if strings.HasPrefix(p, "/") || strings.HasPrefix(p, "\\") || hasDrivePrefix(p) {
		return "", models.NewFailure(models.ErrKindInvalidInput, "absolute path %q not allowed", p)
	}
	cleaned := path.Clean(strings.ReplaceAll(p, "\\", "/"))
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") || cleaned == "." {
		return "", models.NewFailure(models.ErrKindInvalidInput, "path %q escapes the project root", p)
	}
	return cleaned, nil
}

func hasDrivePrefix(p string) bool {
	return len(p) >= 2 && p[1] == ':' &&
		(p[0] >= 'a' && p[0] <= 'z' || p[0] >= 'A' && p[0] <= 'Z')
}

// CheckManifest runs every guardrail over a manifest for the given stack
// and constraints. An error is returned only when a blocking violation is
// present; all findings come back regardless.
func CheckManifest(spec *Spec, files []ManifestFile, constraints []KeywordConstraint) ([]Violation, error) {
	var violations []Violation

	byPath := make(map[string]string, len(files))
	for _, f := range files {
		cleaned, err := ValidatePath(f.Path)
		if err != nil {
			violations = append(violations, Violation{
				Path: f.Path, Rule: RulePathEscape, Message: err.Error(), Blocking: true,
			})
			continue
		}
		byPath[cleaned] = f.Content
	}

	if spec != nil {
		for _, expected := range spec.ExpectedFiles {
			if _, ok := byPath[expected]; !ok {
				violations = append(violations, Violation{
					Path: expected, Rule: RuleMissingExpected,
					Message: "expected file for stack " + spec.Name + " is missing",
				})
			}
		}
		if len(spec.AllowedExtensions) > 0 {
			allowed := make(map[string]bool, len(spec.AllowedExtensions))
			for _, ext := range spec.AllowedExtensions {
				allowed[ext] = true
			}
			for p := range byPath {
				if !allowed[extensionOf(p)] {
					violations = append(violations, Violation{
						Path: p, Rule: RuleUnexpectedExt,
						Message: "extension " + extensionOf(p) + " unexpected for stack " + spec.Name,
					})
				}
			}
		}
		for _, lib := range spec.ForbiddenLibraries {
			for p, content := range byPath {
				if strings.Contains(content, lib) {
					violations = append(violations, Violation{
						Path: p, Rule: RuleForbiddenLibrary,
						Message: "forbidden library reference: " + lib, Blocking: true,
					})
				}
			}
		}
	}

	for _, c := range constraints {
		// A constraint without a target path spans the whole manifest:
		// MustContain needs at least one file mentioning the keyword,
		// MustOmit bans it everywhere.
		if c.Path == "" {
			violations = append(violations, checkGlobalConstraint(c, files)...)
			continue
		}
		content, ok := byPath[c.Path]
		if !ok {
			violations = append(violations, Violation{
				Path: c.Path, Rule: RuleKeywordConstraint,
				Message: "constraint target missing: " + c.Description, Blocking: true,
			})
			continue
		}
		for _, kw := range c.MustContain {
			if !strings.Contains(content, kw) {
				violations = append(violations, Violation{
					Path: c.Path, Rule: RuleKeywordConstraint,
					Message: "missing required keyword " + kw + " (" + c.Description + ")", Blocking: true,
				})
			}
		}
		for _, kw := range c.MustOmit {
			if strings.Contains(content, kw) {
				violations = append(violations, Violation{
					Path: c.Path, Rule: RuleKeywordConstraint,
					Message: "forbidden keyword " + kw + " present (" + c.Description + ")", Blocking: true,
				})
			}
		}
	}

	for _, v := range violations {
		if v.Blocking {
			return violations, models.NewFailure(models.ErrKindInvalidInput,
				"manifest rejected: %s (%s)", v.Message, v.Rule)
		}
	}
	return violations, nil
}

func checkGlobalConstraint(c KeywordConstraint, files []ManifestFile) []Violation {
	var violations []Violation
	for _, kw := range c.MustContain {
		found := false
		for _, f := range files {
			if strings.Contains(f.Content, kw) {
				found = true
				break
			}
		}
		if !found {
			violations = append(violations, Violation{
				Rule:     RuleKeywordConstraint,
				Message:  "no file mentions required keyword " + kw + " (" + c.Description + ")",
				Blocking: true,
			})
		}
	}
	for _, kw := range c.MustOmit {
		for _, f := range files {
			if strings.Contains(f.Content, kw) {
				violations = append(violations, Violation{
					Path: f.Path, Rule: RuleKeywordConstraint,
					Message: "forbidden keyword " + kw + " present (" + c.Description + ")", Blocking: true,
				})
			}
		}
	}
	return violations
}

// extensionOf returns the suffix used for whitelist matching. Compound
// extensions like .blade.php are matched whole, dotfiles (.gitignore,
// .env.example) match their full name, and files without a dot
// (Dockerfile, Makefile, artisan) return "".
func extensionOf(p string) string {
	base := path.Base(p)
	idx := strings.Index(base, ".")
	if idx < 0 {
		return ""
	}
	return base[idx:]
}
