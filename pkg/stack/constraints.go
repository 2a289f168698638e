package stack

import "strings"

// ParseConstraints maps free-form task constraint strings onto checkable
// keyword constraints. Recognized forms:
//
//	"use <kw>"                       the stack's manifest file must mention <kw>
//	"no <kw>" / "avoid <kw>" / "forbid <kw>"   no generated file may mention <kw>
//
// Anything else comes back in advisory: fed to the reviewer as guidance
// but not mechanically enforced.
func ParseConstraints(spec *Spec, raw []string) (constraints []KeywordConstraint, advisory []string) {
	for _, c := range raw {
		trimmed := strings.TrimSpace(c)
		lower := strings.ToLower(trimmed)
		switch {
		case strings.HasPrefix(lower, "use "):
			kw := strings.TrimSpace(trimmed[len("use "):])
			if kw == "" {
				advisory = append(advisory, trimmed)
				continue
			}
			constraints = append(constraints, KeywordConstraint{
				Description: trimmed,
				Path:        manifestFile(spec),
				MustContain: []string{kw},
			})
		case strings.HasPrefix(lower, "no "), strings.HasPrefix(lower, "avoid "), strings.HasPrefix(lower, "forbid "):
			kw := strings.TrimSpace(trimmed[strings.Index(trimmed, " ")+1:])
			if kw == "" {
				advisory = append(advisory, trimmed)
				continue
			}
			constraints = append(constraints, KeywordConstraint{
				Description: trimmed,
				MustOmit:    []string{kw},
			})
		default:
			advisory = append(advisory, trimmed)
		}
	}
	return constraints, advisory
}

// manifestFile is the dependency manifest checked by "use" constraints.
func manifestFile(spec *Spec) string {
	if spec == nil {
		return "package.json"
	}
	switch spec.PackageManager {
	case "pip":
		return "requirements.txt"
	case "composer":
		return "composer.json"
	default:
		return "package.json"
	}
}
