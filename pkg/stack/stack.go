// Package stack holds the declarative stack specs, the FILE manifest
// format produced by the engineer role, the guardrails applied before any
// file reaches disk, and the unified-diff patcher for existing projects.
package stack

import (
	"fmt"
	"sort"
)

// Spec declares what a named stack looks like. Specs are data, not code:
// adding a stack means adding an entry here, not a new engine.
type Spec struct {
	Name           string
	Language       string
	TestFramework  string
	PackageManager string

	// ExpectedFiles must all be present in a generated project.
	ExpectedFiles []string

	// AllowedExtensions whitelists output file extensions; anything else
	// is flagged. Empty means no restriction.
	AllowedExtensions []string

	// ForbiddenLibraries are substrings that must not appear in any
	// generated file (license-incompatible or unsafe dependencies).
	ForbiddenLibraries []string
}

// builtins is the stack registry.
var builtins = map[string]*Spec{
	"express-ts": {
		Name:           "express-ts",
		Language:       "typescript",
		TestFramework:  "jest",
		PackageManager: "npm",
		ExpectedFiles:  []string{"package.json", "tsconfig.json", "src/index.ts"},
		AllowedExtensions: []string{
			".ts", ".tsx", ".js", ".json", ".md", ".env.example", ".gitignore", ".yml", ".yaml",
		},
		ForbiddenLibraries: []string{"request@", "left-pad"},
	},
	"fastapi": {
		Name:           "fastapi",
		Language:       "python",
		TestFramework:  "pytest",
		PackageManager: "pip",
		ExpectedFiles:  []string{"requirements.txt", "app/main.py"},
		AllowedExtensions: []string{
			".py", ".txt", ".toml", ".cfg", ".ini", ".md", ".env.example", ".gitignore", ".yml", ".yaml", ".json",
		},
	},
	"nextjs": {
		Name:           "nextjs",
		Language:       "typescript",
		TestFramework:  "jest",
		PackageManager: "npm",
		ExpectedFiles:  []string{"package.json", "next.config.js"},
		AllowedExtensions: []string{
			".ts", ".tsx", ".js", ".jsx", ".json", ".css", ".md", ".env.example", ".gitignore", ".yml", ".yaml", ".svg",
		},
	},
	"laravel": {
		Name:           "laravel",
		Language:       "php",
		TestFramework:  "phpunit",
		PackageManager: "composer",
		ExpectedFiles:  []string{"composer.json", "artisan", "routes/web.php"},
		AllowedExtensions: []string{
			".php", ".json", ".md", ".env.example", ".gitignore", ".yml", ".yaml", ".blade.php", ".xml",
		},
	},
	"docker": {
		Name:          "docker",
		Language:      "dockerfile",
		ExpectedFiles: []string{"Dockerfile"},
		AllowedExtensions: []string{
			"", ".yml", ".yaml", ".md", ".sh", ".env.example", ".gitignore", ".dockerignore",
		},
	},
}

// Lookup returns the spec for a stack name.
func Lookup(name string) (*Spec, error) {
	spec, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown stack %q (known: %v)", name, Names())
	}
	return spec, nil
}

// Names lists the registered stacks, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
