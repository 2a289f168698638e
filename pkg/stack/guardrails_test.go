package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/models"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"simple", "src/index.ts", "src/index.ts", false},
		{"cleans dot segments", "src/./a/../index.ts", "src/index.ts", false},
		{"absolute", "/etc/passwd", "", true},
		{"windows absolute", `C:\windows\system32`, "", true},
		{"backslash separators", `src\index.ts`, "src/index.ts", false},
		{"parent escape", "../outside.txt", "", true},
		{"hidden parent escape", "a/../../outside.txt", "", true},
		{"bare dot", ".", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePath(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, models.IsKind(err, models.ErrKindInvalidInput))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLookupStack(t *testing.T) {
	for _, name := range []string{"express-ts", "fastapi", "nextjs", "laravel", "docker"} {
		spec, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, spec.Name)
	}

	_, err := Lookup("rails")
	assert.Error(t, err)
}

func TestCheckManifestExpectedFiles(t *testing.T) {
	spec, err := Lookup("fastapi")
	require.NoError(t, err)

	violations, err := CheckManifest(spec, []ManifestFile{
		{Path: "app/main.py", Content: "from fastapi import FastAPI\n"},
	}, nil)
	require.NoError(t, err) // missing expected file is non-blocking

	var found bool
	for _, v := range violations {
		if v.Rule == RuleMissingExpected && v.Path == "requirements.txt" {
			found = true
			assert.False(t, v.Blocking)
		}
	}
	assert.True(t, found)
}

func TestCheckManifestPathEscapeBlocks(t *testing.T) {
	spec, err := Lookup("fastapi")
	require.NoError(t, err)

	violations, err := CheckManifest(spec, []ManifestFile{
		{Path: "../evil.py", Content: ""},
	}, nil)
	require.Error(t, err)
	require.NotEmpty(t, violations)
	assert.Equal(t, RulePathEscape, violations[0].Rule)
	assert.True(t, violations[0].Blocking)
}

func TestCheckManifestUnexpectedExtension(t *testing.T) {
	spec, err := Lookup("express-ts")
	require.NoError(t, err)

	violations, err := CheckManifest(spec, []ManifestFile{
		{Path: "package.json", Content: "{}"},
		{Path: "tsconfig.json", Content: "{}"},
		{Path: "src/index.ts", Content: ""},
		{Path: "malware.exe", Content: ""},
	}, nil)
	require.NoError(t, err)

	var flagged bool
	for _, v := range violations {
		if v.Rule == RuleUnexpectedExt && v.Path == "malware.exe" {
			flagged = true
		}
	}
	assert.True(t, flagged)
}

func TestCheckManifestForbiddenLibraryBlocks(t *testing.T) {
	spec, err := Lookup("express-ts")
	require.NoError(t, err)

	_, err = CheckManifest(spec, []ManifestFile{
		{Path: "package.json", Content: `{"dependencies":{"left-pad":"1.0.0"}}`},
		{Path: "tsconfig.json", Content: "{}"},
		{Path: "src/index.ts", Content: ""},
	}, nil)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.ErrKindInvalidInput))
}

func TestCheckManifestKeywordConstraints(t *testing.T) {
	constraints := []KeywordConstraint{
		{Description: "use pnpm", Path: "package.json", MustContain: []string{"pnpm"}},
		{Description: "no network libs", Path: "src/index.ts", MustOmit: []string{"axios"}},
	}

	// Satisfied.
	_, err := CheckManifest(nil, []ManifestFile{
		{Path: "package.json", Content: `{"packageManager":"pnpm@9"}`},
		{Path: "src/index.ts", Content: "console.log(1)"},
	}, constraints)
	require.NoError(t, err)

	// Missing required keyword.
	_, err = CheckManifest(nil, []ManifestFile{
		{Path: "package.json", Content: `{}`},
		{Path: "src/index.ts", Content: ""},
	}, constraints)
	require.Error(t, err)

	// Forbidden keyword present.
	_, err = CheckManifest(nil, []ManifestFile{
		{Path: "package.json", Content: `{"packageManager":"pnpm@9"}`},
		{Path: "src/index.ts", Content: `import axios from "axios"`},
	}, constraints)
	require.Error(t, err)
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"src/index.ts", ".ts"},
		{"view.blade.php", ".blade.php"},
		{".env.example", ".env.example"},
		{".gitignore", ".gitignore"},
		{"Dockerfile", ""},
		{"a/b/Makefile", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extensionOf(tt.path), tt.path)
	}
}
