package stack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for p, content := range files {
		abs := filepath.Join(root, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	}
	return root
}

func readFile(t *testing.T, root, p string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, p))
	require.NoError(t, err)
	return string(data)
}

func TestPatcherAllOrNothingSuccess(t *testing.T) {
	root := writeProject(t, map[string]string{
		"a.txt": "alpha\n",
		"b.txt": "beta\n",
	})
	diffs, err := ParseUnifiedDiff(
		"--- a/a.txt\n+++ b/a.txt\n@@ -1 +1 @@\n-alpha\n+ALPHA\n" +
			"--- a/b.txt\n+++ b/b.txt\n@@ -1 +1 @@\n-beta\n+BETA\n")
	require.NoError(t, err)

	report, err := NewPatcher(root).Apply(diffs, ApplyAllOrNothing)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, report.Applied)
	assert.Empty(t, report.Failed)
	assert.False(t, report.RolledBack)

	assert.Equal(t, "ALPHA\n", readFile(t, root, "a.txt"))
	assert.Equal(t, "BETA\n", readFile(t, root, "b.txt"))

	// Backups are removed on success.
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestPatcherAllOrNothingRollsBack(t *testing.T) {
	root := writeProject(t, map[string]string{
		"a.txt": "alpha\n",
		"b.txt": "unexpected content\n",
	})
	diffs, err := ParseUnifiedDiff(
		"--- a/a.txt\n+++ b/a.txt\n@@ -1 +1 @@\n-alpha\n+ALPHA\n" +
			"--- a/b.txt\n+++ b/b.txt\n@@ -1 +1 @@\n-beta\n+BETA\n")
	require.NoError(t, err)

	report, err := NewPatcher(root).Apply(diffs, ApplyAllOrNothing)
	require.Error(t, err)
	assert.True(t, report.RolledBack)
	assert.Empty(t, report.Applied)

	// Both originals intact.
	assert.Equal(t, "alpha\n", readFile(t, root, "a.txt"))
	assert.Equal(t, "unexpected content\n", readFile(t, root, "b.txt"))
}

func TestPatcherBestEffort(t *testing.T) {
	root := writeProject(t, map[string]string{
		"a.txt": "alpha\n",
		"b.txt": "unexpected content\n",
	})
	diffs, err := ParseUnifiedDiff(
		"--- a/a.txt\n+++ b/a.txt\n@@ -1 +1 @@\n-alpha\n+ALPHA\n" +
			"--- a/b.txt\n+++ b/b.txt\n@@ -1 +1 @@\n-beta\n+BETA\n")
	require.NoError(t, err)

	report, err := NewPatcher(root).Apply(diffs, ApplyBestEffort)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, report.Applied)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "b.txt", report.Failed[0].Path)

	// The good file is patched; the bad one preserved with a candidate.
	assert.Equal(t, "ALPHA\n", readFile(t, root, "a.txt"))
	assert.Equal(t, "unexpected content\n", readFile(t, root, "b.txt"))
	assert.FileExists(t, filepath.Join(root, "b.txt.mgx_new"))
	assert.FileExists(t, filepath.Join(root, "b.txt.mgx_new.log"))
}

func TestPatcherMissingTargetBestEffort(t *testing.T) {
	root := writeProject(t, map[string]string{})
	diffs, err := ParseUnifiedDiff("--- a/gone.txt\n+++ b/gone.txt\n@@ -1 +1 @@\n-a\n+b\n")
	require.NoError(t, err)

	report, err := NewPatcher(root).Apply(diffs, ApplyBestEffort)
	require.NoError(t, err)
	require.Len(t, report.Failed, 1)
	assert.Empty(t, report.Applied)
}

func TestPatcherRejectsEscapingPath(t *testing.T) {
	root := writeProject(t, map[string]string{})
	diffs := []FileDiff{{
		Path:  "../escape.txt",
		Hunks: []Hunk{{OldStart: 1, OldLines: 1, NewStart: 1, NewLines: 1}},
	}}

	report, err := NewPatcher(root).Apply(diffs, ApplyAllOrNothing)
	require.Error(t, err)
	require.Len(t, report.Failed, 1)
	assert.Empty(t, report.Failed[0].Candidate)
}

func TestWriteManifest(t *testing.T) {
	root := t.TempDir()
	err := WriteManifest(root, []ManifestFile{
		{Path: "src/index.ts", Content: "console.log(1);\n"},
		{Path: "package.json", Content: "{}\n"},
	})
	require.NoError(t, err)
	assert.Equal(t, "console.log(1);\n", readFile(t, root, "src/index.ts"))

	err = WriteManifest(root, []ManifestFile{{Path: "../evil", Content: ""}})
	require.Error(t, err)
}
