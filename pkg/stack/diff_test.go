package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/models"
)

const sampleDiff = `--- a/app/main.py
+++ b/app/main.py
@@ -1,4 +1,5 @@
 import os
+import sys

 def main():
-    print("v1")
+    print("v2")
`

const sampleOriginal = `import os

def main():
    print("v1")
`

const samplePatched = `import os
import sys

def main():
    print("v2")
`

func TestParseUnifiedDiff(t *testing.T) {
	diffs, err := ParseUnifiedDiff(sampleDiff)
	require.NoError(t, err)
	require.Len(t, diffs, 1)

	d := diffs[0]
	assert.Equal(t, "app/main.py", d.Path)
	require.Len(t, d.Hunks, 1)
	h := d.Hunks[0]
	assert.Equal(t, 1, h.OldStart)
	assert.Equal(t, 4, h.OldLines)
	assert.Equal(t, 1, h.NewStart)
	assert.Equal(t, 5, h.NewLines)
	assert.Len(t, h.Lines, 6)
}

func TestParseUnifiedDiffMultiFile(t *testing.T) {
	text := sampleDiff + `--- a/README.md
+++ b/README.md
@@ -1 +1 @@
-# old
+# new
`
	diffs, err := ParseUnifiedDiff(text)
	require.NoError(t, err)
	require.Len(t, diffs, 2)
	assert.Equal(t, "README.md", diffs[1].Path)
}

func TestParseUnifiedDiffGitHeadersSkipped(t *testing.T) {
	text := "diff --git a/x.txt b/x.txt\nindex 000..111 100644\n" +
		"--- a/x.txt\n+++ b/x.txt\n@@ -1 +1 @@\n-a\n+b\n"
	diffs, err := ParseUnifiedDiff(text)
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, "x.txt", diffs[0].Path)
}

func TestParseUnifiedDiffErrors(t *testing.T) {
	_, err := ParseUnifiedDiff("just prose")
	assert.True(t, models.IsKind(err, models.ErrKindInvalidInput))

	_, err = ParseUnifiedDiff("--- a/x\n+++ b/x\n")
	assert.True(t, models.IsKind(err, models.ErrKindInvalidInput))

	_, err = ParseUnifiedDiff("@@ -1 +1 @@\n-a\n+b\n")
	assert.True(t, models.IsKind(err, models.ErrKindInvalidInput))
}

func TestFileDiffApply(t *testing.T) {
	diffs, err := ParseUnifiedDiff(sampleDiff)
	require.NoError(t, err)

	patched, err := diffs[0].Apply(sampleOriginal)
	require.NoError(t, err)
	assert.Equal(t, samplePatched, patched)
}

func TestFileDiffApplyContextMismatch(t *testing.T) {
	diffs, err := ParseUnifiedDiff(sampleDiff)
	require.NoError(t, err)

	_, err = diffs[0].Apply("completely different content\n")
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.ErrKindInvalidInput))
	assert.Contains(t, err.Error(), "context mismatch")
}

func TestFileDiffApplyInsertionOnly(t *testing.T) {
	text := "--- a/x.txt\n+++ b/x.txt\n@@ -0,0 +1,2 @@\n+first\n+second\n"
	diffs, err := ParseUnifiedDiff(text)
	require.NoError(t, err)

	patched, err := diffs[0].Apply("existing\n")
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\nexisting\n", patched)
}

func TestFileDiffReverseRoundTrip(t *testing.T) {
	diffs, err := ParseUnifiedDiff(sampleDiff)
	require.NoError(t, err)

	patched, err := diffs[0].Apply(sampleOriginal)
	require.NoError(t, err)

	restored, err := diffs[0].Reverse().Apply(patched)
	require.NoError(t, err)
	assert.Equal(t, sampleOriginal, restored)
}
