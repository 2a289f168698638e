package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/models"
)

func TestParseManifest(t *testing.T) {
	text := "Here is the project:\n" +
		"FILE: package.json\n" +
		"{\n  \"name\": \"demo\"\n}\n" +
		"FILE: src/index.ts\n" +
		"console.log(\"hi\");\n"

	files, err := ParseManifest(text)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "package.json", files[0].Path)
	assert.Equal(t, "{\n  \"name\": \"demo\"\n}\n", files[0].Content)
	assert.Equal(t, "src/index.ts", files[1].Path)
	assert.Equal(t, "console.log(\"hi\");\n", files[1].Content)
}

func TestParseManifestPreambleIgnored(t *testing.T) {
	files, err := ParseManifest("I'll create the files below.\n\nFILE: a.txt\ncontent\n")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.txt", files[0].Path)
}

func TestParseManifestIndentedMarkerIsContent(t *testing.T) {
	// "FILE: " only counts at column 0.
	text := "FILE: doc.md\nThe format is:\n  FILE: <path>\nend\n"
	files, err := ParseManifest(text)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, files[0].Content, "  FILE: <path>\n")
}

func TestParseManifestDuplicateLastWins(t *testing.T) {
	text := "FILE: a.txt\nfirst\nFILE: a.txt\nsecond\n"
	files, err := ParseManifest(text)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "second\n", files[0].Content)
}

func TestParseManifestErrors(t *testing.T) {
	_, err := ParseManifest("no markers here")
	assert.True(t, models.IsKind(err, models.ErrKindInvalidInput))

	_, err = ParseManifest("FILE: \ncontent\n")
	assert.True(t, models.IsKind(err, models.ErrKindInvalidInput))
}

func TestParseManifestCRLF(t *testing.T) {
	files, err := ParseManifest("FILE: a.txt\r\nline\r\n")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.txt", files[0].Path)
}

func TestEmitManifestRoundTrip(t *testing.T) {
	in := []ManifestFile{
		{Path: "a.txt", Content: "alpha\n"},
		{Path: "dir/b.txt", Content: "beta"}, // no trailing newline
	}
	out, err := ParseManifest(EmitManifest(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEmitManifestPreservesBytes(t *testing.T) {
	// Emitting a parsed manifest reproduces it byte for byte, including a
	// final file with no trailing newline.
	text := "FILE: a.txt\nalpha\nFILE: b.txt\nbeta"
	files, err := ParseManifest(text)
	require.NoError(t, err)
	assert.Equal(t, text, EmitManifest(files))
}
