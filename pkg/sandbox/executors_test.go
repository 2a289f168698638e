package sandbox

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/models"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for p, content := range files {
		abs := filepath.Join(dir, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	}
	return dir
}

func TestDetectCommandPython(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  []string
	}{
		{
			name:  "pytest when test files present",
			files: map[string]string{"test_app.py": "", "app/main.py": ""},
			want:  []string{"python", "-m", "pytest", "-q", "--no-header"},
		},
		{
			name:  "pytest when tests dir present",
			files: map[string]string{"tests/test_x.py": "", "main.py": ""},
			want:  []string{"python", "-m", "pytest", "-q", "--no-header"},
		},
		{
			name:  "entry point without tests",
			files: map[string]string{"app/main.py": ""},
			want:  []string{"python", "app/main.py"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeTree(t, tt.files)
			got, err := DetectCommand("python", dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectCommandNode(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"package.json": `{"scripts":{"test":"jest"}}`,
	})
	got, err := DetectCommand("node", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"npm", "test", "--silent"}, got)

	dir = writeTree(t, map[string]string{
		"package.json": `{"scripts":{}}`,
		"src/index.js": "",
	})
	got, err = DetectCommand("node", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"node", "src/index.js"}, got)
}

func TestDetectCommandPHP(t *testing.T) {
	dir := writeTree(t, map[string]string{"phpunit.xml": "", "index.php": ""})
	got, err := DetectCommand("php", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"php", "vendor/bin/phpunit", "--no-progress"}, got)

	dir = writeTree(t, map[string]string{"public/index.php": ""})
	got, err = DetectCommand("php", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"php", "public/index.php"}, got)
}

func TestDetectCommandShell(t *testing.T) {
	dir := writeTree(t, map[string]string{"run.sh": "echo hi"})
	got, err := DetectCommand("shell", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"sh", "run.sh"}, got)

	_, err = DetectCommand("shell", t.TempDir())
	assert.True(t, models.IsKind(err, models.ErrKindInvalidInput))
}

func TestDetectCommandUnsupportedLanguage(t *testing.T) {
	_, err := DetectCommand("cobol", t.TempDir())
	assert.True(t, models.IsKind(err, models.ErrKindInvalidInput))
}

func TestLimitedWriter(t *testing.T) {
	lw := &limitedWriter{w: &bytes.Buffer{}, n: 5}

	n, err := lw.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Overflow is reported as written but truncated in the buffer.
	n, err = lw.Write([]byte("defghij"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, "abcde", lw.w.String())
}
