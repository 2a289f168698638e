package sandbox

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mgx-dev/mgx/pkg/models"
)

// DetectCommand picks the command to run for a language based on what the
// project contains: the stack's test framework when tests are present,
// otherwise the conventional entry point.
func DetectCommand(language, codeDir string) ([]string, error) {
	switch language {
	case "python":
		return detectPython(codeDir), nil
	case "node":
		return detectNode(codeDir), nil
	case "php":
		return detectPHP(codeDir), nil
	case "shell":
		if exists(codeDir, "run.sh") {
			return []string{"sh", "run.sh"}, nil
		}
		return nil, models.NewFailure(models.ErrKindInvalidInput, "no run.sh for shell execution")
	default:
		return nil, models.NewFailure(models.ErrKindInvalidInput, "unsupported sandbox language %q", language)
	}
}

func detectPython(dir string) []string {
	if hasTests(dir, "test_*.py") || hasTests(dir, "*_test.py") || exists(dir, "tests") {
		return []string{"python", "-m", "pytest", "-q", "--no-header"}
	}
	for _, entry := range []string{"app/main.py", "main.py", "app.py"} {
		if exists(dir, entry) {
			return []string{"python", entry}
		}
	}
	return []string{"python", "-m", "pytest", "-q", "--no-header"}
}

func detectNode(dir string) []string {
	if script := packageJSONScript(dir, "test"); script != "" {
		return []string{"npm", "test", "--silent"}
	}
	if script := packageJSONScript(dir, "start"); script != "" {
		return []string{"npm", "start", "--silent"}
	}
	for _, entry := range []string{"src/index.js", "index.js", "dist/index.js"} {
		if exists(dir, entry) {
			return []string{"node", entry}
		}
	}
	return []string{"npm", "test", "--silent"}
}

func detectPHP(dir string) []string {
	if exists(dir, "vendor/bin/phpunit") || exists(dir, "phpunit.xml") {
		return []string{"php", "vendor/bin/phpunit", "--no-progress"}
	}
	for _, entry := range []string{"public/index.php", "index.php", "artisan"} {
		if exists(dir, entry) {
			return []string{"php", entry}
		}
	}
	return []string{"php", "-v"}
}

// packageJSONScript returns the named script from package.json, if any.
func packageJSONScript(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return ""
	}
	var pkg struct {
		Scripts map[string]string `json:"scripts"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return ""
	}
	return pkg.Scripts[name]
}

func exists(dir, rel string) bool {
	_, err := os.Stat(filepath.Join(dir, rel))
	return err == nil
}

func hasTests(dir, pattern string) bool {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	return err == nil && len(matches) > 0
}
