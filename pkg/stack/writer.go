package stack

import (
	"os"
	"path/filepath"

	"github.com/mgx-dev/mgx/pkg/models"
)

// WriteManifest writes validated manifest files under root. Callers run
// CheckManifest first; this revalidates paths as a last line of defense.
func WriteManifest(root string, files []ManifestFile) error {
	for _, f := range files {
		rel, err := ValidatePath(f.Path)
		if err != nil {
			return err
		}
		abs := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return models.WrapFailure(models.ErrKindInternal, err, "cannot create directory for %s", rel)
		}
		if err := os.WriteFile(abs, []byte(f.Content), 0o644); err != nil {
			return models.WrapFailure(models.ErrKindInternal, err, "cannot write %s", rel)
		}
	}
	return nil
}
