package agent

import (
	"github.com/mgx-dev/mgx/pkg/models"
)

// ContextVersion is one immutable snapshot of a shared context.
type ContextVersion struct {
	Version int
	Data    []byte
}

// NextVersion validates a write against the current head and returns the
// version number the new snapshot must carry. Versions are strictly
// monotonic per context; the caller holds the per-context lock and must
// allocate the number and write the data in the same transaction.
func NextVersion(currentVersion int) (int, error) {
	if currentVersion < 0 {
		return 0, models.NewFailure(models.ErrKindInternal,
			"context head version %d is negative", currentVersion)
	}
	return currentVersion + 1, nil
}

// RollbackVersion builds the snapshot that a rollback to target produces:
// a NEW head version whose data equals the target's. History is never
// rewritten.
func RollbackVersion(currentVersion int, target ContextVersion) (ContextVersion, error) {
	if target.Version < 1 || target.Version > currentVersion {
		return ContextVersion{}, models.NewFailure(models.ErrKindInvalidInput,
			"rollback target version %d outside [1, %d]", target.Version, currentVersion)
	}
	next, err := NextVersion(currentVersion)
	if err != nil {
		return ContextVersion{}, err
	}
	data := make([]byte, len(target.Data))
	copy(data, target.Data)
	return ContextVersion{Version: next, Data: data}, nil
}
