package sandbox

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/config"
	"github.com/mgx-dev/mgx/pkg/models"
)

func TestRunExplicitZeroTimeoutExpiresImmediately(t *testing.T) {
	// An explicit zero budget is not "unset": it expires before any
	// container work starts, so no docker client is ever touched.
	r := &DockerRunner{cfg: config.DefaultSandboxConfig()}
	zero := 0

	result, err := r.Run(context.Background(), &Spec{
		ExecutionID:    "exec-1",
		Language:       "python",
		CodeDir:        t.TempDir(),
		TimeoutSeconds: &zero,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusTimeout, result.Status)
	assert.Equal(t, ErrorTypeTimeout, result.ErrorType)
	assert.Contains(t, result.ErrorMessage, "0s")
}

func TestRunUnknownLanguage(t *testing.T) {
	r := &DockerRunner{cfg: config.DefaultSandboxConfig()}
	_, err := r.Run(context.Background(), &Spec{Language: "cobol", CodeDir: t.TempDir()})
	assert.True(t, models.IsKind(err, models.ErrKindInvalidInput))
}

func TestRunNegativeTimeoutExpiresImmediately(t *testing.T) {
	cfg := config.DefaultSandboxConfig()
	cfg.DefaultTimeout = time.Minute
	r := &DockerRunner{cfg: cfg}
	neg := -5

	result, err := r.Run(context.Background(), &Spec{
		Language:       "shell",
		CodeDir:        t.TempDir(),
		TimeoutSeconds: &neg,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusTimeout, result.Status)
}
