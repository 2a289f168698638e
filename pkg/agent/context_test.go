package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/models"
)

func TestNextVersionMonotonic(t *testing.T) {
	v, err := NextVersion(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = NextVersion(41)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = NextVersion(-1)
	assert.True(t, models.IsKind(err, models.ErrKindInternal))
}

func TestRollbackCreatesNewVersion(t *testing.T) {
	target := ContextVersion{Version: 2, Data: []byte(`{"plan":"v2"}`)}

	head, err := RollbackVersion(5, target)
	require.NoError(t, err)
	assert.Equal(t, 6, head.Version)
	assert.Equal(t, target.Data, head.Data)

	// The snapshot owns its bytes.
	head.Data[0] = 'X'
	assert.Equal(t, byte('{'), target.Data[0])
}

func TestRollbackRejectsBadTarget(t *testing.T) {
	_, err := RollbackVersion(3, ContextVersion{Version: 0})
	assert.True(t, models.IsKind(err, models.ErrKindInvalidInput))

	_, err = RollbackVersion(3, ContextVersion{Version: 4})
	assert.True(t, models.IsKind(err, models.ErrKindInvalidInput))
}
