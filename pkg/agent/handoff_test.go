package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/models"
)

func TestPlanHandoffCopiesRequestedKeys(t *testing.T) {
	now := time.Now()
	source := map[string][]byte{
		"plan":  []byte(`{"steps":3}`),
		"notes": []byte(`"draft"`),
		"other": []byte(`1`),
	}

	items, err := PlanHandoff("inst-1", source, []string{"plan", "notes"}, now)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "plan", items[0].Key)
	assert.Equal(t, source["plan"], items[0].Value)
	assert.Equal(t, "inst-1", items[0].ReceivedFrom)
	assert.Equal(t, now, items[0].ReceivedAt)

	// Copies are independent of the source map.
	items[0].Value[0] = 'X'
	assert.Equal(t, byte('{'), source["plan"][0])
}

func TestPlanHandoffMissingKeyRejectsAll(t *testing.T) {
	_, err := PlanHandoff("inst-1", map[string][]byte{"plan": []byte(`1`)}, []string{"plan", "gone"}, time.Now())
	assert.True(t, models.IsKind(err, models.ErrKindNotFound))
}

func TestPlanHandoffRequiresKeys(t *testing.T) {
	_, err := PlanHandoff("inst-1", map[string][]byte{}, nil, time.Now())
	assert.True(t, models.IsKind(err, models.ErrKindInvalidInput))
}
