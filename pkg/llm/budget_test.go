package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/models"
)

func TestBudgetTrackerLimitComposition(t *testing.T) {
	// limit = base × multiplier × complexity factor
	b := NewBudgetTracker(1.0, 2.0, models.ComplexityM)
	assert.InDelta(t, 2.0*models.ComplexityM.Factor(), b.Limit(), 1e-9)
}

func TestBudgetTrackerChargeWithinLimit(t *testing.T) {
	b := NewBudgetTracker(1.0, 1.0, models.ComplexityM)

	err := b.Charge(&Response{CostEstimate: 0.1, InputTokens: 100, OutputTokens: 50})
	require.NoError(t, err)
	assert.False(t, b.Exhausted())

	spent, in, out, calls := b.Usage()
	assert.InDelta(t, 0.1, spent, 1e-9)
	assert.Equal(t, 100, in)
	assert.Equal(t, 50, out)
	assert.Equal(t, 1, calls)
}

func TestBudgetTrackerExhaustion(t *testing.T) {
	b := NewBudgetTracker(0.5, 1.0, models.ComplexityXS)
	limit := b.Limit()

	// The charge that crosses the limit is still recorded, then fails.
	err := b.Charge(&Response{CostEstimate: limit + 0.01})
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.ErrKindBudgetExhausted))
	assert.True(t, b.Exhausted())

	spent, _, _, calls := b.Usage()
	assert.InDelta(t, limit+0.01, spent, 1e-9)
	assert.Equal(t, 1, calls)

	// Further charges keep failing.
	err = b.Charge(&Response{CostEstimate: 0})
	assert.True(t, models.IsKind(err, models.ErrKindBudgetExhausted))
}

func TestBudgetTrackerAccumulates(t *testing.T) {
	b := NewBudgetTracker(1.0, 1.0, models.ComplexityXL)

	for i := 0; i < 5; i++ {
		require.NoError(t, b.Charge(&Response{CostEstimate: 0.01, InputTokens: 10, OutputTokens: 5}))
	}
	spent, in, out, calls := b.Usage()
	assert.InDelta(t, 0.05, spent, 1e-9)
	assert.Equal(t, 50, in)
	assert.Equal(t, 25, out)
	assert.Equal(t, 5, calls)
}
