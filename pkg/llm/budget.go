package llm

import (
	"sync"

	"github.com/mgx-dev/mgx/pkg/models"
)

// BudgetTracker accounts completion spend for one run. The limit is
// budget_base × task budget_multiplier × complexity factor; once crossed,
// every further charge fails with budget_exhausted and the run must
// finalize with whatever it has.
type BudgetTracker struct {
	mu         sync.Mutex
	base       float64
	multiplier float64
	limit      float64
	spent      float64

	inputTokens  int
	outputTokens int
	calls        int
}

// NewBudgetTracker creates a tracker for a run.
func NewBudgetTracker(base, multiplier float64, complexity models.Complexity) *BudgetTracker {
	return &BudgetTracker{
		base:       base,
		multiplier: multiplier,
		limit:      base * multiplier * complexity.Factor(),
	}
}

// Retune recomputes the limit for the complexity the analysis actually
// produced. Spend already recorded is kept.
func (b *BudgetTracker) Retune(complexity models.Complexity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.limit = b.base * b.multiplier * complexity.Factor()
}

// Charge records a completion's cost and usage. Returns budget_exhausted
// when the accumulated spend has crossed the limit; the triggering
// response is still recorded so totals stay truthful.
func (b *BudgetTracker) Charge(resp *Response) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.spent += resp.CostEstimate
	b.inputTokens += resp.InputTokens
	b.outputTokens += resp.OutputTokens
	b.calls++

	if b.spent >= b.limit {
		return models.NewFailure(models.ErrKindBudgetExhausted,
			"run budget exhausted: spent %.4f of %.4f", b.spent, b.limit)
	}
	return nil
}

// Exhausted reports whether the budget has been crossed.
func (b *BudgetTracker) Exhausted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.spent >= b.limit
}

// Usage returns the accumulated totals.
func (b *BudgetTracker) Usage() (spent float64, inputTokens, outputTokens, calls int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.spent, b.inputTokens, b.outputTokens, b.calls
}

// Limit returns the computed spend limit.
func (b *BudgetTracker) Limit() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.limit
}
