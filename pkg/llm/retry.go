package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/mgx-dev/mgx/pkg/models"
)

// RetryingCompleter wraps a Completer with bounded retries and exponential
// backoff. Only llm_failed errors are retried; cancellation, deadline, and
// input errors pass through immediately.
type RetryingCompleter struct {
	inner       Completer
	attempts    int
	backoffBase time.Duration
}

// NewRetryingCompleter wraps inner. attempts is the total number of tries,
// not the number of retries.
func NewRetryingCompleter(inner Completer, attempts int, backoffBase time.Duration) *RetryingCompleter {
	if attempts < 1 {
		attempts = 1
	}
	return &RetryingCompleter{inner: inner, attempts: attempts, backoffBase: backoffBase}
}

// Complete tries the wrapped completer up to the attempt budget.
func (r *RetryingCompleter) Complete(ctx context.Context, req *Request) (*Response, error) {
	backoff := r.backoffBase
	var lastErr error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		resp, err := r.inner.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !models.IsKind(err, models.ErrKindLLMFailed) {
			return nil, err
		}
		if attempt == r.attempts {
			break
		}

		slog.Warn("Completion failed, retrying",
			"attempt", attempt, "backoff", backoff, "error", err)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, models.WrapFailure(models.KindOf(ctx.Err()), ctx.Err(), "completion retry interrupted")
		}
		backoff *= 2
	}
	return nil, lastErr
}
