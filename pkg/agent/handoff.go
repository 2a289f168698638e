package agent

import (
	"time"

	"github.com/mgx-dev/mgx/pkg/models"
)

// HandoffItem is one memory record to write into the receiving instance.
type HandoffItem struct {
	Key          string
	Value        []byte
	ReceivedFrom string
	ReceivedAt   time.Time
}

// PlanHandoff builds the records a handoff writes into the receiving
// instance's memory. source maps the sending instance's keys to their
// latest values; every requested key must be present or the whole handoff
// is rejected, since the copy is all-or-nothing. The source keeps its
// copies.
func PlanHandoff(fromInstanceID string, source map[string][]byte, keys []string, now time.Time) ([]HandoffItem, error) {
	if len(keys) == 0 {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "handoff requires at least one context key")
	}
	items := make([]HandoffItem, 0, len(keys))
	for _, key := range keys {
		value, ok := source[key]
		if !ok {
			return nil, models.NewFailure(models.ErrKindNotFound,
				"handoff key %q not present in source agent memory", key)
		}
		copied := make([]byte, len(value))
		copy(copied, value)
		items = append(items, HandoffItem{
			Key:          key,
			Value:        copied,
			ReceivedFrom: fromInstanceID,
			ReceivedAt:   now,
		})
	}
	return items, nil
}
