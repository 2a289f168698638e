package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mgx-dev/mgx/ent"
	entevent "github.com/mgx-dev/mgx/ent/event"
	"github.com/mgx-dev/mgx/pkg/events"
)

// EventService serves WebSocket catch-up queries from the event store and
// owns retention. Implements events.CatchupQuerier.
type EventService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewEventService creates an EventService.
func NewEventService(client *ent.Client, logger *slog.Logger) *EventService {
	return &EventService{
		client: client,
		logger: logger.With("component", "event_service"),
	}
}

// GetCatchupEvents implements events.CatchupQuerier: stored events after
// sinceID whose channel matches the subscription pattern, oldest first.
// A literal topic covers its sub-topics the same way a live LISTEN at
// that level does, so "workspace:abc" replays the workspace's task and
// workflow events too. Channel prefiltering happens in SQL when the
// pattern is literal; glob patterns filter in memory over the workspace
// slice.
func (s *EventService) GetCatchupEvents(ctx context.Context, topicPattern string, sinceID int64, limit int) ([]events.CatchupEvent, error) {
	if limit <= 0 || limit > 1000 {
		limit = 200
	}

	query := s.client.Event.Query().
		Where(entevent.IDGT(int(sinceID))).
		Order(ent.Asc(entevent.FieldID))

	literal := !hasGlobMeta(topicPattern)
	if literal {
		if topicPattern != events.TopicAll {
			query = query.Where(entevent.Or(
				entevent.ChannelEQ(topicPattern),
				entevent.ChannelHasPrefix(topicPattern+"."),
			))
		}
		query = query.Limit(limit)
	} else if workspaceID := workspaceFromPattern(topicPattern); workspaceID != "" {
		query = query.Where(entevent.WorkspaceIDEQ(workspaceID))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}

	result := make([]events.CatchupEvent, 0, len(rows))
	for _, row := range rows {
		if !literal {
			match, merr := doublestar.Match(topicPattern, row.Channel)
			if merr != nil || !match {
				continue
			}
		}
		result = append(result, events.CatchupEvent{
			ID:      int64(row.ID),
			Payload: row.Payload,
		})
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

// DeleteEventsBefore prunes stored events older than the cutoff and
// returns the count removed.
func (s *EventService) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Event.Delete().
		Where(entevent.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune events: %w", err)
	}
	if n > 0 {
		s.logger.Info("Pruned stored events", "count", n, "cutoff", cutoff)
	}
	return n, nil
}

// workspaceFromPattern extracts a literal workspace ID from a pattern
// like "workspace:abc.*"; empty when the workspace segment itself globs.
func workspaceFromPattern(pattern string) string {
	if !strings.HasPrefix(pattern, "workspace:") {
		return ""
	}
	rest := strings.TrimPrefix(pattern, "workspace:")
	if idx := strings.IndexByte(rest, '.'); idx >= 0 {
		rest = rest[:idx]
	}
	if rest == "" || hasGlobMeta(rest) {
		return ""
	}
	return rest
}

func hasGlobMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

var _ events.CatchupQuerier = (*EventService)(nil)
