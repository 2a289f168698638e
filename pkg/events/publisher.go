package events

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// notifyLimit is PostgreSQL's NOTIFY payload ceiling (8000 bytes) with
// headroom for the injected db_event_id.
const notifyLimit = 7900

// EventPublisher writes envelopes to the append-only events table and
// broadcasts them via pg_notify for cross-pod WebSocket delivery.
// INSERT and NOTIFY share one transaction: pg_notify is transactional, so
// the notification fires only when the row is durably committed.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates an EventPublisher. The db parameter should be
// the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// Persist implements EventStore: store the envelope and NOTIFY its
// primary topic atomically.
func (p *EventPublisher) Persist(ctx context.Context, envelope *Envelope) error {
	payloadJSON, err := envelope.MarshalWire()
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	channel := envelope.PrimaryTopic()

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var dbEventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (event_id, event_type, workspace_id, channel,
			task_id, run_id, workflow_id, execution_id, agent_id,
			correlation_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		envelope.EventID, envelope.EventType, envelope.WorkspaceID, channel,
		envelope.TaskID, envelope.RunID, envelope.WorkflowID, envelope.ExecutionID,
		envelope.AgentID, envelope.CorrelationID, payloadJSON, time.Now(),
	).Scan(&dbEventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, dbEventID)
	if err != nil {
		return err
	}

	// NOTIFY on every hierarchical topic so a pod may LISTEN at whichever
	// level its clients subscribed (all, workspace, or entity).
	for _, topic := range envelope.Topics() {
		if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", topic, notifyPayload); err != nil {
			return fmt.Errorf("pg_notify failed: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// NotifyOnly broadcasts a transient envelope via NOTIFY without persisting
// it. Used for high-frequency sandbox log chunks — ephemeral, lost on
// disconnect, with the final result delivered by a persistent event.
func (p *EventPublisher) NotifyOnly(ctx context.Context, envelope *Envelope) error {
	payloadJSON, err := envelope.MarshalWire()
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}
	notifyPayload, err := truncateIfNeeded(payloadJSON)
	if err != nil {
		return err
	}
	for _, topic := range envelope.Topics() {
		if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)",
			topic, notifyPayload); err != nil {
			return fmt.Errorf("pg_notify failed: %w", err)
		}
	}
	return nil
}
