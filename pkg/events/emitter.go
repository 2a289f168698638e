package events

import (
	"context"
	"log/slog"
)

// Emitter is the single entry point components use to publish events. It
// feeds the in-process broadcaster, whose mandatory persistence subscriber
// stores the event and NOTIFYs other pods, and routes transient events
// around the store.
type Emitter struct {
	broadcaster *Broadcaster
	publisher   *EventPublisher
}

// NewEmitter creates an Emitter. publisher may be nil (no cross-pod
// delivery, e.g. in tests).
func NewEmitter(broadcaster *Broadcaster, publisher *EventPublisher) *Emitter {
	return &Emitter{broadcaster: broadcaster, publisher: publisher}
}

// Emit publishes a persistent event. Invalid envelopes are logged and
// dropped rather than propagated: emission sites are fire-and-forget.
func (e *Emitter) Emit(envelope *Envelope) {
	if err := envelope.Validate(); err != nil {
		slog.Error("Dropping invalid event envelope", "error", err,
			"event_type", envelope.EventType)
		return
	}
	e.broadcaster.Publish(envelope)
}

// EmitTransient publishes an event that is broadcast but never stored.
// Lost on disconnect; the terminal event of the same operation is always
// persistent.
func (e *Emitter) EmitTransient(ctx context.Context, envelope *Envelope) {
	if err := envelope.Validate(); err != nil {
		slog.Error("Dropping invalid event envelope", "error", err,
			"event_type", envelope.EventType)
		return
	}
	e.broadcaster.PublishTransient(envelope)
	if e.publisher != nil {
		if err := e.publisher.NotifyOnly(ctx, envelope); err != nil {
			slog.Warn("Transient event NOTIFY failed",
				"event_type", envelope.EventType, "error", err)
		}
	}
}

// Close shuts down the broadcaster, draining pending persistence.
func (e *Emitter) Close() {
	e.broadcaster.Close()
}
