package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Append-only store behind the broadcaster's mandatory persistence
// subscriber; also serves WebSocket catch-up queries.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique(),
		field.String("event_id").
			Unique().
			Immutable(),
		field.String("event_type").
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("Topic the event was published to"),
		field.String("task_id").
			Optional().
			Immutable(),
		field.String("run_id").
			Optional().
			Immutable(),
		field.String("workflow_id").
			Optional().
			Immutable(),
		field.String("execution_id").
			Optional().
			Immutable(),
		field.String("agent_id").
			Optional().
			Immutable(),
		field.String("correlation_id").
			Optional().
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Immutable().
			Comment("Full wire envelope as delivered to subscribers"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("workspace_id"),
		index.Fields("task_id"),
		index.Fields("execution_id"),
		index.Fields("created_at"),
	}
}
