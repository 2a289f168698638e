package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentContextVersion holds the schema definition for the
// AgentContextVersion entity. Versions are immutable full snapshots;
// rollback creates a new version whose data equals a prior version's.
type AgentContextVersion struct {
	ent.Schema
}

// Fields of the AgentContextVersion.
func (AgentContextVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("context_version_id").
			Unique().
			Immutable(),
		field.String("context_id").
			Immutable(),
		field.Int("version").
			Immutable(),
		field.JSON("data", map[string]interface{}{}).
			Immutable(),
		field.String("written_by").
			Optional().
			Immutable().
			Comment("Agent instance that produced this version"),
		field.Int("rolled_back_from").
			Optional().
			Nillable().
			Immutable().
			Comment("Set when this version was created by a rollback to that version"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentContextVersion.
func (AgentContextVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("context", AgentContext.Type).
			Ref("versions").
			Field("context_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentContextVersion.
func (AgentContextVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("context_id", "version").Unique(),
	}
}
