package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentContext holds the schema definition for the AgentContext entity.
// A named, workspace/project-scoped shared context. Writes allocate a new
// immutable AgentContextVersion; current_version is the monotonic counter.
type AgentContext struct {
	ent.Schema
}

// Fields of the AgentContext.
func (AgentContext) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("context_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("name"),
		field.Int("current_version").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AgentContext.
func (AgentContext) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("versions", AgentContextVersion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentContext.
func (AgentContext) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "project_id", "name").Unique(),
	}
}
