package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentDefinition holds the schema definition for the AgentDefinition entity.
// A definition describes a role-specialized agent (planner, engineer, tester,
// reviewer) and the capability set its instances advertise. Dispatch is on
// role, never on a concrete type.
type AgentDefinition struct {
	ent.Schema
}

// Fields of the AgentDefinition.
func (AgentDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_definition_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("name"),
		field.Enum("role").
			Values("planner", "engineer", "tester", "reviewer"),
		field.Strings("capabilities").
			Optional(),
		field.String("model").
			Optional().
			Comment("LLM model override for instances of this definition"),
		field.Text("system_prompt").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentDefinition.
func (AgentDefinition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("instances", AgentInstance.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentDefinition.
func (AgentDefinition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "role"),
	}
}
