package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentInstance holds the schema definition for the AgentInstance entity.
// Instances carry the live load counter used by the assignment policy
// (capability_match, then least_loaded, then round_robin).
type AgentInstance struct {
	ent.Schema
}

// Fields of the AgentInstance.
func (AgentInstance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_instance_id").
			Unique().
			Immutable(),
		field.String("agent_definition_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.Enum("status").
			Values("available", "busy", "offline").
			Default("available"),
		field.Int("active_steps").
			Default(0).
			Comment("Reserved step executions; incremented on assignment, decremented on terminal transition"),
		field.Time("last_assigned_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentInstance.
func (AgentInstance) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("definition", AgentDefinition.Type).
			Ref("instances").
			Field("agent_definition_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentInstance.
func (AgentInstance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "status"),
	}
}
