// Code generated by ent, DO NOT EDIT.

package agentinstance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mgx-dev/mgx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldContainsFold(FieldID, id))
}

// AgentDefinitionID applies equality check predicate on the "agent_definition_id" field. It's identical to AgentDefinitionIDEQ.
func AgentDefinitionID(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldAgentDefinitionID, v))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldWorkspaceID, v))
}

// ActiveSteps applies equality check predicate on the "active_steps" field. It's identical to ActiveStepsEQ.
func ActiveSteps(v int) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldActiveSteps, v))
}

// LastAssignedAt applies equality check predicate on the "last_assigned_at" field. It's identical to LastAssignedAtEQ.
func LastAssignedAt(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldLastAssignedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentDefinitionIDEQ applies the EQ predicate on the "agent_definition_id" field.
func AgentDefinitionIDEQ(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDNEQ applies the NEQ predicate on the "agent_definition_id" field.
func AgentDefinitionIDNEQ(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDIn applies the In predicate on the "agent_definition_id" field.
func AgentDefinitionIDIn(vs ...string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldAgentDefinitionID, vs...))
}

// AgentDefinitionIDNotIn applies the NotIn predicate on the "agent_definition_id" field.
func AgentDefinitionIDNotIn(vs ...string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldAgentDefinitionID, vs...))
}

// AgentDefinitionIDGT applies the GT predicate on the "agent_definition_id" field.
func AgentDefinitionIDGT(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGT(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDGTE applies the GTE predicate on the "agent_definition_id" field.
func AgentDefinitionIDGTE(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGTE(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDLT applies the LT predicate on the "agent_definition_id" field.
func AgentDefinitionIDLT(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLT(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDLTE applies the LTE predicate on the "agent_definition_id" field.
func AgentDefinitionIDLTE(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLTE(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDContains applies the Contains predicate on the "agent_definition_id" field.
func AgentDefinitionIDContains(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldContains(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDHasPrefix applies the HasPrefix predicate on the "agent_definition_id" field.
func AgentDefinitionIDHasPrefix(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldHasPrefix(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDHasSuffix applies the HasSuffix predicate on the "agent_definition_id" field.
func AgentDefinitionIDHasSuffix(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldHasSuffix(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDEqualFold applies the EqualFold predicate on the "agent_definition_id" field.
func AgentDefinitionIDEqualFold(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEqualFold(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDContainsFold applies the ContainsFold predicate on the "agent_definition_id" field.
func AgentDefinitionIDContainsFold(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldContainsFold(FieldAgentDefinitionID, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldStatus, vs...))
}

// ActiveStepsEQ applies the EQ predicate on the "active_steps" field.
func ActiveStepsEQ(v int) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldActiveSteps, v))
}

// ActiveStepsNEQ applies the NEQ predicate on the "active_steps" field.
func ActiveStepsNEQ(v int) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldActiveSteps, v))
}

// ActiveStepsIn applies the In predicate on the "active_steps" field.
func ActiveStepsIn(vs ...int) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldActiveSteps, vs...))
}

// ActiveStepsNotIn applies the NotIn predicate on the "active_steps" field.
func ActiveStepsNotIn(vs ...int) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldActiveSteps, vs...))
}

// ActiveStepsGT applies the GT predicate on the "active_steps" field.
func ActiveStepsGT(v int) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGT(FieldActiveSteps, v))
}

// ActiveStepsGTE applies the GTE predicate on the "active_steps" field.
func ActiveStepsGTE(v int) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGTE(FieldActiveSteps, v))
}

// ActiveStepsLT applies the LT predicate on the "active_steps" field.
func ActiveStepsLT(v int) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLT(FieldActiveSteps, v))
}

// ActiveStepsLTE applies the LTE predicate on the "active_steps" field.
func ActiveStepsLTE(v int) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLTE(FieldActiveSteps, v))
}

// LastAssignedAtEQ applies the EQ predicate on the "last_assigned_at" field.
func LastAssignedAtEQ(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldLastAssignedAt, v))
}

// LastAssignedAtNEQ applies the NEQ predicate on the "last_assigned_at" field.
func LastAssignedAtNEQ(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldLastAssignedAt, v))
}

// LastAssignedAtIn applies the In predicate on the "last_assigned_at" field.
func LastAssignedAtIn(vs ...time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldLastAssignedAt, vs...))
}

// LastAssignedAtNotIn applies the NotIn predicate on the "last_assigned_at" field.
func LastAssignedAtNotIn(vs ...time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldLastAssignedAt, vs...))
}

// LastAssignedAtGT applies the GT predicate on the "last_assigned_at" field.
func LastAssignedAtGT(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGT(FieldLastAssignedAt, v))
}

// LastAssignedAtGTE applies the GTE predicate on the "last_assigned_at" field.
func LastAssignedAtGTE(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGTE(FieldLastAssignedAt, v))
}

// LastAssignedAtLT applies the LT predicate on the "last_assigned_at" field.
func LastAssignedAtLT(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLT(FieldLastAssignedAt, v))
}

// LastAssignedAtLTE applies the LTE predicate on the "last_assigned_at" field.
func LastAssignedAtLTE(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLTE(FieldLastAssignedAt, v))
}

// LastAssignedAtIsNil applies the IsNil predicate on the "last_assigned_at" field.
func LastAssignedAtIsNil() predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIsNull(FieldLastAssignedAt))
}

// LastAssignedAtNotNil applies the NotNil predicate on the "last_assigned_at" field.
func LastAssignedAtNotNil() predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotNull(FieldLastAssignedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDefinition applies the HasEdge predicate on the "definition" edge.
func HasDefinition() predicate.AgentInstance {
	return predicate.AgentInstance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DefinitionTable, DefinitionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDefinitionWith applies the HasEdge predicate on the "definition" edge with a given conditions (other predicates).
func HasDefinitionWith(preds ...predicate.AgentDefinition) predicate.AgentInstance {
	return predicate.AgentInstance(func(s *sql.Selector) {
		step := newDefinitionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentInstance) predicate.AgentInstance {
	return predicate.AgentInstance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentInstance) predicate.AgentInstance {
	return predicate.AgentInstance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentInstance) predicate.AgentInstance {
	return predicate.AgentInstance(sql.NotPredicates(p))
}
