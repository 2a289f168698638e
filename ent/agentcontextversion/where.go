// Code generated by ent, DO NOT EDIT.

package agentcontextversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mgx-dev/mgx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldContainsFold(FieldID, id))
}

// ContextID applies equality check predicate on the "context_id" field. It's identical to ContextIDEQ.
func ContextID(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldEQ(FieldContextID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldEQ(FieldVersion, v))
}

// WrittenBy applies equality check predicate on the "written_by" field. It's identical to WrittenByEQ.
func WrittenBy(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldEQ(FieldWrittenBy, v))
}

// RolledBackFrom applies equality check predicate on the "rolled_back_from" field. It's identical to RolledBackFromEQ.
func RolledBackFrom(v int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldEQ(FieldRolledBackFrom, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// ContextIDEQ applies the EQ predicate on the "context_id" field.
func ContextIDEQ(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldEQ(FieldContextID, v))
}

// ContextIDNEQ applies the NEQ predicate on the "context_id" field.
func ContextIDNEQ(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldNEQ(FieldContextID, v))
}

// ContextIDIn applies the In predicate on the "context_id" field.
func ContextIDIn(vs ...string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldIn(FieldContextID, vs...))
}

// ContextIDNotIn applies the NotIn predicate on the "context_id" field.
func ContextIDNotIn(vs ...string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldNotIn(FieldContextID, vs...))
}

// ContextIDGT applies the GT predicate on the "context_id" field.
func ContextIDGT(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldGT(FieldContextID, v))
}

// ContextIDGTE applies the GTE predicate on the "context_id" field.
func ContextIDGTE(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldGTE(FieldContextID, v))
}

// ContextIDLT applies the LT predicate on the "context_id" field.
func ContextIDLT(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldLT(FieldContextID, v))
}

// ContextIDLTE applies the LTE predicate on the "context_id" field.
func ContextIDLTE(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldLTE(FieldContextID, v))
}

// ContextIDContains applies the Contains predicate on the "context_id" field.
func ContextIDContains(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldContains(FieldContextID, v))
}

// ContextIDHasPrefix applies the HasPrefix predicate on the "context_id" field.
func ContextIDHasPrefix(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldHasPrefix(FieldContextID, v))
}

// ContextIDHasSuffix applies the HasSuffix predicate on the "context_id" field.
func ContextIDHasSuffix(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldHasSuffix(FieldContextID, v))
}

// ContextIDEqualFold applies the EqualFold predicate on the "context_id" field.
func ContextIDEqualFold(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldEqualFold(FieldContextID, v))
}

// ContextIDContainsFold applies the ContainsFold predicate on the "context_id" field.
func ContextIDContainsFold(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldContainsFold(FieldContextID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldLTE(FieldVersion, v))
}

// WrittenByEQ applies the EQ predicate on the "written_by" field.
func WrittenByEQ(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldEQ(FieldWrittenBy, v))
}

// WrittenByNEQ applies the NEQ predicate on the "written_by" field.
func WrittenByNEQ(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldNEQ(FieldWrittenBy, v))
}

// WrittenByIn applies the In predicate on the "written_by" field.
func WrittenByIn(vs ...string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldIn(FieldWrittenBy, vs...))
}

// WrittenByNotIn applies the NotIn predicate on the "written_by" field.
func WrittenByNotIn(vs ...string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldNotIn(FieldWrittenBy, vs...))
}

// WrittenByGT applies the GT predicate on the "written_by" field.
func WrittenByGT(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldGT(FieldWrittenBy, v))
}

// WrittenByGTE applies the GTE predicate on the "written_by" field.
func WrittenByGTE(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldGTE(FieldWrittenBy, v))
}

// WrittenByLT applies the LT predicate on the "written_by" field.
func WrittenByLT(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldLT(FieldWrittenBy, v))
}

// WrittenByLTE applies the LTE predicate on the "written_by" field.
func WrittenByLTE(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldLTE(FieldWrittenBy, v))
}

// WrittenByContains applies the Contains predicate on the "written_by" field.
func WrittenByContains(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldContains(FieldWrittenBy, v))
}

// WrittenByHasPrefix applies the HasPrefix predicate on the "written_by" field.
func WrittenByHasPrefix(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldHasPrefix(FieldWrittenBy, v))
}

// WrittenByHasSuffix applies the HasSuffix predicate on the "written_by" field.
func WrittenByHasSuffix(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldHasSuffix(FieldWrittenBy, v))
}

// WrittenByIsNil applies the IsNil predicate on the "written_by" field.
func WrittenByIsNil() predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldIsNull(FieldWrittenBy))
}

// WrittenByNotNil applies the NotNil predicate on the "written_by" field.
func WrittenByNotNil() predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldNotNull(FieldWrittenBy))
}

// WrittenByEqualFold applies the EqualFold predicate on the "written_by" field.
func WrittenByEqualFold(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldEqualFold(FieldWrittenBy, v))
}

// WrittenByContainsFold applies the ContainsFold predicate on the "written_by" field.
func WrittenByContainsFold(v string) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldContainsFold(FieldWrittenBy, v))
}

// RolledBackFromEQ applies the EQ predicate on the "rolled_back_from" field.
func RolledBackFromEQ(v int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldEQ(FieldRolledBackFrom, v))
}

// RolledBackFromNEQ applies the NEQ predicate on the "rolled_back_from" field.
func RolledBackFromNEQ(v int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldNEQ(FieldRolledBackFrom, v))
}

// RolledBackFromIn applies the In predicate on the "rolled_back_from" field.
func RolledBackFromIn(vs ...int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldIn(FieldRolledBackFrom, vs...))
}

// RolledBackFromNotIn applies the NotIn predicate on the "rolled_back_from" field.
func RolledBackFromNotIn(vs ...int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldNotIn(FieldRolledBackFrom, vs...))
}

// RolledBackFromGT applies the GT predicate on the "rolled_back_from" field.
func RolledBackFromGT(v int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldGT(FieldRolledBackFrom, v))
}

// RolledBackFromGTE applies the GTE predicate on the "rolled_back_from" field.
func RolledBackFromGTE(v int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldGTE(FieldRolledBackFrom, v))
}

// RolledBackFromLT applies the LT predicate on the "rolled_back_from" field.
func RolledBackFromLT(v int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldLT(FieldRolledBackFrom, v))
}

// RolledBackFromLTE applies the LTE predicate on the "rolled_back_from" field.
func RolledBackFromLTE(v int) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldLTE(FieldRolledBackFrom, v))
}

// RolledBackFromIsNil applies the IsNil predicate on the "rolled_back_from" field.
func RolledBackFromIsNil() predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldIsNull(FieldRolledBackFrom))
}

// RolledBackFromNotNil applies the NotNil predicate on the "rolled_back_from" field.
func RolledBackFromNotNil() predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldNotNull(FieldRolledBackFrom))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasContext applies the HasEdge predicate on the "context" edge.
func HasContext() predicate.AgentContextVersion {
	return predicate.AgentContextVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContextTable, ContextColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContextWith applies the HasEdge predicate on the "context" edge with a given conditions (other predicates).
func HasContextWith(preds ...predicate.AgentContext) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(func(s *sql.Selector) {
		step := newContextStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentContextVersion) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentContextVersion) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentContextVersion) predicate.AgentContextVersion {
	return predicate.AgentContextVersion(sql.NotPredicates(p))
}
