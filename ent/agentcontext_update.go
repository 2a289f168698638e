// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/agentcontext"
	"github.com/mgx-dev/mgx/ent/agentcontextversion"
	"github.com/mgx-dev/mgx/ent/predicate"
)

// AgentContextUpdate is the builder for updating AgentContext entities.
type AgentContextUpdate struct {
	config
	hooks    []Hook
	mutation *AgentContextMutation
}

// Where appends a list predicates to the AgentContextUpdate builder.
func (_u *AgentContextUpdate) Where(ps ...predicate.AgentContext) *AgentContextUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentContextUpdate) SetName(v string) *AgentContextUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentContextUpdate) SetNillableName(v *string) *AgentContextUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCurrentVersion sets the "current_version" field.
func (_u *AgentContextUpdate) SetCurrentVersion(v int) *AgentContextUpdate {
	_u.mutation.ResetCurrentVersion()
	_u.mutation.SetCurrentVersion(v)
	return _u
}

// SetNillableCurrentVersion sets the "current_version" field if the given value is not nil.
func (_u *AgentContextUpdate) SetNillableCurrentVersion(v *int) *AgentContextUpdate {
	if v != nil {
		_u.SetCurrentVersion(*v)
	}
	return _u
}

// AddCurrentVersion adds value to the "current_version" field.
func (_u *AgentContextUpdate) AddCurrentVersion(v int) *AgentContextUpdate {
	_u.mutation.AddCurrentVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentContextUpdate) SetUpdatedAt(v time.Time) *AgentContextUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddVersionIDs adds the "versions" edge to the AgentContextVersion entity by IDs.
func (_u *AgentContextUpdate) AddVersionIDs(ids ...string) *AgentContextUpdate {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the AgentContextVersion entity.
func (_u *AgentContextUpdate) AddVersions(v ...*AgentContextVersion) *AgentContextUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// Mutation returns the AgentContextMutation object of the builder.
func (_u *AgentContextUpdate) Mutation() *AgentContextMutation {
	return _u.mutation
}

// ClearVersions clears all "versions" edges to the AgentContextVersion entity.
func (_u *AgentContextUpdate) ClearVersions() *AgentContextUpdate {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to AgentContextVersion entities by IDs.
func (_u *AgentContextUpdate) RemoveVersionIDs(ids ...string) *AgentContextUpdate {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to AgentContextVersion entities.
func (_u *AgentContextUpdate) RemoveVersions(v ...*AgentContextVersion) *AgentContextUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentContextUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentContextUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentContextUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentContextUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentContextUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentcontext.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentContextUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentcontext.Table, agentcontext.Columns, sqlgraph.NewFieldSpec(agentcontext.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentcontext.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentVersion(); ok {
		_spec.SetField(agentcontext.FieldCurrentVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentVersion(); ok {
		_spec.AddField(agentcontext.FieldCurrentVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentcontext.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentcontext.VersionsTable,
			Columns: []string{agentcontext.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentcontextversion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentcontext.VersionsTable,
			Columns: []string{agentcontext.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentcontextversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentcontext.VersionsTable,
			Columns: []string{agentcontext.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentcontextversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentContextUpdateOne is the builder for updating a single AgentContext entity.
type AgentContextUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentContextMutation
}

// SetName sets the "name" field.
func (_u *AgentContextUpdateOne) SetName(v string) *AgentContextUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentContextUpdateOne) SetNillableName(v *string) *AgentContextUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCurrentVersion sets the "current_version" field.
func (_u *AgentContextUpdateOne) SetCurrentVersion(v int) *AgentContextUpdateOne {
	_u.mutation.ResetCurrentVersion()
	_u.mutation.SetCurrentVersion(v)
	return _u
}

// SetNillableCurrentVersion sets the "current_version" field if the given value is not nil.
func (_u *AgentContextUpdateOne) SetNillableCurrentVersion(v *int) *AgentContextUpdateOne {
	if v != nil {
		_u.SetCurrentVersion(*v)
	}
	return _u
}

// AddCurrentVersion adds value to the "current_version" field.
func (_u *AgentContextUpdateOne) AddCurrentVersion(v int) *AgentContextUpdateOne {
	_u.mutation.AddCurrentVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentContextUpdateOne) SetUpdatedAt(v time.Time) *AgentContextUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddVersionIDs adds the "versions" edge to the AgentContextVersion entity by IDs.
func (_u *AgentContextUpdateOne) AddVersionIDs(ids ...string) *AgentContextUpdateOne {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the AgentContextVersion entity.
func (_u *AgentContextUpdateOne) AddVersions(v ...*AgentContextVersion) *AgentContextUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// Mutation returns the AgentContextMutation object of the builder.
func (_u *AgentContextUpdateOne) Mutation() *AgentContextMutation {
	return _u.mutation
}

// ClearVersions clears all "versions" edges to the AgentContextVersion entity.
func (_u *AgentContextUpdateOne) ClearVersions() *AgentContextUpdateOne {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to AgentContextVersion entities by IDs.
func (_u *AgentContextUpdateOne) RemoveVersionIDs(ids ...string) *AgentContextUpdateOne {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to AgentContextVersion entities.
func (_u *AgentContextUpdateOne) RemoveVersions(v ...*AgentContextVersion) *AgentContextUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// Where appends a list predicates to the AgentContextUpdate builder.
func (_u *AgentContextUpdateOne) Where(ps ...predicate.AgentContext) *AgentContextUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentContextUpdateOne) Select(field string, fields ...string) *AgentContextUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentContext entity.
func (_u *AgentContextUpdateOne) Save(ctx context.Context) (*AgentContext, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentContextUpdateOne) SaveX(ctx context.Context) *AgentContext {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentContextUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentContextUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentContextUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentcontext.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentContextUpdateOne) sqlSave(ctx context.Context) (_node *AgentContext, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentcontext.Table, agentcontext.Columns, sqlgraph.NewFieldSpec(agentcontext.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentContext.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentcontext.FieldID)
		for _, f := range fields {
			if !agentcontext.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentcontext.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentcontext.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentVersion(); ok {
		_spec.SetField(agentcontext.FieldCurrentVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentVersion(); ok {
		_spec.AddField(agentcontext.FieldCurrentVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentcontext.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentcontext.VersionsTable,
			Columns: []string{agentcontext.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentcontextversion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentcontext.VersionsTable,
			Columns: []string{agentcontext.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentcontextversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentcontext.VersionsTable,
			Columns: []string{agentcontext.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentcontextversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentContext{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
