// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/agentdefinition"
	"github.com/mgx-dev/mgx/ent/agentinstance"
	"github.com/mgx-dev/mgx/ent/predicate"
)

// AgentDefinitionUpdate is the builder for updating AgentDefinition entities.
type AgentDefinitionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentDefinitionMutation
}

// Where appends a list predicates to the AgentDefinitionUpdate builder.
func (_u *AgentDefinitionUpdate) Where(ps ...predicate.AgentDefinition) *AgentDefinitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentDefinitionUpdate) SetName(v string) *AgentDefinitionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableName(v *string) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentDefinitionUpdate) SetRole(v agentdefinition.Role) *AgentDefinitionUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableRole(v *agentdefinition.Role) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentDefinitionUpdate) SetCapabilities(v []string) *AgentDefinitionUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentDefinitionUpdate) AppendCapabilities(v []string) *AgentDefinitionUpdate {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *AgentDefinitionUpdate) ClearCapabilities() *AgentDefinitionUpdate {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentDefinitionUpdate) SetModel(v string) *AgentDefinitionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableModel(v *string) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentDefinitionUpdate) ClearModel() *AgentDefinitionUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentDefinitionUpdate) SetSystemPrompt(v string) *AgentDefinitionUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableSystemPrompt(v *string) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *AgentDefinitionUpdate) ClearSystemPrompt() *AgentDefinitionUpdate {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// AddInstanceIDs adds the "instances" edge to the AgentInstance entity by IDs.
func (_u *AgentDefinitionUpdate) AddInstanceIDs(ids ...string) *AgentDefinitionUpdate {
	_u.mutation.AddInstanceIDs(ids...)
	return _u
}

// AddInstances adds the "instances" edges to the AgentInstance entity.
func (_u *AgentDefinitionUpdate) AddInstances(v ...*AgentInstance) *AgentDefinitionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInstanceIDs(ids...)
}

// Mutation returns the AgentDefinitionMutation object of the builder.
func (_u *AgentDefinitionUpdate) Mutation() *AgentDefinitionMutation {
	return _u.mutation
}

// ClearInstances clears all "instances" edges to the AgentInstance entity.
func (_u *AgentDefinitionUpdate) ClearInstances() *AgentDefinitionUpdate {
	_u.mutation.ClearInstances()
	return _u
}

// RemoveInstanceIDs removes the "instances" edge to AgentInstance entities by IDs.
func (_u *AgentDefinitionUpdate) RemoveInstanceIDs(ids ...string) *AgentDefinitionUpdate {
	_u.mutation.RemoveInstanceIDs(ids...)
	return _u
}

// RemoveInstances removes "instances" edges to AgentInstance entities.
func (_u *AgentDefinitionUpdate) RemoveInstances(v ...*AgentInstance) *AgentDefinitionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInstanceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentDefinitionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentDefinitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentDefinitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentDefinitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentDefinitionUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := agentdefinition.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AgentDefinition.role": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentDefinitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentdefinition.Table, agentdefinition.Columns, sqlgraph.NewFieldSpec(agentdefinition.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentdefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentdefinition.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agentdefinition.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentdefinition.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(agentdefinition.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentdefinition.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agentdefinition.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agentdefinition.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(agentdefinition.FieldSystemPrompt, field.TypeString)
	}
	if _u.mutation.InstancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentdefinition.InstancesTable,
			Columns: []string{agentdefinition.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentinstance.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInstancesIDs(); len(nodes) > 0 && !_u.mutation.InstancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentdefinition.InstancesTable,
			Columns: []string{agentdefinition.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentinstance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentdefinition.InstancesTable,
			Columns: []string{agentdefinition.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentinstance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentdefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentDefinitionUpdateOne is the builder for updating a single AgentDefinition entity.
type AgentDefinitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentDefinitionMutation
}

// SetName sets the "name" field.
func (_u *AgentDefinitionUpdateOne) SetName(v string) *AgentDefinitionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableName(v *string) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentDefinitionUpdateOne) SetRole(v agentdefinition.Role) *AgentDefinitionUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableRole(v *agentdefinition.Role) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentDefinitionUpdateOne) SetCapabilities(v []string) *AgentDefinitionUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentDefinitionUpdateOne) AppendCapabilities(v []string) *AgentDefinitionUpdateOne {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *AgentDefinitionUpdateOne) ClearCapabilities() *AgentDefinitionUpdateOne {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentDefinitionUpdateOne) SetModel(v string) *AgentDefinitionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableModel(v *string) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentDefinitionUpdateOne) ClearModel() *AgentDefinitionUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentDefinitionUpdateOne) SetSystemPrompt(v string) *AgentDefinitionUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableSystemPrompt(v *string) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *AgentDefinitionUpdateOne) ClearSystemPrompt() *AgentDefinitionUpdateOne {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// AddInstanceIDs adds the "instances" edge to the AgentInstance entity by IDs.
func (_u *AgentDefinitionUpdateOne) AddInstanceIDs(ids ...string) *AgentDefinitionUpdateOne {
	_u.mutation.AddInstanceIDs(ids...)
	return _u
}

// AddInstances adds the "instances" edges to the AgentInstance entity.
func (_u *AgentDefinitionUpdateOne) AddInstances(v ...*AgentInstance) *AgentDefinitionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInstanceIDs(ids...)
}

// Mutation returns the AgentDefinitionMutation object of the builder.
func (_u *AgentDefinitionUpdateOne) Mutation() *AgentDefinitionMutation {
	return _u.mutation
}

// ClearInstances clears all "instances" edges to the AgentInstance entity.
func (_u *AgentDefinitionUpdateOne) ClearInstances() *AgentDefinitionUpdateOne {
	_u.mutation.ClearInstances()
	return _u
}

// RemoveInstanceIDs removes the "instances" edge to AgentInstance entities by IDs.
func (_u *AgentDefinitionUpdateOne) RemoveInstanceIDs(ids ...string) *AgentDefinitionUpdateOne {
	_u.mutation.RemoveInstanceIDs(ids...)
	return _u
}

// RemoveInstances removes "instances" edges to AgentInstance entities.
func (_u *AgentDefinitionUpdateOne) RemoveInstances(v ...*AgentInstance) *AgentDefinitionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInstanceIDs(ids...)
}

// Where appends a list predicates to the AgentDefinitionUpdate builder.
func (_u *AgentDefinitionUpdateOne) Where(ps ...predicate.AgentDefinition) *AgentDefinitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentDefinitionUpdateOne) Select(field string, fields ...string) *AgentDefinitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentDefinition entity.
func (_u *AgentDefinitionUpdateOne) Save(ctx context.Context) (*AgentDefinition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentDefinitionUpdateOne) SaveX(ctx context.Context) *AgentDefinition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentDefinitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentDefinitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentDefinitionUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := agentdefinition.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AgentDefinition.role": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentDefinitionUpdateOne) sqlSave(ctx context.Context) (_node *AgentDefinition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentdefinition.Table, agentdefinition.Columns, sqlgraph.NewFieldSpec(agentdefinition.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentDefinition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentdefinition.FieldID)
		for _, f := range fields {
			if !agentdefinition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentdefinition.FieldID {
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
		_spec.SetField(agentdefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentdefinition.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agentdefinition.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentdefinition.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(agentdefinition.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentdefinition.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agentdefinition.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agentdefinition.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(agentdefinition.FieldSystemPrompt, field.TypeString)
	}
	if _u.mutation.InstancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentdefinition.InstancesTable,
			Columns: []string{agentdefinition.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentinstance.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInstancesIDs(); len(nodes) > 0 && !_u.mutation.InstancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentdefinition.InstancesTable,
			Columns: []string{agentdefinition.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentinstance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentdefinition.InstancesTable,
			Columns: []string{agentdefinition.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentinstance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentDefinition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentdefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
