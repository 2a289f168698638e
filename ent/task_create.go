// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/project"
	"github.com/mgx-dev/mgx/ent/task"
	"github.com/mgx-dev/mgx/ent/taskrun"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *TaskCreate) SetWorkspaceID(v string) *TaskCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *TaskCreate) SetProjectID(v string) *TaskCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *TaskCreate) SetName(v string) *TaskCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *TaskCreate) SetConfig(v map[string]interface{}) *TaskCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMaxRounds sets the "max_rounds" field.
func (_c *TaskCreate) SetMaxRounds(v int) *TaskCreate {
	_c.mutation.SetMaxRounds(v)
	return _c
}

// SetNillableMaxRounds sets the "max_rounds" field if the given value is not nil.
func (_c *TaskCreate) SetNillableMaxRounds(v *int) *TaskCreate {
	if v != nil {
		_c.SetMaxRounds(*v)
	}
	return _c
}

// SetMaxRevisionRounds sets the "max_revision_rounds" field.
func (_c *TaskCreate) SetMaxRevisionRounds(v int) *TaskCreate {
	_c.mutation.SetMaxRevisionRounds(v)
	return _c
}

// SetNillableMaxRevisionRounds sets the "max_revision_rounds" field if the given value is not nil.
func (_c *TaskCreate) SetNillableMaxRevisionRounds(v *int) *TaskCreate {
	if v != nil {
		_c.SetMaxRevisionRounds(*v)
	}
	return _c
}

// SetBranchPrefix sets the "branch_prefix" field.
func (_c *TaskCreate) SetBranchPrefix(v string) *TaskCreate {
	_c.mutation.SetBranchPrefix(v)
	return _c
}

// SetNillableBranchPrefix sets the "branch_prefix" field if the given value is not nil.
func (_c *TaskCreate) SetNillableBranchPrefix(v *string) *TaskCreate {
	if v != nil {
		_c.SetBranchPrefix(*v)
	}
	return _c
}

// SetCommitTemplate sets the "commit_template" field.
func (_c *TaskCreate) SetCommitTemplate(v string) *TaskCreate {
	_c.mutation.SetCommitTemplate(v)
	return _c
}

// SetNillableCommitTemplate sets the "commit_template" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCommitTemplate(v *string) *TaskCreate {
	if v != nil {
		_c.SetCommitTemplate(*v)
	}
	return _c
}

// SetTotalRuns sets the "total_runs" field.
func (_c *TaskCreate) SetTotalRuns(v int) *TaskCreate {
	_c.mutation.SetTotalRuns(v)
	return _c
}

// SetNillableTotalRuns sets the "total_runs" field if the given value is not nil.
func (_c *TaskCreate) SetNillableTotalRuns(v *int) *TaskCreate {
	if v != nil {
		_c.SetTotalRuns(*v)
	}
	return _c
}

// SetSuccessfulRuns sets the "successful_runs" field.
func (_c *TaskCreate) SetSuccessfulRuns(v int) *TaskCreate {
	_c.mutation.SetSuccessfulRuns(v)
	return _c
}

// SetNillableSuccessfulRuns sets the "successful_runs" field if the given value is not nil.
func (_c *TaskCreate) SetNillableSuccessfulRuns(v *int) *TaskCreate {
	if v != nil {
		_c.SetSuccessfulRuns(*v)
	}
	return _c
}

// SetFailedRuns sets the "failed_runs" field.
func (_c *TaskCreate) SetFailedRuns(v int) *TaskCreate {
	_c.mutation.SetFailedRuns(v)
	return _c
}

// SetNillableFailedRuns sets the "failed_runs" field if the given value is not nil.
func (_c *TaskCreate) SetNillableFailedRuns(v *int) *TaskCreate {
	if v != nil {
		_c.SetFailedRuns(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *TaskCreate) SetProject(v *Project) *TaskCreate {
	return _c.SetProjectID(v.ID)
}

// AddRunIDs adds the "runs" edge to the TaskRun entity by IDs.
func (_c *TaskCreate) AddRunIDs(ids ...string) *TaskCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the TaskRun entity.
func (_c *TaskCreate) AddRuns(v ...*TaskRun) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.MaxRounds(); !ok {
		v := task.DefaultMaxRounds
		_c.mutation.SetMaxRounds(v)
	}
	if _, ok := _c.mutation.MaxRevisionRounds(); !ok {
		v := task.DefaultMaxRevisionRounds
		_c.mutation.SetMaxRevisionRounds(v)
	}
	if _, ok := _c.mutation.TotalRuns(); !ok {
		v := task.DefaultTotalRuns
		_c.mutation.SetTotalRuns(v)
	}
	if _, ok := _c.mutation.SuccessfulRuns(); !ok {
		v := task.DefaultSuccessfulRuns
		_c.mutation.SetSuccessfulRuns(v)
	}
	if _, ok := _c.mutation.FailedRuns(); !ok {
		v := task.DefaultFailedRuns
		_c.mutation.SetFailedRuns(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Task.workspace_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Task.project_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Task.name"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Task.description"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxRounds(); !ok {
		return &ValidationError{Name: "max_rounds", err: errors.New(`ent: missing required field "Task.max_rounds"`)}
	}
	if _, ok := _c.mutation.MaxRevisionRounds(); !ok {
		return &ValidationError{Name: "max_revision_rounds", err: errors.New(`ent: missing required field "Task.max_revision_rounds"`)}
	}
	if _, ok := _c.mutation.TotalRuns(); !ok {
		return &ValidationError{Name: "total_runs", err: errors.New(`ent: missing required field "Task.total_runs"`)}
	}
	if _, ok := _c.mutation.SuccessfulRuns(); !ok {
		return &ValidationError{Name: "successful_runs", err: errors.New(`ent: missing required field "Task.successful_runs"`)}
	}
	if _, ok := _c.mutation.FailedRuns(); !ok {
		return &ValidationError{Name: "failed_runs", err: errors.New(`ent: missing required field "Task.failed_runs"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Task.project"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(task.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(task.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(task.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.MaxRounds(); ok {
		_spec.SetField(task.FieldMaxRounds, field.TypeInt, value)
		_node.MaxRounds = value
	}
	if value, ok := _c.mutation.MaxRevisionRounds(); ok {
		_spec.SetField(task.FieldMaxRevisionRounds, field.TypeInt, value)
		_node.MaxRevisionRounds = value
	}
	if value, ok := _c.mutation.BranchPrefix(); ok {
		_spec.SetField(task.FieldBranchPrefix, field.TypeString, value)
		_node.BranchPrefix = &value
	}
	if value, ok := _c.mutation.CommitTemplate(); ok {
		_spec.SetField(task.FieldCommitTemplate, field.TypeString, value)
		_node.CommitTemplate = &value
	}
	if value, ok := _c.mutation.TotalRuns(); ok {
		_spec.SetField(task.FieldTotalRuns, field.TypeInt, value)
		_node.TotalRuns = value
	}
	if value, ok := _c.mutation.SuccessfulRuns(); ok {
		_spec.SetField(task.FieldSuccessfulRuns, field.TypeInt, value)
		_node.SuccessfulRuns = value
	}
	if value, ok := _c.mutation.FailedRuns(); ok {
		_spec.SetField(task.FieldFailedRuns, field.TypeInt, value)
		_node.FailedRuns = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ProjectTable,
			Columns: []string{task.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.RunsTable,
			Columns: []string{task.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
