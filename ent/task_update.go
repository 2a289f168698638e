// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/predicate"
	"github.com/mgx-dev/mgx/ent/task"
	"github.com/mgx-dev/mgx/ent/taskrun"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TaskUpdate) SetName(v string) *TaskUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableName(v *string) *TaskUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *TaskUpdate) SetConfig(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *TaskUpdate) ClearConfig() *TaskUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMaxRounds sets the "max_rounds" field.
func (_u *TaskUpdate) SetMaxRounds(v int) *TaskUpdate {
	_u.mutation.ResetMaxRounds()
	_u.mutation.SetMaxRounds(v)
	return _u
}

// SetNillableMaxRounds sets the "max_rounds" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMaxRounds(v *int) *TaskUpdate {
	if v != nil {
		_u.SetMaxRounds(*v)
	}
	return _u
}

// AddMaxRounds adds value to the "max_rounds" field.
func (_u *TaskUpdate) AddMaxRounds(v int) *TaskUpdate {
	_u.mutation.AddMaxRounds(v)
	return _u
}

// SetMaxRevisionRounds sets the "max_revision_rounds" field.
func (_u *TaskUpdate) SetMaxRevisionRounds(v int) *TaskUpdate {
	_u.mutation.ResetMaxRevisionRounds()
	_u.mutation.SetMaxRevisionRounds(v)
	return _u
}

// SetNillableMaxRevisionRounds sets the "max_revision_rounds" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMaxRevisionRounds(v *int) *TaskUpdate {
	if v != nil {
		_u.SetMaxRevisionRounds(*v)
	}
	return _u
}

// AddMaxRevisionRounds adds value to the "max_revision_rounds" field.
func (_u *TaskUpdate) AddMaxRevisionRounds(v int) *TaskUpdate {
	_u.mutation.AddMaxRevisionRounds(v)
	return _u
}

// SetBranchPrefix sets the "branch_prefix" field.
func (_u *TaskUpdate) SetBranchPrefix(v string) *TaskUpdate {
	_u.mutation.SetBranchPrefix(v)
	return _u
}

// SetNillableBranchPrefix sets the "branch_prefix" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableBranchPrefix(v *string) *TaskUpdate {
	if v != nil {
		_u.SetBranchPrefix(*v)
	}
	return _u
}

// ClearBranchPrefix clears the value of the "branch_prefix" field.
func (_u *TaskUpdate) ClearBranchPrefix() *TaskUpdate {
	_u.mutation.ClearBranchPrefix()
	return _u
}

// SetCommitTemplate sets the "commit_template" field.
func (_u *TaskUpdate) SetCommitTemplate(v string) *TaskUpdate {
	_u.mutation.SetCommitTemplate(v)
	return _u
}

// SetNillableCommitTemplate sets the "commit_template" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCommitTemplate(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCommitTemplate(*v)
	}
	return _u
}

// ClearCommitTemplate clears the value of the "commit_template" field.
func (_u *TaskUpdate) ClearCommitTemplate() *TaskUpdate {
	_u.mutation.ClearCommitTemplate()
	return _u
}

// SetTotalRuns sets the "total_runs" field.
func (_u *TaskUpdate) SetTotalRuns(v int) *TaskUpdate {
	_u.mutation.ResetTotalRuns()
	_u.mutation.SetTotalRuns(v)
	return _u
}

// SetNillableTotalRuns sets the "total_runs" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTotalRuns(v *int) *TaskUpdate {
	if v != nil {
		_u.SetTotalRuns(*v)
	}
	return _u
}

// AddTotalRuns adds value to the "total_runs" field.
func (_u *TaskUpdate) AddTotalRuns(v int) *TaskUpdate {
	_u.mutation.AddTotalRuns(v)
	return _u
}

// SetSuccessfulRuns sets the "successful_runs" field.
func (_u *TaskUpdate) SetSuccessfulRuns(v int) *TaskUpdate {
	_u.mutation.ResetSuccessfulRuns()
	_u.mutation.SetSuccessfulRuns(v)
	return _u
}

// SetNillableSuccessfulRuns sets the "successful_runs" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSuccessfulRuns(v *int) *TaskUpdate {
	if v != nil {
		_u.SetSuccessfulRuns(*v)
	}
	return _u
}

// AddSuccessfulRuns adds value to the "successful_runs" field.
func (_u *TaskUpdate) AddSuccessfulRuns(v int) *TaskUpdate {
	_u.mutation.AddSuccessfulRuns(v)
	return _u
}

// SetFailedRuns sets the "failed_runs" field.
func (_u *TaskUpdate) SetFailedRuns(v int) *TaskUpdate {
	_u.mutation.ResetFailedRuns()
	_u.mutation.SetFailedRuns(v)
	return _u
}

// SetNillableFailedRuns sets the "failed_runs" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableFailedRuns(v *int) *TaskUpdate {
	if v != nil {
		_u.SetFailedRuns(*v)
	}
	return _u
}

// AddFailedRuns adds value to the "failed_runs" field.
func (_u *TaskUpdate) AddFailedRuns(v int) *TaskUpdate {
	_u.mutation.AddFailedRuns(v)
	return _u
}

// AddRunIDs adds the "runs" edge to the TaskRun entity by IDs.
func (_u *TaskUpdate) AddRunIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the TaskRun entity.
func (_u *TaskUpdate) AddRuns(v ...*TaskRun) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the TaskRun entity.
func (_u *TaskUpdate) ClearRuns() *TaskUpdate {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to TaskRun entities by IDs.
func (_u *TaskUpdate) RemoveRunIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to TaskRun entities.
func (_u *TaskUpdate) RemoveRuns(v ...*TaskRun) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.project"`)
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(task.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(task.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(task.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MaxRounds(); ok {
		_spec.SetField(task.FieldMaxRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRounds(); ok {
		_spec.AddField(task.FieldMaxRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRevisionRounds(); ok {
		_spec.SetField(task.FieldMaxRevisionRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRevisionRounds(); ok {
		_spec.AddField(task.FieldMaxRevisionRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BranchPrefix(); ok {
		_spec.SetField(task.FieldBranchPrefix, field.TypeString, value)
	}
	if _u.mutation.BranchPrefixCleared() {
		_spec.ClearField(task.FieldBranchPrefix, field.TypeString)
	}
	if value, ok := _u.mutation.CommitTemplate(); ok {
		_spec.SetField(task.FieldCommitTemplate, field.TypeString, value)
	}
	if _u.mutation.CommitTemplateCleared() {
		_spec.ClearField(task.FieldCommitTemplate, field.TypeString)
	}
	if value, ok := _u.mutation.TotalRuns(); ok {
		_spec.SetField(task.FieldTotalRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRuns(); ok {
		_spec.AddField(task.FieldTotalRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessfulRuns(); ok {
		_spec.SetField(task.FieldSuccessfulRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulRuns(); ok {
		_spec.AddField(task.FieldSuccessfulRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedRuns(); ok {
		_spec.SetField(task.FieldFailedRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedRuns(); ok {
		_spec.AddField(task.FieldFailedRuns, field.TypeInt, value)
	}
	if _u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetName sets the "name" field.
func (_u *TaskUpdateOne) SetName(v string) *TaskUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableName(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *TaskUpdateOne) SetConfig(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *TaskUpdateOne) ClearConfig() *TaskUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMaxRounds sets the "max_rounds" field.
func (_u *TaskUpdateOne) SetMaxRounds(v int) *TaskUpdateOne {
	_u.mutation.ResetMaxRounds()
	_u.mutation.SetMaxRounds(v)
	return _u
}

// SetNillableMaxRounds sets the "max_rounds" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMaxRounds(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetMaxRounds(*v)
	}
	return _u
}

// AddMaxRounds adds value to the "max_rounds" field.
func (_u *TaskUpdateOne) AddMaxRounds(v int) *TaskUpdateOne {
	_u.mutation.AddMaxRounds(v)
	return _u
}

// SetMaxRevisionRounds sets the "max_revision_rounds" field.
func (_u *TaskUpdateOne) SetMaxRevisionRounds(v int) *TaskUpdateOne {
	_u.mutation.ResetMaxRevisionRounds()
	_u.mutation.SetMaxRevisionRounds(v)
	return _u
}

// SetNillableMaxRevisionRounds sets the "max_revision_rounds" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMaxRevisionRounds(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetMaxRevisionRounds(*v)
	}
	return _u
}

// AddMaxRevisionRounds adds value to the "max_revision_rounds" field.
func (_u *TaskUpdateOne) AddMaxRevisionRounds(v int) *TaskUpdateOne {
	_u.mutation.AddMaxRevisionRounds(v)
	return _u
}

// SetBranchPrefix sets the "branch_prefix" field.
func (_u *TaskUpdateOne) SetBranchPrefix(v string) *TaskUpdateOne {
	_u.mutation.SetBranchPrefix(v)
	return _u
}

// SetNillableBranchPrefix sets the "branch_prefix" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableBranchPrefix(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetBranchPrefix(*v)
	}
	return _u
}

// ClearBranchPrefix clears the value of the "branch_prefix" field.
func (_u *TaskUpdateOne) ClearBranchPrefix() *TaskUpdateOne {
	_u.mutation.ClearBranchPrefix()
	return _u
}

// SetCommitTemplate sets the "commit_template" field.
func (_u *TaskUpdateOne) SetCommitTemplate(v string) *TaskUpdateOne {
	_u.mutation.SetCommitTemplate(v)
	return _u
}

// SetNillableCommitTemplate sets the "commit_template" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCommitTemplate(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCommitTemplate(*v)
	}
	return _u
}

// ClearCommitTemplate clears the value of the "commit_template" field.
func (_u *TaskUpdateOne) ClearCommitTemplate() *TaskUpdateOne {
	_u.mutation.ClearCommitTemplate()
	return _u
}

// SetTotalRuns sets the "total_runs" field.
func (_u *TaskUpdateOne) SetTotalRuns(v int) *TaskUpdateOne {
	_u.mutation.ResetTotalRuns()
	_u.mutation.SetTotalRuns(v)
	return _u
}

// SetNillableTotalRuns sets the "total_runs" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTotalRuns(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetTotalRuns(*v)
	}
	return _u
}

// AddTotalRuns adds value to the "total_runs" field.
func (_u *TaskUpdateOne) AddTotalRuns(v int) *TaskUpdateOne {
	_u.mutation.AddTotalRuns(v)
	return _u
}

// SetSuccessfulRuns sets the "successful_runs" field.
func (_u *TaskUpdateOne) SetSuccessfulRuns(v int) *TaskUpdateOne {
	_u.mutation.ResetSuccessfulRuns()
	_u.mutation.SetSuccessfulRuns(v)
	return _u
}

// SetNillableSuccessfulRuns sets the "successful_runs" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSuccessfulRuns(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetSuccessfulRuns(*v)
	}
	return _u
}

// AddSuccessfulRuns adds value to the "successful_runs" field.
func (_u *TaskUpdateOne) AddSuccessfulRuns(v int) *TaskUpdateOne {
	_u.mutation.AddSuccessfulRuns(v)
	return _u
}

// SetFailedRuns sets the "failed_runs" field.
func (_u *TaskUpdateOne) SetFailedRuns(v int) *TaskUpdateOne {
	_u.mutation.ResetFailedRuns()
	_u.mutation.SetFailedRuns(v)
	return _u
}

// SetNillableFailedRuns sets the "failed_runs" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableFailedRuns(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetFailedRuns(*v)
	}
	return _u
}

// AddFailedRuns adds value to the "failed_runs" field.
func (_u *TaskUpdateOne) AddFailedRuns(v int) *TaskUpdateOne {
	_u.mutation.AddFailedRuns(v)
	return _u
}

// AddRunIDs adds the "runs" edge to the TaskRun entity by IDs.
func (_u *TaskUpdateOne) AddRunIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the TaskRun entity.
func (_u *TaskUpdateOne) AddRuns(v ...*TaskRun) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the TaskRun entity.
func (_u *TaskUpdateOne) ClearRuns() *TaskUpdateOne {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to TaskRun entities by IDs.
func (_u *TaskUpdateOne) RemoveRunIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to TaskRun entities.
func (_u *TaskUpdateOne) RemoveRuns(v ...*TaskRun) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.project"`)
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
		_spec.SetField(task.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(task.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(task.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MaxRounds(); ok {
		_spec.SetField(task.FieldMaxRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRounds(); ok {
		_spec.AddField(task.FieldMaxRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRevisionRounds(); ok {
		_spec.SetField(task.FieldMaxRevisionRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRevisionRounds(); ok {
		_spec.AddField(task.FieldMaxRevisionRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BranchPrefix(); ok {
		_spec.SetField(task.FieldBranchPrefix, field.TypeString, value)
	}
	if _u.mutation.BranchPrefixCleared() {
		_spec.ClearField(task.FieldBranchPrefix, field.TypeString)
	}
	if value, ok := _u.mutation.CommitTemplate(); ok {
		_spec.SetField(task.FieldCommitTemplate, field.TypeString, value)
	}
	if _u.mutation.CommitTemplateCleared() {
		_spec.ClearField(task.FieldCommitTemplate, field.TypeString)
	}
	if value, ok := _u.mutation.TotalRuns(); ok {
		_spec.SetField(task.FieldTotalRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRuns(); ok {
		_spec.AddField(task.FieldTotalRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessfulRuns(); ok {
		_spec.SetField(task.FieldSuccessfulRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulRuns(); ok {
		_spec.AddField(task.FieldSuccessfulRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedRuns(); ok {
		_spec.SetField(task.FieldFailedRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedRuns(); ok {
		_spec.AddField(task.FieldFailedRuns, field.TypeInt, value)
	}
	if _u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
