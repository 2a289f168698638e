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
	"github.com/mgx-dev/mgx/ent/predicate"
	"github.com/mgx-dev/mgx/ent/sandboxexecution"
	"github.com/mgx-dev/mgx/ent/taskrun"
)

// TaskRunUpdate is the builder for updating TaskRun entities.
type TaskRunUpdate struct {
	config
	hooks    []Hook
	mutation *TaskRunMutation
}

// Where appends a list predicates to the TaskRunUpdate builder.
func (_u *TaskRunUpdate) Where(ps ...predicate.TaskRun) *TaskRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskRunUpdate) SetStatus(v taskrun.Status) *TaskRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableStatus(v *taskrun.Status) *TaskRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *TaskRunUpdate) SetPhase(v taskrun.Phase) *TaskRunUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillablePhase(v *taskrun.Phase) *TaskRunUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *TaskRunUpdate) SetPlan(v map[string]interface{}) *TaskRunUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *TaskRunUpdate) ClearPlan() *TaskRunUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetResults sets the "results" field.
func (_u *TaskRunUpdate) SetResults(v map[string]interface{}) *TaskRunUpdate {
	_u.mutation.SetResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *TaskRunUpdate) ClearResults() *TaskRunUpdate {
	_u.mutation.ClearResults()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskRunUpdate) SetStartedAt(v time.Time) *TaskRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableStartedAt(v *time.Time) *TaskRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskRunUpdate) ClearStartedAt() *TaskRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskRunUpdate) SetCompletedAt(v time.Time) *TaskRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableCompletedAt(v *time.Time) *TaskRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskRunUpdate) ClearCompletedAt() *TaskRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TaskRunUpdate) SetDurationMs(v int) *TaskRunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableDurationMs(v *int) *TaskRunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TaskRunUpdate) AddDurationMs(v int) *TaskRunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *TaskRunUpdate) ClearDurationMs() *TaskRunUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *TaskRunUpdate) SetErrorKind(v string) *TaskRunUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableErrorKind(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *TaskRunUpdate) ClearErrorKind() *TaskRunUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskRunUpdate) SetErrorMessage(v string) *TaskRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableErrorMessage(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskRunUpdate) ClearErrorMessage() *TaskRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRoundCount sets the "round_count" field.
func (_u *TaskRunUpdate) SetRoundCount(v int) *TaskRunUpdate {
	_u.mutation.ResetRoundCount()
	_u.mutation.SetRoundCount(v)
	return _u
}

// SetNillableRoundCount sets the "round_count" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableRoundCount(v *int) *TaskRunUpdate {
	if v != nil {
		_u.SetRoundCount(*v)
	}
	return _u
}

// AddRoundCount adds value to the "round_count" field.
func (_u *TaskRunUpdate) AddRoundCount(v int) *TaskRunUpdate {
	_u.mutation.AddRoundCount(v)
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *TaskRunUpdate) SetBranchName(v string) *TaskRunUpdate {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableBranchName(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *TaskRunUpdate) ClearBranchName() *TaskRunUpdate {
	_u.mutation.ClearBranchName()
	return _u
}

// SetCommitSha sets the "commit_sha" field.
func (_u *TaskRunUpdate) SetCommitSha(v string) *TaskRunUpdate {
	_u.mutation.SetCommitSha(v)
	return _u
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableCommitSha(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetCommitSha(*v)
	}
	return _u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (_u *TaskRunUpdate) ClearCommitSha() *TaskRunUpdate {
	_u.mutation.ClearCommitSha()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *TaskRunUpdate) SetPrURL(v string) *TaskRunUpdate {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillablePrURL(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *TaskRunUpdate) ClearPrURL() *TaskRunUpdate {
	_u.mutation.ClearPrURL()
	return _u
}

// SetGitStatus sets the "git_status" field.
func (_u *TaskRunUpdate) SetGitStatus(v taskrun.GitStatus) *TaskRunUpdate {
	_u.mutation.SetGitStatus(v)
	return _u
}

// SetNillableGitStatus sets the "git_status" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableGitStatus(v *taskrun.GitStatus) *TaskRunUpdate {
	if v != nil {
		_u.SetGitStatus(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *TaskRunUpdate) SetPodID(v string) *TaskRunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillablePodID(v *string) *TaskRunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *TaskRunUpdate) ClearPodID() *TaskRunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskRunUpdate) SetLastHeartbeatAt(v time.Time) *TaskRunUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskRunUpdate) SetNillableLastHeartbeatAt(v *time.Time) *TaskRunUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskRunUpdate) ClearLastHeartbeatAt() *TaskRunUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddSandboxExecutionIDs adds the "sandbox_executions" edge to the SandboxExecution entity by IDs.
func (_u *TaskRunUpdate) AddSandboxExecutionIDs(ids ...string) *TaskRunUpdate {
	_u.mutation.AddSandboxExecutionIDs(ids...)
	return _u
}

// AddSandboxExecutions adds the "sandbox_executions" edges to the SandboxExecution entity.
func (_u *TaskRunUpdate) AddSandboxExecutions(v ...*SandboxExecution) *TaskRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSandboxExecutionIDs(ids...)
}

// Mutation returns the TaskRunMutation object of the builder.
func (_u *TaskRunUpdate) Mutation() *TaskRunMutation {
	return _u.mutation
}

// ClearSandboxExecutions clears all "sandbox_executions" edges to the SandboxExecution entity.
func (_u *TaskRunUpdate) ClearSandboxExecutions() *TaskRunUpdate {
	_u.mutation.ClearSandboxExecutions()
	return _u
}

// RemoveSandboxExecutionIDs removes the "sandbox_executions" edge to SandboxExecution entities by IDs.
func (_u *TaskRunUpdate) RemoveSandboxExecutionIDs(ids ...string) *TaskRunUpdate {
	_u.mutation.RemoveSandboxExecutionIDs(ids...)
	return _u
}

// RemoveSandboxExecutions removes "sandbox_executions" edges to SandboxExecution entities.
func (_u *TaskRunUpdate) RemoveSandboxExecutions(v ...*SandboxExecution) *TaskRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSandboxExecutionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskRun.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := taskrun.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "TaskRun.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GitStatus(); ok {
		if err := taskrun.GitStatusValidator(v); err != nil {
			return &ValidationError{Name: "git_status", err: fmt.Errorf(`ent: validator failed for field "TaskRun.git_status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskRun.task"`)
	}
	return nil
}

func (_u *TaskRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskrun.Table, taskrun.Columns, sqlgraph.NewFieldSpec(taskrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(taskrun.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(taskrun.FieldPlan, field.TypeJSON, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(taskrun.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(taskrun.FieldResults, field.TypeJSON, value)
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(taskrun.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(taskrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(taskrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(taskrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(taskrun.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(taskrun.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(taskrun.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(taskrun.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(taskrun.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(taskrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(taskrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RoundCount(); ok {
		_spec.SetField(taskrun.FieldRoundCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundCount(); ok {
		_spec.AddField(taskrun.FieldRoundCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(taskrun.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(taskrun.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.CommitSha(); ok {
		_spec.SetField(taskrun.FieldCommitSha, field.TypeString, value)
	}
	if _u.mutation.CommitShaCleared() {
		_spec.ClearField(taskrun.FieldCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(taskrun.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(taskrun.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.GitStatus(); ok {
		_spec.SetField(taskrun.FieldGitStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(taskrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(taskrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(taskrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(taskrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.SandboxExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taskrun.SandboxExecutionsTable,
			Columns: []string{taskrun.SandboxExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sandboxexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSandboxExecutionsIDs(); len(nodes) > 0 && !_u.mutation.SandboxExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taskrun.SandboxExecutionsTable,
			Columns: []string{taskrun.SandboxExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sandboxexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SandboxExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taskrun.SandboxExecutionsTable,
			Columns: []string{taskrun.SandboxExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sandboxexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskRunUpdateOne is the builder for updating a single TaskRun entity.
type TaskRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskRunMutation
}

// SetStatus sets the "status" field.
func (_u *TaskRunUpdateOne) SetStatus(v taskrun.Status) *TaskRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableStatus(v *taskrun.Status) *TaskRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *TaskRunUpdateOne) SetPhase(v taskrun.Phase) *TaskRunUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillablePhase(v *taskrun.Phase) *TaskRunUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *TaskRunUpdateOne) SetPlan(v map[string]interface{}) *TaskRunUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *TaskRunUpdateOne) ClearPlan() *TaskRunUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetResults sets the "results" field.
func (_u *TaskRunUpdateOne) SetResults(v map[string]interface{}) *TaskRunUpdateOne {
	_u.mutation.SetResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *TaskRunUpdateOne) ClearResults() *TaskRunUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskRunUpdateOne) SetStartedAt(v time.Time) *TaskRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableStartedAt(v *time.Time) *TaskRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskRunUpdateOne) ClearStartedAt() *TaskRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskRunUpdateOne) SetCompletedAt(v time.Time) *TaskRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskRunUpdateOne) ClearCompletedAt() *TaskRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TaskRunUpdateOne) SetDurationMs(v int) *TaskRunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableDurationMs(v *int) *TaskRunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TaskRunUpdateOne) AddDurationMs(v int) *TaskRunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *TaskRunUpdateOne) ClearDurationMs() *TaskRunUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *TaskRunUpdateOne) SetErrorKind(v string) *TaskRunUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableErrorKind(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *TaskRunUpdateOne) ClearErrorKind() *TaskRunUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskRunUpdateOne) SetErrorMessage(v string) *TaskRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableErrorMessage(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskRunUpdateOne) ClearErrorMessage() *TaskRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRoundCount sets the "round_count" field.
func (_u *TaskRunUpdateOne) SetRoundCount(v int) *TaskRunUpdateOne {
	_u.mutation.ResetRoundCount()
	_u.mutation.SetRoundCount(v)
	return _u
}

// SetNillableRoundCount sets the "round_count" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableRoundCount(v *int) *TaskRunUpdateOne {
	if v != nil {
		_u.SetRoundCount(*v)
	}
	return _u
}

// AddRoundCount adds value to the "round_count" field.
func (_u *TaskRunUpdateOne) AddRoundCount(v int) *TaskRunUpdateOne {
	_u.mutation.AddRoundCount(v)
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *TaskRunUpdateOne) SetBranchName(v string) *TaskRunUpdateOne {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableBranchName(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *TaskRunUpdateOne) ClearBranchName() *TaskRunUpdateOne {
	_u.mutation.ClearBranchName()
	return _u
}

// SetCommitSha sets the "commit_sha" field.
func (_u *TaskRunUpdateOne) SetCommitSha(v string) *TaskRunUpdateOne {
	_u.mutation.SetCommitSha(v)
	return _u
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableCommitSha(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetCommitSha(*v)
	}
	return _u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (_u *TaskRunUpdateOne) ClearCommitSha() *TaskRunUpdateOne {
	_u.mutation.ClearCommitSha()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *TaskRunUpdateOne) SetPrURL(v string) *TaskRunUpdateOne {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillablePrURL(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *TaskRunUpdateOne) ClearPrURL() *TaskRunUpdateOne {
	_u.mutation.ClearPrURL()
	return _u
}

// SetGitStatus sets the "git_status" field.
func (_u *TaskRunUpdateOne) SetGitStatus(v taskrun.GitStatus) *TaskRunUpdateOne {
	_u.mutation.SetGitStatus(v)
	return _u
}

// SetNillableGitStatus sets the "git_status" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableGitStatus(v *taskrun.GitStatus) *TaskRunUpdateOne {
	if v != nil {
		_u.SetGitStatus(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *TaskRunUpdateOne) SetPodID(v string) *TaskRunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillablePodID(v *string) *TaskRunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *TaskRunUpdateOne) ClearPodID() *TaskRunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskRunUpdateOne) SetLastHeartbeatAt(v time.Time) *TaskRunUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskRunUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *TaskRunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskRunUpdateOne) ClearLastHeartbeatAt() *TaskRunUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddSandboxExecutionIDs adds the "sandbox_executions" edge to the SandboxExecution entity by IDs.
func (_u *TaskRunUpdateOne) AddSandboxExecutionIDs(ids ...string) *TaskRunUpdateOne {
	_u.mutation.AddSandboxExecutionIDs(ids...)
	return _u
}

// AddSandboxExecutions adds the "sandbox_executions" edges to the SandboxExecution entity.
func (_u *TaskRunUpdateOne) AddSandboxExecutions(v ...*SandboxExecution) *TaskRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSandboxExecutionIDs(ids...)
}

// Mutation returns the TaskRunMutation object of the builder.
func (_u *TaskRunUpdateOne) Mutation() *TaskRunMutation {
	return _u.mutation
}

// ClearSandboxExecutions clears all "sandbox_executions" edges to the SandboxExecution entity.
func (_u *TaskRunUpdateOne) ClearSandboxExecutions() *TaskRunUpdateOne {
	_u.mutation.ClearSandboxExecutions()
	return _u
}

// RemoveSandboxExecutionIDs removes the "sandbox_executions" edge to SandboxExecution entities by IDs.
func (_u *TaskRunUpdateOne) RemoveSandboxExecutionIDs(ids ...string) *TaskRunUpdateOne {
	_u.mutation.RemoveSandboxExecutionIDs(ids...)
	return _u
}

// RemoveSandboxExecutions removes "sandbox_executions" edges to SandboxExecution entities.
func (_u *TaskRunUpdateOne) RemoveSandboxExecutions(v ...*SandboxExecution) *TaskRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSandboxExecutionIDs(ids...)
}

// Where appends a list predicates to the TaskRunUpdate builder.
func (_u *TaskRunUpdateOne) Where(ps ...predicate.TaskRun) *TaskRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskRunUpdateOne) Select(field string, fields ...string) *TaskRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskRun entity.
func (_u *TaskRunUpdateOne) Save(ctx context.Context) (*TaskRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskRunUpdateOne) SaveX(ctx context.Context) *TaskRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskRun.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := taskrun.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "TaskRun.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GitStatus(); ok {
		if err := taskrun.GitStatusValidator(v); err != nil {
			return &ValidationError{Name: "git_status", err: fmt.Errorf(`ent: validator failed for field "TaskRun.git_status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskRun.task"`)
	}
	return nil
}

func (_u *TaskRunUpdateOne) sqlSave(ctx context.Context) (_node *TaskRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskrun.Table, taskrun.Columns, sqlgraph.NewFieldSpec(taskrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskrun.FieldID)
		for _, f := range fields {
			if !taskrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskrun.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(taskrun.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(taskrun.FieldPlan, field.TypeJSON, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(taskrun.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(taskrun.FieldResults, field.TypeJSON, value)
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(taskrun.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(taskrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(taskrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(taskrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(taskrun.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(taskrun.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(taskrun.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(taskrun.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(taskrun.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(taskrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(taskrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RoundCount(); ok {
		_spec.SetField(taskrun.FieldRoundCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundCount(); ok {
		_spec.AddField(taskrun.FieldRoundCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(taskrun.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(taskrun.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.CommitSha(); ok {
		_spec.SetField(taskrun.FieldCommitSha, field.TypeString, value)
	}
	if _u.mutation.CommitShaCleared() {
		_spec.ClearField(taskrun.FieldCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(taskrun.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(taskrun.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.GitStatus(); ok {
		_spec.SetField(taskrun.FieldGitStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(taskrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(taskrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(taskrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(taskrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.SandboxExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taskrun.SandboxExecutionsTable,
			Columns: []string{taskrun.SandboxExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sandboxexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSandboxExecutionsIDs(); len(nodes) > 0 && !_u.mutation.SandboxExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taskrun.SandboxExecutionsTable,
			Columns: []string{taskrun.SandboxExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sandboxexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SandboxExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taskrun.SandboxExecutionsTable,
			Columns: []string{taskrun.SandboxExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sandboxexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TaskRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
