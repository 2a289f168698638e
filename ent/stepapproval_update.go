// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/predicate"
	"github.com/mgx-dev/mgx/ent/stepapproval"
)

// StepApprovalUpdate is the builder for updating StepApproval entities.
type StepApprovalUpdate struct {
	config
	hooks    []Hook
	mutation *StepApprovalMutation
}

// Where appends a list predicates to the StepApprovalUpdate builder.
func (_u *StepApprovalUpdate) Where(ps ...predicate.StepApproval) *StepApprovalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepApprovalUpdate) SetStatus(v stepapproval.Status) *StepApprovalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepApprovalUpdate) SetNillableStatus(v *stepapproval.Status) *StepApprovalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StepApprovalUpdate) SetTitle(v string) *StepApprovalUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StepApprovalUpdate) SetNillableTitle(v *string) *StepApprovalUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StepApprovalUpdate) SetDescription(v string) *StepApprovalUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StepApprovalUpdate) SetNillableDescription(v *string) *StepApprovalUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StepApprovalUpdate) ClearDescription() *StepApprovalUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetApprovalData sets the "approval_data" field.
func (_u *StepApprovalUpdate) SetApprovalData(v map[string]interface{}) *StepApprovalUpdate {
	_u.mutation.SetApprovalData(v)
	return _u
}

// ClearApprovalData clears the value of the "approval_data" field.
func (_u *StepApprovalUpdate) ClearApprovalData() *StepApprovalUpdate {
	_u.mutation.ClearApprovalData()
	return _u
}

// SetApprover sets the "approver" field.
func (_u *StepApprovalUpdate) SetApprover(v string) *StepApprovalUpdate {
	_u.mutation.SetApprover(v)
	return _u
}

// SetNillableApprover sets the "approver" field if the given value is not nil.
func (_u *StepApprovalUpdate) SetNillableApprover(v *string) *StepApprovalUpdate {
	if v != nil {
		_u.SetApprover(*v)
	}
	return _u
}

// ClearApprover clears the value of the "approver" field.
func (_u *StepApprovalUpdate) ClearApprover() *StepApprovalUpdate {
	_u.mutation.ClearApprover()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *StepApprovalUpdate) SetFeedback(v string) *StepApprovalUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *StepApprovalUpdate) SetNillableFeedback(v *string) *StepApprovalUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *StepApprovalUpdate) ClearFeedback() *StepApprovalUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// SetResponseData sets the "response_data" field.
func (_u *StepApprovalUpdate) SetResponseData(v map[string]interface{}) *StepApprovalUpdate {
	_u.mutation.SetResponseData(v)
	return _u
}

// ClearResponseData clears the value of the "response_data" field.
func (_u *StepApprovalUpdate) ClearResponseData() *StepApprovalUpdate {
	_u.mutation.ClearResponseData()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *StepApprovalUpdate) SetRespondedAt(v time.Time) *StepApprovalUpdate {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *StepApprovalUpdate) SetNillableRespondedAt(v *time.Time) *StepApprovalUpdate {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *StepApprovalUpdate) ClearRespondedAt() *StepApprovalUpdate {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *StepApprovalUpdate) SetExpiresAt(v time.Time) *StepApprovalUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *StepApprovalUpdate) SetNillableExpiresAt(v *time.Time) *StepApprovalUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetAutoApproveAfterSeconds sets the "auto_approve_after_seconds" field.
func (_u *StepApprovalUpdate) SetAutoApproveAfterSeconds(v int) *StepApprovalUpdate {
	_u.mutation.ResetAutoApproveAfterSeconds()
	_u.mutation.SetAutoApproveAfterSeconds(v)
	return _u
}

// SetNillableAutoApproveAfterSeconds sets the "auto_approve_after_seconds" field if the given value is not nil.
func (_u *StepApprovalUpdate) SetNillableAutoApproveAfterSeconds(v *int) *StepApprovalUpdate {
	if v != nil {
		_u.SetAutoApproveAfterSeconds(*v)
	}
	return _u
}

// AddAutoApproveAfterSeconds adds value to the "auto_approve_after_seconds" field.
func (_u *StepApprovalUpdate) AddAutoApproveAfterSeconds(v int) *StepApprovalUpdate {
	_u.mutation.AddAutoApproveAfterSeconds(v)
	return _u
}

// ClearAutoApproveAfterSeconds clears the value of the "auto_approve_after_seconds" field.
func (_u *StepApprovalUpdate) ClearAutoApproveAfterSeconds() *StepApprovalUpdate {
	_u.mutation.ClearAutoApproveAfterSeconds()
	return _u
}

// SetRequiredApprovers sets the "required_approvers" field.
func (_u *StepApprovalUpdate) SetRequiredApprovers(v []string) *StepApprovalUpdate {
	_u.mutation.SetRequiredApprovers(v)
	return _u
}

// AppendRequiredApprovers appends value to the "required_approvers" field.
func (_u *StepApprovalUpdate) AppendRequiredApprovers(v []string) *StepApprovalUpdate {
	_u.mutation.AppendRequiredApprovers(v)
	return _u
}

// ClearRequiredApprovers clears the value of the "required_approvers" field.
func (_u *StepApprovalUpdate) ClearRequiredApprovers() *StepApprovalUpdate {
	_u.mutation.ClearRequiredApprovers()
	return _u
}

// SetRevisionCount sets the "revision_count" field.
func (_u *StepApprovalUpdate) SetRevisionCount(v int) *StepApprovalUpdate {
	_u.mutation.ResetRevisionCount()
	_u.mutation.SetRevisionCount(v)
	return _u
}

// SetNillableRevisionCount sets the "revision_count" field if the given value is not nil.
func (_u *StepApprovalUpdate) SetNillableRevisionCount(v *int) *StepApprovalUpdate {
	if v != nil {
		_u.SetRevisionCount(*v)
	}
	return _u
}

// AddRevisionCount adds value to the "revision_count" field.
func (_u *StepApprovalUpdate) AddRevisionCount(v int) *StepApprovalUpdate {
	_u.mutation.AddRevisionCount(v)
	return _u
}

// SetParentApprovalID sets the "parent_approval_id" field.
func (_u *StepApprovalUpdate) SetParentApprovalID(v string) *StepApprovalUpdate {
	_u.mutation.SetParentApprovalID(v)
	return _u
}

// SetNillableParentApprovalID sets the "parent_approval_id" field if the given value is not nil.
func (_u *StepApprovalUpdate) SetNillableParentApprovalID(v *string) *StepApprovalUpdate {
	if v != nil {
		_u.SetParentApprovalID(*v)
	}
	return _u
}

// ClearParentApprovalID clears the value of the "parent_approval_id" field.
func (_u *StepApprovalUpdate) ClearParentApprovalID() *StepApprovalUpdate {
	_u.mutation.ClearParentApprovalID()
	return _u
}

// Mutation returns the StepApprovalMutation object of the builder.
func (_u *StepApprovalUpdate) Mutation() *StepApprovalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepApprovalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepApprovalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepApprovalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepApprovalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepApprovalUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stepapproval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepApproval.status": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepApproval.execution"`)
	}
	return nil
}

func (_u *StepApprovalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepapproval.Table, stepapproval.Columns, sqlgraph.NewFieldSpec(stepapproval.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stepapproval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(stepapproval.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(stepapproval.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(stepapproval.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovalData(); ok {
		_spec.SetField(stepapproval.FieldApprovalData, field.TypeJSON, value)
	}
	if _u.mutation.ApprovalDataCleared() {
		_spec.ClearField(stepapproval.FieldApprovalData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Approver(); ok {
		_spec.SetField(stepapproval.FieldApprover, field.TypeString, value)
	}
	if _u.mutation.ApproverCleared() {
		_spec.ClearField(stepapproval.FieldApprover, field.TypeString)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(stepapproval.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(stepapproval.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseData(); ok {
		_spec.SetField(stepapproval.FieldResponseData, field.TypeJSON, value)
	}
	if _u.mutation.ResponseDataCleared() {
		_spec.ClearField(stepapproval.FieldResponseData, field.TypeJSON)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(stepapproval.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(stepapproval.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(stepapproval.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AutoApproveAfterSeconds(); ok {
		_spec.SetField(stepapproval.FieldAutoApproveAfterSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAutoApproveAfterSeconds(); ok {
		_spec.AddField(stepapproval.FieldAutoApproveAfterSeconds, field.TypeInt, value)
	}
	if _u.mutation.AutoApproveAfterSecondsCleared() {
		_spec.ClearField(stepapproval.FieldAutoApproveAfterSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.RequiredApprovers(); ok {
		_spec.SetField(stepapproval.FieldRequiredApprovers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredApprovers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stepapproval.FieldRequiredApprovers, value)
		})
	}
	if _u.mutation.RequiredApproversCleared() {
		_spec.ClearField(stepapproval.FieldRequiredApprovers, field.TypeJSON)
	}
	if value, ok := _u.mutation.RevisionCount(); ok {
		_spec.SetField(stepapproval.FieldRevisionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRevisionCount(); ok {
		_spec.AddField(stepapproval.FieldRevisionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentApprovalID(); ok {
		_spec.SetField(stepapproval.FieldParentApprovalID, field.TypeString, value)
	}
	if _u.mutation.ParentApprovalIDCleared() {
		_spec.ClearField(stepapproval.FieldParentApprovalID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepapproval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepApprovalUpdateOne is the builder for updating a single StepApproval entity.
type StepApprovalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepApprovalMutation
}

// SetStatus sets the "status" field.
func (_u *StepApprovalUpdateOne) SetStatus(v stepapproval.Status) *StepApprovalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepApprovalUpdateOne) SetNillableStatus(v *stepapproval.Status) *StepApprovalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StepApprovalUpdateOne) SetTitle(v string) *StepApprovalUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StepApprovalUpdateOne) SetNillableTitle(v *string) *StepApprovalUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StepApprovalUpdateOne) SetDescription(v string) *StepApprovalUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StepApprovalUpdateOne) SetNillableDescription(v *string) *StepApprovalUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StepApprovalUpdateOne) ClearDescription() *StepApprovalUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetApprovalData sets the "approval_data" field.
func (_u *StepApprovalUpdateOne) SetApprovalData(v map[string]interface{}) *StepApprovalUpdateOne {
	_u.mutation.SetApprovalData(v)
	return _u
}

// ClearApprovalData clears the value of the "approval_data" field.
func (_u *StepApprovalUpdateOne) ClearApprovalData() *StepApprovalUpdateOne {
	_u.mutation.ClearApprovalData()
	return _u
}

// SetApprover sets the "approver" field.
func (_u *StepApprovalUpdateOne) SetApprover(v string) *StepApprovalUpdateOne {
	_u.mutation.SetApprover(v)
	return _u
}

// SetNillableApprover sets the "approver" field if the given value is not nil.
func (_u *StepApprovalUpdateOne) SetNillableApprover(v *string) *StepApprovalUpdateOne {
	if v != nil {
		_u.SetApprover(*v)
	}
	return _u
}

// ClearApprover clears the value of the "approver" field.
func (_u *StepApprovalUpdateOne) ClearApprover() *StepApprovalUpdateOne {
	_u.mutation.ClearApprover()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *StepApprovalUpdateOne) SetFeedback(v string) *StepApprovalUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *StepApprovalUpdateOne) SetNillableFeedback(v *string) *StepApprovalUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *StepApprovalUpdateOne) ClearFeedback() *StepApprovalUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// SetResponseData sets the "response_data" field.
func (_u *StepApprovalUpdateOne) SetResponseData(v map[string]interface{}) *StepApprovalUpdateOne {
	_u.mutation.SetResponseData(v)
	return _u
}

// ClearResponseData clears the value of the "response_data" field.
func (_u *StepApprovalUpdateOne) ClearResponseData() *StepApprovalUpdateOne {
	_u.mutation.ClearResponseData()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *StepApprovalUpdateOne) SetRespondedAt(v time.Time) *StepApprovalUpdateOne {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *StepApprovalUpdateOne) SetNillableRespondedAt(v *time.Time) *StepApprovalUpdateOne {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *StepApprovalUpdateOne) ClearRespondedAt() *StepApprovalUpdateOne {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *StepApprovalUpdateOne) SetExpiresAt(v time.Time) *StepApprovalUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *StepApprovalUpdateOne) SetNillableExpiresAt(v *time.Time) *StepApprovalUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetAutoApproveAfterSeconds sets the "auto_approve_after_seconds" field.
func (_u *StepApprovalUpdateOne) SetAutoApproveAfterSeconds(v int) *StepApprovalUpdateOne {
	_u.mutation.ResetAutoApproveAfterSeconds()
	_u.mutation.SetAutoApproveAfterSeconds(v)
	return _u
}

// SetNillableAutoApproveAfterSeconds sets the "auto_approve_after_seconds" field if the given value is not nil.
func (_u *StepApprovalUpdateOne) SetNillableAutoApproveAfterSeconds(v *int) *StepApprovalUpdateOne {
	if v != nil {
		_u.SetAutoApproveAfterSeconds(*v)
	}
	return _u
}

// AddAutoApproveAfterSeconds adds value to the "auto_approve_after_seconds" field.
func (_u *StepApprovalUpdateOne) AddAutoApproveAfterSeconds(v int) *StepApprovalUpdateOne {
	_u.mutation.AddAutoApproveAfterSeconds(v)
	return _u
}

// ClearAutoApproveAfterSeconds clears the value of the "auto_approve_after_seconds" field.
func (_u *StepApprovalUpdateOne) ClearAutoApproveAfterSeconds() *StepApprovalUpdateOne {
	_u.mutation.ClearAutoApproveAfterSeconds()
	return _u
}

// SetRequiredApprovers sets the "required_approvers" field.
func (_u *StepApprovalUpdateOne) SetRequiredApprovers(v []string) *StepApprovalUpdateOne {
	_u.mutation.SetRequiredApprovers(v)
	return _u
}

// AppendRequiredApprovers appends value to the "required_approvers" field.
func (_u *StepApprovalUpdateOne) AppendRequiredApprovers(v []string) *StepApprovalUpdateOne {
	_u.mutation.AppendRequiredApprovers(v)
	return _u
}

// ClearRequiredApprovers clears the value of the "required_approvers" field.
func (_u *StepApprovalUpdateOne) ClearRequiredApprovers() *StepApprovalUpdateOne {
	_u.mutation.ClearRequiredApprovers()
	return _u
}

// SetRevisionCount sets the "revision_count" field.
func (_u *StepApprovalUpdateOne) SetRevisionCount(v int) *StepApprovalUpdateOne {
	_u.mutation.ResetRevisionCount()
	_u.mutation.SetRevisionCount(v)
	return _u
}

// SetNillableRevisionCount sets the "revision_count" field if the given value is not nil.
func (_u *StepApprovalUpdateOne) SetNillableRevisionCount(v *int) *StepApprovalUpdateOne {
	if v != nil {
		_u.SetRevisionCount(*v)
	}
	return _u
}

// AddRevisionCount adds value to the "revision_count" field.
func (_u *StepApprovalUpdateOne) AddRevisionCount(v int) *StepApprovalUpdateOne {
	_u.mutation.AddRevisionCount(v)
	return _u
}

// SetParentApprovalID sets the "parent_approval_id" field.
func (_u *StepApprovalUpdateOne) SetParentApprovalID(v string) *StepApprovalUpdateOne {
	_u.mutation.SetParentApprovalID(v)
	return _u
}

// SetNillableParentApprovalID sets the "parent_approval_id" field if the given value is not nil.
func (_u *StepApprovalUpdateOne) SetNillableParentApprovalID(v *string) *StepApprovalUpdateOne {
	if v != nil {
		_u.SetParentApprovalID(*v)
	}
	return _u
}

// ClearParentApprovalID clears the value of the "parent_approval_id" field.
func (_u *StepApprovalUpdateOne) ClearParentApprovalID() *StepApprovalUpdateOne {
	_u.mutation.ClearParentApprovalID()
	return _u
}

// Mutation returns the StepApprovalMutation object of the builder.
func (_u *StepApprovalUpdateOne) Mutation() *StepApprovalMutation {
	return _u.mutation
}

// Where appends a list predicates to the StepApprovalUpdate builder.
func (_u *StepApprovalUpdateOne) Where(ps ...predicate.StepApproval) *StepApprovalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepApprovalUpdateOne) Select(field string, fields ...string) *StepApprovalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StepApproval entity.
func (_u *StepApprovalUpdateOne) Save(ctx context.Context) (*StepApproval, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepApprovalUpdateOne) SaveX(ctx context.Context) *StepApproval {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepApprovalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepApprovalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepApprovalUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stepapproval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepApproval.status": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepApproval.execution"`)
	}
	return nil
}

func (_u *StepApprovalUpdateOne) sqlSave(ctx context.Context) (_node *StepApproval, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepapproval.Table, stepapproval.Columns, sqlgraph.NewFieldSpec(stepapproval.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StepApproval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stepapproval.FieldID)
		for _, f := range fields {
			if !stepapproval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stepapproval.FieldID {
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
		_spec.SetField(stepapproval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(stepapproval.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(stepapproval.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(stepapproval.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovalData(); ok {
		_spec.SetField(stepapproval.FieldApprovalData, field.TypeJSON, value)
	}
	if _u.mutation.ApprovalDataCleared() {
		_spec.ClearField(stepapproval.FieldApprovalData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Approver(); ok {
		_spec.SetField(stepapproval.FieldApprover, field.TypeString, value)
	}
	if _u.mutation.ApproverCleared() {
		_spec.ClearField(stepapproval.FieldApprover, field.TypeString)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(stepapproval.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(stepapproval.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseData(); ok {
		_spec.SetField(stepapproval.FieldResponseData, field.TypeJSON, value)
	}
	if _u.mutation.ResponseDataCleared() {
		_spec.ClearField(stepapproval.FieldResponseData, field.TypeJSON)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(stepapproval.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(stepapproval.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(stepapproval.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AutoApproveAfterSeconds(); ok {
		_spec.SetField(stepapproval.FieldAutoApproveAfterSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAutoApproveAfterSeconds(); ok {
		_spec.AddField(stepapproval.FieldAutoApproveAfterSeconds, field.TypeInt, value)
	}
	if _u.mutation.AutoApproveAfterSecondsCleared() {
		_spec.ClearField(stepapproval.FieldAutoApproveAfterSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.RequiredApprovers(); ok {
		_spec.SetField(stepapproval.FieldRequiredApprovers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredApprovers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stepapproval.FieldRequiredApprovers, value)
		})
	}
	if _u.mutation.RequiredApproversCleared() {
		_spec.ClearField(stepapproval.FieldRequiredApprovers, field.TypeJSON)
	}
	if value, ok := _u.mutation.RevisionCount(); ok {
		_spec.SetField(stepapproval.FieldRevisionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRevisionCount(); ok {
		_spec.AddField(stepapproval.FieldRevisionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentApprovalID(); ok {
		_spec.SetField(stepapproval.FieldParentApprovalID, field.TypeString, value)
	}
	if _u.mutation.ParentApprovalIDCleared() {
		_spec.ClearField(stepapproval.FieldParentApprovalID, field.TypeString)
	}
	_node = &StepApproval{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepapproval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
