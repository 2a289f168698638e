// Code generated by ent, DO NOT EDIT.

package stepapproval

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mgx-dev/mgx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldContainsFold(FieldID, id))
}

// StepExecutionID applies equality check predicate on the "step_execution_id" field. It's identical to StepExecutionIDEQ.
func StepExecutionID(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldStepExecutionID, v))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldExecutionID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldDescription, v))
}

// Approver applies equality check predicate on the "approver" field. It's identical to ApproverEQ.
func Approver(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldApprover, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldFeedback, v))
}

// RequestedAt applies equality check predicate on the "requested_at" field. It's identical to RequestedAtEQ.
func RequestedAt(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldRequestedAt, v))
}

// RespondedAt applies equality check predicate on the "responded_at" field. It's identical to RespondedAtEQ.
func RespondedAt(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldRespondedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldExpiresAt, v))
}

// AutoApproveAfterSeconds applies equality check predicate on the "auto_approve_after_seconds" field. It's identical to AutoApproveAfterSecondsEQ.
func AutoApproveAfterSeconds(v int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldAutoApproveAfterSeconds, v))
}

// RevisionCount applies equality check predicate on the "revision_count" field. It's identical to RevisionCountEQ.
func RevisionCount(v int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldRevisionCount, v))
}

// ParentApprovalID applies equality check predicate on the "parent_approval_id" field. It's identical to ParentApprovalIDEQ.
func ParentApprovalID(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldParentApprovalID, v))
}

// StepExecutionIDEQ applies the EQ predicate on the "step_execution_id" field.
func StepExecutionIDEQ(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldStepExecutionID, v))
}

// StepExecutionIDNEQ applies the NEQ predicate on the "step_execution_id" field.
func StepExecutionIDNEQ(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNEQ(FieldStepExecutionID, v))
}

// StepExecutionIDIn applies the In predicate on the "step_execution_id" field.
func StepExecutionIDIn(vs ...string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIn(FieldStepExecutionID, vs...))
}

// StepExecutionIDNotIn applies the NotIn predicate on the "step_execution_id" field.
func StepExecutionIDNotIn(vs ...string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotIn(FieldStepExecutionID, vs...))
}

// StepExecutionIDGT applies the GT predicate on the "step_execution_id" field.
func StepExecutionIDGT(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGT(FieldStepExecutionID, v))
}

// StepExecutionIDGTE applies the GTE predicate on the "step_execution_id" field.
func StepExecutionIDGTE(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGTE(FieldStepExecutionID, v))
}

// StepExecutionIDLT applies the LT predicate on the "step_execution_id" field.
func StepExecutionIDLT(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLT(FieldStepExecutionID, v))
}

// StepExecutionIDLTE applies the LTE predicate on the "step_execution_id" field.
func StepExecutionIDLTE(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLTE(FieldStepExecutionID, v))
}

// StepExecutionIDContains applies the Contains predicate on the "step_execution_id" field.
func StepExecutionIDContains(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldContains(FieldStepExecutionID, v))
}

// StepExecutionIDHasPrefix applies the HasPrefix predicate on the "step_execution_id" field.
func StepExecutionIDHasPrefix(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldHasPrefix(FieldStepExecutionID, v))
}

// StepExecutionIDHasSuffix applies the HasSuffix predicate on the "step_execution_id" field.
func StepExecutionIDHasSuffix(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldHasSuffix(FieldStepExecutionID, v))
}

// StepExecutionIDEqualFold applies the EqualFold predicate on the "step_execution_id" field.
func StepExecutionIDEqualFold(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEqualFold(FieldStepExecutionID, v))
}

// StepExecutionIDContainsFold applies the ContainsFold predicate on the "step_execution_id" field.
func StepExecutionIDContainsFold(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldContainsFold(FieldStepExecutionID, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldContainsFold(FieldExecutionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotIn(FieldStatus, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldContainsFold(FieldDescription, v))
}

// ApprovalDataIsNil applies the IsNil predicate on the "approval_data" field.
func ApprovalDataIsNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIsNull(FieldApprovalData))
}

// ApprovalDataNotNil applies the NotNil predicate on the "approval_data" field.
func ApprovalDataNotNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotNull(FieldApprovalData))
}

// ApproverEQ applies the EQ predicate on the "approver" field.
func ApproverEQ(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldApprover, v))
}

// ApproverNEQ applies the NEQ predicate on the "approver" field.
func ApproverNEQ(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNEQ(FieldApprover, v))
}

// ApproverIn applies the In predicate on the "approver" field.
func ApproverIn(vs ...string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIn(FieldApprover, vs...))
}

// ApproverNotIn applies the NotIn predicate on the "approver" field.
func ApproverNotIn(vs ...string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotIn(FieldApprover, vs...))
}

// ApproverGT applies the GT predicate on the "approver" field.
func ApproverGT(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGT(FieldApprover, v))
}

// ApproverGTE applies the GTE predicate on the "approver" field.
func ApproverGTE(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGTE(FieldApprover, v))
}

// ApproverLT applies the LT predicate on the "approver" field.
func ApproverLT(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLT(FieldApprover, v))
}

// ApproverLTE applies the LTE predicate on the "approver" field.
func ApproverLTE(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLTE(FieldApprover, v))
}

// ApproverContains applies the Contains predicate on the "approver" field.
func ApproverContains(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldContains(FieldApprover, v))
}

// ApproverHasPrefix applies the HasPrefix predicate on the "approver" field.
func ApproverHasPrefix(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldHasPrefix(FieldApprover, v))
}

// ApproverHasSuffix applies the HasSuffix predicate on the "approver" field.
func ApproverHasSuffix(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldHasSuffix(FieldApprover, v))
}

// ApproverIsNil applies the IsNil predicate on the "approver" field.
func ApproverIsNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIsNull(FieldApprover))
}

// ApproverNotNil applies the NotNil predicate on the "approver" field.
func ApproverNotNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotNull(FieldApprover))
}

// ApproverEqualFold applies the EqualFold predicate on the "approver" field.
func ApproverEqualFold(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEqualFold(FieldApprover, v))
}

// ApproverContainsFold applies the ContainsFold predicate on the "approver" field.
func ApproverContainsFold(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldContainsFold(FieldApprover, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackIsNil applies the IsNil predicate on the "feedback" field.
func FeedbackIsNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIsNull(FieldFeedback))
}

// FeedbackNotNil applies the NotNil predicate on the "feedback" field.
func FeedbackNotNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotNull(FieldFeedback))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldContainsFold(FieldFeedback, v))
}

// ResponseDataIsNil applies the IsNil predicate on the "response_data" field.
func ResponseDataIsNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIsNull(FieldResponseData))
}

// ResponseDataNotNil applies the NotNil predicate on the "response_data" field.
func ResponseDataNotNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotNull(FieldResponseData))
}

// RequestedAtEQ applies the EQ predicate on the "requested_at" field.
func RequestedAtEQ(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldRequestedAt, v))
}

// RequestedAtNEQ applies the NEQ predicate on the "requested_at" field.
func RequestedAtNEQ(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNEQ(FieldRequestedAt, v))
}

// RequestedAtIn applies the In predicate on the "requested_at" field.
func RequestedAtIn(vs ...time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIn(FieldRequestedAt, vs...))
}

// RequestedAtNotIn applies the NotIn predicate on the "requested_at" field.
func RequestedAtNotIn(vs ...time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotIn(FieldRequestedAt, vs...))
}

// RequestedAtGT applies the GT predicate on the "requested_at" field.
func RequestedAtGT(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGT(FieldRequestedAt, v))
}

// RequestedAtGTE applies the GTE predicate on the "requested_at" field.
func RequestedAtGTE(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGTE(FieldRequestedAt, v))
}

// RequestedAtLT applies the LT predicate on the "requested_at" field.
func RequestedAtLT(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLT(FieldRequestedAt, v))
}

// RequestedAtLTE applies the LTE predicate on the "requested_at" field.
func RequestedAtLTE(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLTE(FieldRequestedAt, v))
}

// RespondedAtEQ applies the EQ predicate on the "responded_at" field.
func RespondedAtEQ(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldRespondedAt, v))
}

// RespondedAtNEQ applies the NEQ predicate on the "responded_at" field.
func RespondedAtNEQ(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNEQ(FieldRespondedAt, v))
}

// RespondedAtIn applies the In predicate on the "responded_at" field.
func RespondedAtIn(vs ...time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIn(FieldRespondedAt, vs...))
}

// RespondedAtNotIn applies the NotIn predicate on the "responded_at" field.
func RespondedAtNotIn(vs ...time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotIn(FieldRespondedAt, vs...))
}

// RespondedAtGT applies the GT predicate on the "responded_at" field.
func RespondedAtGT(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGT(FieldRespondedAt, v))
}

// RespondedAtGTE applies the GTE predicate on the "responded_at" field.
func RespondedAtGTE(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGTE(FieldRespondedAt, v))
}

// RespondedAtLT applies the LT predicate on the "responded_at" field.
func RespondedAtLT(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLT(FieldRespondedAt, v))
}

// RespondedAtLTE applies the LTE predicate on the "responded_at" field.
func RespondedAtLTE(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLTE(FieldRespondedAt, v))
}

// RespondedAtIsNil applies the IsNil predicate on the "responded_at" field.
func RespondedAtIsNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIsNull(FieldRespondedAt))
}

// RespondedAtNotNil applies the NotNil predicate on the "responded_at" field.
func RespondedAtNotNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotNull(FieldRespondedAt))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLTE(FieldExpiresAt, v))
}

// AutoApproveAfterSecondsEQ applies the EQ predicate on the "auto_approve_after_seconds" field.
func AutoApproveAfterSecondsEQ(v int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldAutoApproveAfterSeconds, v))
}

// AutoApproveAfterSecondsNEQ applies the NEQ predicate on the "auto_approve_after_seconds" field.
func AutoApproveAfterSecondsNEQ(v int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNEQ(FieldAutoApproveAfterSeconds, v))
}

// AutoApproveAfterSecondsIn applies the In predicate on the "auto_approve_after_seconds" field.
func AutoApproveAfterSecondsIn(vs ...int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIn(FieldAutoApproveAfterSeconds, vs...))
}

// AutoApproveAfterSecondsNotIn applies the NotIn predicate on the "auto_approve_after_seconds" field.
func AutoApproveAfterSecondsNotIn(vs ...int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotIn(FieldAutoApproveAfterSeconds, vs...))
}

// AutoApproveAfterSecondsGT applies the GT predicate on the "auto_approve_after_seconds" field.
func AutoApproveAfterSecondsGT(v int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGT(FieldAutoApproveAfterSeconds, v))
}

// AutoApproveAfterSecondsGTE applies the GTE predicate on the "auto_approve_after_seconds" field.
func AutoApproveAfterSecondsGTE(v int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGTE(FieldAutoApproveAfterSeconds, v))
}

// AutoApproveAfterSecondsLT applies the LT predicate on the "auto_approve_after_seconds" field.
func AutoApproveAfterSecondsLT(v int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLT(FieldAutoApproveAfterSeconds, v))
}

// AutoApproveAfterSecondsLTE applies the LTE predicate on the "auto_approve_after_seconds" field.
func AutoApproveAfterSecondsLTE(v int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLTE(FieldAutoApproveAfterSeconds, v))
}

// AutoApproveAfterSecondsIsNil applies the IsNil predicate on the "auto_approve_after_seconds" field.
func AutoApproveAfterSecondsIsNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIsNull(FieldAutoApproveAfterSeconds))
}

// AutoApproveAfterSecondsNotNil applies the NotNil predicate on the "auto_approve_after_seconds" field.
func AutoApproveAfterSecondsNotNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotNull(FieldAutoApproveAfterSeconds))
}

// RequiredApproversIsNil applies the IsNil predicate on the "required_approvers" field.
func RequiredApproversIsNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIsNull(FieldRequiredApprovers))
}

// RequiredApproversNotNil applies the NotNil predicate on the "required_approvers" field.
func RequiredApproversNotNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotNull(FieldRequiredApprovers))
}

// RevisionCountEQ applies the EQ predicate on the "revision_count" field.
func RevisionCountEQ(v int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldRevisionCount, v))
}

// RevisionCountNEQ applies the NEQ predicate on the "revision_count" field.
func RevisionCountNEQ(v int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNEQ(FieldRevisionCount, v))
}

// RevisionCountIn applies the In predicate on the "revision_count" field.
func RevisionCountIn(vs ...int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIn(FieldRevisionCount, vs...))
}

// RevisionCountNotIn applies the NotIn predicate on the "revision_count" field.
func RevisionCountNotIn(vs ...int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotIn(FieldRevisionCount, vs...))
}

// RevisionCountGT applies the GT predicate on the "revision_count" field.
func RevisionCountGT(v int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGT(FieldRevisionCount, v))
}

// RevisionCountGTE applies the GTE predicate on the "revision_count" field.
func RevisionCountGTE(v int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGTE(FieldRevisionCount, v))
}

// RevisionCountLT applies the LT predicate on the "revision_count" field.
func RevisionCountLT(v int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLT(FieldRevisionCount, v))
}

// RevisionCountLTE applies the LTE predicate on the "revision_count" field.
func RevisionCountLTE(v int) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLTE(FieldRevisionCount, v))
}

// ParentApprovalIDEQ applies the EQ predicate on the "parent_approval_id" field.
func ParentApprovalIDEQ(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEQ(FieldParentApprovalID, v))
}

// ParentApprovalIDNEQ applies the NEQ predicate on the "parent_approval_id" field.
func ParentApprovalIDNEQ(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNEQ(FieldParentApprovalID, v))
}

// ParentApprovalIDIn applies the In predicate on the "parent_approval_id" field.
func ParentApprovalIDIn(vs ...string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIn(FieldParentApprovalID, vs...))
}

// ParentApprovalIDNotIn applies the NotIn predicate on the "parent_approval_id" field.
func ParentApprovalIDNotIn(vs ...string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotIn(FieldParentApprovalID, vs...))
}

// ParentApprovalIDGT applies the GT predicate on the "parent_approval_id" field.
func ParentApprovalIDGT(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGT(FieldParentApprovalID, v))
}

// ParentApprovalIDGTE applies the GTE predicate on the "parent_approval_id" field.
func ParentApprovalIDGTE(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldGTE(FieldParentApprovalID, v))
}

// ParentApprovalIDLT applies the LT predicate on the "parent_approval_id" field.
func ParentApprovalIDLT(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLT(FieldParentApprovalID, v))
}

// ParentApprovalIDLTE applies the LTE predicate on the "parent_approval_id" field.
func ParentApprovalIDLTE(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldLTE(FieldParentApprovalID, v))
}

// ParentApprovalIDContains applies the Contains predicate on the "parent_approval_id" field.
func ParentApprovalIDContains(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldContains(FieldParentApprovalID, v))
}

// ParentApprovalIDHasPrefix applies the HasPrefix predicate on the "parent_approval_id" field.
func ParentApprovalIDHasPrefix(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldHasPrefix(FieldParentApprovalID, v))
}

// ParentApprovalIDHasSuffix applies the HasSuffix predicate on the "parent_approval_id" field.
func ParentApprovalIDHasSuffix(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldHasSuffix(FieldParentApprovalID, v))
}

// ParentApprovalIDIsNil applies the IsNil predicate on the "parent_approval_id" field.
func ParentApprovalIDIsNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldIsNull(FieldParentApprovalID))
}

// ParentApprovalIDNotNil applies the NotNil predicate on the "parent_approval_id" field.
func ParentApprovalIDNotNil() predicate.StepApproval {
	return predicate.StepApproval(sql.FieldNotNull(FieldParentApprovalID))
}

// ParentApprovalIDEqualFold applies the EqualFold predicate on the "parent_approval_id" field.
func ParentApprovalIDEqualFold(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldEqualFold(FieldParentApprovalID, v))
}

// ParentApprovalIDContainsFold applies the ContainsFold predicate on the "parent_approval_id" field.
func ParentApprovalIDContainsFold(v string) predicate.StepApproval {
	return predicate.StepApproval(sql.FieldContainsFold(FieldParentApprovalID, v))
}

// HasExecution applies the HasEdge predicate on the "execution" edge.
func HasExecution() predicate.StepApproval {
	return predicate.StepApproval(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionWith applies the HasEdge predicate on the "execution" edge with a given conditions (other predicates).
func HasExecutionWith(preds ...predicate.WorkflowExecution) predicate.StepApproval {
	return predicate.StepApproval(func(s *sql.Selector) {
		step := newExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepApproval) predicate.StepApproval {
	return predicate.StepApproval(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepApproval) predicate.StepApproval {
	return predicate.StepApproval(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepApproval) predicate.StepApproval {
	return predicate.StepApproval(sql.NotPredicates(p))
}
