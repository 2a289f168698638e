// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mgx-dev/mgx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldWorkspaceID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// RepoURL applies equality check predicate on the "repo_url" field. It's identical to RepoURLEQ.
func RepoURL(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldRepoURL, v))
}

// BaseBranch applies equality check predicate on the "base_branch" field. It's identical to BaseBranchEQ.
func BaseBranch(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldBaseBranch, v))
}

// BranchPrefix applies equality check predicate on the "branch_prefix" field. It's identical to BranchPrefixEQ.
func BranchPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldBranchPrefix, v))
}

// CommitTemplate applies equality check predicate on the "commit_template" field. It's identical to CommitTemplateEQ.
func CommitTemplate(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCommitTemplate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldName, v))
}

// RepoURLEQ applies the EQ predicate on the "repo_url" field.
func RepoURLEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldRepoURL, v))
}

// RepoURLNEQ applies the NEQ predicate on the "repo_url" field.
func RepoURLNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldRepoURL, v))
}

// RepoURLIn applies the In predicate on the "repo_url" field.
func RepoURLIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldRepoURL, vs...))
}

// RepoURLNotIn applies the NotIn predicate on the "repo_url" field.
func RepoURLNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldRepoURL, vs...))
}

// RepoURLGT applies the GT predicate on the "repo_url" field.
func RepoURLGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldRepoURL, v))
}

// RepoURLGTE applies the GTE predicate on the "repo_url" field.
func RepoURLGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldRepoURL, v))
}

// RepoURLLT applies the LT predicate on the "repo_url" field.
func RepoURLLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldRepoURL, v))
}

// RepoURLLTE applies the LTE predicate on the "repo_url" field.
func RepoURLLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldRepoURL, v))
}

// RepoURLContains applies the Contains predicate on the "repo_url" field.
func RepoURLContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldRepoURL, v))
}

// RepoURLHasPrefix applies the HasPrefix predicate on the "repo_url" field.
func RepoURLHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldRepoURL, v))
}

// RepoURLHasSuffix applies the HasSuffix predicate on the "repo_url" field.
func RepoURLHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldRepoURL, v))
}

// RepoURLIsNil applies the IsNil predicate on the "repo_url" field.
func RepoURLIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldRepoURL))
}

// RepoURLNotNil applies the NotNil predicate on the "repo_url" field.
func RepoURLNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldRepoURL))
}

// RepoURLEqualFold applies the EqualFold predicate on the "repo_url" field.
func RepoURLEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldRepoURL, v))
}

// RepoURLContainsFold applies the ContainsFold predicate on the "repo_url" field.
func RepoURLContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldRepoURL, v))
}

// BaseBranchEQ applies the EQ predicate on the "base_branch" field.
func BaseBranchEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldBaseBranch, v))
}

// BaseBranchNEQ applies the NEQ predicate on the "base_branch" field.
func BaseBranchNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldBaseBranch, v))
}

// BaseBranchIn applies the In predicate on the "base_branch" field.
func BaseBranchIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldBaseBranch, vs...))
}

// BaseBranchNotIn applies the NotIn predicate on the "base_branch" field.
func BaseBranchNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldBaseBranch, vs...))
}

// BaseBranchGT applies the GT predicate on the "base_branch" field.
func BaseBranchGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldBaseBranch, v))
}

// BaseBranchGTE applies the GTE predicate on the "base_branch" field.
func BaseBranchGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldBaseBranch, v))
}

// BaseBranchLT applies the LT predicate on the "base_branch" field.
func BaseBranchLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldBaseBranch, v))
}

// BaseBranchLTE applies the LTE predicate on the "base_branch" field.
func BaseBranchLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldBaseBranch, v))
}

// BaseBranchContains applies the Contains predicate on the "base_branch" field.
func BaseBranchContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldBaseBranch, v))
}

// BaseBranchHasPrefix applies the HasPrefix predicate on the "base_branch" field.
func BaseBranchHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldBaseBranch, v))
}

// BaseBranchHasSuffix applies the HasSuffix predicate on the "base_branch" field.
func BaseBranchHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldBaseBranch, v))
}

// BaseBranchEqualFold applies the EqualFold predicate on the "base_branch" field.
func BaseBranchEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldBaseBranch, v))
}

// BaseBranchContainsFold applies the ContainsFold predicate on the "base_branch" field.
func BaseBranchContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldBaseBranch, v))
}

// BranchPrefixEQ applies the EQ predicate on the "branch_prefix" field.
func BranchPrefixEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldBranchPrefix, v))
}

// BranchPrefixNEQ applies the NEQ predicate on the "branch_prefix" field.
func BranchPrefixNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldBranchPrefix, v))
}

// BranchPrefixIn applies the In predicate on the "branch_prefix" field.
func BranchPrefixIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldBranchPrefix, vs...))
}

// BranchPrefixNotIn applies the NotIn predicate on the "branch_prefix" field.
func BranchPrefixNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldBranchPrefix, vs...))
}

// BranchPrefixGT applies the GT predicate on the "branch_prefix" field.
func BranchPrefixGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldBranchPrefix, v))
}

// BranchPrefixGTE applies the GTE predicate on the "branch_prefix" field.
func BranchPrefixGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldBranchPrefix, v))
}

// BranchPrefixLT applies the LT predicate on the "branch_prefix" field.
func BranchPrefixLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldBranchPrefix, v))
}

// BranchPrefixLTE applies the LTE predicate on the "branch_prefix" field.
func BranchPrefixLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldBranchPrefix, v))
}

// BranchPrefixContains applies the Contains predicate on the "branch_prefix" field.
func BranchPrefixContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldBranchPrefix, v))
}

// BranchPrefixHasPrefix applies the HasPrefix predicate on the "branch_prefix" field.
func BranchPrefixHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldBranchPrefix, v))
}

// BranchPrefixHasSuffix applies the HasSuffix predicate on the "branch_prefix" field.
func BranchPrefixHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldBranchPrefix, v))
}

// BranchPrefixEqualFold applies the EqualFold predicate on the "branch_prefix" field.
func BranchPrefixEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldBranchPrefix, v))
}

// BranchPrefixContainsFold applies the ContainsFold predicate on the "branch_prefix" field.
func BranchPrefixContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldBranchPrefix, v))
}

// CommitTemplateEQ applies the EQ predicate on the "commit_template" field.
func CommitTemplateEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCommitTemplate, v))
}

// CommitTemplateNEQ applies the NEQ predicate on the "commit_template" field.
func CommitTemplateNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCommitTemplate, v))
}

// CommitTemplateIn applies the In predicate on the "commit_template" field.
func CommitTemplateIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCommitTemplate, vs...))
}

// CommitTemplateNotIn applies the NotIn predicate on the "commit_template" field.
func CommitTemplateNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCommitTemplate, vs...))
}

// CommitTemplateGT applies the GT predicate on the "commit_template" field.
func CommitTemplateGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCommitTemplate, v))
}

// CommitTemplateGTE applies the GTE predicate on the "commit_template" field.
func CommitTemplateGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCommitTemplate, v))
}

// CommitTemplateLT applies the LT predicate on the "commit_template" field.
func CommitTemplateLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCommitTemplate, v))
}

// CommitTemplateLTE applies the LTE predicate on the "commit_template" field.
func CommitTemplateLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCommitTemplate, v))
}

// CommitTemplateContains applies the Contains predicate on the "commit_template" field.
func CommitTemplateContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldCommitTemplate, v))
}

// CommitTemplateHasPrefix applies the HasPrefix predicate on the "commit_template" field.
func CommitTemplateHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldCommitTemplate, v))
}

// CommitTemplateHasSuffix applies the HasSuffix predicate on the "commit_template" field.
func CommitTemplateHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldCommitTemplate, v))
}

// CommitTemplateEqualFold applies the EqualFold predicate on the "commit_template" field.
func CommitTemplateEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldCommitTemplate, v))
}

// CommitTemplateContainsFold applies the ContainsFold predicate on the "commit_template" field.
func CommitTemplateContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldCommitTemplate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWorkflows applies the HasEdge predicate on the "workflows" edge.
func HasWorkflows() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WorkflowsTable, WorkflowsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowsWith applies the HasEdge predicate on the "workflows" edge with a given conditions (other predicates).
func HasWorkflowsWith(preds ...predicate.Workflow) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newWorkflowsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
