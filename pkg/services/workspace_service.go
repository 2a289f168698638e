package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mgx-dev/mgx/ent"
	"github.com/mgx-dev/mgx/ent/project"
	"github.com/mgx-dev/mgx/ent/workspace"
	"github.com/mgx-dev/mgx/pkg/models"
)

// WorkspaceService manages the tenancy roots: workspaces and their
// projects. Every other entity is scoped to a (workspace, project) pair.
type WorkspaceService struct {
	client *ent.Client
}

// NewWorkspaceService creates a new WorkspaceService.
func NewWorkspaceService(client *ent.Client) *WorkspaceService {
	return &WorkspaceService{client: client}
}

// CreateWorkspace creates a workspace.
func (s *WorkspaceService) CreateWorkspace(httpCtx context.Context, req models.CreateWorkspaceRequest) (*ent.Workspace, error) {
	if req.Name == "" {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "name required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ws, err := s.client.Workspace.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return ws, nil
}

// GetWorkspace retrieves a workspace by ID.
func (s *WorkspaceService) GetWorkspace(ctx context.Context, workspaceID string) (*ent.Workspace, error) {
	ws, err := s.client.Workspace.Query().
		Where(workspace.IDEQ(workspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.NewFailure(models.ErrKindNotFound, "workspace %s not found", workspaceID)
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return ws, nil
}

// CreateProject creates a project with its Git defaults.
func (s *WorkspaceService) CreateProject(httpCtx context.Context, req models.CreateProjectRequest) (*ent.Project, error) {
	if req.Name == "" {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "name required")
	}
	if _, err := s.GetWorkspace(httpCtx, req.WorkspaceID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(req.WorkspaceID).
		SetName(req.Name)
	if req.RepoURL != nil {
		builder.SetRepoURL(*req.RepoURL)
	}
	if req.BaseBranch != nil {
		builder.SetBaseBranch(*req.BaseBranch)
	}
	if req.BranchPrefix != nil {
		builder.SetBranchPrefix(*req.BranchPrefix)
	}
	if req.CommitTemplate != nil {
		builder.SetCommitTemplate(*req.CommitTemplate)
	}

	proj, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return proj, nil
}

// GetProject retrieves a project by ID.
func (s *WorkspaceService) GetProject(ctx context.Context, projectID string) (*ent.Project, error) {
	proj, err := s.client.Project.Query().
		Where(project.IDEQ(projectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.NewFailure(models.ErrKindNotFound, "project %s not found", projectID)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return proj, nil
}

// ListProjects lists a workspace's projects.
func (s *WorkspaceService) ListProjects(ctx context.Context, workspaceID string) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Where(project.WorkspaceIDEQ(workspaceID)).
		Order(ent.Asc(project.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}
