package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mgx-dev/mgx/pkg/models"
)

// createWorkspaceHandler handles POST /api/v1/workspaces.
func (s *Server) createWorkspaceHandler(c *gin.Context) {
	var req models.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	ws, err := s.workspaces.CreateWorkspace(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ws)
}

// getWorkspaceHandler handles GET /api/v1/workspaces/:id.
func (s *Server) getWorkspaceHandler(c *gin.Context) {
	ws, err := s.workspaces.GetWorkspace(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ws)
}

// createProjectHandler handles POST /api/v1/projects.
func (s *Server) createProjectHandler(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	project, err := s.workspaces.CreateProject(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// getProjectHandler handles GET /api/v1/projects/:id.
func (s *Server) getProjectHandler(c *gin.Context) {
	project, err := s.workspaces.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// listProjectsHandler handles GET /api/v1/workspaces/:id/projects.
func (s *Server) listProjectsHandler(c *gin.Context) {
	projects, err := s.workspaces.ListProjects(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}
