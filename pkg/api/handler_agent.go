package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mgx-dev/mgx/pkg/models"
)

// createAgentDefinitionHandler handles POST /api/v1/agents.
func (s *Server) createAgentDefinitionHandler(c *gin.Context) {
	var req models.CreateAgentDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	def, err := s.agents.CreateDefinition(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, def)
}

// listAgentDefinitionsHandler handles GET /api/v1/agents.
func (s *Server) listAgentDefinitionsHandler(c *gin.Context) {
	workspaceID := c.Query("workspace_id")
	if workspaceID == "" {
		abortBadRequest(c, "workspace_id query parameter is required")
		return
	}

	defs, err := s.agents.ListDefinitions(c.Request.Context(), workspaceID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": defs})
}

// readContextHandler handles GET /api/v1/contexts/:name. Version 0 (or
// absent) reads the head.
func (s *Server) readContextHandler(c *gin.Context) {
	workspaceID, projectID := c.Query("workspace_id"), c.Query("project_id")
	if workspaceID == "" || projectID == "" {
		abortBadRequest(c, "workspace_id and project_id query parameters are required")
		return
	}

	data, version, err := s.agents.ReadContext(c.Request.Context(),
		workspaceID, projectID, c.Param("name"), intQuery(c, "version", 0))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":    c.Param("name"),
		"version": version,
		"data":    data,
	})
}

// writeContextHandler handles PUT /api/v1/contexts/:name: appends a new
// immutable version.
func (s *Server) writeContextHandler(c *gin.Context) {
	var body struct {
		WorkspaceID string         `json:"workspace_id" binding:"required"`
		ProjectID   string         `json:"project_id" binding:"required"`
		Data        map[string]any `json:"data" binding:"required"`
		WrittenBy   string         `json:"written_by,omitempty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	version, err := s.agents.WriteContext(c.Request.Context(),
		body.WorkspaceID, body.ProjectID, c.Param("name"), body.Data, body.WrittenBy)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": c.Param("name"), "version": version})
}

// rollbackContextHandler handles POST /api/v1/contexts/:name/rollback:
// a new head version whose data equals the target's is appended.
func (s *Server) rollbackContextHandler(c *gin.Context) {
	var body struct {
		WorkspaceID   string `json:"workspace_id" binding:"required"`
		ProjectID     string `json:"project_id" binding:"required"`
		TargetVersion int    `json:"target_version" binding:"required"`
		WrittenBy     string `json:"written_by,omitempty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	version, err := s.agents.RollbackContext(c.Request.Context(),
		body.WorkspaceID, body.ProjectID, c.Param("name"), body.TargetVersion, body.WrittenBy)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":          c.Param("name"),
		"version":       version,
		"rolled_back_to": body.TargetVersion,
	})
}
