package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mgx-dev/mgx/pkg/models"
	"github.com/mgx-dev/mgx/pkg/workflow"
)

// listPendingApprovalsHandler handles GET /api/v1/approvals.
func (s *Server) listPendingApprovalsHandler(c *gin.Context) {
	workspaceID := c.Query("workspace_id")
	if workspaceID == "" {
		abortBadRequest(c, "workspace_id query parameter is required")
		return
	}

	approvals, err := s.approvals.ListPending(c.Request.Context(), workspaceID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"approvals": approvals})
}

// getApprovalHandler handles GET /api/v1/approvals/:id.
func (s *Server) getApprovalHandler(c *gin.Context) {
	approval, err := s.approvals.GetApproval(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, approval)
}

// respondApprovalHandler handles POST /api/v1/approvals/:id/respond.
// Decision comes from the "decision" query-less body field; a response
// that loses the race against the sweeper returns 409.
func (s *Server) respondApprovalHandler(c *gin.Context) {
	var body struct {
		Decision string `json:"decision" binding:"required"`
		models.ApprovalResponseRequest
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	err := s.approvals.Respond(c.Request.Context(), c.Param("id"),
		workflow.Decision(body.Decision), body.ApprovalResponseRequest)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"approval_id": c.Param("id"),
		"decision":    body.Decision,
	})
}
