package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mgx-dev/mgx/pkg/models"
)

// abortWithServiceError maps a service-layer failure kind to an HTTP
// error response.
func abortWithServiceError(c *gin.Context, err error) {
	kind := models.KindOf(err)
	switch kind {
	case models.ErrKindInvalidInput:
		c.AbortWithStatusJSON(http.StatusBadRequest, errorBody(kind, err))
	case models.ErrKindNotFound:
		c.AbortWithStatusJSON(http.StatusNotFound, errorBody(kind, err))
	case models.ErrKindConflict:
		c.AbortWithStatusJSON(http.StatusConflict, errorBody(kind, err))
	case models.ErrKindBudgetExhausted:
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorBody(kind, err))
	case models.ErrKindDeadlineExceeded:
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorBody(kind, err))
	default:
		slog.Error("Unexpected service error", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "internal server error",
			"kind":  string(models.ErrKindInternal),
		})
	}
}

func errorBody(kind models.ErrorKind, err error) gin.H {
	return gin.H{"error": err.Error(), "kind": string(kind)}
}

// abortBadRequest rejects malformed input before it reaches a service.
func abortBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error": message,
		"kind":  string(models.ErrKindInvalidInput),
	})
}
