package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler handles GET /ws: upgrades to WebSocket and hands the
// connection to the ConnectionManager, which owns subscribe/catchup
// routing. Blocks until the socket closes.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"error": "WebSocket not available",
		})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return
	}

	s.connManager.HandleConnection(c.Request.Context(), conn)
}
