package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handlers) reset(c *gin.Context) {
	stats, err := h.deps.Reset(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Not found", "Failed to reset database")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Database reset successfully with default data loaded",
		"stats":   stats,
	})
}
