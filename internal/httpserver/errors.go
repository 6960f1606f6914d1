package httpserver

import (
	"errors"
	"net/http"

	"ecommerce-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto the HTTP error contract. Validation
// messages are returned as is; anything unexpected is logged and hidden
// behind internalMsg.
func (h *handlers) writeError(c *gin.Context, err error, notFoundMsg, internalMsg string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	default:
		h.logger.Printf("%s %s: %s: %v", c.Request.Method, c.Request.URL.Path, internalMsg, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}
