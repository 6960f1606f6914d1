package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.deps.ProductSvc.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.writeError(c, err, "Product not found", "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.ProductSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Product not found", "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) listDeliveryOptions(c *gin.Context) {
	ctx := c.Request.Context()
	if c.Query("expand") == "estimatedDeliveryTime" {
		opts, err := h.deps.DeliverySvc.ListWithEstimates(ctx)
		if err != nil {
			h.writeError(c, err, "Delivery option not found", "Failed to fetch delivery options")
			return
		}
		c.JSON(http.StatusOK, opts)
		return
	}
	opts, err := h.deps.DeliverySvc.List(ctx)
	if err != nil {
		h.writeError(c, err, "Delivery option not found", "Failed to fetch delivery options")
		return
	}
	c.JSON(http.StatusOK, opts)
}
