package httpserver

import (
	"errors"
	"io"
	"net/http"

	"ecommerce-backend/internal/pricing"
	checkoutsvc "ecommerce-backend/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

type placeOrderRequest struct {
	Cart []pricing.Line `json:"cart"`
}

// expandProducts accepts both spellings used by the order endpoints.
func expandProducts(c *gin.Context) bool {
	switch c.Query("expand") {
	case "product", "products":
		return true
	}
	return false
}

func (h *handlers) listOrders(c *gin.Context) {
	ctx := c.Request.Context()
	if expandProducts(c) {
		orders, err := h.deps.OrderSvc.ListExpanded(ctx)
		if err != nil {
			h.writeError(c, err, "Order not found", "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, orders)
		return
	}
	orders, err := h.deps.OrderSvc.List(ctx)
	if err != nil {
		h.writeError(c, err, "Order not found", "Failed to fetch orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *handlers) getOrder(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if expandProducts(c) {
		order, err := h.deps.OrderSvc.GetExpanded(ctx, id)
		if err != nil {
			h.writeError(c, err, "Order not found", "Failed to fetch order")
			return
		}
		c.JSON(http.StatusOK, order)
		return
	}
	order, err := h.deps.OrderSvc.Get(ctx, id)
	if err != nil {
		h.writeError(c, err, "Order not found", "Failed to fetch order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *handlers) placeOrder(c *gin.Context) {
	var in checkoutsvc.PlaceOrderInput
	if h.deps.CheckoutSvc.Source() == checkoutsvc.SourcePayload {
		var req placeOrderRequest
		// an empty body is an empty cart
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		in.Lines = req.Cart
	}

	order, err := h.deps.CheckoutSvc.PlaceOrder(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err, "Order not found", "Failed to create order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *handlers) deleteOrder(c *gin.Context) {
	id := c.Param("id")
	if err := h.deps.OrderSvc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Order not found", "Failed to delete order")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted successfully",
		"orderId": id,
	})
}

func (h *handlers) paymentSummary(c *gin.Context) {
	summary, err := h.deps.CheckoutSvc.PaymentSummary(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Cart not found", "Failed to create payment summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
