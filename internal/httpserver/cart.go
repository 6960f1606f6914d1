package httpserver

import (
	"net/http"

	cartsvc "ecommerce-backend/internal/service/cart"
	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	// omitted means 1
	Quantity *int `json:"quantity" validate:"omitempty,cartqty"`
}

type updateCartItemRequest struct {
	Quantity         *int    `json:"quantity"`
	DeliveryOptionID *string `json:"deliveryOptionId"`
}

func (h *handlers) listCartItems(c *gin.Context) {
	ctx := c.Request.Context()
	if c.Query("expand") == "product" {
		items, err := h.deps.CartSvc.ListExpanded(ctx)
		if err != nil {
			h.writeError(c, err, "Product not found in cart", "Failed to fetch cart items")
			return
		}
		c.JSON(http.StatusOK, items)
		return
	}
	items, err := h.deps.CartSvc.List(ctx)
	if err != nil {
		h.writeError(c, err, "Product not found in cart", "Failed to fetch cart items")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	item, created, err := h.deps.CartSvc.Add(c.Request.Context(), cartsvc.AddInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.writeError(c, err, "Product not found", "Failed to add item to cart")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"cartItem": item})
}

func (h *handlers) updateCartItem(c *gin.Context) {
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	item, err := h.deps.CartSvc.Update(c.Request.Context(), c.Param("productId"), cartsvc.UpdateInput{
		Quantity:         req.Quantity,
		DeliveryOptionID: req.DeliveryOptionID,
	})
	if err != nil {
		h.writeError(c, err, "Product not found in cart", "Failed to update cart item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	productID := c.Param("productId")
	if err := h.deps.CartSvc.Remove(c.Request.Context(), productID); err != nil {
		h.writeError(c, err, "Product not found in cart", "Failed to remove item from cart")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Product removed from cart",
		"productId": productID,
	})
}
