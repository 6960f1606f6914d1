package domain

import "time"

// Cart quantity bounds, inclusive.
const (
	MinCartQuantity = 1
	MaxCartQuantity = 10
)

type CartItem struct {
	ProductID        string    `json:"productId"`
	Quantity         int       `json:"quantity"`
	DeliveryOptionID string    `json:"deliveryOptionId"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CartItemWithProduct is the expand=product representation of a cart row.
type CartItemWithProduct struct {
	CartItem
	Product *Product `json:"product"`
}

// ValidCartQuantity reports whether q is within the cart bounds.
func ValidCartQuantity(q int) bool {
	return q >= MinCartQuantity && q <= MaxCartQuantity
}
