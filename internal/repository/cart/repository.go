package cart

import (
	"context"

	"ecommerce-backend/internal/domain"
)

// AddInput describes an add-to-cart request after validation.
type AddInput struct {
	ProductID        string
	Quantity         int
	DeliveryOptionID string // used only when the row is created
	MaxQuantity      int
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Quantity         *int
	DeliveryOptionID *string
}

type Repository interface {
	List(ctx context.Context) ([]domain.CartItem, error)
	ListWithProducts(ctx context.Context) ([]domain.CartItemWithProduct, error)
	Get(ctx context.Context, productID string) (*domain.CartItem, error)
	// Add inserts the item or merges the quantity into the existing row,
	// capped at MaxQuantity. created reports whether a new row was inserted.
	Add(ctx context.Context, in AddInput) (item *domain.CartItem, created bool, err error)
	Update(ctx context.Context, productID string, in UpdateInput) (*domain.CartItem, error)
	Delete(ctx context.Context, productID string) error
	Clear(ctx context.Context) error
}
