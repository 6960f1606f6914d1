package order

import (
	"context"

	"ecommerce-backend/internal/domain"
)

// Repository persists orders. Orders are never updated.
type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// List returns orders newest first.
	List(ctx context.Context) ([]domain.Order, error)
	Delete(ctx context.Context, id string) error
}
