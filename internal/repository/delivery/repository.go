package delivery

import (
	"context"

	"ecommerce-backend/internal/domain"
)

// Repository reads and writes delivery options.
type Repository interface {
	List(ctx context.Context) ([]domain.DeliveryOption, error)
	GetByID(ctx context.Context, id string) (*domain.DeliveryOption, error)
	Upsert(ctx context.Context, o domain.DeliveryOption) (*domain.DeliveryOption, error)
}
