package product

import (
	"context"

	"ecommerce-backend/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// ListByIDs returns the products that exist among ids; unknown ids are skipped.
	ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}
