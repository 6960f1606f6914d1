package order

import (
	"context"

	"ecommerce-backend/internal/domain"
)

type Service struct {
	repo        orderRepo
	productRepo productRepo
}

type orderRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type productRepo interface {
	ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
}

func New(repo orderRepo, productRepo productRepo) *Service {
	return &Service{repo: repo, productRepo: productRepo}
}

// List returns all orders newest first.
func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// ListExpanded is List with the current catalog entry attached to every line.
func (s *Service) ListExpanded(ctx context.Context) ([]domain.ExpandedOrder, error) {
	orders, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var ids []string
	seen := map[string]struct{}{}
	for _, o := range orders {
		for _, id := range o.ProductIDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	products, err := s.lookup(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ExpandedOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, expand(o, products))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetExpanded(ctx context.Context, id string) (*domain.ExpandedOrder, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := s.lookup(ctx, o.ProductIDs())
	if err != nil {
		return nil, err
	}
	expanded := expand(*o, products)
	return &expanded, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) lookup(ctx context.Context, ids []string) (map[string]domain.Product, error) {
	out := make(map[string]domain.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	products, err := s.productRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

// expand attaches products to order lines. Lines whose product is gone get a nil product.
func expand(o domain.Order, products map[string]domain.Product) domain.ExpandedOrder {
	lines := make([]domain.ExpandedOrderProduct, 0, len(o.Products))
	for _, line := range o.Products {
		el := domain.ExpandedOrderProduct{OrderProduct: line}
		if p, ok := products[line.ProductID]; ok {
			p := p
			el.Product = &p
		}
		lines = append(lines, el)
	}
	return domain.ExpandedOrder{
		ID:             o.ID,
		OrderTimeMs:    o.OrderTimeMs,
		TotalCostCents: o.TotalCostCents,
		Products:       lines,
	}
}
