package product

import (
	"context"

	"ecommerce-backend/internal/domain"
	productrepo "ecommerce-backend/internal/repository/product"
	"ecommerce-backend/internal/search"
)

type Service struct {
	repo    productrepo.Repository
	matcher search.Matcher
}

// New builds the catalog service. A nil matcher falls back to substring search.
func New(repo productrepo.Repository, matcher search.Matcher) *Service {
	if matcher == nil {
		matcher = search.Substring{}
	}
	return &Service{repo: repo, matcher: matcher}
}

// List returns all products, filtered by query when it is not blank.
func (s *Service) List(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	products = search.Filter(s.matcher, products, query)
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
