package product

import (
	"context"
	"errors"
	"testing"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/search"
)

type stubRepo struct {
	products []domain.Product
	listErr  error
	getErr   error
	lastID   string
}

func (s *stubRepo) List(_ context.Context) ([]domain.Product, error) {
	return s.products, s.listErr
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	s.lastID = id
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, p := range s.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepo) ListByIDs(_ context.Context, _ []string) ([]domain.Product, error) {
	return nil, nil
}

func (s *stubRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Athletic Cotton Socks", Keywords: []string{"socks", "apparel"}},
		{ID: "p2", Name: "Basketball", Keywords: []string{"sports"}},
	}
}

func TestServiceListFiltersBySearch(t *testing.T) {
	svc := New(&stubRepo{products: sampleProducts()}, nil)

	got, err := svc.List(context.Background(), "APPAREL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("expected only p1, got %+v", got)
	}

	all, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected all products for blank search, got %d", len(all))
	}
}

func TestServiceListNoMatchIsEmptySlice(t *testing.T) {
	svc := New(&stubRepo{products: sampleProducts()}, search.Fuzzy{Threshold: search.DefaultThreshold})

	got, err := svc.List(context.Background(), "umbrella")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestServiceListPropagatesError(t *testing.T) {
	boom := errors.New("db down")
	svc := New(&stubRepo{listErr: boom}, nil)
	if _, err := svc.List(context.Background(), "x"); !errors.Is(err, boom) {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestServiceGet(t *testing.T) {
	repo := &stubRepo{products: sampleProducts()}
	svc := New(repo, nil)

	p, err := svc.Get(context.Background(), "p2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Basketball" || repo.lastID != "p2" {
		t.Fatalf("unexpected product %+v", p)
	}
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
