package order

import (
	"context"
	"errors"
	"testing"

	"ecommerce-backend/internal/domain"
)

type stubRepo struct {
	orders  []domain.Order
	listErr error
	deleted []string
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	for _, o := range s.orders {
		if o.ID == id {
			o := o
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepo) List(_ context.Context) ([]domain.Order, error) {
	return s.orders, s.listErr
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			s.deleted = append(s.deleted, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

type stubProductRepo struct {
	products []domain.Product
	err      error
	calls    int
	lastIDs  []string
}

func (s *stubProductRepo) ListByIDs(_ context.Context, ids []string) ([]domain.Product, error) {
	s.calls++
	s.lastIDs = ids
	if s.err != nil {
		return nil, s.err
	}
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []domain.Product
	for _, p := range s.products {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func sampleOrders() []domain.Order {
	return []domain.Order{
		{ID: "o2", OrderTimeMs: 200, TotalCostCents: 1100, Products: []domain.OrderProduct{
			{ProductID: "p1", Quantity: 1, EstimatedDeliveryTimeMs: 500},
			{ProductID: "gone", Quantity: 2, EstimatedDeliveryTimeMs: 600},
		}},
		{ID: "o1", OrderTimeMs: 100, TotalCostCents: 2750, Products: []domain.OrderProduct{
			{ProductID: "p1", Quantity: 2, EstimatedDeliveryTimeMs: 400},
		}},
	}
}

func TestServiceGetExpandedNullForMissingProduct(t *testing.T) {
	products := &stubProductRepo{products: []domain.Product{{ID: "p1", Name: "Socks"}}}
	svc := New(&stubRepo{orders: sampleOrders()}, products)

	got, err := svc.GetExpanded(context.Background(), "o2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Products) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(got.Products))
	}
	if got.Products[0].Product == nil || got.Products[0].Product.Name != "Socks" {
		t.Fatalf("expected p1 to be expanded, got %+v", got.Products[0])
	}
	if got.Products[1].Product != nil {
		t.Fatalf("expected nil product for deleted product, got %+v", got.Products[1].Product)
	}
	if got.Products[1].Quantity != 2 || got.Products[1].EstimatedDeliveryTimeMs != 600 {
		t.Fatalf("snapshot fields must be preserved, got %+v", got.Products[1])
	}
}

func TestServiceListExpandedSingleLookup(t *testing.T) {
	products := &stubProductRepo{products: []domain.Product{{ID: "p1", Name: "Socks"}}}
	svc := New(&stubRepo{orders: sampleOrders()}, products)

	got, err := svc.ListExpanded(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "o2" || got[1].ID != "o1" {
		t.Fatalf("unexpected orders %+v", got)
	}
	if products.calls != 1 || len(products.lastIDs) != 2 {
		t.Fatalf("expected one lookup with distinct ids, got calls=%d ids=%v", products.calls, products.lastIDs)
	}
	if got[1].Products[0].Product == nil {
		t.Fatalf("expected product on o1 line")
	}
}

func TestServiceListEmpty(t *testing.T) {
	products := &stubProductRepo{}
	svc := New(&stubRepo{}, products)

	got, err := svc.ListExpanded(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
	if products.calls != 0 {
		t.Fatalf("no product lookup expected for empty list")
	}
}

func TestServiceExpandPropagatesLookupError(t *testing.T) {
	boom := errors.New("db down")
	svc := New(&stubRepo{orders: sampleOrders()}, &stubProductRepo{err: boom})
	if _, err := svc.GetExpanded(context.Background(), "o1"); !errors.Is(err, boom) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}

func TestServiceGetAndDelete(t *testing.T) {
	repo := &stubRepo{orders: sampleOrders()}
	svc := New(repo, &stubProductRepo{})

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := svc.Delete(context.Background(), "o1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), "o1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.GetExpanded(context.Background(), "o1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
