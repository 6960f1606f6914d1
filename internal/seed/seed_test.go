package seed

import (
	"context"
	"os"
	"testing"

	"ecommerce-backend/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestDefaultsAreConsistent(t *testing.T) {
	products := map[string]bool{}
	for _, p := range DefaultProducts() {
		if products[p.ID] {
			t.Fatalf("duplicate product id %s", p.ID)
		}
		products[p.ID] = true
		if p.PriceCents < 0 || len(p.Keywords) == 0 {
			t.Fatalf("bad default product %+v", p)
		}
	}
	options := map[string]bool{}
	for _, o := range DefaultDeliveryOptions() {
		if o.DeliveryDays <= 0 {
			t.Fatalf("bad delivery option %+v", o)
		}
		options[o.ID] = true
	}
	if !options["1"] {
		t.Fatalf("delivery option 1 must exist")
	}
	for _, it := range DefaultCart() {
		if !products[it.ProductID] || !options[it.DeliveryOptionID] {
			t.Fatalf("default cart item references unknown data: %+v", it)
		}
	}
}

func TestReset(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	defer pool.Close()
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	stats, err := Reset(ctx, pool, nil)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	want := Stats{
		Products:        len(DefaultProducts()),
		DeliveryOptions: len(DefaultDeliveryOptions()),
		CartItems:       len(DefaultCart()),
		Orders:          0,
	}
	if stats != want {
		t.Fatalf("unexpected stats %+v, want %+v", stats, want)
	}

	// applying again is a no-op for the catalog
	if err := Apply(ctx, pool, nil); err != nil {
		t.Fatalf("apply: %v", err)
	}
	again, err := Count(ctx, pool)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if again != want {
		t.Fatalf("apply must be idempotent, got %+v", again)
	}
}
