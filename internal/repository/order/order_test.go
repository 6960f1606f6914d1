package order

import (
	"context"
	"errors"
	"os"
	"testing"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestPostgres_CreateGetListDelete(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)
	older := domain.Order{
		ID:             "o-old",
		OrderTimeMs:    1_700_000_000_000,
		TotalCostCents: 2750,
		Products: []domain.OrderProduct{
			{ProductID: "p1", Quantity: 2, EstimatedDeliveryTimeMs: 1_700_259_200_000},
		},
	}
	newer := domain.Order{
		ID:             "o-new",
		OrderTimeMs:    1_700_000_500_000,
		TotalCostCents: 1100,
		Products: []domain.OrderProduct{
			{ProductID: "p2", Quantity: 1, EstimatedDeliveryTimeMs: 1_700_605_300_000},
			{ProductID: "p1", Quantity: 3, EstimatedDeliveryTimeMs: 1_700_086_900_000},
		},
	}
	for _, o := range []domain.Order{older, newer} {
		if _, err := repo.Create(ctx, o); err != nil {
			t.Fatalf("create %s: %v", o.ID, err)
		}
	}

	got, err := repo.GetByID(ctx, "o-new")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Products) != 2 || got.Products[0].ProductID != "p2" || got.Products[1].EstimatedDeliveryTimeMs != 1_700_086_900_000 {
		t.Fatalf("products did not round-trip: %+v", got.Products)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != "o-new" || list[1].ID != "o-old" {
		t.Fatalf("expected newest first, got %+v", list)
	}

	if err := repo.Delete(ctx, "o-old"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "o-old"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	if _, err := repo.GetByID(ctx, "o-old"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE orders, cart_items, delivery_options, products`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}
