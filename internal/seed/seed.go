package seed

import (
	"context"
	"fmt"
	"io"
	"log"

	"ecommerce-backend/internal/db"
	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/repository"
	cartrepo "ecommerce-backend/internal/repository/cart"
)

// Stats are the row counts after a reset.
type Stats struct {
	Products        int `json:"products"`
	DeliveryOptions int `json:"deliveryOptions"`
	CartItems       int `json:"cartItems"`
	Orders          int `json:"orders"`
}

// Apply upserts the default catalog. Rows that fail are logged and skipped,
// so the call is idempotent and tolerates partial bad data.
func Apply(ctx context.Context, conn db.DBTX, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	repos := repository.NewRepos(conn, logger)

	loaded := 0
	for _, p := range DefaultProducts() {
		if _, err := repos.Products.Upsert(ctx, p); err != nil {
			logger.Printf("seed: product id=%s skipped: %v", p.ID, err)
			continue
		}
		loaded++
	}
	logger.Printf("seed: loaded %d products", loaded)

	loaded = 0
	for _, o := range DefaultDeliveryOptions() {
		if _, err := repos.DeliveryOptions.Upsert(ctx, o); err != nil {
			logger.Printf("seed: delivery option id=%s skipped: %v", o.ID, err)
			continue
		}
		loaded++
	}
	logger.Printf("seed: loaded %d delivery options", loaded)
	return nil
}

// ApplyCart puts the default cart rows in place.
func ApplyCart(ctx context.Context, conn db.DBTX, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	carts := repository.NewRepos(conn, logger).Carts
	for _, it := range DefaultCart() {
		if _, _, err := carts.Add(ctx, cartrepo.AddInput{
			ProductID:        it.ProductID,
			Quantity:         it.Quantity,
			DeliveryOptionID: it.DeliveryOptionID,
			MaxQuantity:      domain.MaxCartQuantity,
		}); err != nil {
			logger.Printf("seed: cart item product=%s skipped: %v", it.ProductID, err)
		}
	}
	return nil
}

// Reset wipes every table and reloads the default catalog and cart.
func Reset(ctx context.Context, conn db.DBTX, logger *log.Logger) (Stats, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	logger.Printf("seed: resetting database")
	if _, err := conn.Exec(ctx, `TRUNCATE orders, cart_items, delivery_options, products`); err != nil {
		return Stats{}, fmt.Errorf("truncate: %w", err)
	}
	if err := Apply(ctx, conn, logger); err != nil {
		return Stats{}, err
	}
	if err := ApplyCart(ctx, conn, logger); err != nil {
		return Stats{}, err
	}
	return Count(ctx, conn)
}

// Count returns the current number of rows per table.
func Count(ctx context.Context, conn db.DBTX) (Stats, error) {
	const q = `
SELECT
  (SELECT count(*) FROM products),
  (SELECT count(*) FROM delivery_options),
  (SELECT count(*) FROM cart_items),
  (SELECT count(*) FROM orders)
`
	var s Stats
	if err := conn.QueryRow(ctx, q).Scan(&s.Products, &s.DeliveryOptions, &s.CartItems, &s.Orders); err != nil {
		return Stats{}, err
	}
	return s, nil
}
