package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"ecommerce-backend/internal/db"
	"ecommerce-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type postgresRepo struct {
	db     db.DBTX
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(conn db.DBTX, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{db: conn, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	products := o.Products
	if products == nil {
		products = []domain.OrderProduct{}
	}
	productsJSON, err := json.Marshal(products)
	if err != nil {
		return nil, err
	}

	const q = `
INSERT INTO orders (id, order_time_ms, total_cost_cents, products)
VALUES ($1, $2, $3, $4)
RETURNING id, order_time_ms, total_cost_cents, products
`
	out, err := scanOrder(r.db.QueryRow(ctx, q, o.ID, o.OrderTimeMs, o.TotalCostCents, productsJSON))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("order %s already exists: %w", o.ID, err)
		}
		r.logger.Printf("order repo: create id=%s error=%v", o.ID, err)
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s total_cents=%d lines=%d", out.ID, out.TotalCostCents, len(out.Products))
	return out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id, order_time_ms, total_cost_cents, products
FROM orders
WHERE id = $1
`
	o, err := scanOrder(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id, order_time_ms, total_cost_cents, products
FROM orders
ORDER BY order_time_ms DESC, id ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("order repo: deleted id=%s", id)
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var productsJSON []byte
	if err := row.Scan(&o.ID, &o.OrderTimeMs, &o.TotalCostCents, &productsJSON); err != nil {
		return nil, err
	}
	o.Products = []domain.OrderProduct{}
	if len(productsJSON) > 0 {
		if err := json.Unmarshal(productsJSON, &o.Products); err != nil {
			return nil, fmt.Errorf("decode products for order %s: %w", o.ID, err)
		}
	}
	return &o, nil
}
