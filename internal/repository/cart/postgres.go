package cart

import (
	"context"
	"encoding/json"
	"errors"

	"ecommerce-backend/internal/db"
	"ecommerce-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const itemColumns = `product_id, quantity, delivery_option_id, created_at, updated_at`

type postgresRepo struct {
	db db.DBTX
}

func NewPostgres(conn db.DBTX) Repository {
	return &postgresRepo{db: conn}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.CartItem, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM cart_items ORDER BY created_at ASC, product_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresRepo) ListWithProducts(ctx context.Context) ([]domain.CartItemWithProduct, error) {
	const q = `
SELECT c.product_id, c.quantity, c.delivery_option_id, c.created_at, c.updated_at,
       p.id, p.image, p.name, p.rating, p.price_cents, p.keywords, p.created_at, p.updated_at
FROM cart_items c
JOIN products p ON p.id = c.product_id
ORDER BY c.created_at ASC, c.product_id ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItemWithProduct
	for rows.Next() {
		var (
			item                     domain.CartItemWithProduct
			p                        domain.Product
			ratingJSON, keywordsJSON []byte
		)
		if err := rows.Scan(
			&item.ProductID,
			&item.Quantity,
			&item.DeliveryOptionID,
			&item.CreatedAt,
			&item.UpdatedAt,
			&p.ID,
			&p.Image,
			&p.Name,
			&ratingJSON,
			&p.PriceCents,
			&keywordsJSON,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(ratingJSON, &p.Rating); err != nil {
			return nil, err
		}
		p.Keywords = []string{}
		if err := json.Unmarshal(keywordsJSON, &p.Keywords); err != nil {
			return nil, err
		}
		item.Product = &p
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresRepo) Get(ctx context.Context, productID string) (*domain.CartItem, error) {
	item, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM cart_items WHERE product_id = $1`, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) Add(ctx context.Context, in AddInput) (*domain.CartItem, bool, error) {
	// xmax is zero only for freshly inserted tuples.
	const q = `
INSERT INTO cart_items (product_id, quantity, delivery_option_id)
VALUES ($1, $2, $3)
ON CONFLICT (product_id) DO UPDATE
SET quantity = LEAST(cart_items.quantity + EXCLUDED.quantity, $4),
    updated_at = now()
RETURNING product_id, quantity, delivery_option_id, created_at, updated_at, (xmax = 0) AS inserted
`
	var item domain.CartItem
	var inserted bool
	err := r.db.QueryRow(ctx, q, in.ProductID, in.Quantity, in.DeliveryOptionID, in.MaxQuantity).Scan(
		&item.ProductID,
		&item.Quantity,
		&item.DeliveryOptionID,
		&item.CreatedAt,
		&item.UpdatedAt,
		&inserted,
	)
	if err != nil {
		return nil, false, mapWriteError(err)
	}
	return &item, inserted, nil
}

func (r *postgresRepo) Update(ctx context.Context, productID string, in UpdateInput) (*domain.CartItem, error) {
	q := `
UPDATE cart_items
SET quantity = COALESCE($2, quantity),
    delivery_option_id = COALESCE($3, delivery_option_id),
    updated_at = now()
WHERE product_id = $1
RETURNING ` + itemColumns
	item, err := scanItem(r.db.QueryRow(ctx, q, productID, in.Quantity, in.DeliveryOptionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapWriteError(err)
	}
	return item, nil
}

func (r *postgresRepo) Delete(ctx context.Context, productID string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE product_id = $1`, productID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Clear(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart_items`)
	return err
}

func scanItem(row pgx.Row) (*domain.CartItem, error) {
	var item domain.CartItem
	if err := row.Scan(&item.ProductID, &item.Quantity, &item.DeliveryOptionID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return domain.Invalid("cart item references an unknown product or delivery option")
		case "23514":
			return domain.Invalid("invalid quantity")
		}
	}
	return err
}
