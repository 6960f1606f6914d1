package delivery

import (
	"context"
	"errors"

	"ecommerce-backend/internal/db"
	"ecommerce-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type postgresRepo struct {
	db db.DBTX
}

func NewPostgres(conn db.DBTX) Repository {
	return &postgresRepo{db: conn}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.DeliveryOption, error) {
	const q = `
SELECT id, delivery_days, price_cents
FROM delivery_options
ORDER BY delivery_days DESC, id ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.DeliveryOption
	for rows.Next() {
		var o domain.DeliveryOption
		if err := rows.Scan(&o.ID, &o.DeliveryDays, &o.PriceCents); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.DeliveryOption, error) {
	const q = `
SELECT id, delivery_days, price_cents
FROM delivery_options
WHERE id = $1
`
	var o domain.DeliveryOption
	if err := r.db.QueryRow(ctx, q, id).Scan(&o.ID, &o.DeliveryDays, &o.PriceCents); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, o domain.DeliveryOption) (*domain.DeliveryOption, error) {
	const q = `
INSERT INTO delivery_options (id, delivery_days, price_cents)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE
SET delivery_days = EXCLUDED.delivery_days,
    price_cents = EXCLUDED.price_cents
RETURNING id, delivery_days, price_cents
`
	var out domain.DeliveryOption
	if err := r.db.QueryRow(ctx, q, o.ID, o.DeliveryDays, o.PriceCents).Scan(&out.ID, &out.DeliveryDays, &out.PriceCents); err != nil {
		return nil, err
	}
	return &out, nil
}
