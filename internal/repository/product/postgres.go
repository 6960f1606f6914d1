package product

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
)

const selectColumns = `id, image, name, rating, price_cents, keywords, created_at, updated_at`

type postgresRepo struct {
	db     db.DBTX
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres. conn may be a pool or a transaction.
func NewPostgres(conn db.DBTX, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{db: conn, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	q := `SELECT ` + selectColumns + ` FROM products ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	result, err := collectProducts(rows)
	if err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	q := `SELECT ` + selectColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := `SELECT ` + selectColumns + ` FROM products WHERE id = ANY($1)`
	rows, err := r.db.Query(ctx, q, ids)
	if err != nil {
		r.logger.Printf("product repo: list by ids count=%d error=%v", len(ids), err)
		return nil, err
	}
	return collectProducts(rows)
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	ratingJSON, err := json.Marshal(p.Rating)
	if err != nil {
		return nil, err
	}
	keywords := p.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return nil, err
	}

	q := `
INSERT INTO products (id, image, name, rating, price_cents, keywords)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
    image = EXCLUDED.image,
    name = EXCLUDED.name,
    rating = EXCLUDED.rating,
    price_cents = EXCLUDED.price_cents,
    keywords = EXCLUDED.keywords,
    updated_at = now()
RETURNING ` + selectColumns
	out, err := scanProduct(r.db.QueryRow(ctx, q, p.ID, p.Image, p.Name, ratingJSON, p.PriceCents, keywordsJSON))
	if err != nil {
		r.logger.Printf("product repo: upsert id=%s error=%v", p.ID, err)
		return nil, fmt.Errorf("upsert product %s: %w", p.ID, err)
	}
	r.logger.Printf("product repo: upserted id=%s name=%q", out.ID, out.Name)
	return out, nil
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var ratingJSON, keywordsJSON []byte
	if err := row.Scan(&p.ID, &p.Image, &p.Name, &ratingJSON, &p.PriceCents, &keywordsJSON, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if len(ratingJSON) > 0 {
		if err := json.Unmarshal(ratingJSON, &p.Rating); err != nil {
			return nil, fmt.Errorf("decode rating for product %s: %w", p.ID, err)
		}
	}
	p.Keywords = []string{}
	if len(keywordsJSON) > 0 {
		if err := json.Unmarshal(keywordsJSON, &p.Keywords); err != nil {
			return nil, fmt.Errorf("decode keywords for product %s: %w", p.ID, err)
		}
	}
	return &p, nil
}
