package repository

import (
	"context"
	"io"
	"log"

	"ecommerce-backend/internal/db"
	"ecommerce-backend/internal/repository/cart"
	"ecommerce-backend/internal/repository/delivery"
	"ecommerce-backend/internal/repository/order"
	"ecommerce-backend/internal/repository/product"
	"github.com/jackc/pgx/v5"
)

// Repos groups the repositories that share one connection or transaction.
type Repos struct {
	Products        product.Repository
	DeliveryOptions delivery.Repository
	Carts           cart.Repository
	Orders          order.Repository
}

// NewRepos builds every repository on top of conn.
func NewRepos(conn db.DBTX, logger *log.Logger) Repos {
	return Repos{
		Products:        product.NewPostgres(conn, logger),
		DeliveryOptions: delivery.NewPostgres(conn),
		Carts:           cart.NewPostgres(conn),
		Orders:          order.NewPostgres(conn, logger),
	}
}

// TxManager hides begin/commit/rollback from services.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}

type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type pgxTxManager struct {
	conn   beginner
	logger *log.Logger
}

// NewTxManager returns a TxManager that runs fn inside a pgx transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func NewTxManager(conn beginner, logger *log.Logger) TxManager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &pgxTxManager{conn: conn, logger: logger}
}

func (m *pgxTxManager) WithinTx(ctx context.Context, fn func(r Repos) error) error {
	return pgx.BeginFunc(ctx, m.conn, func(tx pgx.Tx) error {
		return fn(NewRepos(tx, m.logger))
	})
}
