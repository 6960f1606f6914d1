package checkout

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/pricing"
	"ecommerce-backend/internal/repository"
	"github.com/google/uuid"
)

// Source selects where PlaceOrder takes its lines from.
type Source string

const (
	// SourceCart prices the persisted cart and ignores any request payload.
	SourceCart Source = "cart"
	// SourcePayload prices the lines sent with the request.
	SourcePayload Source = "payload"
)

type Service struct {
	tx      repository.TxManager
	engine  *pricing.Engine
	source  Source
	logger  *log.Logger
	nowFunc func() time.Time
	newID   func() string
}

func New(tx repository.TxManager, engine *pricing.Engine, source Source, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if source == "" {
		source = SourceCart
	}
	return &Service{
		tx:      tx,
		engine:  engine,
		source:  source,
		logger:  logger,
		nowFunc: time.Now,
		newID:   uuid.NewString,
	}
}

// PlaceOrderInput carries the request payload. Lines is only read in payload mode.
type PlaceOrderInput struct {
	Lines []pricing.Line
}

func (s *Service) Source() Source { return s.source }

// PlaceOrder prices the lines, stores the order and empties the cart in one
// transaction. Nothing is written when any step fails.
func (s *Service) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*domain.Order, error) {
	var placed *domain.Order
	err := s.tx.WithinTx(ctx, func(r repository.Repos) error {
		lines, err := s.lines(ctx, r, in)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.Invalid("empty cart")
		}

		catalog, err := loadCatalog(ctx, r, lines)
		if err != nil {
			return err
		}
		now := s.nowFunc()
		quote, err := s.engine.Price(lines, catalog, now)
		if err != nil {
			return err
		}

		created, err := r.Orders.Create(ctx, domain.Order{
			ID:             s.newID(),
			OrderTimeMs:    now.UnixMilli(),
			TotalCostCents: quote.TotalCostCents,
			Products:       quote.OrderProducts(),
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if err := r.Carts.Clear(ctx); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		placed = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Printf("checkout: placed order id=%s total_cents=%d lines=%d source=%s", placed.ID, placed.TotalCostCents, len(placed.Products), s.source)
	return placed, nil
}

// PaymentSummary prices the current cart without placing an order.
// An empty cart yields a zero summary.
func (s *Service) PaymentSummary(ctx context.Context) (pricing.Summary, error) {
	var summary pricing.Summary
	err := s.tx.WithinTx(ctx, func(r repository.Repos) error {
		lines, err := cartLines(ctx, r)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		catalog, err := loadCatalog(ctx, r, lines)
		if err != nil {
			return err
		}
		quote, err := s.engine.Price(lines, catalog, s.nowFunc())
		if err != nil {
			return err
		}
		summary = quote.Summary()
		return nil
	})
	if err != nil {
		return pricing.Summary{}, err
	}
	return summary, nil
}

func (s *Service) lines(ctx context.Context, r repository.Repos, in PlaceOrderInput) ([]pricing.Line, error) {
	if s.source == SourcePayload {
		return in.Lines, nil
	}
	return cartLines(ctx, r)
}

func cartLines(ctx context.Context, r repository.Repos) ([]pricing.Line, error) {
	items, err := r.Carts.List(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]pricing.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, pricing.Line{
			ProductID:        it.ProductID,
			Quantity:         it.Quantity,
			DeliveryOptionID: it.DeliveryOptionID,
		})
	}
	return lines, nil
}

func loadCatalog(ctx context.Context, r repository.Repos, lines []pricing.Line) (pricing.Catalog, error) {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ProductID]; ok {
			continue
		}
		seen[l.ProductID] = struct{}{}
		ids = append(ids, l.ProductID)
	}
	products, err := r.Products.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	options, err := r.DeliveryOptions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load delivery options: %w", err)
	}
	return pricing.NewCatalog(products, options), nil
}
