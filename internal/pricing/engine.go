package pricing

import (
	"fmt"
	"time"

	"ecommerce-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Rounding selects how the taxed total is rounded to whole cents.
type Rounding string

const (
	RoundHalfUp   Rounding = "half_up"
	RoundHalfEven Rounding = "half_even"
)

// Policy is the tax configuration applied to every quote.
type Policy struct {
	TaxRate  decimal.Decimal
	Rounding Rounding
}

// DefaultPolicy is 10% tax rounded half up.
var DefaultPolicy = Policy{TaxRate: decimal.NewFromFloat(0.10), Rounding: RoundHalfUp}

// Line is one requested (product, quantity, delivery option) tuple.
type Line struct {
	ProductID        string `json:"productId"`
	Quantity         int    `json:"quantity"`
	DeliveryOptionID string `json:"deliveryOptionId"`
}

// PricedLine is a validated line with the prices it was charged at.
type PricedLine struct {
	ProductID               string
	Quantity                int
	DeliveryOptionID        string
	UnitPriceCents          int64
	ShippingCents           int64
	EstimatedDeliveryTimeMs int64
}

// Quote is the result of pricing a full set of lines.
type Quote struct {
	Lines             []PricedLine
	TotalItems        int
	ProductCostCents  int64
	ShippingCostCents int64
	SubtotalCents     int64
	TaxCents          int64
	TotalCostCents    int64
}

// Summary is the payment breakdown returned to clients.
type Summary struct {
	TotalItems        int   `json:"totalItems"`
	ProductCostCents  int64 `json:"productCostCents"`
	ShippingCostCents int64 `json:"shippingCostCents"`
	SubtotalCents     int64 `json:"subtotalCents"`
	TaxCents          int64 `json:"taxCents"`
	TotalCents        int64 `json:"totalCents"`
}

func (q *Quote) Summary() Summary {
	return Summary{
		TotalItems:        q.TotalItems,
		ProductCostCents:  q.ProductCostCents,
		ShippingCostCents: q.ShippingCostCents,
		SubtotalCents:     q.SubtotalCents,
		TaxCents:          q.TaxCents,
		TotalCents:        q.TotalCostCents,
	}
}

// OrderProducts converts the priced lines into the snapshot stored with an order.
func (q *Quote) OrderProducts() []domain.OrderProduct {
	out := make([]domain.OrderProduct, 0, len(q.Lines))
	for _, l := range q.Lines {
		out = append(out, domain.OrderProduct{
			ProductID:               l.ProductID,
			Quantity:                l.Quantity,
			EstimatedDeliveryTimeMs: l.EstimatedDeliveryTimeMs,
		})
	}
	return out
}

// Engine prices carts. It has no side effects and is safe for concurrent use.
type Engine struct {
	policy Policy
}

func NewEngine(policy Policy) (*Engine, error) {
	if policy.TaxRate.IsNegative() {
		return nil, fmt.Errorf("tax rate must not be negative, got %s", policy.TaxRate)
	}
	switch policy.Rounding {
	case RoundHalfUp, RoundHalfEven:
	case "":
		policy.Rounding = RoundHalfUp
	default:
		return nil, fmt.Errorf("unknown rounding mode %q", policy.Rounding)
	}
	return &Engine{policy: policy}, nil
}

func (e *Engine) Policy() Policy { return e.policy }

// Price validates every line against catalog and computes the totals.
// Lines are checked in order and the first bad line fails the whole quote.
// All estimates are based on the same instant now.
func (e *Engine) Price(lines []Line, catalog Catalog, now time.Time) (*Quote, error) {
	if len(lines) == 0 {
		return nil, domain.Invalid("empty cart")
	}

	nowMs := now.UnixMilli()
	q := &Quote{Lines: make([]PricedLine, 0, len(lines))}
	for _, l := range lines {
		p, ok := catalog.Product(l.ProductID)
		if !ok {
			return nil, domain.Invalid("invalid productId")
		}
		opt, ok := catalog.DeliveryOption(l.DeliveryOptionID)
		if !ok {
			return nil, domain.Invalid("invalid deliveryOptionId")
		}
		if !domain.ValidCartQuantity(l.Quantity) {
			return nil, domain.Invalid("invalid quantity")
		}

		q.TotalItems += l.Quantity
		q.ProductCostCents += p.PriceCents * int64(l.Quantity)
		// shipping is charged once per line
		q.ShippingCostCents += opt.PriceCents
		q.Lines = append(q.Lines, PricedLine{
			ProductID:               p.ID,
			Quantity:                l.Quantity,
			DeliveryOptionID:        opt.ID,
			UnitPriceCents:          p.PriceCents,
			ShippingCents:           opt.PriceCents,
			EstimatedDeliveryTimeMs: opt.EstimatedDeliveryMs(nowMs),
		})
	}

	q.SubtotalCents = q.ProductCostCents + q.ShippingCostCents
	q.TotalCostCents = e.applyTax(q.SubtotalCents)
	q.TaxCents = q.TotalCostCents - q.SubtotalCents
	return q, nil
}

func (e *Engine) applyTax(subtotalCents int64) int64 {
	gross := decimal.NewFromInt(subtotalCents).Mul(decimal.NewFromInt(1).Add(e.policy.TaxRate))
	if e.policy.Rounding == RoundHalfEven {
		return gross.RoundBank(0).IntPart()
	}
	return gross.Round(0).IntPart()
}
