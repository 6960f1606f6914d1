package domain

import "time"

type Rating struct {
	Stars float64 `json:"stars"`
	Count int     `json:"count"`
}

type Product struct {
	ID         string    `json:"id"`
	Image      string    `json:"image"`
	Name       string    `json:"name"`
	Rating     Rating    `json:"rating"`
	PriceCents int64     `json:"priceCents"`
	Keywords   []string  `json:"keywords"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type DeliveryOption struct {
	ID           string `json:"id"`
	DeliveryDays int    `json:"deliveryDays"`
	PriceCents   int64  `json:"priceCents"`
}

// DeliveryOptionEstimate is a DeliveryOption with the delivery time it would
// yield if chosen now.
type DeliveryOptionEstimate struct {
	DeliveryOption
	EstimatedDeliveryTimeMs int64 `json:"estimatedDeliveryTimeMs"`
}

// MillisPerDay converts delivery days to epoch-millisecond offsets.
const MillisPerDay int64 = 86_400_000

// EstimatedDeliveryMs returns the delivery instant for an order placed at nowMs.
func (d DeliveryOption) EstimatedDeliveryMs(nowMs int64) int64 {
	return nowMs + int64(d.DeliveryDays)*MillisPerDay
}
