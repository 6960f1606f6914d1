package domain

// OrderProduct is one line of the snapshot stored with an order.
type OrderProduct struct {
	ProductID               string `json:"productId"`
	Quantity                int    `json:"quantity"`
	EstimatedDeliveryTimeMs int64  `json:"estimatedDeliveryTimeMs"`
}

// Order is immutable once created.
type Order struct {
	ID             string         `json:"id"`
	OrderTimeMs    int64          `json:"orderTimeMs"`
	TotalCostCents int64          `json:"totalCostCents"`
	Products       []OrderProduct `json:"products"`
}

// ExpandedOrderProduct carries the current catalog entry for a line. Product is
// nil when the product no longer exists.
type ExpandedOrderProduct struct {
	OrderProduct
	Product *Product `json:"product"`
}

type ExpandedOrder struct {
	ID             string                 `json:"id"`
	OrderTimeMs    int64                  `json:"orderTimeMs"`
	TotalCostCents int64                  `json:"totalCostCents"`
	Products       []ExpandedOrderProduct `json:"products"`
}

// ProductIDs returns the distinct product ids referenced by the order, in line order.
func (o Order) ProductIDs() []string {
	seen := make(map[string]struct{}, len(o.Products))
	ids := make([]string, 0, len(o.Products))
	for _, p := range o.Products {
		if _, ok := seen[p.ProductID]; ok {
			continue
		}
		seen[p.ProductID] = struct{}{}
		ids = append(ids, p.ProductID)
	}
	return ids
}
