package pricing

import "ecommerce-backend/internal/domain"

// Catalog resolves the reference data a quote depends on.
type Catalog interface {
	Product(id string) (domain.Product, bool)
	DeliveryOption(id string) (domain.DeliveryOption, bool)
}

type mapCatalog struct {
	products map[string]domain.Product
	options  map[string]domain.DeliveryOption
}

// NewCatalog indexes a snapshot of products and delivery options by id.
func NewCatalog(products []domain.Product, options []domain.DeliveryOption) Catalog {
	c := mapCatalog{
		products: make(map[string]domain.Product, len(products)),
		options:  make(map[string]domain.DeliveryOption, len(options)),
	}
	for _, p := range products {
		c.products[p.ID] = p
	}
	for _, o := range options {
		c.options[o.ID] = o
	}
	return c
}

func (c mapCatalog) Product(id string) (domain.Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

func (c mapCatalog) DeliveryOption(id string) (domain.DeliveryOption, bool) {
	o, ok := c.options[id]
	return o, ok
}
