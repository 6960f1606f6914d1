package seed

import "ecommerce-backend/internal/domain"

func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:         "e43638ce-6aa0-4b85-b27f-e1d07eb678c6",
			Image:      "images/products/athletic-cotton-socks-6-pairs.jpg",
			Name:       "Black and Gray Athletic Cotton Socks - 6 Pairs",
			Rating:     domain.Rating{Stars: 4.5, Count: 87},
			PriceCents: 1090,
			Keywords:   []string{"socks", "sports", "apparel"},
		},
		{
			ID:         "15b6fc6f-327a-4ec4-896f-486349e85a3d",
			Image:      "images/products/intermediate-composite-basketball.jpg",
			Name:       "Intermediate Size Basketball",
			Rating:     domain.Rating{Stars: 4, Count: 127},
			PriceCents: 2095,
			Keywords:   []string{"sports", "basketballs"},
		},
		{
			ID:         "83d4ca15-0f35-48f5-b7a3-1ea210004f2e",
			Image:      "images/products/adults-plain-cotton-tshirt-2-pack-teal.jpg",
			Name:       "Adults Plain Cotton T-Shirt - 2 Pack",
			Rating:     domain.Rating{Stars: 4.5, Count: 56},
			PriceCents: 799,
			Keywords:   []string{"tshirts", "apparel", "mens"},
		},
		{
			ID:         "54e0eccd-8f36-462b-b68a-8182611d9add",
			Image:      "images/products/black-2-slot-toaster.jpg",
			Name:       "2 Slot Toaster - Black",
			Rating:     domain.Rating{Stars: 5, Count: 2197},
			PriceCents: 1899,
			Keywords:   []string{"toaster", "kitchen", "appliances"},
		},
		{
			ID:         "3ebe75dc-64d2-4137-8860-1f5a963e534b",
			Image:      "images/products/6-piece-white-dinner-plate-set.jpg",
			Name:       "6 Piece White Dinner Plate Set",
			Rating:     domain.Rating{Stars: 4, Count: 37},
			PriceCents: 2067,
			Keywords:   []string{"plates", "kitchen", "dining"},
		},
		{
			ID:         "8c9c52b5-5a19-4bcb-a5d1-158a74287c53",
			Image:      "images/products/6-piece-non-stick-baking-set.webp",
			Name:       "6-Piece Nonstick, Carbon Steel Oven Bakeware Baking Set",
			Rating:     domain.Rating{Stars: 4.5, Count: 175},
			PriceCents: 3499,
			Keywords:   []string{"kitchen", "cookware"},
		},
	}
}

// DefaultDeliveryOptions are the standard, express and overnight options.
// Option "1" is the default for new cart rows.
func DefaultDeliveryOptions() []domain.DeliveryOption {
	return []domain.DeliveryOption{
		{ID: "1", DeliveryDays: 7, PriceCents: 0},
		{ID: "2", DeliveryDays: 3, PriceCents: 499},
		{ID: "3", DeliveryDays: 1, PriceCents: 999},
	}
}

func DefaultCart() []domain.CartItem {
	return []domain.CartItem{
		{ProductID: "e43638ce-6aa0-4b85-b27f-e1d07eb678c6", Quantity: 2, DeliveryOptionID: "1"},
		{ProductID: "15b6fc6f-327a-4ec4-896f-486349e85a3d", Quantity: 1, DeliveryOptionID: "2"},
	}
}
