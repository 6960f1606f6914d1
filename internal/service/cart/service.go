package cart

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"ecommerce-backend/internal/domain"
	cartrepo "ecommerce-backend/internal/repository/cart"
)

type Service struct {
	repo              cartRepo
	productRepo       productRepo
	deliveryRepo      deliveryRepo
	defaultDeliveryID string
	logger            *log.Logger
}

type cartRepo interface {
	List(ctx context.Context) ([]domain.CartItem, error)
	ListWithProducts(ctx context.Context) ([]domain.CartItemWithProduct, error)
	Get(ctx context.Context, productID string) (*domain.CartItem, error)
	Add(ctx context.Context, in cartrepo.AddInput) (*domain.CartItem, bool, error)
	Update(ctx context.Context, productID string, in cartrepo.UpdateInput) (*domain.CartItem, error)
	Delete(ctx context.Context, productID string) error
	Clear(ctx context.Context) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type deliveryRepo interface {
	GetByID(ctx context.Context, id string) (*domain.DeliveryOption, error)
}

// New builds the cart service. New rows get defaultDeliveryID as their delivery option.
func New(repo cartRepo, productRepo productRepo, deliveryRepo deliveryRepo, defaultDeliveryID string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		repo:              repo,
		productRepo:       productRepo,
		deliveryRepo:      deliveryRepo,
		defaultDeliveryID: defaultDeliveryID,
		logger:            logger,
	}
}

// AddInput is a request to put a product in the cart. A nil Quantity means 1.
type AddInput struct {
	ProductID string
	Quantity  *int
}

// UpdateInput changes quantity, delivery option, or both.
type UpdateInput struct {
	Quantity         *int
	DeliveryOptionID *string
}

func (s *Service) List(ctx context.Context) ([]domain.CartItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return items, nil
}

func (s *Service) ListExpanded(ctx context.Context) ([]domain.CartItemWithProduct, error) {
	items, err := s.repo.ListWithProducts(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.CartItemWithProduct{}
	}
	return items, nil
}

// Add inserts the product or increases the quantity of the existing row, capped
// at the cart maximum. created reports whether a new row was inserted.
func (s *Service) Add(ctx context.Context, in AddInput) (item *domain.CartItem, created bool, err error) {
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return nil, false, domain.Invalid("productId is required")
	}
	quantity := domain.MinCartQuantity
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if !domain.ValidCartQuantity(quantity) {
		return nil, false, domain.Invalid("quantity must be between 1 and 10")
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, false, err
	}

	item, created, err = s.repo.Add(ctx, cartrepo.AddInput{
		ProductID:        productID,
		Quantity:         quantity,
		DeliveryOptionID: s.defaultDeliveryID,
		MaxQuantity:      domain.MaxCartQuantity,
	})
	if err != nil {
		return nil, false, err
	}
	s.logger.Printf("cart: add product=%s quantity=%d created=%t total=%d", productID, quantity, created, item.Quantity)
	return item, created, nil
}

// Update applies a partial change to a cart row.
func (s *Service) Update(ctx context.Context, productID string, in UpdateInput) (*domain.CartItem, error) {
	if _, err := s.repo.Get(ctx, productID); err != nil {
		return nil, err
	}
	if in.Quantity == nil && in.DeliveryOptionID == nil {
		return nil, domain.Invalid("no valid update data provided")
	}
	if in.Quantity != nil && !domain.ValidCartQuantity(*in.Quantity) {
		return nil, domain.Invalid("quantity must be between 1 and 10")
	}
	if in.DeliveryOptionID != nil {
		if _, err := s.deliveryRepo.GetByID(ctx, *in.DeliveryOptionID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.Invalid("invalid delivery option")
			}
			return nil, err
		}
	}

	return s.repo.Update(ctx, productID, cartrepo.UpdateInput{
		Quantity:         in.Quantity,
		DeliveryOptionID: in.DeliveryOptionID,
	})
}

func (s *Service) Remove(ctx context.Context, productID string) error {
	if err := s.repo.Delete(ctx, productID); err != nil {
		return err
	}
	s.logger.Printf("cart: removed product=%s", productID)
	return nil
}

func (s *Service) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
