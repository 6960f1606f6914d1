package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/pricing"
	"ecommerce-backend/internal/seed"
	cartsvc "ecommerce-backend/internal/service/cart"
	checkoutsvc "ecommerce-backend/internal/service/checkout"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

type productService interface {
	List(ctx context.Context, query string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

type deliveryService interface {
	List(ctx context.Context) ([]domain.DeliveryOption, error)
	ListWithEstimates(ctx context.Context) ([]domain.DeliveryOptionEstimate, error)
}

type cartService interface {
	List(ctx context.Context) ([]domain.CartItem, error)
	ListExpanded(ctx context.Context) ([]domain.CartItemWithProduct, error)
	Add(ctx context.Context, in cartsvc.AddInput) (*domain.CartItem, bool, error)
	Update(ctx context.Context, productID string, in cartsvc.UpdateInput) (*domain.CartItem, error)
	Remove(ctx context.Context, productID string) error
}

type orderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListExpanded(ctx context.Context) ([]domain.ExpandedOrder, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	GetExpanded(ctx context.Context, id string) (*domain.ExpandedOrder, error)
	Delete(ctx context.Context, id string) error
}

type checkoutService interface {
	PlaceOrder(ctx context.Context, in checkoutsvc.PlaceOrderInput) (*domain.Order, error)
	PaymentSummary(ctx context.Context) (pricing.Summary, error)
	Source() checkoutsvc.Source
}

// ResetFunc wipes and reseeds the store.
type ResetFunc func(ctx context.Context) (seed.Stats, error)

// Deps carries the services the handlers call.
type Deps struct {
	ProductSvc  productService
	DeliverySvc deliveryService
	CartSvc     cartService
	OrderSvc    orderService
	CheckoutSvc checkoutService
	// Reset is optional; POST /api/reset is only registered when it is set.
	Reset ResetFunc

	ImagesDir      string
	AllowedOrigins []string
	Validator      *validatorv10.Validate
}

func (d Deps) validate() error {
	switch {
	case d.ProductSvc == nil:
		return errors.New("product service required")
	case d.DeliverySvc == nil:
		return errors.New("delivery service required")
	case d.CartSvc == nil:
		return errors.New("cart service required")
	case d.OrderSvc == nil:
		return errors.New("order service required")
	case d.CheckoutSvc == nil:
		return errors.New("checkout service required")
	}
	return nil
}

type handlers struct {
	deps     Deps
	logger   *log.Logger
	validate *validatorv10.Validate
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db Pinger, deps Deps) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	v := deps.Validator
	if v == nil {
		v = NewValidator()
	}
	h := &handlers{deps: deps, logger: logger, validate: v}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(deps.AllowedOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	if deps.ImagesDir != "" {
		router.Static("/images", deps.ImagesDir)
	}

	api := router.Group("/api")
	api.GET("/products", h.listProducts)
	api.GET("/products/:id", h.getProduct)

	api.GET("/delivery-options", h.listDeliveryOptions)

	api.GET("/cart-items", h.listCartItems)
	api.POST("/cart-items", h.addCartItem)
	api.PUT("/cart-items/:productId", h.updateCartItem)
	api.DELETE("/cart-items/:productId", h.removeCartItem)

	api.GET("/orders", h.listOrders)
	api.GET("/orders/:id", h.getOrder)
	api.POST("/orders", h.placeOrder)
	api.DELETE("/orders/:id", h.deleteOrder)

	api.GET("/payment-summary", h.paymentSummary)

	if deps.Reset != nil {
		api.POST("/reset", h.reset)
	}

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
