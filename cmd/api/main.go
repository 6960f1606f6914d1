package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/db"
	"ecommerce-backend/internal/httpserver"
	"ecommerce-backend/internal/pricing"
	"ecommerce-backend/internal/repository"
	"ecommerce-backend/internal/search"
	"ecommerce-backend/internal/seed"
	cartsvc "ecommerce-backend/internal/service/cart"
	checkoutsvc "ecommerce-backend/internal/service/checkout"
	deliverysvc "ecommerce-backend/internal/service/delivery"
	ordersvc "ecommerce-backend/internal/service/order"
	productsvc "ecommerce-backend/internal/service/product"
)

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	if err := config.LoadDotEnv(); err != nil {
		logger.Fatalf("load env: %v", err)
	}
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid config: %v", err)
	}

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	matcher, err := search.New(cfg.SearchMode)
	if err != nil {
		logger.Fatalf("init search: %v", err)
	}
	engine, err := pricing.NewEngine(pricing.Policy{
		TaxRate:  cfg.TaxRate,
		Rounding: pricing.Rounding(cfg.TaxRounding),
	})
	if err != nil {
		logger.Fatalf("init pricing: %v", err)
	}

	repos := repository.NewRepos(dbpool, logger)
	txManager := repository.NewTxManager(dbpool, logger)

	productService := productsvc.New(repos.Products, matcher)
	deliveryService := deliverysvc.New(repos.DeliveryOptions)
	cartService := cartsvc.New(repos.Carts, repos.Products, repos.DeliveryOptions, cfg.DefaultDeliveryOptionID, logger)
	orderService := ordersvc.New(repos.Orders, repos.Products)
	checkoutService := checkoutsvc.New(txManager, engine, checkoutsvc.Source(cfg.CheckoutSource), logger)

	deps := httpserver.Deps{
		ProductSvc:     productService,
		DeliverySvc:    deliveryService,
		CartSvc:        cartService,
		OrderSvc:       orderService,
		CheckoutSvc:    checkoutService,
		ImagesDir:      cfg.ImagesDir,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if cfg.EnableReset {
		deps.Reset = func(ctx context.Context) (seed.Stats, error) {
			return seed.Reset(ctx, dbpool, logger)
		}
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, deps)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (search=%s checkout=%s tax=%s/%s)",
			cfg.HTTPAddr, cfg.SearchMode, cfg.CheckoutSource, cfg.TaxRate, cfg.TaxRounding)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
