package main

import (
	"context"
	"flag"
	"log"
	"os"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/db"
	"ecommerce-backend/internal/seed"
)

func main() {
	var (
		withCart bool
		reset    bool
	)
	flag.BoolVar(&withCart, "cart", false, "Also load the default cart")
	flag.BoolVar(&reset, "reset", false, "Wipe all tables before loading defaults")
	flag.Parse()

	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	if err := config.LoadDotEnv(); err != nil {
		logger.Fatalf("load env: %v", err)
	}
	cfg := config.FromEnv()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if reset {
		stats, err := seed.Reset(ctx, pool, logger)
		if err != nil {
			logger.Fatalf("seed reset: %v", err)
		}
		logger.Printf("seed reset: products=%d delivery_options=%d cart_items=%d orders=%d",
			stats.Products, stats.DeliveryOptions, stats.CartItems, stats.Orders)
		return
	}

	if err := seed.Apply(ctx, pool, logger); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}
	if withCart {
		if err := seed.ApplyCart(ctx, pool, logger); err != nil {
			logger.Fatalf("seed cart: %v", err)
		}
	}

	logger.Println("seed applied")
}
