package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jafarshop/stockroom/internal/codegen"
	"github.com/jafarshop/stockroom/internal/config"
	"github.com/jafarshop/stockroom/internal/repository"
	"github.com/jafarshop/stockroom/internal/service"
	"github.com/jafarshop/stockroom/internal/storage"
	"github.com/jafarshop/stockroom/pkg/errors"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/find-sku/main.go <sku>")
		fmt.Println("Example: go run cmd/find-sku/main.go \"AZU-DEN-BLU-M\"")
		os.Exit(1)
	}

	targetSKU := os.Args[1]

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	store, closeStore, err := storage.Open(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	repos := repository.NewRepositories(store, codegen.NewGenerator(), logger)
	skuService := service.NewSKUService(repos, logger)

	fmt.Printf("Searching for SKU: %s\n\n", targetSKU)

	match, err := skuService.FindBySKU(context.Background(), targetSKU)
	if err != nil {
		if errors.IsNotFound(err) {
			fmt.Printf("SKU '%s' not found in the %s store.\n", targetSKU, cfg.StorageDriver)
			fmt.Printf("\nMake sure:\n")
			fmt.Printf("  1. The SKU is spelled as BRAND-PRODUCT-COLOR-SIZE\n")
			fmt.Printf("  2. STORAGE_DRIVER points at the store the dashboard uses\n")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Failed to search products: %v\n", err)
		os.Exit(1)
	}

	product, variant := match.Product, match.Variant
	fmt.Printf("Found SKU!\n\n")
	fmt.Printf("SKU: %s\n", variant.SKU)
	fmt.Printf("Product: %s (%s, %s)\n", product.Name, product.Brand, product.Category)
	fmt.Printf("Variant: %s / %s\n", variant.Size, variant.Color)
	fmt.Printf("Price: %.2f\n", variant.Price)
	fmt.Printf("Stock: %d\n", variant.Stock)
	fmt.Printf("Barcode: %s\n", variant.Barcode)
	fmt.Printf("\nIDs:\n")
	fmt.Printf("  Product ID: %s\n", product.ID)
	fmt.Printf("  Variant ID: %s\n", variant.ID)
}
