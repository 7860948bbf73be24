package repository

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jafarshop/stockroom/internal/domain"
)

// Document keys, one per collection.
const (
	ProductsKey = "inventory_data"
	OrdersKey   = "orders_data"
)

// DocumentStore persists one JSON document per collection key.
type DocumentStore interface {
	// Load decodes the document stored under key into dst.
	// It reports false when nothing is stored under key yet.
	Load(ctx context.Context, key string, dst any) (bool, error)
	Save(ctx context.Context, key string, value any) error
}

// Generator mints identifiers and codes for new records.
type Generator interface {
	Now() time.Time
	NewID() (string, error)
	NewOrderID() string
	NewBarcode() (string, error)
}

// ProductRepository owns the product collection and its nested variants.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, name, brand, category string) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	AddVariant(ctx context.Context, productID string, in domain.VariantInput) (*domain.Variant, error)
	UpdateVariant(ctx context.Context, productID, variantID string, patch domain.VariantPatch) (*domain.Variant, error)
	DeleteVariant(ctx context.Context, productID, variantID string) error
	FindVariant(ctx context.Context, match func(domain.Product, domain.Variant) bool) (*domain.Product, *domain.Variant, error)
}

// OrderRepository owns the order collection.
type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	Create(ctx context.Context, items []domain.OrderItem, customerName string) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	// UpdateStatus returns the updated order and the status it replaced.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, domain.OrderStatus, error)
	Delete(ctx context.Context, id string) error
}

// Repositories groups the repositories handed to the API and services.
type Repositories struct {
	Product ProductRepository
	Order   OrderRepository
}

// NewRepositories builds both repositories over the same document store.
func NewRepositories(store DocumentStore, gen Generator, logger *zap.Logger) *Repositories {
	return &Repositories{
		Product: NewProductRepository(store, gen, logger),
		Order:   NewOrderRepository(store, gen, logger),
	}
}
