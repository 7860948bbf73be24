package repository

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/jafarshop/stockroom/internal/codegen"
	"github.com/jafarshop/stockroom/internal/domain"
	"github.com/jafarshop/stockroom/pkg/errors"
)

const maxIDAttempts = 5

type productRepository struct {
	mu     sync.Mutex
	store  DocumentStore
	gen    Generator
	logger *zap.Logger
}

// NewProductRepository creates a product repository over the given store
func NewProductRepository(store DocumentStore, gen Generator, logger *zap.Logger) *productRepository {
	return &productRepository{
		store:  store,
		gen:    gen,
		logger: logger,
	}
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

func (r *productRepository) Create(ctx context.Context, name, brand, category string) (*domain.Product, error) {
	name, brand, category = strings.TrimSpace(name), strings.TrimSpace(brand), strings.TrimSpace(category)
	if err := requireFields(map[string]string{"name": name, "brand": brand, "category": category}); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	id, err := mintID(r.gen, func(candidate string) bool {
		return productIndex(products, candidate) >= 0
	})
	if err != nil {
		r.logger.Error("Failed to mint product ID", zap.Error(err))
		return nil, err
	}

	product := domain.Product{
		ID:        id,
		Name:      name,
		Brand:     brand,
		Category:  category,
		Variants:  []domain.Variant{},
		CreatedAt: r.gen.Now().UTC(),
	}
	products = append(products, product)

	if err := r.save(ctx, products); err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepository) Get(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	i := productIndex(products, id)
	if i < 0 {
		return nil, errors.NewNotFound("product", id)
	}
	return &products[i], nil
}

func (r *productRepository) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	// present-but-blank values are rejected, not treated as unchanged
	name, err := patchedString("name", patch.Name)
	if err != nil {
		return nil, err
	}
	brand, err := patchedString("brand", patch.Brand)
	if err != nil {
		return nil, err
	}
	category, err := patchedString("category", patch.Category)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	i := productIndex(products, id)
	if i < 0 {
		return nil, errors.NewNotFound("product", id)
	}

	product := &products[i]
	if name != nil {
		product.Name = *name
	}
	if brand != nil {
		product.Brand = *brand
	}
	if category != nil {
		product.Category = *category
	}

	if err := r.save(ctx, products); err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return err
	}

	i := productIndex(products, id)
	if i < 0 {
		return errors.NewNotFound("product", id)
	}

	products = append(products[:i], products[i+1:]...)
	return r.save(ctx, products)
}

func (r *productRepository) AddVariant(ctx context.Context, productID string, in domain.VariantInput) (*domain.Variant, error) {
	size, color := strings.TrimSpace(in.Size), strings.TrimSpace(in.Color)
	if err := requireFields(map[string]string{"size": size, "color": color}); err != nil {
		return nil, err
	}
	if in.Price == nil {
		return nil, errors.NewValidation("price", "is required")
	}
	if in.Stock == nil {
		return nil, errors.NewValidation("stock", "is required")
	}
	if err := validatePrice(*in.Price); err != nil {
		return nil, err
	}
	if err := validateStock(*in.Stock); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	i := productIndex(products, productID)
	if i < 0 {
		return nil, errors.NewNotFound("product", productID)
	}
	product := &products[i]

	id, err := mintID(r.gen, func(candidate string) bool {
		return product.VariantIndex(candidate) >= 0
	})
	if err != nil {
		r.logger.Error("Failed to mint variant ID", zap.Error(err))
		return nil, err
	}
	barcode, err := r.gen.NewBarcode()
	if err != nil {
		r.logger.Error("Failed to generate barcode", zap.Error(err))
		return nil, err
	}

	variant := domain.Variant{
		ID:      id,
		Size:    size,
		Color:   color,
		Price:   *in.Price,
		Stock:   *in.Stock,
		SKU:     codegen.ComputeSKU(product.Brand, product.Name, color, size),
		Barcode: barcode,
	}
	product.Variants = append(product.Variants, variant)

	if err := r.save(ctx, products); err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *productRepository) UpdateVariant(ctx context.Context, productID, variantID string, patch domain.VariantPatch) (*domain.Variant, error) {
	if patch.Price != nil {
		if err := validatePrice(*patch.Price); err != nil {
			return nil, err
		}
	}
	if patch.Stock != nil {
		if err := validateStock(*patch.Stock); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	i := productIndex(products, productID)
	if i < 0 {
		return nil, errors.NewNotFound("product", productID)
	}
	j := products[i].VariantIndex(variantID)
	if j < 0 {
		return nil, errors.NewNotFound("variant", variantID)
	}

	variant := &products[i].Variants[j]
	if patch.Price != nil {
		variant.Price = *patch.Price
	}
	if patch.Stock != nil {
		variant.Stock = *patch.Stock
	}

	if err := r.save(ctx, products); err != nil {
		return nil, err
	}
	return variant, nil
}

func (r *productRepository) DeleteVariant(ctx context.Context, productID, variantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return err
	}

	i := productIndex(products, productID)
	if i < 0 {
		return errors.NewNotFound("product", productID)
	}
	j := products[i].VariantIndex(variantID)
	if j < 0 {
		return errors.NewNotFound("variant", variantID)
	}

	products[i].Variants = append(products[i].Variants[:j], products[i].Variants[j+1:]...)
	return r.save(ctx, products)
}

// FindVariant returns the first product/variant pair accepted by match, in insertion order.
func (r *productRepository) FindVariant(ctx context.Context, match func(domain.Product, domain.Variant) bool) (*domain.Product, *domain.Variant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return nil, nil, err
	}

	for i := range products {
		for j := range products[i].Variants {
			if match(products[i], products[i].Variants[j]) {
				return &products[i], &products[i].Variants[j], nil
			}
		}
	}
	return nil, nil, errors.NewNotFound("variant", "no match")
}

func (r *productRepository) load(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if _, err := r.store.Load(ctx, ProductsKey, &products); err != nil {
		r.logger.Error("Failed to load products", zap.Error(err))
		return nil, fmt.Errorf("load products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	for i := range products {
		if products[i].Variants == nil {
			products[i].Variants = []domain.Variant{}
		}
	}
	return products, nil
}

func (r *productRepository) save(ctx context.Context, products []domain.Product) error {
	if err := r.store.Save(ctx, ProductsKey, products); err != nil {
		r.logger.Error("Failed to save products", zap.Error(err))
		return fmt.Errorf("save products: %w", err)
	}
	return nil
}

func productIndex(products []domain.Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}

// mintID draws ids until one is not taken.
func mintID(gen Generator, taken func(string) bool) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := gen.NewID()
		if err != nil {
			return "", err
		}
		if !taken(id) {
			return id, nil
		}
	}
	return "", &errors.ErrGeneration{What: "id", Err: fmt.Errorf("no free id after %d attempts", maxIDAttempts)}
}

func requireFields(fields map[string]string) error {
	// fixed order keeps the reported field stable
	for _, name := range []string{"name", "brand", "category", "size", "color"} {
		if v, ok := fields[name]; ok && v == "" {
			return errors.NewValidation(name, "is required")
		}
	}
	return nil
}

func patchedString(field string, v *string) (*string, error) {
	if v == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil, errors.NewValidation(field, "must not be blank")
	}
	return &trimmed, nil
}

func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return errors.NewValidation("price", "must be a number")
	}
	if price < 0 {
		return errors.NewValidation("price", "must be non-negative")
	}
	return nil
}

func validateStock(stock int) error {
	if stock < 0 {
		return errors.NewValidation("stock", "must be non-negative")
	}
	return nil
}
