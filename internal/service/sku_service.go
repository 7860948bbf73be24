package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jafarshop/stockroom/internal/domain"
	"github.com/jafarshop/stockroom/internal/repository"
	"github.com/jafarshop/stockroom/pkg/errors"
)

type skuService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewSKUService creates a new SKU service
func NewSKUService(repos *repository.Repositories, logger *zap.Logger) *skuService {
	return &skuService{
		repos:  repos,
		logger: logger,
	}
}

// FindBySKU returns the first variant carrying sku. SKUs are not unique
// across products, so later matches are ignored.
func (s *skuService) FindBySKU(ctx context.Context, sku string) (*VariantMatch, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, errors.NewValidation("sku", "is required")
	}
	return s.find(ctx, "sku", sku, func(_ domain.Product, v domain.Variant) bool {
		return strings.EqualFold(v.SKU, sku)
	})
}

// FindByBarcode returns the variant labelled with barcode
func (s *skuService) FindByBarcode(ctx context.Context, barcode string) (*VariantMatch, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, errors.NewValidation("barcode", "is required")
	}
	return s.find(ctx, "barcode", barcode, func(_ domain.Product, v domain.Variant) bool {
		return v.Barcode == barcode
	})
}

func (s *skuService) find(ctx context.Context, field, value string, match func(domain.Product, domain.Variant) bool) (*VariantMatch, error) {
	product, variant, err := s.repos.Product.FindVariant(ctx, match)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewNotFound("variant", field+" "+value)
		}
		return nil, err
	}

	s.logger.Debug("Variant lookup matched",
		zap.String(field, value),
		zap.String("product_id", product.ID),
		zap.String("variant_id", variant.ID),
	)
	return &VariantMatch{Product: *product, Variant: *variant}, nil
}
