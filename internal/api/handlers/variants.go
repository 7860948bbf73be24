package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jafarshop/stockroom/internal/domain"
	"github.com/jafarshop/stockroom/internal/repository"
	"github.com/jafarshop/stockroom/pkg/errors"
)

// AddVariantRequest represents the variant creation payload.
// Price and stock accept JSON numbers or numeric strings.
type AddVariantRequest struct {
	Size  string           `json:"size"`
	Color string           `json:"color"`
	Price *decimal.Decimal `json:"price"`
	Stock *decimal.Decimal `json:"stock"`
}

// UpdateVariantRequest represents the variant update payload
type UpdateVariantRequest struct {
	Price *decimal.Decimal `json:"price"`
	Stock *decimal.Decimal `json:"stock"`
}

// HandleAddVariant handles POST /api/products/:id/variants
func HandleAddVariant(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddVariantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadBody(c, err)
			return
		}

		if blank(req.Size) || blank(req.Color) || req.Price == nil || req.Stock == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": missingFieldsMessage})
			return
		}

		price := priceValue(req.Price)
		stock, err := stockValue(req.Stock)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		productID := c.Param("id")
		variant, err := repos.Product.AddVariant(c.Request.Context(), productID, domain.VariantInput{
			Size:  req.Size,
			Color: req.Color,
			Price: price,
			Stock: stock,
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}

		logger.Info("Variant added",
			zap.String("product_id", productID),
			zap.String("variant_id", variant.ID),
			zap.String("sku", variant.SKU),
		)
		c.JSON(http.StatusCreated, variant)
	}
}

// HandleUpdateVariant handles PUT /api/products/:id/variants/:vid
func HandleUpdateVariant(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateVariantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadBody(c, err)
			return
		}

		if req.Stock == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock quantity is required"})
			return
		}
		stock, err := stockValue(req.Stock)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		variant, err := repos.Product.UpdateVariant(c.Request.Context(), c.Param("id"), c.Param("vid"), domain.VariantPatch{
			Price: priceValue(req.Price),
			Stock: stock,
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, variant)
	}
}

// HandleDeleteVariant handles DELETE /api/products/:id/variants/:vid
func HandleDeleteVariant(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, variantID := c.Param("id"), c.Param("vid")
		if err := repos.Product.DeleteVariant(c.Request.Context(), productID, variantID); err != nil {
			respondError(c, logger, err)
			return
		}

		logger.Info("Variant deleted",
			zap.String("product_id", productID),
			zap.String("variant_id", variantID),
		)
		c.Status(http.StatusNoContent)
	}
}

func priceValue(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := d.InexactFloat64()
	return &v
}

// stockValue converts a decimal stock count, rejecting negatives, fractions
// and values that do not fit an int32.
func stockValue(d *decimal.Decimal) (*int, error) {
	if d == nil {
		return nil, nil
	}
	if d.IsNegative() {
		return nil, errors.NewValidation("stock", "must be non-negative")
	}
	if !d.IsInteger() {
		return nil, errors.NewValidation("stock", "must be a whole number")
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return nil, errors.NewValidation("stock", "is too large")
	}
	v := int(d.IntPart())
	return &v, nil
}
