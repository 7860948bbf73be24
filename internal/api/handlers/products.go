package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/stockroom/internal/domain"
	"github.com/jafarshop/stockroom/internal/repository"
)

// CreateProductRequest represents the product creation payload
type CreateProductRequest struct {
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Category string `json:"category"`
}

// UpdateProductRequest carries the fields to change; absent fields are kept
type UpdateProductRequest struct {
	Name     *string `json:"name"`
	Brand    *string `json:"brand"`
	Category *string `json:"category"`
}

// HandleListProducts handles GET /api/products
func HandleListProducts(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := repos.Product.List(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// HandleCreateProduct handles POST /api/products
func HandleCreateProduct(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadBody(c, err)
			return
		}

		if blank(req.Name) || blank(req.Brand) || blank(req.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": missingFieldsMessage})
			return
		}

		product, err := repos.Product.Create(c.Request.Context(), req.Name, req.Brand, req.Category)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		logger.Info("Product created",
			zap.String("product_id", product.ID),
			zap.String("name", product.Name),
		)
		c.JSON(http.StatusCreated, product)
	}
}

// HandleGetProduct handles GET /api/products/:id
func HandleGetProduct(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := repos.Product.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// HandleUpdateProduct handles PUT /api/products/:id
func HandleUpdateProduct(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadBody(c, err)
			return
		}

		product, err := repos.Product.Update(c.Request.Context(), c.Param("id"), domain.ProductPatch{
			Name:     req.Name,
			Brand:    req.Brand,
			Category: req.Category,
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// HandleDeleteProduct handles DELETE /api/products/:id
func HandleDeleteProduct(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := repos.Product.Delete(c.Request.Context(), id); err != nil {
			respondError(c, logger, err)
			return
		}

		logger.Info("Product deleted", zap.String("product_id", id))
		c.Status(http.StatusNoContent)
	}
}
