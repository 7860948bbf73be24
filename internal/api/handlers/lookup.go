package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/stockroom/internal/repository"
	"github.com/jafarshop/stockroom/internal/service"
)

// HandleLookup handles GET /api/lookup?sku=... and GET /api/lookup?barcode=...
func HandleLookup(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	skuService := service.NewSKUService(repos, logger)

	return func(c *gin.Context) {
		var (
			match *service.VariantMatch
			err   error
		)

		switch {
		case c.Query("barcode") != "":
			match, err = skuService.FindByBarcode(c.Request.Context(), c.Query("barcode"))
		case c.Query("sku") != "":
			match, err = skuService.FindBySKU(c.Request.Context(), c.Query("sku"))
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "sku or barcode query parameter is required"})
			return
		}

		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, match)
	}
}
