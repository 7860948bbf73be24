package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/stockroom/internal/config"
	"github.com/jafarshop/stockroom/internal/repository"
	"github.com/jafarshop/stockroom/internal/service"
)

// HandleInventoryStats handles GET /api/stats
func HandleInventoryStats(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	statsService := service.NewStatsService(repos, logger)

	return func(c *gin.Context) {
		stats, err := statsService.InventoryStats(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// HandleSalesStats handles GET /api/stats/sales
func HandleSalesStats(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	statsService := service.NewStatsService(repos, logger)

	return func(c *gin.Context) {
		stats, err := statsService.SalesStats(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// HandleLowStock handles GET /api/stats/low-stock?threshold=N
func HandleLowStock(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	statsService := service.NewStatsService(repos, logger)

	return func(c *gin.Context) {
		threshold := cfg.LowStockThreshold
		if raw := c.Query("threshold"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "threshold must be a non-negative integer"})
				return
			}
			threshold = n
		}

		products, err := statsService.LowStock(c.Request.Context(), threshold)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
