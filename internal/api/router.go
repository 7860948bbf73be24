package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/jafarshop/stockroom/internal/api/handlers"
	"github.com/jafarshop/stockroom/internal/api/middleware"
	"github.com/jafarshop/stockroom/internal/config"
	"github.com/jafarshop/stockroom/internal/repository"
	"github.com/jafarshop/stockroom/internal/service"
)

// NewRouter creates and configures the Gin router. HTTP and inventory
// metrics are registered with registry and served from /metrics; request
// spans go to tp.
func NewRouter(cfg *config.Config, repos *repository.Repositories, registry *prometheus.Registry, tp trace.TracerProvider, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	registry.MustRegister(service.NewInventoryCollector(service.NewStatsService(repos, logger), logger))
	metrics := middleware.NewMetrics(registry)

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Tracing(tp, cfg.ServiceName))
	router.Use(metrics.Middleware())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	api := router.Group("/api")
	api.Use(middleware.AdminAuth(cfg.Admin.PasswordHash, logger))
	{
		api.GET("/products", handlers.HandleListProducts(repos, logger))
		api.POST("/products", handlers.HandleCreateProduct(repos, logger))
		api.GET("/products/:id", handlers.HandleGetProduct(repos, logger))
		api.PUT("/products/:id", handlers.HandleUpdateProduct(repos, logger))
		api.DELETE("/products/:id", handlers.HandleDeleteProduct(repos, logger))

		api.POST("/products/:id/variants", handlers.HandleAddVariant(repos, logger))
		api.PUT("/products/:id/variants/:vid", handlers.HandleUpdateVariant(repos, logger))
		api.DELETE("/products/:id/variants/:vid", handlers.HandleDeleteVariant(repos, logger))

		api.GET("/orders", handlers.HandleListOrders(repos, logger))
		api.POST("/orders", handlers.HandleCreateOrder(repos, logger))
		api.GET("/orders/:id", handlers.HandleGetOrder(repos, logger))
		api.PUT("/orders/:id/status", handlers.HandleUpdateOrderStatus(repos, logger))
		api.DELETE("/orders/:id", handlers.HandleDeleteOrder(repos, logger))

		api.GET("/stats", handlers.HandleInventoryStats(repos, logger))
		api.GET("/stats/sales", handlers.HandleSalesStats(repos, logger))
		api.GET("/stats/low-stock", handlers.HandleLowStock(cfg, repos, logger))

		api.GET("/lookup", handlers.HandleLookup(repos, logger))
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", middleware.GetRequestID(c)),
		}
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.IsValid() {
			fields = append(fields,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
		logger.Info("HTTP request", fields...)
	}
}
