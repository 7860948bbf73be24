package service

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const collectTimeout = 5 * time.Second

// InventoryReader is the part of the stats service the collector needs.
type InventoryReader interface {
	InventoryStats(ctx context.Context) (InventoryStats, error)
}

// InventoryCollector exports inventory totals as gauges, computed at scrape time.
type InventoryCollector struct {
	stats    InventoryReader
	logger   *zap.Logger
	products *prometheus.Desc
	variants *prometheus.Desc
	stock    *prometheus.Desc
}

// NewInventoryCollector creates a collector reading from stats
func NewInventoryCollector(stats InventoryReader, logger *zap.Logger) *InventoryCollector {
	return &InventoryCollector{
		stats:  stats,
		logger: logger,
		products: prometheus.NewDesc("stockroom_inventory_products",
			"Number of products in the catalog.", nil, nil),
		variants: prometheus.NewDesc("stockroom_inventory_variants",
			"Number of variants across all products.", nil, nil),
		stock: prometheus.NewDesc("stockroom_inventory_stock",
			"Units in stock across all variants.", nil, nil),
	}
}

func (c *InventoryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.products
	ch <- c.variants
	ch <- c.stock
}

func (c *InventoryCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	stats, err := c.stats.InventoryStats(ctx)
	if err != nil {
		c.logger.Error("Failed to collect inventory stats", zap.Error(err))
		ch <- prometheus.NewInvalidMetric(c.products, err)
		return
	}

	ch <- prometheus.MustNewConstMetric(c.products, prometheus.GaugeValue, float64(stats.TotalProducts))
	ch <- prometheus.MustNewConstMetric(c.variants, prometheus.GaugeValue, float64(stats.TotalVariants))
	ch <- prometheus.MustNewConstMetric(c.stock, prometheus.GaugeValue, float64(stats.TotalStock))
}
