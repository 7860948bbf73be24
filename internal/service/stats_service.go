package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jafarshop/stockroom/internal/domain"
	"github.com/jafarshop/stockroom/internal/repository"
)

// InventoryStats summarizes the product collection
type InventoryStats struct {
	TotalProducts int `json:"totalProducts"`
	TotalVariants int `json:"totalVariants"`
	TotalStock    int `json:"totalStock"`
}

// SalesStats summarizes the order collection
type SalesStats struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalOrders       int     `json:"totalOrders"`
	CompletedOrders   int     `json:"completedOrders"`
	TodayOrders       int     `json:"todayOrders"`
	TodayRevenue      float64 `json:"todayRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// LowStockProduct is a product whose summed variant stock fell under the threshold
type LowStockProduct struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	TotalStock int    `json:"totalStock"`
}

type statsService struct {
	repos  *repository.Repositories
	now    func() time.Time
	logger *zap.Logger
}

// StatsOption configures the stats service
type StatsOption func(*statsService)

// WithStatsClock sets the clock that decides which orders count as today's.
func WithStatsClock(now func() time.Time) StatsOption {
	return func(s *statsService) {
		s.now = now
	}
}

// NewStatsService creates a new stats service
func NewStatsService(repos *repository.Repositories, logger *zap.Logger, opts ...StatsOption) *statsService {
	s := &statsService{
		repos:  repos,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InventoryStats counts products and variants and sums stock.
func (s *statsService) InventoryStats(ctx context.Context) (InventoryStats, error) {
	products, err := s.repos.Product.List(ctx)
	if err != nil {
		return InventoryStats{}, err
	}

	stats := InventoryStats{TotalProducts: len(products)}
	for i := range products {
		stats.TotalVariants += len(products[i].Variants)
		stats.TotalStock += products[i].TotalStock()
	}
	return stats, nil
}

// SalesStats computes revenue figures. Revenue and the average count
// completed orders only; today's figures count every order placed on the
// current calendar date in the clock's location, whatever its status.
func (s *statsService) SalesStats(ctx context.Context) (SalesStats, error) {
	orders, err := s.repos.Order.List(ctx)
	if err != nil {
		return SalesStats{}, err
	}

	now := s.now()
	revenue := decimal.Zero
	todayRevenue := decimal.Zero
	stats := SalesStats{TotalOrders: len(orders)}

	for _, order := range orders {
		total := decimal.NewFromFloat(order.Total)
		if order.Status == domain.OrderStatusCompleted {
			stats.CompletedOrders++
			revenue = revenue.Add(total)
		}
		if sameDay(order.CreatedAt, now) {
			stats.TodayOrders++
			todayRevenue = todayRevenue.Add(total)
		}
	}

	stats.TotalRevenue = revenue.InexactFloat64()
	stats.TodayRevenue = todayRevenue.InexactFloat64()
	if stats.CompletedOrders > 0 {
		stats.AverageOrderValue = revenue.Div(decimal.NewFromInt(int64(stats.CompletedOrders))).InexactFloat64()
	}
	return stats, nil
}

// LowStock lists products whose total stock is strictly below threshold,
// in insertion order.
func (s *statsService) LowStock(ctx context.Context, threshold int) ([]LowStockProduct, error) {
	products, err := s.repos.Product.List(ctx)
	if err != nil {
		return nil, err
	}

	low := []LowStockProduct{}
	for i := range products {
		total := products[i].TotalStock()
		if total < threshold {
			low = append(low, LowStockProduct{
				ID:         products[i].ID,
				Name:       products[i].Name,
				Brand:      products[i].Brand,
				TotalStock: total,
			})
		}
	}
	return low, nil
}

func sameDay(t, now time.Time) bool {
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
