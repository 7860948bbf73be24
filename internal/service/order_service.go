package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jafarshop/stockroom/internal/domain"
	"github.com/jafarshop/stockroom/internal/repository"
	"github.com/jafarshop/stockroom/pkg/errors"
)

type orderService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(repos *repository.Repositories, logger *zap.Logger) *orderService {
	return &orderService{
		repos:  repos,
		logger: logger,
	}
}

// CreateOrder snapshots the requested items and records a pending order
func (s *orderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, errors.NewValidation("items", "must contain at least one item")
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		total := decimal.NewFromInt(int64(item.Quantity)).Mul(decimal.NewFromFloat(item.Price))
		items = append(items, domain.OrderItem{
			VariantID:   item.VariantID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Size:        item.Size,
			Color:       item.Color,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       total.InexactFloat64(),
		})
	}

	order, err := s.repos.Order.Create(ctx, items, req.CustomerName)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.Int("items", len(order.Items)),
		zap.Float64("total", order.Total),
	)
	return order, nil
}

// UpdateStatus moves an order to the given status
func (s *orderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	order, previous, err := s.repos.Order.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order status changed",
		zap.String("order_id", id),
		zap.String("from", string(previous)),
		zap.String("to", string(order.Status)),
	)
	return order, nil
}
