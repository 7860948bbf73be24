package repository

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jafarshop/stockroom/internal/domain"
	"github.com/jafarshop/stockroom/pkg/errors"
)

type orderRepository struct {
	mu     sync.Mutex
	store  DocumentStore
	gen    Generator
	logger *zap.Logger
}

// NewOrderRepository creates an order repository over the given store
func NewOrderRepository(store DocumentStore, gen Generator, logger *zap.Logger) *orderRepository {
	return &orderRepository{
		store:  store,
		gen:    gen,
		logger: logger,
	}
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

// Create records a pending order. Items are stored as given; referenced
// products and variants are not checked and stock is not decremented.
func (r *orderRepository) Create(ctx context.Context, items []domain.OrderItem, customerName string) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, errors.NewValidation("items", "must contain at least one item")
	}

	total := decimal.Zero
	for i, item := range items {
		if math.IsNaN(item.Total) || math.IsInf(item.Total, 0) || item.Total < 0 {
			return nil, errors.NewValidation(fmt.Sprintf("items[%d].total", i), "must be non-negative")
		}
		total = total.Add(decimal.NewFromFloat(item.Total))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	order := domain.Order{
		ID:           r.gen.NewOrderID(),
		Items:        append([]domain.OrderItem(nil), items...),
		Total:        total.InexactFloat64(),
		Status:       domain.OrderStatusPending,
		CreatedAt:    r.gen.Now().UTC(),
		CustomerName: strings.TrimSpace(customerName),
	}
	orders = append(orders, order)

	if err := r.save(ctx, orders); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Get(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	i := orderIndex(orders, id)
	if i < 0 {
		return nil, errors.NewNotFound("order", id)
	}
	return &orders[i], nil
}

// UpdateStatus overwrites the status and reports the previous one. Any
// valid status may replace any other.
func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, domain.OrderStatus, error) {
	if !status.IsValid() {
		return nil, "", errors.NewValidation("status", fmt.Sprintf("invalid status %q", status))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load(ctx)
	if err != nil {
		return nil, "", err
	}

	i := orderIndex(orders, id)
	if i < 0 {
		return nil, "", errors.NewNotFound("order", id)
	}
	previous := orders[i].Status
	orders[i].Status = status

	if err := r.save(ctx, orders); err != nil {
		return nil, "", err
	}
	return &orders[i], previous, nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load(ctx)
	if err != nil {
		return err
	}

	i := orderIndex(orders, id)
	if i < 0 {
		return errors.NewNotFound("order", id)
	}

	orders = append(orders[:i], orders[i+1:]...)
	return r.save(ctx, orders)
}

func (r *orderRepository) load(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if _, err := r.store.Load(ctx, OrdersKey, &orders); err != nil {
		r.logger.Error("Failed to load orders", zap.Error(err))
		return nil, fmt.Errorf("load orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (r *orderRepository) save(ctx context.Context, orders []domain.Order) error {
	if err := r.store.Save(ctx, OrdersKey, orders); err != nil {
		r.logger.Error("Failed to save orders", zap.Error(err))
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}

func orderIndex(orders []domain.Order, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}
