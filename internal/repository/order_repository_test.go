package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/stockroom/internal/codegen"
	"github.com/jafarshop/stockroom/internal/domain"
	"github.com/jafarshop/stockroom/internal/repository/memory"
	"github.com/jafarshop/stockroom/pkg/errors"
)

// tickingClock advances one millisecond per call so order ids stay distinct.
func tickingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Millisecond)
		return current
	}
}

func setupOrders(t *testing.T) OrderRepository {
	t.Helper()
	gen := codegen.NewGenerator(codegen.WithClock(tickingClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))))
	return NewOrderRepository(memory.NewStore(), gen, zap.NewNop())
}

func sampleItem(quantity int, price float64) domain.OrderItem {
	return domain.OrderItem{
		VariantID:   "v1",
		ProductID:   "p1",
		ProductName: "Denim Jeans",
		Size:        "M",
		Color:       "Blue",
		Quantity:    quantity,
		Price:       price,
		Total:       float64(quantity) * price,
	}
}

func TestOrderRepository_CreateAndGet(t *testing.T) {
	repo := setupOrders(t)
	ctx := context.Background()

	order, err := repo.Create(ctx, []domain.OrderItem{sampleItem(2, 50), sampleItem(1, 30)}, "  Lina ")
	require.NoError(t, err)

	assert.Regexp(t, `^ORD-\d+$`, order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, 130.0, order.Total)
	assert.Equal(t, "Lina", order.CustomerName)
	require.Len(t, order.Items, 2)

	got, err := repo.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderRepository_TotalAvoidsFloatDrift(t *testing.T) {
	repo := setupOrders(t)

	order, err := repo.Create(context.Background(), []domain.OrderItem{
		{Quantity: 1, Price: 0.1, Total: 0.1},
		{Quantity: 1, Price: 0.2, Total: 0.2},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, 0.3, order.Total)
}

func TestOrderRepository_CreateValidation(t *testing.T) {
	repo := setupOrders(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, nil, "")
	assert.True(t, errors.IsValidation(err))

	_, err = repo.Create(ctx, []domain.OrderItem{sampleItem(1, 10), {Total: -1}}, "")
	assert.True(t, errors.IsValidation(err))
	assert.ErrorContains(t, err, "items[1].total")

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepository_ListKeepsInsertionOrder(t *testing.T) {
	repo := setupOrders(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, []domain.OrderItem{sampleItem(1, 10)}, "a")
	require.NoError(t, err)
	second, err := repo.Create(ctx, []domain.OrderItem{sampleItem(1, 20)}, "b")
	require.NoError(t, err)

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	repo := setupOrders(t)
	ctx := context.Background()

	order, err := repo.Create(ctx, []domain.OrderItem{sampleItem(1, 10)}, "")
	require.NoError(t, err)

	completed, previous, err := repo.UpdateStatus(ctx, order.ID, domain.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, previous)
	assert.Equal(t, domain.OrderStatusCompleted, completed.Status)

	// no transition graph: completed may go back to pending
	reopened, previous, err := repo.UpdateStatus(ctx, order.ID, domain.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, previous)
	assert.Equal(t, domain.OrderStatusPending, reopened.Status)
	assert.Equal(t, order.Total, reopened.Total)
	assert.Equal(t, order.Items, reopened.Items)
}

func TestOrderRepository_UpdateStatusRejectsUnknown(t *testing.T) {
	repo := setupOrders(t)
	ctx := context.Background()

	order, err := repo.Create(ctx, []domain.OrderItem{sampleItem(1, 10)}, "")
	require.NoError(t, err)

	_, _, err = repo.UpdateStatus(ctx, order.ID, domain.OrderStatus("shipped"))
	assert.True(t, errors.IsValidation(err))

	// validation happens before lookup
	_, _, err = repo.UpdateStatus(ctx, "ORD-0", domain.OrderStatus("shipped"))
	assert.True(t, errors.IsValidation(err))

	_, _, err = repo.UpdateStatus(ctx, "ORD-0", domain.OrderStatusCancelled)
	assert.True(t, errors.IsNotFound(err))

	got, err := repo.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, got.Status)
}

func TestOrderRepository_DeleteTwice(t *testing.T) {
	repo := setupOrders(t)
	ctx := context.Background()

	order, err := repo.Create(ctx, []domain.OrderItem{sampleItem(1, 10)}, "")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, order.ID))
	assert.True(t, errors.IsNotFound(repo.Delete(ctx, order.ID)))

	_, err = repo.Get(ctx, order.ID)
	assert.True(t, errors.IsNotFound(err))
}

func TestOrderRepository_SharesStoreWithProducts(t *testing.T) {
	store := memory.NewStore()
	repos := NewRepositories(store, codegen.NewGenerator(), zap.NewNop())
	ctx := context.Background()

	_, err := repos.Product.Create(ctx, "Jeans", "Azure", "Pants")
	require.NoError(t, err)
	_, err = repos.Order.Create(ctx, []domain.OrderItem{sampleItem(1, 10)}, "")
	require.NoError(t, err)

	var products []domain.Product
	found, err := store.Load(ctx, ProductsKey, &products)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, products, 1)

	var orders []domain.Order
	found, err = store.Load(ctx, OrdersKey, &orders)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, orders, 1)
}
