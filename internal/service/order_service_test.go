package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jafarshop/stockroom/internal/domain"
	"github.com/jafarshop/stockroom/pkg/errors"
)

func TestOrderService_CreateOrder(t *testing.T) {
	repos := setupRepos(t, &testClock{current: time.Now()})
	svc := NewOrderService(repos, zap.NewNop())

	order, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		CustomerName: "Lina",
		Items: []OrderItemRequest{
			{VariantID: "v1", ProductID: "p1", ProductName: "Jeans", Size: "M", Color: "Blue", Quantity: 3, Price: 19.99},
			{VariantID: "v2", ProductID: "p1", ProductName: "Jeans", Size: "L", Color: "Blue", Quantity: 1, Price: 25},
		},
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.Equal(t, 59.97, order.Items[0].Total)
	assert.Equal(t, 25.0, order.Items[1].Total)
	assert.Equal(t, 84.97, order.Total)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "Lina", order.CustomerName)
}

func TestOrderService_CreateOrderRequiresItems(t *testing.T) {
	repos := setupRepos(t, &testClock{current: time.Now()})
	svc := NewOrderService(repos, zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{})
	assert.True(t, errors.IsValidation(err))
}

func TestOrderService_UpdateStatusLogsTransition(t *testing.T) {
	repos := setupRepos(t, &testClock{current: time.Now()})
	core, logs := observer.New(zap.InfoLevel)
	svc := NewOrderService(repos, zap.New(core))
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, CreateOrderRequest{
		Items: []OrderItemRequest{{VariantID: "v1", ProductID: "p1", ProductName: "Jeans", Quantity: 1, Price: 10}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, order.ID, domain.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, updated.Status)

	entries := logs.FilterMessage("Order status changed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "pending", fields["from"])
	assert.Equal(t, "completed", fields["to"])
}

func TestOrderService_UpdateStatusErrors(t *testing.T) {
	repos := setupRepos(t, &testClock{current: time.Now()})
	svc := NewOrderService(repos, zap.NewNop())
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, "ORD-1", domain.OrderStatus("refunded"))
	assert.True(t, errors.IsValidation(err))

	_, err = svc.UpdateStatus(ctx, "ORD-1", domain.OrderStatusCancelled)
	assert.True(t, errors.IsNotFound(err))
}

func TestOrderService_ConcurrentStatusChangesLogConsistentHistory(t *testing.T) {
	repos := setupRepos(t, &testClock{current: time.Now()})
	core, logs := observer.New(zap.InfoLevel)
	svc := NewOrderService(repos, zap.New(core))
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, CreateOrderRequest{
		Items: []OrderItemRequest{{VariantID: "v1", ProductID: "p1", ProductName: "Jeans", Quantity: 1, Price: 10}},
	})
	require.NoError(t, err)

	statuses := []domain.OrderStatus{domain.OrderStatusCompleted, domain.OrderStatusCancelled, domain.OrderStatusPending}
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(status domain.OrderStatus) {
			defer wg.Done()
			_, err := svc.UpdateStatus(ctx, order.ID, status)
			assert.NoError(t, err)
		}(statuses[i%len(statuses)])
	}
	wg.Wait()

	final, err := repos.Order.Get(ctx, order.ID)
	require.NoError(t, err)

	// serialized updates form one chain: every "from" is the initial status
	// or an earlier "to", and only the final status is never left.
	balance := map[string]int{}
	entries := logs.FilterMessage("Order status changed").All()
	require.Len(t, entries, 30)
	for _, e := range entries {
		fields := e.ContextMap()
		balance[fields["from"].(string)]++
		balance[fields["to"].(string)]--
	}
	for _, status := range statuses {
		want := 0
		if status == domain.OrderStatusPending {
			want++
		}
		if status == final.Status {
			want--
		}
		assert.Equal(t, want, balance[string(status)], "status %s", status)
	}
}
