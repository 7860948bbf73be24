package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/stockroom/pkg/errors"
)

func TestSKUService_FindBySKU(t *testing.T) {
	repos := setupRepos(t, &testClock{current: time.Now()})
	svc := NewSKUService(repos, zap.NewNop())
	ctx := context.Background()

	first := addProduct(t, repos, "Denim Jeans", 4)
	// same brand, name prefix, color and size, so the SKU collides
	addProduct(t, repos, "Denim Jacket", 9)

	match, err := svc.FindBySKU(ctx, "azu-den-blu-s")
	require.NoError(t, err)
	assert.Equal(t, first.ID, match.Product.ID)
	assert.Equal(t, "AZU-DEN-BLU-S", match.Variant.SKU)
	assert.Equal(t, 4, match.Variant.Stock)

	_, err = svc.FindBySKU(ctx, "NOPE-NOPE")
	assert.True(t, errors.IsNotFound(err))

	_, err = svc.FindBySKU(ctx, "  ")
	assert.True(t, errors.IsValidation(err))
}

func TestSKUService_FindByBarcode(t *testing.T) {
	repos := setupRepos(t, &testClock{current: time.Now()})
	svc := NewSKUService(repos, zap.NewNop())
	ctx := context.Background()

	addProduct(t, repos, "Shirt", 1)
	product := addProduct(t, repos, "Jeans", 2, 3)

	want := product.ID
	stored, err := repos.Product.Get(ctx, want)
	require.NoError(t, err)
	barcode := stored.Variants[1].Barcode

	match, err := svc.FindByBarcode(ctx, barcode)
	require.NoError(t, err)
	assert.Equal(t, want, match.Product.ID)
	assert.Equal(t, stored.Variants[1], match.Variant)

	_, err = svc.FindByBarcode(ctx, "")
	assert.True(t, errors.IsValidation(err))
}
