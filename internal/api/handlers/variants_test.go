package handlers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jafarshop/stockroom/pkg/errors"
)

func TestStockValue(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"zero", "0", 0, false},
		{"whole", "42", 42, false},
		{"whole with trailing zeros", "7.00", 7, false},
		{"negative", "-1", 0, true},
		{"below int64 range", "-10000000000000000000", 0, true},
		{"above int32 range", "2147483648", 0, true},
		{"fraction", "1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decimal.RequireFromString(tt.raw)
			got, err := stockValue(&d)
			if tt.wantErr {
				assert.True(t, errors.IsValidation(err), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}

	got, err := stockValue(nil)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
