package rules

import (
	"testing"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestStockStatus(t *testing.T) {
	tests := []struct {
		cantidad, minima string
		want             string
	}{
		{"0", "20", entity.StockAgotado},
		{"0", "0", entity.StockAgotado},
		{"5", "20", entity.StockCritico},
		{"10", "20", entity.StockCritico},
		{"10.01", "20", entity.StockBajo},
		{"20", "20", entity.StockBajo},
		{"20.5", "20", entity.StockNormal},
		{"3", "0", entity.StockNormal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StockStatus(d(tt.cantidad), d(tt.minima)), "%s/%s", tt.cantidad, tt.minima)
	}
}

func TestExpiryFlags(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	p, v, dias := ExpiryFlags(nil, now)
	assert.False(t, p)
	assert.False(t, v)
	assert.Nil(t, dias)

	en3 := now.Add(3 * 24 * time.Hour)
	p, v, dias = ExpiryFlags(&en3, now)
	assert.True(t, p)
	assert.False(t, v)
	require.NotNil(t, dias)
	assert.Equal(t, 3, *dias)

	en7 := now.Add(7 * 24 * time.Hour)
	p, _, _ = ExpiryFlags(&en7, now)
	assert.True(t, p, "el día 7 todavía alerta")

	en8 := now.Add(7*24*time.Hour + time.Hour)
	p, _, dias = ExpiryFlags(&en8, now)
	assert.False(t, p)
	assert.Equal(t, 8, *dias)

	ayer := now.Add(-24 * time.Hour)
	p, v, _ = ExpiryFlags(&ayer, now)
	assert.False(t, p)
	assert.True(t, v)
}

func TestApplyStockAdjustment(t *testing.T) {
	nueva, err := ApplyStockAdjustment(d("10"), d("5"), entity.MovementEntrada)
	require.NoError(t, err)
	assert.True(t, nueva.Equal(d("15")))

	nueva, err = ApplyStockAdjustment(d("10"), d("5"), entity.MovementSalida)
	require.NoError(t, err)
	assert.True(t, nueva.Equal(d("5")))
	assert.Equal(t, entity.StockCritico, StockStatus(nueva, d("20")))

	nueva, err = ApplyStockAdjustment(d("10"), d("15"), entity.MovementSalida)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, nueva.Equal(d("10")), "la cantidad no cambia si la salida falla")

	_, err = ApplyStockAdjustment(d("10"), d("10"), entity.MovementSalida)
	assert.NoError(t, err, "dejar el stock en cero es válido")

	_, err = ApplyStockAdjustment(d("10"), d("0"), entity.MovementEntrada)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ApplyStockAdjustment(d("10"), d("1"), "ajuste")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWeightedUnitPrice(t *testing.T) {
	// 10 kg a 2000 + 10 kg a 3000 = 2500
	assert.True(t, WeightedUnitPrice(d("10"), d("2000"), d("10"), d("3000")).Equal(d("2500")))
	assert.True(t, WeightedUnitPrice(d("0"), d("0"), d("0"), d("100")).IsZero())
}

func TestInventoryValue(t *testing.T) {
	assert.True(t, InventoryValue(d("2.5"), d("10")).Equal(d("25")))
}
