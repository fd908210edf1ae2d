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

func TestComputeOrderTotals_Escenario(t *testing.T) {
	items := []entity.OrderItem{
		{ProductoID: "a", Cantidad: 2, PrecioUnitario: d("7.50")},
		{ProductoID: "b", Cantidad: 1, PrecioUnitario: d("4.50")},
	}
	got := ComputeOrderTotals(items, decimal.Zero, decimal.Zero)

	assert.True(t, got.Items[0].Subtotal.Equal(d("15")))
	assert.True(t, got.Items[1].Subtotal.Equal(d("4.50")))
	assert.True(t, got.Subtotal.Equal(d("19.50")))
	assert.True(t, got.Total.Equal(d("19.50")))
	assert.True(t, items[0].Subtotal.IsZero(), "no modifica el slice de entrada")
}

func TestRecalculateOrder_ConPropina(t *testing.T) {
	o := &entity.Order{
		Items:    []entity.OrderItem{{Cantidad: 3, PrecioUnitario: d("12000")}},
		Impuesto: decimal.Zero,
		Propina:  d("3600"),
	}
	RecalculateOrder(o)
	assert.True(t, o.Subtotal.Equal(d("36000")))
	assert.True(t, o.Total.Equal(d("39600")))
}

func TestFormatAndParseOrderNumber(t *testing.T) {
	day := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "P-250107-0001", FormatOrderNumber(day, 1))
	assert.Equal(t, "P-250107-0123", FormatOrderNumber(day, 123))

	gotDay, seq, err := ParseOrderNumber("P-250107-0123")
	require.NoError(t, err)
	assert.Equal(t, 123, seq)
	assert.True(t, gotDay.Equal(day))

	for _, bad := range []string{"", "P-2501-0001", "X-250107-0001", "P-250107-abcd", "P-251399-0001", "P-250107-0000"} {
		_, _, err := ParseOrderNumber(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, bad)
	}
}

func TestDayStart(t *testing.T) {
	bogota := time.FixedZone("COT", -5*60*60)
	// 02:00 UTC del 8 de enero son las 21:00 del 7 en Bogotá
	got := DayStart(time.Date(2025, 1, 8, 2, 0, 0, 0, time.UTC), bogota)
	assert.Equal(t, "2025-01-07", got.Format("2006-01-02"))
}
