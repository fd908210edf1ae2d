package rules

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const orderNumberLayout = "060102"

// OrderTotals resultado del cálculo de un pedido.
type OrderTotals struct {
	Items    []entity.OrderItem
	Subtotal decimal.Decimal
	Impuesto decimal.Decimal
	Propina  decimal.Decimal
	Total    decimal.Decimal
}

// ComputeOrderTotals recalcula subtotal por línea, subtotal del pedido y total = subtotal + impuesto + propina.
func ComputeOrderTotals(items []entity.OrderItem, impuesto, propina decimal.Decimal) OrderTotals {
	out := make([]entity.OrderItem, len(items))
	subtotal := decimal.Zero
	for i, it := range items {
		it.Subtotal = it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad)))
		subtotal = subtotal.Add(it.Subtotal)
		out[i] = it
	}
	return OrderTotals{
		Items:    out,
		Subtotal: subtotal,
		Impuesto: impuesto,
		Propina:  propina,
		Total:    subtotal.Add(impuesto).Add(propina),
	}
}

// RecalculateOrder aplica ComputeOrderTotals sobre el pedido.
func RecalculateOrder(o *entity.Order) {
	t := ComputeOrderTotals(o.Items, o.Impuesto, o.Propina)
	o.Items = t.Items
	o.Subtotal = t.Subtotal
	o.Total = t.Total
}

// FormatOrderNumber construye el número legible P-YYMMDD-NNNN.
func FormatOrderNumber(day time.Time, seq int) string {
	return fmt.Sprintf("P-%s-%04d", day.Format(orderNumberLayout), seq)
}

// ParseOrderNumber descompone un número P-YYMMDD-NNNN.
func ParseOrderNumber(numero string) (time.Time, int, error) {
	if len(numero) < len("P-060102-0001") || numero[:2] != "P-" || numero[8] != '-' {
		return time.Time{}, 0, fmt.Errorf("%w: número de pedido %q", domain.ErrInvalidInput, numero)
	}
	datePart := numero[2:8]
	seq, err := strconv.Atoi(numero[9:])
	if err != nil || seq <= 0 {
		return time.Time{}, 0, fmt.Errorf("%w: consecutivo de pedido %q", domain.ErrInvalidInput, numero)
	}
	day, err := time.Parse(orderNumberLayout, datePart)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: fecha de pedido %q", domain.ErrInvalidInput, numero)
	}
	return day, seq, nil
}

// DayStart medianoche del día de t en loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
