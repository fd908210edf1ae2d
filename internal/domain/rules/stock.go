package rules

import (
	"fmt"
	"math"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ExpiryWarningDays días antes del vencimiento en que un insumo se marca como próximo a vencer.
const ExpiryWarningDays = 7

var half = decimal.NewFromFloat(0.5)

// StockStatus estado derivado de (cantidad, mínima). Sin mínima definida un insumo con stock es Normal.
func StockStatus(cantidad, minima decimal.Decimal) string {
	if cantidad.LessThanOrEqual(decimal.Zero) {
		return entity.StockAgotado
	}
	if minima.LessThanOrEqual(decimal.Zero) {
		return entity.StockNormal
	}
	ratio := cantidad.Div(minima)
	switch {
	case ratio.LessThanOrEqual(half):
		return entity.StockCritico
	case ratio.LessThanOrEqual(decimal.NewFromInt(1)):
		return entity.StockBajo
	default:
		return entity.StockNormal
	}
}

// ExpiryFlags calcula las alertas de vencimiento. dias = ceil((vencimiento - now) / 24h); nil si no hay fecha.
func ExpiryFlags(fechaVencimiento *time.Time, now time.Time) (proximoAVencer, vencido bool, dias *int) {
	if fechaVencimiento == nil {
		return false, false, nil
	}
	d := int(math.Ceil(fechaVencimiento.Sub(now).Hours() / 24))
	vencido = fechaVencimiento.Before(now)
	proximoAVencer = !vencido && d > 0 && d <= ExpiryWarningDays
	return proximoAVencer, vencido, &d
}

// ApplyStockAdjustment devuelve la cantidad resultante de aplicar delta según tipo (entrada/salida).
// Una salida que deje el stock negativo falla con ErrInsufficientStock.
func ApplyStockAdjustment(cantidad, delta decimal.Decimal, tipo string) (decimal.Decimal, error) {
	if !delta.IsPositive() {
		return cantidad, domain.NewValidationError("cantidad", "debe ser mayor que 0")
	}
	switch tipo {
	case entity.MovementEntrada:
		return cantidad.Add(delta), nil
	case entity.MovementSalida:
		nueva := cantidad.Sub(delta)
		if nueva.IsNegative() {
			return cantidad, fmt.Errorf("%w: disponible %s, solicitado %s", domain.ErrInsufficientStock, cantidad.String(), delta.String())
		}
		return nueva, nil
	default:
		return cantidad, domain.NewValidationError("tipo", "debe ser entrada o salida")
	}
}

// WeightedUnitPrice precio unitario promedio ponderado tras una entrada con precio propio.
// NuevoPrecio = ((StockActual * PrecioActual) + (CantEntrada * PrecioEntrada)) / (StockActual + CantEntrada)
func WeightedUnitPrice(stockActual, precioActual, cantEntrada, precioEntrada decimal.Decimal) decimal.Decimal {
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockActual.Mul(precioActual).Add(cantEntrada.Mul(precioEntrada))
	return num.Div(sum).Round(2)
}

// InventoryValue valor total del insumo (cantidad × precio unitario).
func InventoryValue(cantidad, precioUnitario decimal.Decimal) decimal.Decimal {
	return cantidad.Mul(precioUnitario).Round(2)
}
