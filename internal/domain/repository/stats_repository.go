package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// GroupCount resultado crudo de un conteo agrupado. Sum es opcional según la consulta.
type GroupCount struct {
	Key   string
	Count int
	Sum   decimal.Decimal
}

// TopProductResult producto más vendido en un período (pedidos entregados).
type TopProductResult struct {
	ProductoID string
	Nombre     string
	Cantidad   int
	Ingresos   decimal.Decimal
}

// StatsRepository consultas read-only de estadísticas por restaurante.
type StatsRepository interface {
	UsersByRole(ctx context.Context, restauranteID string) ([]GroupCount, error)
	ProductsByCategory(ctx context.Context, restauranteID string) ([]GroupCount, error)
	TablesByStatus(ctx context.Context, restauranteID string) ([]GroupCount, error)
	// OrdersByStatus cuenta pedidos creados en el rango; Sum = total.
	OrdersByStatus(ctx context.Context, restauranteID string, from, to time.Time) ([]GroupCount, error)
	// ReservationsByStatus cuenta reservaciones con fecha_hora en el rango; Sum = personas.
	ReservationsByStatus(ctx context.Context, restauranteID string, from, to time.Time) ([]GroupCount, error)
	// DeliveredSales suma el total de pedidos entregados en el rango (por entregado_at).
	DeliveredSales(ctx context.Context, restauranteID string, from, to time.Time) (total decimal.Decimal, count int, err error)
	TopProducts(ctx context.Context, restauranteID string, from, to time.Time, limit int) ([]TopProductResult, error)
	// ActiveOrders pedidos activos aún no entregados ni cancelados.
	ActiveOrders(ctx context.Context, restauranteID string) (int, error)
}
