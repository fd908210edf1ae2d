package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para estadísticas y dashboard.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

func (r *StatsRepo) groups(ctx context.Context, op, query string, args ...any) ([]repository.GroupCount, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stats.%s: %w", op, err)
	}
	defer rows.Close()
	var out []repository.GroupCount
	for rows.Next() {
		var g repository.GroupCount
		if err := rows.Scan(&g.Key, &g.Count, &g.Sum); err != nil {
			return nil, fmt.Errorf("stats.%s scan: %w", op, err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// UsersByRole empleados activos por rol.
func (r *StatsRepo) UsersByRole(ctx context.Context, restauranteID string) ([]repository.GroupCount, error) {
	return r.groups(ctx, "UsersByRole", `
	SELECT rol, COUNT(*), 0::NUMERIC
	FROM usuarios
	WHERE restaurante_id = $1 AND activo
	GROUP BY rol
	ORDER BY rol`, restauranteID)
}

// ProductsByCategory productos activos por categoría.
func (r *StatsRepo) ProductsByCategory(ctx context.Context, restauranteID string) ([]repository.GroupCount, error) {
	return r.groups(ctx, "ProductsByCategory", `
	SELECT categoria, COUNT(*), 0::NUMERIC
	FROM productos
	WHERE restaurante_id = $1 AND activo
	GROUP BY categoria
	ORDER BY categoria`, restauranteID)
}

// TablesByStatus mesas activas por estado.
func (r *StatsRepo) TablesByStatus(ctx context.Context, restauranteID string) ([]repository.GroupCount, error) {
	return r.groups(ctx, "TablesByStatus", `
	SELECT estado, COUNT(*), 0::NUMERIC
	FROM mesas
	WHERE restaurante_id = $1 AND activo
	GROUP BY estado
	ORDER BY estado`, restauranteID)
}

// OrdersByStatus pedidos creados en [from, to) por estado, cancelados incluidos; Sum = total.
func (r *StatsRepo) OrdersByStatus(ctx context.Context, restauranteID string, from, to time.Time) ([]repository.GroupCount, error) {
	return r.groups(ctx, "OrdersByStatus", `
	SELECT estado, COUNT(*), COALESCE(SUM(total), 0)
	FROM pedidos
	WHERE restaurante_id = $1
	  AND created_at >= $2 AND created_at < $3
	GROUP BY estado
	ORDER BY estado`, restauranteID, from, to)
}

// ReservationsByStatus reservaciones con fecha_hora en [from, to) por estado; Sum = personas.
func (r *StatsRepo) ReservationsByStatus(ctx context.Context, restauranteID string, from, to time.Time) ([]repository.GroupCount, error) {
	return r.groups(ctx, "ReservationsByStatus", `
	SELECT estado, COUNT(*), COALESCE(SUM(personas), 0)::NUMERIC
	FROM reservaciones
	WHERE restaurante_id = $1
	  AND fecha_hora >= $2 AND fecha_hora < $3
	GROUP BY estado
	ORDER BY estado`, restauranteID, from, to)
}

// DeliveredSales ventas de pedidos entregados en [from, to). COALESCE devuelve cero en períodos sin ventas.
func (r *StatsRepo) DeliveredSales(ctx context.Context, restauranteID string, from, to time.Time) (decimal.Decimal, int, error) {
	const query = `
	SELECT COALESCE(SUM(total), 0), COUNT(*)
	FROM pedidos
	WHERE restaurante_id = $1
	  AND estado = 'entregado'
	  AND entregado_at >= $2 AND entregado_at < $3`
	var (
		total decimal.Decimal
		n     int
	)
	if err := r.q.QueryRow(ctx, query, restauranteID, from, to).Scan(&total, &n); err != nil {
		return decimal.Zero, 0, fmt.Errorf("stats.DeliveredSales: %w", err)
	}
	return total, n, nil
}

// TopProducts productos más vendidos en pedidos entregados, a partir de las líneas JSONB.
func (r *StatsRepo) TopProducts(ctx context.Context, restauranteID string, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    it->>'productoId'                          AS producto_id,
	    MAX(it->>'nombre')                         AS nombre,
	    SUM((it->>'cantidad')::INT)                AS cantidad,
	    COALESCE(SUM((it->>'subtotal')::NUMERIC), 0) AS ingresos
	FROM pedidos p
	CROSS JOIN LATERAL jsonb_array_elements(p.items) AS it
	WHERE p.restaurante_id = $1
	  AND p.estado = 'entregado'
	  AND p.entregado_at >= $2 AND p.entregado_at < $3
	GROUP BY it->>'productoId'
	ORDER BY cantidad DESC, nombre
	LIMIT $4`
	rows, err := r.q.Query(ctx, query, restauranteID, from, to, limitArg(repository.Page{Limit: limit}))
	if err != nil {
		return nil, fmt.Errorf("stats.TopProducts: %w", err)
	}
	defer rows.Close()
	var out []repository.TopProductResult
	for rows.Next() {
		var p repository.TopProductResult
		if err := rows.Scan(&p.ProductoID, &p.Nombre, &p.Cantidad, &p.Ingresos); err != nil {
			return nil, fmt.Errorf("stats.TopProducts scan: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ActiveOrders pedidos abiertos del restaurante.
func (r *StatsRepo) ActiveOrders(ctx context.Context, restauranteID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM pedidos WHERE restaurante_id = $1 AND activo AND estado NOT IN ('entregado', 'cancelado')`,
		restauranteID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.ActiveOrders: %w", err)
	}
	return n, nil
}
