// Package analytics resumen operativo del restaurante para el dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/domain/rules"
)

const dashboardTopProducts = 5 // productos en el widget del dashboard

// LowStockCounter cuenta insumos en estado bajo, crítico o agotado.
type LowStockCounter interface {
	LowStockCount(ctx context.Context, restauranteID string) (int, error)
}

// DashboardUseCase genera el resumen del día y del mes en curso.
type DashboardUseCase struct {
	stats       repository.StatsRepository
	restaurants repository.RestaurantRepository
	inventory   LowStockCounter
	clock       ports.Clock
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stats repository.StatsRepository, restaurants repository.RestaurantRepository, inventory LowStockCounter, clock ports.Clock) *DashboardUseCase {
	return &DashboardUseCase{stats: stats, restaurants: restaurants, inventory: inventory, clock: clock}
}

// GetSummary construye el resumen. Las consultas son independientes y corren en paralelo;
// la primera que falle cancela el resto.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, restauranteID string) (*dto.DashboardSummaryDTO, error) {
	loc := uc.clock.Location()
	now := uc.clock.Now()
	todayStart := rules.DayStart(now, loc)
	todayEnd := todayStart.AddDate(0, 0, 1)
	monthStart := time.Date(todayStart.Year(), todayStart.Month(), 1, 0, 0, 0, 0, loc)

	var (
		out         dto.DashboardSummaryDTO
		restaurant  *entity.Restaurant
		tables      []repository.GroupCount
		reservas    []repository.GroupCount
		topProducts []repository.TopProductResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		restaurant, err = uc.restaurants.GetByID(gctx, restauranteID)
		return wrap("restaurante", err)
	})
	g.Go(func() (err error) {
		out.VentasHoy, out.PedidosHoy, err = uc.stats.DeliveredSales(gctx, restauranteID, todayStart, todayEnd)
		return wrap("ventas de hoy", err)
	})
	g.Go(func() (err error) {
		out.VentasMes, out.PedidosMes, err = uc.stats.DeliveredSales(gctx, restauranteID, monthStart, todayEnd)
		return wrap("ventas del mes", err)
	})
	g.Go(func() (err error) {
		out.PedidosActivos, err = uc.stats.ActiveOrders(gctx, restauranteID)
		return wrap("pedidos activos", err)
	})
	g.Go(func() (err error) {
		tables, err = uc.stats.TablesByStatus(gctx, restauranteID)
		return wrap("mesas", err)
	})
	g.Go(func() (err error) {
		reservas, err = uc.stats.ReservationsByStatus(gctx, restauranteID, todayStart, todayEnd)
		return wrap("reservaciones", err)
	})
	g.Go(func() (err error) {
		out.InsumosBajoStock, err = uc.inventory.LowStockCount(gctx, restauranteID)
		return wrap("inventario", err)
	})
	g.Go(func() (err error) {
		topProducts, err = uc.stats.TopProducts(gctx, restauranteID, monthStart, todayEnd, dashboardTopProducts)
		return wrap("top productos", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, fmt.Errorf("%w: restaurante %s", domain.ErrNotFound, restauranteID)
	}

	for _, t := range tables {
		out.MesasTotales += t.Count
		if t.Key == entity.TableOcupada {
			out.MesasOcupadas = t.Count
		}
	}
	for _, r := range reservas {
		if r.Key != entity.ReservationCancelada && r.Key != entity.ReservationNoShow {
			out.ReservacionesHoy += r.Count
		}
	}
	out.TopProductos = make([]dto.TopProductDTO, 0, len(topProducts))
	for _, p := range topProducts {
		out.TopProductos = append(out.TopProductos, dto.TopProductDTO{
			ProductoID: p.ProductoID,
			Nombre:     p.Nombre,
			Cantidad:   p.Cantidad,
			Ingresos:   p.Ingresos.Round(2),
		})
	}
	out.VentasHoy = out.VentasHoy.Round(2)
	out.VentasMes = out.VentasMes.Round(2)
	out.Moneda = restaurant.Moneda
	out.Periodo = monthLabel(todayStart)
	return &out, nil
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("dashboard: %s: %w", what, err)
	}
	return nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
