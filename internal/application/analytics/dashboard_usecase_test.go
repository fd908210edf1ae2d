package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/apptest"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

const rid = "rest-1"

type mockLowStock struct{ mock.Mock }

func (m *mockLowStock) LowStockCount(ctx context.Context, restauranteID string) (int, error) {
	args := m.Called(ctx, restauranteID)
	return args.Int(0), args.Error(1)
}

func order(numero, estado string, total string, created time.Time, entregado *time.Time, items ...entity.OrderItem) *entity.Order {
	return &entity.Order{
		ID:            uuid.New().String(),
		RestauranteID: rid,
		Numero:        numero,
		Estado:        estado,
		Items:         items,
		Total:         decimal.RequireFromString(total),
		EntregadoAt:   entregado,
		Active:        estado != entity.OrderCancelado,
		CreatedAt:     created,
	}
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	store := apptest.NewStore()
	repos := store.Repos()
	// 12 de mayo de 2026, 14:00 COT
	clock := apptest.NewClock(time.Date(2026, 5, 12, 19, 0, 0, 0, time.UTC))
	now := clock.Now()
	yesterday := now.AddDate(0, 0, -1)
	lastMonth := now.AddDate(0, -1, 0)

	require.NoError(t, repos.Restaurants.Create(ctx, &entity.Restaurant{ID: rid, Nombre: "La Fonda", Moneda: "COP", Active: true}))
	for i, estado := range []string{entity.TableOcupada, entity.TableOcupada, entity.TableDisponible} {
		require.NoError(t, repos.Tables.Create(ctx, &entity.Table{ID: uuid.New().String(), RestauranteID: rid, Numero: i + 1, Capacidad: 4, Estado: estado, Active: true}))
	}

	bandeja := entity.OrderItem{ProductoID: "p-bandeja", Nombre: "Bandeja", Cantidad: 2, Subtotal: decimal.NewFromInt(50000)}
	jugo := entity.OrderItem{ProductoID: "p-jugo", Nombre: "Jugo", Cantidad: 3, Subtotal: decimal.NewFromInt(15000)}
	for _, o := range []*entity.Order{
		order("P-260512-0001", entity.OrderEntregado, "65000", now, &now, bandeja, jugo),
		order("P-260511-0001", entity.OrderEntregado, "15000", yesterday, &yesterday, jugo),
		order("P-260412-0001", entity.OrderEntregado, "99000", lastMonth, &lastMonth, bandeja),
		order("P-260512-0002", entity.OrderPendiente, "10000", now, nil),
		order("P-260512-0003", entity.OrderListo, "10000", now, nil),
		order("P-260512-0004", entity.OrderCancelado, "10000", now, nil),
	} {
		require.NoError(t, repos.Orders.Create(ctx, o))
	}
	for _, estado := range []string{entity.ReservationConfirmada, entity.ReservationPendiente, entity.ReservationCancelada} {
		require.NoError(t, repos.Reservations.Create(ctx, &entity.Reservation{
			ID: uuid.New().String(), RestauranteID: rid, FechaHora: now.Add(3 * time.Hour),
			Personas: 2, Estado: estado, Active: estado != entity.ReservationCancelada,
		}))
	}

	low := &mockLowStock{}
	low.On("LowStockCount", mock.Anything, rid).Return(4, nil)
	uc := NewDashboardUseCase(store.Stats(), repos.Restaurants, low, clock)

	out, err := uc.GetSummary(ctx, rid)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(65000).Equal(out.VentasHoy))
	assert.Equal(t, 1, out.PedidosHoy)
	assert.True(t, decimal.NewFromInt(80000).Equal(out.VentasMes))
	assert.Equal(t, 2, out.PedidosMes)
	assert.Equal(t, 2, out.PedidosActivos)
	assert.Equal(t, 2, out.MesasOcupadas)
	assert.Equal(t, 3, out.MesasTotales)
	assert.Equal(t, 2, out.ReservacionesHoy)
	assert.Equal(t, 4, out.InsumosBajoStock)
	assert.Equal(t, "COP", out.Moneda)
	assert.Equal(t, "Mayo 2026", out.Periodo)

	require.Len(t, out.TopProductos, 2)
	assert.Equal(t, "Jugo", out.TopProductos[0].Nombre)
	assert.Equal(t, 6, out.TopProductos[0].Cantidad)
	assert.Equal(t, "Bandeja", out.TopProductos[1].Nombre)
	low.AssertExpectations(t)
}

func TestGetSummary_Errors(t *testing.T) {
	ctx := context.Background()
	store := apptest.NewStore()
	clock := apptest.NewClock(time.Date(2026, 5, 12, 19, 0, 0, 0, time.UTC))

	low := &mockLowStock{}
	low.On("LowStockCount", mock.Anything, rid).Return(0, nil)
	uc := NewDashboardUseCase(store.Stats(), store.Repos().Restaurants, low, clock)
	_, err := uc.GetSummary(ctx, rid)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Repos().Restaurants.Create(ctx, &entity.Restaurant{ID: rid, Nombre: "La Fonda", Moneda: "COP", Active: true}))
	boom := errors.New("conexión perdida")
	failing := &mockLowStock{}
	failing.On("LowStockCount", mock.Anything, rid).Return(0, boom)
	uc = NewDashboardUseCase(store.Stats(), store.Repos().Restaurants, failing, clock)
	_, err = uc.GetSummary(ctx, rid)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "inventario")
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Febrero 2026", monthLabel(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Diciembre 2025", monthLabel(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
}
