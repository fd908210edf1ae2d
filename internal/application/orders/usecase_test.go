package orders

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/apptest"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

const rid = "rest-1"

type mockRenderer struct{ mock.Mock }

func (m *mockRenderer) RenderTicket(ctx context.Context, data ports.TicketData) ([]byte, error) {
	args := m.Called(ctx, data)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

type env struct {
	uc       *OrderUseCase
	store    *apptest.Store
	clock    *apptest.Clock
	renderer *mockRenderer
	mesero   *entity.User
	mesa     *entity.Table
	sopa     *entity.Product
	jugo     *entity.Product
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	store := apptest.NewStore()
	repos := store.Repos()
	// 23:30 COT del 10 de mayo: en UTC ya es 11 de mayo
	clock := apptest.NewClock(time.Date(2026, 5, 11, 4, 30, 0, 0, time.UTC))
	e := &env{store: store, clock: clock, renderer: &mockRenderer{}}
	require.NoError(t, repos.Restaurants.Create(ctx, &entity.Restaurant{ID: rid, Nombre: "La Fonda", Moneda: "COP", Active: true}))
	e.mesero = &entity.User{ID: uuid.New().String(), RestauranteID: rid, Nombre: "Mario", Email: "m@f.co", Role: entity.RoleMesero, Active: true}
	require.NoError(t, repos.Users.Create(ctx, e.mesero))
	e.mesa = &entity.Table{ID: uuid.New().String(), RestauranteID: rid, Numero: 5, Capacidad: 4, Estado: entity.TableDisponible, Active: true}
	require.NoError(t, repos.Tables.Create(ctx, e.mesa))
	e.sopa = &entity.Product{ID: uuid.New().String(), RestauranteID: rid, Nombre: "Sopa", Precio: decimal.RequireFromString("6.25"), Disponible: true, Active: true}
	e.jugo = &entity.Product{ID: uuid.New().String(), RestauranteID: rid, Nombre: "Jugo", Precio: decimal.RequireFromString("3.5"), Disponible: true, Active: true}
	require.NoError(t, repos.Products.Create(ctx, e.sopa))
	require.NoError(t, repos.Products.Create(ctx, e.jugo))
	e.uc = NewOrderUseCase(store, repos.Orders, repos.Tables, repos.Users, repos.Restaurants, store.Stats(), e.renderer, clock)
	return e
}

func (e *env) create(t *testing.T) *dto.OrderResponse {
	t.Helper()
	out, err := e.uc.Create(context.Background(), rid, e.mesero.ID, dto.CreateOrderRequest{
		MesaID: e.mesa.ID,
		Items: []dto.OrderItemRequest{
			{ProductoID: e.sopa.ID, Cantidad: 2},
			{ProductoID: e.jugo.ID, Cantidad: 2, Notas: " sin hielo "},
		},
		Propina: decimal.NewFromInt(0),
	})
	require.NoError(t, err)
	return out
}

func (e *env) tableState(t *testing.T) string {
	t.Helper()
	tbl, err := e.store.Repos().Tables.GetByID(context.Background(), rid, e.mesa.ID)
	require.NoError(t, err)
	return tbl.Estado
}

func TestCreate_TotalesNumeroYMesa(t *testing.T) {
	e := newEnv(t)
	out := e.create(t)

	assert.True(t, out.Subtotal.Equal(decimal.RequireFromString("19.50")))
	assert.True(t, out.Total.Equal(decimal.RequireFromString("19.50")))
	assert.Equal(t, "P-260510-0001", out.Numero, "el día del consecutivo es el de la zona del restaurante")
	assert.Equal(t, entity.OrderPendiente, out.Estado)
	assert.Equal(t, e.mesero.ID, out.MeseroID)
	require.Len(t, out.Historial, 1)
	assert.Equal(t, "sin hielo", out.Items[1].Notas)
	assert.Equal(t, entity.TableOcupada, e.tableState(t))

	second := e.create(t)
	assert.Equal(t, "P-260510-0002", second.Numero)
}

func TestCreate_PrecioCongelado(t *testing.T) {
	e := newEnv(t)
	out := e.create(t)

	sopa := *e.sopa
	sopa.Precio = decimal.NewFromInt(100)
	require.NoError(t, e.store.Repos().Products.Update(context.Background(), &sopa))

	got, err := e.uc.GetByID(context.Background(), rid, out.ID)
	require.NoError(t, err)
	assert.True(t, got.Items[0].PrecioUnitario.Equal(decimal.RequireFromString("6.25")))
}

func TestCreate_Validaciones(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.uc.Create(ctx, rid, e.mesero.ID, dto.CreateOrderRequest{MesaID: e.mesa.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	agotado := *e.jugo
	agotado.Disponible = false
	require.NoError(t, e.store.Repos().Products.Update(ctx, &agotado))
	_, err = e.uc.Create(ctx, rid, e.mesero.ID, dto.CreateOrderRequest{MesaID: e.mesa.ID, Items: []dto.OrderItemRequest{{ProductoID: e.jugo.ID, Cantidad: 1}}})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "items[0].productoId", ve.Fields[0].Path)
	assert.Equal(t, entity.TableDisponible, e.tableState(t), "un pedido rechazado no ocupa la mesa")

	_, err = e.uc.Create(ctx, rid, e.mesero.ID, dto.CreateOrderRequest{MesaID: "no-existe", Items: []dto.OrderItemRequest{{ProductoID: e.sopa.ID, Cantidad: 1}}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.uc.Create(ctx, rid, e.mesero.ID, dto.CreateOrderRequest{MesaID: e.mesa.ID, MeseroID: "otro", Items: []dto.OrderItemRequest{{ProductoID: e.sopa.ID, Cantidad: 1}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_MesaEnLimpieza(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	tbl, err := e.store.Repos().Tables.GetByID(ctx, rid, e.mesa.ID)
	require.NoError(t, err)
	require.NoError(t, e.store.Repos().Tables.UpdateStatus(ctx, tbl, entity.TableLimpieza))

	_, err = e.uc.Create(ctx, rid, e.mesero.ID, dto.CreateOrderRequest{MesaID: e.mesa.ID, Items: []dto.OrderItemRequest{{ProductoID: e.sopa.ID, Cantidad: 1}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ReintentaColisionDeNumero(t *testing.T) {
	e := newEnv(t)
	e.store.FailOrderCreate = MaxCreateAttempts - 1
	e.create(t)

	e.store.FailOrderCreate = MaxCreateAttempts
	_, err := e.uc.Create(context.Background(), rid, e.mesero.ID, dto.CreateOrderRequest{MesaID: e.mesa.ID, Items: []dto.OrderItemRequest{{ProductoID: e.sopa.ID, Cantidad: 1}}})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreate_ConcurrenteNumerosUnicos(t *testing.T) {
	e := newEnv(t)
	const n = 15
	var wg sync.WaitGroup
	numeros := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := e.uc.Create(context.Background(), rid, e.mesero.ID, dto.CreateOrderRequest{
				MesaID: e.mesa.ID, Items: []dto.OrderItemRequest{{ProductoID: e.sopa.ID, Cantidad: 1}},
			})
			if assert.NoError(t, err) {
				numeros <- out.Numero
			}
		}()
	}
	wg.Wait()
	close(numeros)

	seen := map[string]bool{}
	for num := range numeros {
		assert.False(t, seen[num], "número repetido %s", num)
		seen[num] = true
	}
	assert.Len(t, seen, n)
}

func TestUpdateItems(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	out := e.create(t)

	propina := decimal.NewFromInt(2)
	upd, err := e.uc.UpdateItems(ctx, rid, out.ID, dto.UpdateOrderRequest{
		Items:   []dto.OrderItemRequest{{ProductoID: e.sopa.ID, Cantidad: 1}},
		Propina: &propina,
	})
	require.NoError(t, err)
	assert.True(t, upd.Total.Equal(decimal.RequireFromString("8.25")))
	assert.Equal(t, out.Version+1, upd.Version)

	_, err = e.uc.ChangeStatus(ctx, rid, e.mesero.ID, out.ID, entity.OrderEnPreparacion)
	require.NoError(t, err)
	_, err = e.uc.UpdateItems(ctx, rid, out.ID, dto.UpdateOrderRequest{Propina: &propina})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestChangeStatus_EntregaLiberaMesa(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	first := e.create(t)
	second := e.create(t)

	for _, s := range []string{entity.OrderEnPreparacion, entity.OrderListo, entity.OrderEntregado} {
		_, err := e.uc.ChangeStatus(ctx, rid, e.mesero.ID, first.ID, s)
		require.NoError(t, err)
	}
	got, err := e.uc.GetByID(ctx, rid, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got.EntregadoAt)
	assert.Len(t, got.Historial, 4)
	assert.Equal(t, entity.TableOcupada, e.tableState(t), "queda otro pedido activo en la mesa")

	_, err = e.uc.ChangeStatus(ctx, rid, e.mesero.ID, first.ID, entity.OrderCancelado)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "entregado es terminal")

	cancelled, err := e.uc.Cancel(ctx, rid, e.mesero.ID, second.ID)
	require.NoError(t, err)
	assert.False(t, cancelled.Activo)
	assert.Equal(t, entity.TableDisponible, e.tableState(t))

	_, err = e.uc.GetByID(ctx, rid, second.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "un pedido cancelado queda fuera de las consultas")

	_, err = e.uc.ChangeStatus(ctx, rid, e.mesero.ID, first.ID, "perdido")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestKitchenListYStats(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	a := e.create(t)
	e.clock.Advance(time.Minute)
	b := e.create(t)

	kitchen, err := e.uc.Kitchen(ctx, rid)
	require.NoError(t, err)
	require.Len(t, kitchen, 2)
	assert.Equal(t, a.ID, kitchen[0].ID, "cocina ve primero el más antiguo")

	for _, s := range []string{entity.OrderEnPreparacion, entity.OrderListo, entity.OrderEntregado} {
		_, err := e.uc.ChangeStatus(ctx, rid, e.mesero.ID, b.ID, s)
		require.NoError(t, err)
	}

	list, err := e.uc.List(ctx, rid, dto.OrderListRequest{Fecha: "2026-05-10"})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Page.Total)
	assert.Equal(t, b.ID, list.Items[0].ID)

	list, err = e.uc.List(ctx, rid, dto.OrderListRequest{Fecha: "2026-05-11"})
	require.NoError(t, err)
	assert.Zero(t, list.Page.Total)

	_, err = e.uc.List(ctx, rid, dto.OrderListRequest{Fecha: "10/05/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stats, err := e.uc.Stats(ctx, rid, "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.PedidosEntregados)
	assert.True(t, stats.Ventas.Equal(decimal.RequireFromString("19.50")))
	assert.True(t, stats.TicketPromedio.Equal(decimal.RequireFromString("19.50")))

	_, err = e.uc.Stats(ctx, rid, "2026-05-10", "2026-05-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTicket(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	out := e.create(t)

	e.renderer.On("RenderTicket", mock.Anything, mock.MatchedBy(func(d ports.TicketData) bool {
		return d.Order.ID == out.ID && d.MesaNumero == 5 && d.Mesero == "Mario" && d.Restaurant.Moneda == "COP"
	})).Return([]byte("%PDF-1.4"), nil).Once()

	pdf, name, err := e.uc.Ticket(ctx, rid, out.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), pdf)
	assert.Equal(t, "ticket-"+out.Numero+".pdf", name)
	e.renderer.AssertExpectations(t)
}
