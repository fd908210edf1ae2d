// Package orders ciclo de vida de los pedidos: creación con consecutivo diario, edición,
// cambios de estado y efectos sobre la mesa.
package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/domain/rules"
	"github.com/shopspring/decimal"
)

// MaxCreateAttempts intentos de Create ante colisión del número de pedido.
const MaxCreateAttempts = 3

// OrderUseCase casos de uso de pedidos.
type OrderUseCase struct {
	txRunner    repository.TxRunner
	orders      repository.OrderRepository
	tables      repository.TableRepository
	users       repository.UserRepository
	restaurants repository.RestaurantRepository
	stats       repository.StatsRepository
	renderer    ports.TicketRenderer
	clock       ports.Clock
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner repository.TxRunner,
	orders repository.OrderRepository,
	tables repository.TableRepository,
	users repository.UserRepository,
	restaurants repository.RestaurantRepository,
	stats repository.StatsRepository,
	renderer ports.TicketRenderer,
	clock ports.Clock,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:    txRunner,
		orders:      orders,
		tables:      tables,
		users:       users,
		restaurants: restaurants,
		stats:       stats,
		renderer:    renderer,
		clock:       clock,
	}
}

// Create registra un pedido en una transacción: bloquea la mesa, toma nombre y precio de cada producto,
// asigna el siguiente número del día y ocupa la mesa si estaba disponible.
func (uc *OrderUseCase) Create(ctx context.Context, restauranteID, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	meseroID := userID
	if in.MeseroID != "" {
		u, err := uc.users.GetByID(ctx, restauranteID, in.MeseroID)
		if err != nil {
			return nil, err
		}
		if !u.IsActiveWaiter() {
			return nil, domain.NewValidationError("meseroId", "debe ser un mesero activo del restaurante")
		}
		meseroID = u.ID
	}

	var created *entity.Order
	var err error
	for attempt := 1; attempt <= MaxCreateAttempts; attempt++ {
		created, err = uc.createOnce(ctx, restauranteID, userID, meseroID, in)
		if !errors.Is(err, domain.ErrConflict) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created), nil
}

func (uc *OrderUseCase) createOnce(ctx context.Context, restauranteID, userID, meseroID string, in dto.CreateOrderRequest) (*entity.Order, error) {
	now := uc.clock.Now()
	day := rules.DayStart(now, uc.clock.Location())
	order := &entity.Order{
		ID:            uuid.New().String(),
		RestauranteID: restauranteID,
		MesaID:        in.MesaID,
		MeseroID:      meseroID,
		Impuesto:      decimal.Zero,
		Propina:       in.Propina,
		Estado:        entity.OrderPendiente,
		Historial:     []entity.StatusChange{{Estado: entity.OrderPendiente, Fecha: now, UsuarioID: userID}},
		Notas:         strings.TrimSpace(in.Notas),
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err := uc.txRunner.Run(ctx, func(tx repository.TxRepos) error {
		table, err := tx.Tables.GetForUpdate(ctx, restauranteID, in.MesaID)
		if err != nil {
			return err
		}
		if table == nil {
			return fmt.Errorf("%w: mesa %s", domain.ErrNotFound, in.MesaID)
		}
		if table.Estado == entity.TableLimpieza {
			return domain.NewValidationError("mesaId", fmt.Sprintf("la mesa %d está en limpieza", table.Numero))
		}
		items, err := snapshotItems(ctx, tx.Products, restauranteID, in.Items)
		if err != nil {
			return err
		}
		order.Items = items
		rules.RecalculateOrder(order)

		seq, err := tx.Sequencer.Next(ctx, restauranteID, day)
		if err != nil {
			return err
		}
		order.Numero = rules.FormatOrderNumber(day, seq)
		if err := tx.Orders.Create(ctx, order); err != nil {
			return err
		}
		if table.Estado == entity.TableDisponible {
			table.UpdatedAt = now
			return tx.Tables.UpdateStatus(ctx, table, entity.TableOcupada)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateItems reemplaza líneas, propina o notas de un pedido pendiente y recalcula totales.
func (uc *OrderUseCase) UpdateItems(ctx context.Context, restauranteID, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	var v domain.Violations
	if in.Items != nil {
		v.Check(len(in.Items) > 0, "items", "debe tener al menos un producto")
		validateItems(&v, in.Items)
	}
	if in.Propina != nil {
		v.Check(!in.Propina.IsNegative(), "propina", "no puede ser negativa")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	var order *entity.Order
	err := uc.txRunner.Run(ctx, func(tx repository.TxRepos) error {
		o, err := loadOrder(ctx, tx.Orders, restauranteID, id)
		if err != nil {
			return err
		}
		if o.Estado != entity.OrderPendiente {
			return fmt.Errorf("%w: solo se edita un pedido pendiente (estado actual %s)", domain.ErrConflict, o.Estado)
		}
		if in.Items != nil {
			items, err := snapshotItems(ctx, tx.Products, restauranteID, in.Items)
			if err != nil {
				return err
			}
			o.Items = items
		}
		if in.Propina != nil {
			o.Propina = *in.Propina
		}
		if in.Notas != nil {
			o.Notas = strings.TrimSpace(*in.Notas)
		}
		rules.RecalculateOrder(o)
		o.UpdatedAt = uc.clock.Now()
		if err := tx.Orders.Update(ctx, o); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ChangeStatus avanza el estado, registra el historial y, si el pedido termina y la mesa
// queda sin pedidos activos, la devuelve a disponible.
func (uc *OrderUseCase) ChangeStatus(ctx context.Context, restauranteID, userID, id, estado string) (*dto.OrderResponse, error) {
	var order *entity.Order
	err := uc.txRunner.Run(ctx, func(tx repository.TxRepos) error {
		o, err := loadOrder(ctx, tx.Orders, restauranteID, id)
		if err != nil {
			return err
		}
		if err := rules.ValidateOrderTransition(o.Estado, estado); err != nil {
			return err
		}
		now := uc.clock.Now()
		o.Estado = estado
		o.Historial = append(o.Historial, entity.StatusChange{Estado: estado, Fecha: now, UsuarioID: userID})
		if estado == entity.OrderEntregado && o.EntregadoAt == nil {
			o.EntregadoAt = &now
		}
		if estado == entity.OrderCancelado {
			o.Active = false
		}
		o.UpdatedAt = now
		if err := tx.Orders.UpdateStatus(ctx, o); err != nil {
			return err
		}
		order = o
		if !o.IsTerminal() {
			return nil
		}
		return releaseTable(ctx, tx, restauranteID, o.MesaID, now)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Cancel cancela el pedido (soft delete).
func (uc *OrderUseCase) Cancel(ctx context.Context, restauranteID, userID, id string) (*dto.OrderResponse, error) {
	return uc.ChangeStatus(ctx, restauranteID, userID, id, entity.OrderCancelado)
}

// releaseTable libera la mesa ocupada cuando ya no tiene pedidos activos.
func releaseTable(ctx context.Context, tx repository.TxRepos, restauranteID, mesaID string, now time.Time) error {
	table, err := tx.Tables.GetForUpdate(ctx, restauranteID, mesaID)
	if err != nil || table == nil || table.Estado != entity.TableOcupada {
		return err
	}
	n, err := tx.Orders.CountActiveByTable(ctx, restauranteID, mesaID)
	if err != nil || n > 0 {
		return err
	}
	table.UpdatedAt = now
	return tx.Tables.UpdateStatus(ctx, table, entity.TableDisponible)
}

// GetByID obtiene un pedido.
func (uc *OrderUseCase) GetByID(ctx context.Context, restauranteID, id string) (*dto.OrderResponse, error) {
	o, err := loadOrder(ctx, uc.orders, restauranteID, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// List lista pedidos, más recientes primero.
func (uc *OrderUseCase) List(ctx context.Context, restauranteID string, in dto.OrderListRequest) (*dto.OrderListResponse, error) {
	in.DefaultPage()
	f := repository.OrderFilter{Estado: in.Estado, MesaID: in.MesaID, MeseroID: in.MeseroID}
	var v domain.Violations
	if in.Estado != "" {
		v.OneOf("estado", in.Estado, entity.OrderStatuses)
	}
	if in.Fecha != "" {
		day, err := time.ParseInLocation("2006-01-02", in.Fecha, uc.clock.Location())
		if err != nil {
			v.Add("fecha", "formato esperado YYYY-MM-DD")
		} else {
			next := day.AddDate(0, 0, 1)
			f.Desde, f.Hasta = &day, &next
		}
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	list, total, err := uc.orders.List(ctx, restauranteID, f, repository.Page{Limit: in.Limit, Offset: in.Offset})
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}
	for _, o := range list {
		out.Items = append(out.Items, *toOrderResponse(o))
	}
	return out, nil
}

// Kitchen pedidos activos más antiguos primero (vista de cocina).
func (uc *OrderUseCase) Kitchen(ctx context.Context, restauranteID string) ([]dto.OrderResponse, error) {
	list, err := uc.orders.ListKitchen(ctx, restauranteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// Ticket genera el PDF de la cuenta del pedido.
func (uc *OrderUseCase) Ticket(ctx context.Context, restauranteID, id string) ([]byte, string, error) {
	o, err := loadOrder(ctx, uc.orders, restauranteID, id)
	if err != nil {
		return nil, "", err
	}
	r, err := uc.restaurants.GetByID(ctx, restauranteID)
	if err != nil {
		return nil, "", err
	}
	if r == nil {
		return nil, "", domain.ErrNotFound
	}
	data := ports.TicketData{Restaurant: r, Order: o, EmitidoAt: uc.clock.Now()}
	if t, err := uc.tables.GetByID(ctx, restauranteID, o.MesaID); err == nil && t != nil {
		data.MesaNumero = t.Numero
	}
	if u, err := uc.users.GetByID(ctx, restauranteID, o.MeseroID); err == nil && u != nil {
		data.Mesero = u.Nombre
	}
	pdf, err := uc.renderer.RenderTicket(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("generar ticket: %w", err)
	}
	return pdf, "ticket-" + o.Numero + ".pdf", nil
}

// Stats pedidos del período [desde, hasta] (YYYY-MM-DD, inclusive). Por defecto, hoy.
func (uc *OrderUseCase) Stats(ctx context.Context, restauranteID, desde, hasta string) (*dto.OrderStatsResponse, error) {
	from, to, err := rules.Period(desde, hasta, uc.clock.Now(), uc.clock.Location())
	if err != nil {
		return nil, err
	}
	groups, err := uc.stats.OrdersByStatus(ctx, restauranteID, from, to)
	if err != nil {
		return nil, err
	}
	ventas, entregados, err := uc.stats.DeliveredSales(ctx, restauranteID, from, to)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderStatsResponse{
		Desde:             from,
		Hasta:             to,
		PorEstado:         make([]dto.GroupCountResponse, 0, len(groups)),
		Ventas:            ventas,
		PedidosEntregados: entregados,
		TicketPromedio:    decimal.Zero,
	}
	for _, g := range groups {
		out.Total += g.Count
		out.PorEstado = append(out.PorEstado, dto.GroupCountResponse{Clave: g.Key, Cantidad: g.Count})
	}
	if entregados > 0 {
		out.TicketPromedio = ventas.Div(decimal.NewFromInt(int64(entregados))).Round(2)
	}
	return out, nil
}

func validateCreate(in dto.CreateOrderRequest) error {
	var v domain.Violations
	v.Required("mesaId", in.MesaID)
	v.Check(len(in.Items) > 0, "items", "debe tener al menos un producto")
	validateItems(&v, in.Items)
	v.Check(!in.Propina.IsNegative(), "propina", "no puede ser negativa")
	return v.Err()
}

func validateItems(v *domain.Violations, items []dto.OrderItemRequest) {
	for i, it := range items {
		v.Required(fmt.Sprintf("items[%d].productoId", i), it.ProductoID)
		v.Check(it.Cantidad >= 1, fmt.Sprintf("items[%d].cantidad", i), "debe ser al menos 1")
	}
}

// snapshotItems copia nombre y precio vigentes de cada producto; todos deben estar activos y disponibles.
func snapshotItems(ctx context.Context, products repository.ProductRepository, restauranteID string, in []dto.OrderItemRequest) ([]entity.OrderItem, error) {
	ids := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, it := range in {
		if _, ok := seen[it.ProductoID]; !ok {
			seen[it.ProductoID] = struct{}{}
			ids = append(ids, it.ProductoID)
		}
	}
	list, err := products.GetByIDs(ctx, restauranteID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}

	var v domain.Violations
	items := make([]entity.OrderItem, 0, len(in))
	for i, it := range in {
		p := byID[it.ProductoID]
		if !p.Orderable() {
			v.Add(fmt.Sprintf("items[%d].productoId", i), "producto inexistente o no disponible")
			continue
		}
		items = append(items, entity.OrderItem{
			ProductoID:     p.ID,
			Nombre:         p.Nombre,
			Cantidad:       it.Cantidad,
			PrecioUnitario: p.Precio,
			Notas:          strings.TrimSpace(it.Notas),
		})
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func loadOrder(ctx context.Context, repo repository.OrderRepository, restauranteID, id string) (*entity.Order, error) {
	o, err := repo.GetByID(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, id)
	}
	return o, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductoID:     it.ProductoID,
			Nombre:         it.Nombre,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       it.Subtotal,
			Notas:          it.Notas,
		})
	}
	hist := make([]dto.StatusChangeResponse, 0, len(o.Historial))
	for _, h := range o.Historial {
		hist = append(hist, dto.StatusChangeResponse{Estado: h.Estado, Fecha: h.Fecha, UsuarioID: h.UsuarioID})
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		RestauranteID: o.RestauranteID,
		Numero:        o.Numero,
		MesaID:        o.MesaID,
		MeseroID:      o.MeseroID,
		Items:         items,
		Subtotal:      o.Subtotal,
		Impuesto:      o.Impuesto,
		Propina:       o.Propina,
		Total:         o.Total,
		Estado:        o.Estado,
		Historial:     hist,
		Notas:         o.Notas,
		EntregadoAt:   o.EntregadoAt,
		Activo:        o.Active,
		Version:       o.Version,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
