package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea solicitada; nombre y precio se toman del producto.
type OrderItemRequest struct {
	ProductoID string `json:"productoId"`
	Cantidad   int    `json:"cantidad"`
	Notas      string `json:"notas"`
}

// CreateOrderRequest alta de un pedido. MeseroID opcional (por defecto el usuario autenticado).
type CreateOrderRequest struct {
	MesaID   string             `json:"mesaId"`
	MeseroID string             `json:"meseroId"`
	Items    []OrderItemRequest `json:"items"`
	Propina  decimal.Decimal    `json:"propina"`
	Notas    string             `json:"notas"`
}

// UpdateOrderRequest edición de un pedido pendiente.
type UpdateOrderRequest struct {
	Items   []OrderItemRequest `json:"items"`
	Propina *decimal.Decimal   `json:"propina"`
	Notas   *string            `json:"notas"`
}

// OrderListRequest filtros del listado de pedidos. Fecha YYYY-MM-DD en la zona del restaurante.
type OrderListRequest struct {
	PageRequest
	Estado   string
	MesaID   string
	MeseroID string
	Fecha    string
}

// OrderItemResponse línea del pedido.
type OrderItemResponse struct {
	ProductoID     string          `json:"productoId"`
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Notas          string          `json:"notas"`
}

// StatusChangeResponse entrada del historial.
type StatusChangeResponse struct {
	Estado    string    `json:"estado"`
	Fecha     time.Time `json:"fecha"`
	UsuarioID string    `json:"usuarioId"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string                 `json:"id"`
	RestauranteID string                 `json:"restauranteId"`
	Numero        string                 `json:"numero"`
	MesaID        string                 `json:"mesaId"`
	MeseroID      string                 `json:"meseroId"`
	Items         []OrderItemResponse    `json:"items"`
	Subtotal      decimal.Decimal        `json:"subtotal"`
	Impuesto      decimal.Decimal        `json:"impuesto"`
	Propina       decimal.Decimal        `json:"propina"`
	Total         decimal.Decimal        `json:"total"`
	Estado        string                 `json:"estado"`
	Historial     []StatusChangeResponse `json:"historial"`
	Notas         string                 `json:"notas"`
	EntregadoAt   *time.Time             `json:"entregadoAt"`
	Activo        bool                   `json:"activo"`
	Version       int                    `json:"version"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// OrderStatsResponse estadísticas de pedidos del período.
type OrderStatsResponse struct {
	Desde             time.Time            `json:"desde"`
	Hasta             time.Time            `json:"hasta"`
	Total             int                  `json:"total"`
	PorEstado         []GroupCountResponse `json:"porEstado"`
	Ventas            decimal.Decimal      `json:"ventas"`
	PedidosEntregados int                  `json:"pedidosEntregados"`
	TicketPromedio    decimal.Decimal      `json:"ticketPromedio"`
}
