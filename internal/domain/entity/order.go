package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido.
const (
	OrderPendiente     = "pendiente"
	OrderEnPreparacion = "en_preparacion"
	OrderListo         = "listo"
	OrderEntregado     = "entregado"
	OrderCancelado     = "cancelado"
)

// OrderStatuses estados válidos.
var OrderStatuses = []string{OrderPendiente, OrderEnPreparacion, OrderListo, OrderEntregado, OrderCancelado}

// OrderItem línea del pedido con snapshot de nombre y precio del producto.
type OrderItem struct {
	ProductoID     string
	Nombre         string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
	Notas          string
}

// StatusChange entrada del historial de estados.
type StatusChange struct {
	Estado    string
	Fecha     time.Time
	UsuarioID string
}

// Order pedido de una mesa. Numero tiene formato P-YYMMDD-NNNN y es único por restaurante y día.
type Order struct {
	ID            string
	RestauranteID string
	Numero        string
	MesaID        string
	MeseroID      string
	Items         []OrderItem
	Subtotal      decimal.Decimal
	Impuesto      decimal.Decimal // siempre 0 por ahora
	Propina       decimal.Decimal
	Total         decimal.Decimal
	Estado        string
	Historial     []StatusChange
	Notas         string
	EntregadoAt   *time.Time
	Active        bool
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsTerminal informa si el pedido ya no admite cambios de estado.
func (o *Order) IsTerminal() bool {
	return o.Estado == OrderEntregado || o.Estado == OrderCancelado
}
