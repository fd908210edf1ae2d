package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest alta de un insumo.
type CreateInventoryItemRequest struct {
	Nombre           string          `json:"nombre"`
	Categoria        string          `json:"categoria"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	Unidad           string          `json:"unidad"`
	CantidadMinima   decimal.Decimal `json:"cantidadMinima"`
	PrecioUnitario   decimal.Decimal `json:"precioUnitario"`
	FechaVencimiento *time.Time      `json:"fechaVencimiento"`
	Proveedor        string          `json:"proveedor"`
}

// UpdateInventoryItemRequest actualización parcial de un insumo. Cantidad solo cambia vía ajuste.
type UpdateInventoryItemRequest struct {
	Nombre           *string          `json:"nombre"`
	Categoria        *string          `json:"categoria"`
	Unidad           *string          `json:"unidad"`
	CantidadMinima   *decimal.Decimal `json:"cantidadMinima"`
	PrecioUnitario   *decimal.Decimal `json:"precioUnitario"`
	FechaVencimiento *time.Time       `json:"fechaVencimiento"`
	Proveedor        *string          `json:"proveedor"`
}

// AdjustStockRequest ajuste de stock. PrecioUnitario opcional en entradas recalcula el promedio ponderado.
type AdjustStockRequest struct {
	Cantidad       decimal.Decimal  `json:"cantidad"`
	Tipo           string           `json:"tipo"`
	Motivo         string           `json:"motivo"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario"`
}

// InventoryListRequest filtros del listado de insumos.
type InventoryListRequest struct {
	PageRequest
	Categoria string
	Estado    string
	Busqueda  string
}

// InventoryItemResponse salida de un insumo con sus campos derivados.
type InventoryItemResponse struct {
	ID               string          `json:"id"`
	RestauranteID    string          `json:"restauranteId"`
	Nombre           string          `json:"nombre"`
	Categoria        string          `json:"categoria"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	Unidad           string          `json:"unidad"`
	CantidadMinima   decimal.Decimal `json:"cantidadMinima"`
	PrecioUnitario   decimal.Decimal `json:"precioUnitario"`
	FechaVencimiento *time.Time      `json:"fechaVencimiento"`
	Proveedor        string          `json:"proveedor"`
	Activo           bool            `json:"activo"`
	Estado           string          `json:"estado"`
	ProximoAVencer   bool            `json:"proximoAVencer"`
	Vencido          bool            `json:"vencido"`
	DiasParaVencer   *int            `json:"diasParaVencer"`
	ValorTotal       decimal.Decimal `json:"valorTotal"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// InventoryListResponse lista paginada de insumos.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// StockMovementResponse salida de un movimiento de stock.
type StockMovementResponse struct {
	ID               string          `json:"id"`
	ItemID           string          `json:"itemId"`
	Tipo             string          `json:"tipo"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	CantidadAnterior decimal.Decimal `json:"cantidadAnterior"`
	CantidadNueva    decimal.Decimal `json:"cantidadNueva"`
	Motivo           string          `json:"motivo"`
	UsuarioID        string          `json:"usuarioId"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// StockMovementListResponse lista paginada de movimientos.
type StockMovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// InventoryAlertsResponse insumos que requieren atención.
type InventoryAlertsResponse struct {
	BajoStock       []InventoryItemResponse `json:"bajoStock"`
	ProximosAVencer []InventoryItemResponse `json:"proximosAVencer"`
	Vencidos        []InventoryItemResponse `json:"vencidos"`
}

// InventoryStatsResponse estadísticas de inventario.
type InventoryStatsResponse struct {
	Total           int                  `json:"total"`
	ValorTotal      decimal.Decimal      `json:"valorTotal"`
	PorCategoria    []GroupCountResponse `json:"porCategoria"`
	PorEstado       []GroupCountResponse `json:"porEstado"`
	Vencidos        int                  `json:"vencidos"`
	ProximosAVencer int                  `json:"proximosAVencer"`
}
