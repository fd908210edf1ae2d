package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen operativo del día y del mes en curso.
type DashboardSummaryDTO struct {
	VentasHoy        decimal.Decimal `json:"ventasHoy"`
	PedidosHoy       int             `json:"pedidosHoy"`
	VentasMes        decimal.Decimal `json:"ventasMes"`
	PedidosMes       int             `json:"pedidosMes"`
	PedidosActivos   int             `json:"pedidosActivos"`
	MesasOcupadas    int             `json:"mesasOcupadas"`
	MesasTotales     int             `json:"mesasTotales"`
	ReservacionesHoy int             `json:"reservacionesHoy"`
	InsumosBajoStock int             `json:"insumosBajoStock"`
	TopProductos     []TopProductDTO `json:"topProductos"`
	Moneda           string          `json:"moneda"`
	Periodo          string          `json:"periodo"` // ej. "Febrero 2026"
}

// TopProductDTO producto más vendido del mes.
type TopProductDTO struct {
	ProductoID string          `json:"productoId"`
	Nombre     string          `json:"nombre"`
	Cantidad   int             `json:"cantidad"`
	Ingresos   decimal.Decimal `json:"ingresos"`
}
