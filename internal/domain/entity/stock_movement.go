package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ajuste de stock.
const (
	MovementEntrada = "entrada"
	MovementSalida  = "salida"
)

// StockMovement registro append-only de cada ajuste de un insumo.
type StockMovement struct {
	ID               string
	RestauranteID    string
	ItemID           string
	Tipo             string // entrada, salida
	Cantidad         decimal.Decimal
	CantidadAnterior decimal.Decimal
	CantidadNueva    decimal.Decimal
	Motivo           string
	UsuarioID        string
	CreatedAt        time.Time
}
