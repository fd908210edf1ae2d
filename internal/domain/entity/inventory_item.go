package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de insumos de inventario.
const (
	InventoryCarnes      = "carnes"
	InventoryVerduras    = "verduras"
	InventoryLacteos     = "lacteos"
	InventoryGranos      = "granos"
	InventoryBebidas     = "bebidas"
	InventoryCondimentos = "condimentos"
	InventoryLimpieza    = "limpieza"
	InventoryOtros       = "otros"
)

// InventoryCategories categorías válidas.
var InventoryCategories = []string{
	InventoryCarnes, InventoryVerduras, InventoryLacteos, InventoryGranos,
	InventoryBebidas, InventoryCondimentos, InventoryLimpieza, InventoryOtros,
}

// Unidades de medida.
const (
	UnitKg       = "kg"
	UnitLitros   = "litros"
	UnitUnidades = "unidades"
	UnitCajas    = "cajas"
)

// InventoryUnits unidades válidas.
var InventoryUnits = []string{UnitKg, UnitLitros, UnitUnidades, UnitCajas}

// Estados derivados del stock (nunca se persisten).
const (
	StockNormal  = "Normal"
	StockBajo    = "Bajo Stock"
	StockCritico = "Crítico"
	StockAgotado = "Agotado"
)

// StockStatuses estados derivados válidos (para filtros).
var StockStatuses = []string{StockNormal, StockBajo, StockCritico, StockAgotado}

// InventoryItem insumo del restaurante. Estado y alertas de vencimiento se derivan al leer.
type InventoryItem struct {
	ID               string
	RestauranteID    string
	Nombre           string // único por restaurante entre activos
	Categoria        string
	Cantidad         decimal.Decimal
	Unidad           string
	CantidadMinima   decimal.Decimal
	PrecioUnitario   decimal.Decimal
	FechaVencimiento *time.Time
	Proveedor        string
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
