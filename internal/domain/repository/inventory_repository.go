package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InventoryFilter filtros SQL del listado de insumos (el estado derivado se filtra en la aplicación).
type InventoryFilter struct {
	Categoria string
	Busqueda  string
}

// InventoryRepository define el puerto de persistencia para insumos y su historial de movimientos.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, restauranteID, id string) (*entity.InventoryItem, error)
	GetByName(ctx context.Context, restauranteID, nombre string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila del insumo (SELECT FOR UPDATE). Solo dentro de una transacción.
	GetForUpdate(ctx context.Context, restauranteID, id string) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	UpdateQuantity(ctx context.Context, restauranteID, id string, cantidad, precioUnitario decimal.Decimal) error
	List(ctx context.Context, restauranteID string, f InventoryFilter) ([]*entity.InventoryItem, error)
	SoftDelete(ctx context.Context, restauranteID, id string) error

	CreateMovement(ctx context.Context, m *entity.StockMovement) error
	ListMovements(ctx context.Context, restauranteID, itemID string, page Page) ([]*entity.StockMovement, int, error)
}
