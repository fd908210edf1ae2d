package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// OrderFilter filtros del listado de pedidos. Desde/Hasta acotan created_at.
type OrderFilter struct {
	Estado   string
	MesaID   string
	MeseroID string
	Desde    *time.Time
	Hasta    *time.Time
}

// OrderRepository define el puerto de persistencia para Order.
// Update y UpdateStatus son compare-and-set sobre Version (domain.ErrStaleVersion si cambió).
type OrderRepository interface {
	// Create devuelve domain.ErrConflict si el número ya existe para el restaurante.
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, restauranteID, id string) (*entity.Order, error)
	// Update persiste items, totales y notas.
	Update(ctx context.Context, o *entity.Order) error
	// UpdateStatus persiste estado, historial, entregado_at y activo.
	UpdateStatus(ctx context.Context, o *entity.Order) error
	List(ctx context.Context, restauranteID string, f OrderFilter, page Page) ([]*entity.Order, int, error)
	// ListKitchen pedidos activos no terminales, del más antiguo al más reciente.
	ListKitchen(ctx context.Context, restauranteID string) ([]*entity.Order, error)
	// CountActiveByTable pedidos activos no terminales de la mesa.
	CountActiveByTable(ctx context.Context, restauranteID, mesaID string) (int, error)
	// MaxSequence mayor consecutivo usado en el día (0 si no hay pedidos).
	MaxSequence(ctx context.Context, restauranteID string, day time.Time) (int, error)
}

// OrderNumberSequencer entrega el siguiente consecutivo del día para un restaurante.
// Dos llamadas concurrentes para el mismo restaurante y día nunca devuelven el mismo valor.
type OrderNumberSequencer interface {
	Next(ctx context.Context, restauranteID string, day time.Time) (int, error)
}
