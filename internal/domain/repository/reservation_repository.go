package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ReservationFilter filtros del listado de reservaciones.
type ReservationFilter struct {
	Fecha  string // YYYY-MM-DD
	Estado string
	MesaID string
}

// ReservationRepository define el puerto de persistencia para Reservation.
// Update y UpdateStatus son compare-and-set sobre Version.
type ReservationRepository interface {
	Create(ctx context.Context, r *entity.Reservation) error
	GetByID(ctx context.Context, restauranteID, id string) (*entity.Reservation, error)
	Update(ctx context.Context, r *entity.Reservation) error
	UpdateStatus(ctx context.Context, r *entity.Reservation) error
	List(ctx context.Context, restauranteID string, f ReservationFilter, page Page) ([]*entity.Reservation, int, error)
	// ListActiveByTableBetween reservaciones activas (pendiente/confirmada/sentada) de la mesa con
	// fecha_hora en [from, to], excluyendo excludeID.
	ListActiveByTableBetween(ctx context.Context, restauranteID, mesaID string, from, to time.Time, excludeID string) ([]*entity.Reservation, error)
}
