package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// TableFilter filtros del listado de mesas.
type TableFilter struct {
	Estado    string
	Ubicacion string
	MeseroID  string
}

// TableRepository define el puerto de persistencia para Table.
// Update y UpdateStatus son compare-and-set sobre Version: si otra petición modificó la mesa
// devuelven domain.ErrStaleVersion. En éxito incrementan t.Version.
type TableRepository interface {
	Create(ctx context.Context, t *entity.Table) error
	GetByID(ctx context.Context, restauranteID, id string) (*entity.Table, error)
	GetByNumero(ctx context.Context, restauranteID string, numero int) (*entity.Table, error)
	// GetForUpdate bloquea la fila de la mesa. Solo dentro de una transacción.
	GetForUpdate(ctx context.Context, restauranteID, id string) (*entity.Table, error)
	Update(ctx context.Context, t *entity.Table) error
	UpdateStatus(ctx context.Context, t *entity.Table, estado string) error
	List(ctx context.Context, restauranteID string, f TableFilter, page Page) ([]*entity.Table, int, error)
	SoftDelete(ctx context.Context, t *entity.Table) error
	// ClearWaiter quita al mesero de todas sus mesas activas y devuelve cuántas cambiaron.
	ClearWaiter(ctx context.Context, restauranteID, meseroID string, at time.Time) (int, error)
}
