package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// UserFilter filtros del listado de empleados.
type UserFilter struct {
	Role   string
	Active *bool
}

// UserRepository define el puerto de persistencia para User (DIP).
// GetByID y GetByEmail devuelven (nil, nil) si no existe en el restaurante.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, restauranteID, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, restauranteID, email string) (*entity.User, error)
	// FindByEmail busca en todos los restaurantes, activos e inactivos (login sin restauranteId).
	FindByEmail(ctx context.Context, email string) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	UpdatePassword(ctx context.Context, restauranteID, id, passwordHash string) error
	List(ctx context.Context, restauranteID string, f UserFilter, page Page) ([]*entity.User, int, error)
	SoftDelete(ctx context.Context, restauranteID, id string) error
}
