package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo implementación del puerto RestaurantRepository sobre PostgreSQL.
type RestaurantRepo struct {
	q Querier
}

// NewRestaurantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRestaurantRepository(q Querier) *RestaurantRepo {
	return &RestaurantRepo{q: q}
}

const restaurantColumns = `id, nombre, direccion, telefono, email, horario, moneda, COALESCE(admin_id::TEXT, ''), activo, created_at, updated_at`

// Create persiste un nuevo restaurante.
func (r *RestaurantRepo) Create(ctx context.Context, x *entity.Restaurant) error {
	query := `
		INSERT INTO restaurantes (id, nombre, direccion, telefono, email, horario, moneda, admin_id, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::UUID, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		x.ID, x.Nombre, x.Direccion, x.Telefono, x.Email, x.Horario, x.Moneda, x.AdminID,
		x.Active, x.CreatedAt, x.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert restaurante: %w", err)
	}
	return nil
}

// GetByID obtiene un restaurante activo por ID.
func (r *RestaurantRepo) GetByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + restaurantColumns + ` FROM restaurantes WHERE id = $1 AND activo`
	var x entity.Restaurant
	err := r.q.QueryRow(ctx, query, id).Scan(
		&x.ID, &x.Nombre, &x.Direccion, &x.Telefono, &x.Email, &x.Horario, &x.Moneda, &x.AdminID,
		&x.Active, &x.CreatedAt, &x.UpdatedAt,
	)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurante: %w", err)
	}
	return &x, nil
}

// Update actualiza datos de contacto, horario, moneda y admin.
func (r *RestaurantRepo) Update(ctx context.Context, x *entity.Restaurant) error {
	query := `
		UPDATE restaurantes SET nombre = $2, direccion = $3, telefono = $4, email = $5, horario = $6,
		       moneda = $7, admin_id = NULLIF($8, '')::UUID, updated_at = $9
		WHERE id = $1 AND activo`
	tag, err := r.q.Exec(ctx, query,
		x.ID, x.Nombre, x.Direccion, x.Telefono, x.Email, x.Horario, x.Moneda, x.AdminID, x.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update restaurante: %w", err)
	}
	return mustAffect(tag, domain.ErrNotFound)
}
