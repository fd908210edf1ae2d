package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ProductFilter filtros del listado de productos. Busqueda compara nombre y descripción.
type ProductFilter struct {
	Categoria  string
	Disponible *bool
	Destacado  *bool
	Busqueda   string
}

// ProductRepository define el puerto de persistencia para Product (DIP). Solo opera sobre activos.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, restauranteID, id string) (*entity.Product, error)
	GetByName(ctx context.Context, restauranteID, nombre string) (*entity.Product, error)
	GetByIDs(ctx context.Context, restauranteID string, ids []string) ([]*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	List(ctx context.Context, restauranteID string, f ProductFilter, page Page) ([]*entity.Product, int, error)
	SoftDelete(ctx context.Context, restauranteID, id string) error
}
