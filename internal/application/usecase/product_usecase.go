package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/domain/rules"
)

// ProductUseCase casos de uso CRUD para el menú. El nombre es único por restaurante entre productos activos.
type ProductUseCase struct {
	repo  repository.ProductRepository
	stats repository.StatsRepository
	clock ports.Clock
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, stats repository.StatsRepository, clock ports.Clock) *ProductUseCase {
	return &ProductUseCase{repo: repo, stats: stats, clock: clock}
}

// Create crea un producto. Disponible por defecto.
func (uc *ProductUseCase) Create(ctx context.Context, restauranteID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var v domain.Violations
	v.Required("nombre", in.Nombre)
	v.OneOf("categoria", in.Categoria, entity.ProductCategories)
	v.Check(in.Precio.GreaterThanOrEqual(decimal.Zero), "precio", "no puede ser negativo")
	if err := v.Err(); err != nil {
		return nil, err
	}
	if err := uc.ensureUniqueName(ctx, restauranteID, in.Nombre, ""); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	p := &entity.Product{
		ID:            uuid.New().String(),
		RestauranteID: restauranteID,
		Nombre:        strings.TrimSpace(in.Nombre),
		Descripcion:   in.Descripcion,
		Categoria:     in.Categoria,
		Precio:        in.Precio,
		Disponible:    deref(in.Disponible, true),
		Destacado:     in.Destacado,
		Etiquetas:     cleanTags(in.Etiquetas),
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, restauranteID, id string) (*dto.ProductResponse, error) {
	p, err := uc.load(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// List lista productos con filtros.
func (uc *ProductUseCase) List(ctx context.Context, restauranteID string, in dto.ProductListRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()
	if in.Categoria != "" && !rules.OneOf(in.Categoria, entity.ProductCategories) {
		return nil, domain.NewValidationError("categoria", "debe ser uno de: "+strings.Join(entity.ProductCategories, ", "))
	}
	f := repository.ProductFilter{
		Categoria:  in.Categoria,
		Disponible: in.Disponible,
		Destacado:  in.Destacado,
		Busqueda:   strings.TrimSpace(in.Busqueda),
	}
	list, total, err := uc.repo.List(ctx, restauranteID, f, repository.Page{Limit: in.Limit, Offset: in.Offset})
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}
	for _, p := range list {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

// Update actualización parcial. Cambiar el precio no afecta pedidos existentes.
func (uc *ProductUseCase) Update(ctx context.Context, restauranteID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.load(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	var v domain.Violations
	if in.Nombre != nil {
		v.Required("nombre", *in.Nombre)
	}
	if in.Categoria != nil {
		v.OneOf("categoria", *in.Categoria, entity.ProductCategories)
	}
	if in.Precio != nil {
		v.Check(in.Precio.GreaterThanOrEqual(decimal.Zero), "precio", "no puede ser negativo")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		if err := uc.ensureUniqueName(ctx, restauranteID, *in.Nombre, p.ID); err != nil {
			return nil, err
		}
		p.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Categoria != nil {
		p.Categoria = *in.Categoria
	}
	if in.Precio != nil {
		p.Precio = *in.Precio
	}
	if in.Disponible != nil {
		p.Disponible = *in.Disponible
	}
	if in.Destacado != nil {
		p.Destacado = *in.Destacado
	}
	if in.Etiquetas != nil {
		p.Etiquetas = cleanTags(in.Etiquetas)
	}
	p.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// ToggleAvailability fija la disponibilidad o, si no se indica, la invierte.
func (uc *ProductUseCase) ToggleAvailability(ctx context.Context, restauranteID, id string, in dto.ToggleAvailabilityRequest) (*dto.ProductResponse, error) {
	p, err := uc.load(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	p.Disponible = deref(in.Disponible, !p.Disponible)
	p.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Delete soft delete; los pedidos conservan su copia de nombre y precio.
func (uc *ProductUseCase) Delete(ctx context.Context, restauranteID, id string) error {
	if _, err := uc.load(ctx, restauranteID, id); err != nil {
		return err
	}
	return uc.repo.SoftDelete(ctx, restauranteID, id)
}

// Stats productos activos por categoría.
func (uc *ProductUseCase) Stats(ctx context.Context, restauranteID string) (*dto.ProductStatsResponse, error) {
	groups, err := uc.stats.ProductsByCategory(ctx, restauranteID)
	if err != nil {
		return nil, err
	}
	total, porCategoria := toGroupCounts(groups)
	return &dto.ProductStatsResponse{Total: total, PorCategoria: porCategoria}, nil
}

func (uc *ProductUseCase) ensureUniqueName(ctx context.Context, restauranteID, nombre, selfID string) error {
	existing, err := uc.repo.GetByName(ctx, restauranteID, nombre)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%w: ya existe un producto llamado %q", domain.ErrDuplicate, existing.Nombre)
	}
	return nil
}

func (uc *ProductUseCase) load(ctx context.Context, restauranteID, id string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return p, nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	tags := p.Etiquetas
	if tags == nil {
		tags = []string{}
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		RestauranteID: p.RestauranteID,
		Nombre:        p.Nombre,
		Descripcion:   p.Descripcion,
		Categoria:     p.Categoria,
		Precio:        p.Precio,
		Disponible:    p.Disponible,
		Destacado:     p.Destacado,
		Etiquetas:     tags,
		Activo:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
