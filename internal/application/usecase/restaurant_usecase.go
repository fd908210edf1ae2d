package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/money"
)

// RestaurantUseCase datos del restaurante (tenant) del usuario autenticado.
type RestaurantUseCase struct {
	repo  repository.RestaurantRepository
	clock ports.Clock
}

// NewRestaurantUseCase construye el caso de uso.
func NewRestaurantUseCase(repo repository.RestaurantRepository, clock ports.Clock) *RestaurantUseCase {
	return &RestaurantUseCase{repo: repo, clock: clock}
}

// Get devuelve el restaurante.
func (uc *RestaurantUseCase) Get(ctx context.Context, restauranteID string) (*dto.RestaurantResponse, error) {
	r, err := uc.load(ctx, restauranteID)
	if err != nil {
		return nil, err
	}
	return toRestaurantResponse(r), nil
}

// Update actualización parcial; la moneda debe ser un código ISO 4217.
func (uc *RestaurantUseCase) Update(ctx context.Context, restauranteID string, in dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	r, err := uc.load(ctx, restauranteID)
	if err != nil {
		return nil, err
	}
	var v domain.Violations
	if in.Nombre != nil {
		v.Required("nombre", *in.Nombre)
	}
	if in.Email != nil && *in.Email != "" {
		v.Email("email", strings.ToLower(*in.Email))
	}
	if in.Moneda != nil {
		v.Check(money.ValidISO(*in.Moneda), "moneda", "código ISO 4217 inválido")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	if in.Nombre != nil {
		r.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Direccion != nil {
		r.Direccion = *in.Direccion
	}
	if in.Telefono != nil {
		r.Telefono = *in.Telefono
	}
	if in.Email != nil {
		r.Email = strings.ToLower(*in.Email)
	}
	if in.Horario != nil {
		r.Horario = *in.Horario
	}
	if in.Moneda != nil {
		r.Moneda = strings.ToUpper(*in.Moneda)
	}
	r.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toRestaurantResponse(r), nil
}

func (uc *RestaurantUseCase) load(ctx context.Context, restauranteID string) (*entity.Restaurant, error) {
	r, err := uc.repo.GetByID(ctx, restauranteID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func toRestaurantResponse(r *entity.Restaurant) *dto.RestaurantResponse {
	if r == nil {
		return nil
	}
	return &dto.RestaurantResponse{
		ID:        r.ID,
		Nombre:    r.Nombre,
		Direccion: r.Direccion,
		Telefono:  r.Telefono,
		Email:     r.Email,
		Horario:   r.Horario,
		Moneda:    r.Moneda,
		AdminID:   r.AdminID,
		Activo:    r.Active,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
