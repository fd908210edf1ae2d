package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/domain/rules"
)

// MinPasswordLength longitud mínima de contraseña de empleados.
const MinPasswordLength = 8

// UserUseCase gestión de empleados del restaurante.
type UserUseCase struct {
	repo        repository.UserRepository
	restaurants repository.RestaurantRepository
	stats       repository.StatsRepository
	tx          repository.TxRunner
	clock       ports.Clock
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
// tx se usa cuando el cambio del empleado también desasigna sus mesas.
func NewUserUseCase(
	repo repository.UserRepository,
	restaurants repository.RestaurantRepository,
	stats repository.StatsRepository,
	tx repository.TxRunner,
	clock ports.Clock,
) *UserUseCase {
	return &UserUseCase{repo: repo, restaurants: restaurants, stats: stats, tx: tx, clock: clock}
}

// Create da de alta un empleado. El email es único dentro del restaurante.
func (uc *UserUseCase) Create(ctx context.Context, restauranteID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	var v domain.Violations
	v.Required("nombre", in.Nombre)
	v.Email("email", in.Email)
	v.Check(len(in.Password) >= MinPasswordLength, "password", fmt.Sprintf("mínimo %d caracteres", MinPasswordLength))
	v.OneOf("rol", in.Rol, entity.Roles)
	if err := v.Err(); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByEmail(ctx, restauranteID, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Active {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmailAlreadyExists, in.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := uc.clock.Now()
	u := &entity.User{
		ID:            uuid.New().String(),
		RestauranteID: restauranteID,
		Nombre:        strings.TrimSpace(in.Nombre),
		Email:         in.Email,
		PasswordHash:  string(hash),
		Role:          in.Rol,
		Telefono:      in.Telefono,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// GetByID obtiene un empleado del restaurante.
func (uc *UserUseCase) GetByID(ctx context.Context, restauranteID, id string) (*dto.UserResponse, error) {
	u, err := uc.load(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// List lista empleados con filtros de rol y estado.
func (uc *UserUseCase) List(ctx context.Context, restauranteID string, in dto.UserListRequest) (*dto.UserListResponse, error) {
	in.DefaultPage()
	if in.Rol != "" && !rules.OneOf(in.Rol, entity.Roles) {
		return nil, domain.NewValidationError("rol", "debe ser uno de: "+strings.Join(entity.Roles, ", "))
	}
	list, total, err := uc.repo.List(ctx, restauranteID, repository.UserFilter{Role: in.Rol, Active: in.Activo},
		repository.Page{Limit: in.Limit, Offset: in.Offset})
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{
		Items: make([]dto.UserResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}
	for _, u := range list {
		out.Items = append(out.Items, *toUserResponse(u))
	}
	return out, nil
}

// ListWaiters meseros activos (para asignar mesas y pedidos).
func (uc *UserUseCase) ListWaiters(ctx context.Context, restauranteID string) ([]dto.UserResponse, error) {
	active := true
	list, _, err := uc.repo.List(ctx, restauranteID, repository.UserFilter{Role: entity.RoleMesero, Active: &active}, repository.Page{})
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Update actualiza nombre, teléfono, rol o estado. El admin del restaurante no puede cambiar de rol ni desactivarse.
func (uc *UserUseCase) Update(ctx context.Context, restauranteID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.load(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	var v domain.Violations
	if in.Nombre != nil {
		v.Required("nombre", *in.Nombre)
	}
	if in.Rol != nil {
		v.OneOf("rol", *in.Rol, entity.Roles)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	demotes := in.Rol != nil && *in.Rol != u.Role
	deactivates := in.Activo != nil && !*in.Activo
	if demotes || deactivates {
		if err := uc.guardOwner(ctx, restauranteID, id); err != nil {
			return nil, err
		}
	}
	// Un mesero que deja de serlo o se desactiva no puede seguir asignado a mesas.
	leavesTables := u.Role == entity.RoleMesero && u.Active && (demotes || deactivates)

	if in.Nombre != nil {
		u.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Telefono != nil {
		u.Telefono = *in.Telefono
	}
	if in.Rol != nil {
		u.Role = *in.Rol
	}
	if in.Activo != nil {
		u.Active = *in.Activo
	}
	u.UpdatedAt = uc.clock.Now()
	if !leavesTables {
		if err := uc.repo.Update(ctx, u); err != nil {
			return nil, err
		}
		return toUserResponse(u), nil
	}
	err = uc.tx.Run(ctx, func(tx repository.TxRepos) error {
		if err := tx.Users.Update(ctx, u); err != nil {
			return err
		}
		_, err := tx.Tables.ClearWaiter(ctx, restauranteID, u.ID, u.UpdatedAt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Delete desactiva (soft delete) un empleado y lo quita de las mesas que tuviera asignadas.
func (uc *UserUseCase) Delete(ctx context.Context, restauranteID, id string) error {
	u, err := uc.load(ctx, restauranteID, id)
	if err != nil {
		return err
	}
	if !u.Active {
		return domain.ErrUserNotFound
	}
	if err := uc.guardOwner(ctx, restauranteID, id); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(tx repository.TxRepos) error {
		if err := tx.Users.SoftDelete(ctx, restauranteID, id); err != nil {
			return err
		}
		if u.Role != entity.RoleMesero {
			return nil
		}
		_, err := tx.Tables.ClearWaiter(ctx, restauranteID, id, uc.clock.Now())
		return err
	})
}

// Stats total de empleados activos y desglose por rol.
func (uc *UserUseCase) Stats(ctx context.Context, restauranteID string) (*dto.UserStatsResponse, error) {
	groups, err := uc.stats.UsersByRole(ctx, restauranteID)
	if err != nil {
		return nil, err
	}
	total, porRol := toGroupCounts(groups)
	return &dto.UserStatsResponse{Total: total, PorRol: porRol}, nil
}

func (uc *UserUseCase) guardOwner(ctx context.Context, restauranteID, id string) error {
	r, err := uc.restaurants.GetByID(ctx, restauranteID)
	if err != nil {
		return err
	}
	if r != nil && r.AdminID == id {
		return fmt.Errorf("%w: el administrador principal del restaurante no puede eliminarse, desactivarse ni cambiar de rol", domain.ErrConflict)
	}
	return nil
}

func (uc *UserUseCase) load(ctx context.Context, restauranteID, id string) (*entity.User, error) {
	u, err := uc.repo.GetByID(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		RestauranteID: u.RestauranteID,
		Nombre:        u.Nombre,
		Email:         u.Email,
		Rol:           u.Role,
		Telefono:      u.Telefono,
		Activo:        u.Active,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
