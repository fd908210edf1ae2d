package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/authz"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/jwt"
	"github.com/jhoicas/Restaurante-api/pkg/money"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength longitud mínima de contraseña.
const MinPasswordLength = 8

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
type AuthUseCase struct {
	tx             repository.TxRunner
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	tokens         *jwt.Signer
	clock          ports.Clock
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	tx repository.TxRunner,
	userRepo repository.UserRepository,
	restaurantRepo repository.RestaurantRepository,
	jwtCfg JWTConfig,
	clock ports.Clock,
) *AuthUseCase {
	return &AuthUseCase{
		tx:             tx,
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		tokens:         jwt.NewSigner(jwtCfg.Secret, jwtCfg.Issuer, time.Duration(jwtCfg.ExpMinutes)*time.Minute),
		clock:          clock,
	}
}

// Register crea el restaurante y su primer administrador en una sola transacción y devuelve el token.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Restaurante.Moneda == "" {
		in.Restaurante.Moneda = entity.MonedaPorDefecto
	}
	var v domain.Violations
	v.Required("restaurante.nombre", in.Restaurante.Nombre)
	v.Required("nombre", in.Nombre)
	v.Email("email", in.Email)
	v.Check(len(in.Password) >= MinPasswordLength, "password", fmt.Sprintf("mínimo %d caracteres", MinPasswordLength))
	v.Check(money.ValidISO(in.Restaurante.Moneda), "restaurante.moneda", "código ISO 4217 inválido")
	if in.Restaurante.Email != "" {
		v.Email("restaurante.email", strings.ToLower(in.Restaurante.Email))
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := uc.clock.Now()
	restaurant := &entity.Restaurant{
		ID:        uuid.New().String(),
		Nombre:    strings.TrimSpace(in.Restaurante.Nombre),
		Direccion: in.Restaurante.Direccion,
		Telefono:  in.Restaurante.Telefono,
		Email:     strings.ToLower(in.Restaurante.Email),
		Horario:   in.Restaurante.Horario,
		Moneda:    strings.ToUpper(in.Restaurante.Moneda),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	admin := &entity.User{
		ID:            uuid.New().String(),
		RestauranteID: restaurant.ID,
		Nombre:        strings.TrimSpace(in.Nombre),
		Email:         in.Email,
		PasswordHash:  string(hash),
		Role:          entity.RoleAdmin,
		Telefono:      in.Telefono,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	restaurant.AdminID = admin.ID

	err = uc.tx.Run(ctx, func(tx repository.TxRepos) error {
		if err := tx.Restaurants.Create(ctx, restaurant); err != nil {
			return err
		}
		return tx.Users.Create(ctx, admin)
	})
	if err != nil {
		return nil, err
	}
	return uc.issue(admin, restaurant)
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Sin restauranteId se busca el email en todos los restaurantes y gana el usuario cuya contraseña coincide.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	var v domain.Violations
	v.Required("email", email)
	v.Required("password", in.Password)
	if err := v.Err(); err != nil {
		return nil, err
	}

	var candidates []*entity.User
	if in.RestauranteID != "" {
		u, err := uc.userRepo.GetByEmail(ctx, in.RestauranteID, email)
		if err != nil {
			return nil, err
		}
		if u != nil {
			candidates = append(candidates, u)
		}
	} else {
		list, err := uc.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		candidates = list
	}

	user := matchPassword(candidates, in.Password)
	if user == nil {
		return nil, fmt.Errorf("%w: credenciales inválidas", domain.ErrUnauthorized)
	}
	if !user.Active {
		return nil, fmt.Errorf("%w: usuario inactivo", domain.ErrForbidden)
	}
	restaurant, err := uc.restaurantRepo.GetByID(ctx, user.RestauranteID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil || !restaurant.Active {
		return nil, fmt.Errorf("%w: restaurante inactivo", domain.ErrForbidden)
	}
	return uc.issue(user, restaurant)
}

// matchPassword devuelve el usuario cuya contraseña coincide, prefiriendo cuentas activas.
func matchPassword(users []*entity.User, password string) *entity.User {
	var inactive *entity.User
	for _, u := range users {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			continue
		}
		if u.Active {
			return u
		}
		if inactive == nil {
			inactive = u
		}
	}
	return inactive
}

// Profile devuelve el usuario autenticado.
func (uc *AuthUseCase) Profile(ctx context.Context, restauranteID, userID string) (*dto.UserResponse, error) {
	u, err := uc.loadUser(ctx, restauranteID, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// UpdateProfile actualiza nombre y teléfono del propio usuario.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, restauranteID, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	u, err := uc.loadUser(ctx, restauranteID, userID)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		if strings.TrimSpace(*in.Nombre) == "" {
			return nil, domain.NewValidationError("nombre", "es obligatorio")
		}
		u.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Telefono != nil {
		u.Telefono = *in.Telefono
	}
	u.UpdatedAt = uc.clock.Now()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// ChangePassword cambia la contraseña verificando la actual.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, restauranteID, userID string, in dto.ChangePasswordRequest) error {
	var v domain.Violations
	v.Required("passwordActual", in.PasswordActual)
	v.Check(len(in.PasswordNueva) >= MinPasswordLength, "passwordNueva", fmt.Sprintf("mínimo %d caracteres", MinPasswordLength))
	if err := v.Err(); err != nil {
		return err
	}
	u, err := uc.loadUser(ctx, restauranteID, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.PasswordActual)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.NewValidationError("passwordActual", "la contraseña actual no coincide")
		}
		return fmt.Errorf("comparar password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.PasswordNueva), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return uc.userRepo.UpdatePassword(ctx, restauranteID, userID, string(hash))
}

func (uc *AuthUseCase) loadUser(ctx context.Context, restauranteID, userID string) (*entity.User, error) {
	u, err := uc.userRepo.GetByID(ctx, restauranteID, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (uc *AuthUseCase) issue(u *entity.User, r *entity.Restaurant) (*dto.LoginResponse, error) {
	token, err := uc.tokens.Issue(jwt.Session{UserID: u.ID, RestauranteID: u.RestauranteID, Role: u.Role})
	if err != nil {
		return nil, err
	}
	perms := authz.PermissionsFor(u.Role)
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, string(p))
	}
	return &dto.LoginResponse{
		Token:       token,
		Usuario:     *toUserResponse(u),
		Restaurante: toRestaurantResponse(r),
		Permisos:    names,
	}, nil
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
