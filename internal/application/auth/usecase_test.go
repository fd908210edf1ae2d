package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/apptest"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/pkg/jwt"
)

const testSecret = "test-secret"

func newAuth(t *testing.T) (*AuthUseCase, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	repos := store.Repos()
	clock := apptest.NewClock(time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC))
	uc := NewAuthUseCase(store, repos.Users, repos.Restaurants, JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"}, clock)
	return uc, store
}

func registerReq(email string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Restaurante: dto.RegisterRestaurantRequest{Nombre: "La Fonda"},
		Nombre:      "Ana Admin",
		Email:       email,
		Password:    "supersecreta",
	}
}

func TestRegister_CreaRestauranteYAdmin(t *testing.T) {
	uc, store := newAuth(t)
	ctx := context.Background()

	out, err := uc.Register(ctx, registerReq("  Ana@Fonda.co "))
	require.NoError(t, err)

	assert.Equal(t, "ana@fonda.co", out.Usuario.Email)
	assert.Equal(t, entity.RoleAdmin, out.Usuario.Rol)
	require.NotNil(t, out.Restaurante)
	assert.Equal(t, entity.MonedaPorDefecto, out.Restaurante.Moneda)
	assert.Equal(t, out.Usuario.ID, out.Restaurante.AdminID)
	assert.Contains(t, out.Permisos, "empleados:crear")

	sess, err := jwt.NewSigner(testSecret, "test", time.Hour).Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Usuario.ID, sess.UserID)
	assert.Equal(t, out.Restaurante.ID, sess.RestauranteID)
	assert.Equal(t, entity.RoleAdmin, sess.Role)
	rid := sess.RestauranteID

	r, err := store.Repos().Restaurants.GetByID(ctx, rid)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "La Fonda", r.Nombre)
}

func TestRegister_ValidaCampos(t *testing.T) {
	uc, _ := newAuth(t)
	req := registerReq("no-es-email")
	req.Password = "corta"
	req.Restaurante.Nombre = ""
	req.Restaurante.Moneda = "XYZW"

	_, err := uc.Register(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	paths := map[string]bool{}
	for _, f := range ve.Fields {
		paths[f.Path] = true
	}
	assert.True(t, paths["email"])
	assert.True(t, paths["password"])
	assert.True(t, paths["restaurante.nombre"])
	assert.True(t, paths["restaurante.moneda"])
}

func TestLogin(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()
	reg, err := uc.Register(ctx, registerReq("ana@fonda.co"))
	require.NoError(t, err)

	t.Run("credenciales correctas", func(t *testing.T) {
		out, err := uc.Login(ctx, dto.LoginRequest{Email: "ANA@fonda.co", Password: "supersecreta"})
		require.NoError(t, err)
		assert.Equal(t, reg.Usuario.ID, out.Usuario.ID)
		assert.NotEmpty(t, out.Token)
	})

	t.Run("con restauranteId", func(t *testing.T) {
		out, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@fonda.co", Password: "supersecreta", RestauranteID: reg.Restaurante.ID})
		require.NoError(t, err)
		assert.Equal(t, reg.Restaurante.ID, out.Usuario.RestauranteID)
	})

	t.Run("contraseña incorrecta", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@fonda.co", Password: "otra-clave"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("email desconocido", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{Email: "nadie@fonda.co", Password: "supersecreta"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("campos vacíos", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, store := newAuth(t)
	ctx := context.Background()
	reg, err := uc.Register(ctx, registerReq("ana@fonda.co"))
	require.NoError(t, err)
	require.NoError(t, store.Repos().Users.SoftDelete(ctx, reg.Restaurante.ID, reg.Usuario.ID))

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@fonda.co", Password: "supersecreta"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_MismoEmailEnDosRestaurantes(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()
	first, err := uc.Register(ctx, registerReq("ana@fonda.co"))
	require.NoError(t, err)
	second := registerReq("ana@fonda.co")
	second.Password = "otra-supersecreta"
	reg2, err := uc.Register(ctx, second)
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@fonda.co", Password: "otra-supersecreta"})
	require.NoError(t, err)
	assert.Equal(t, reg2.Restaurante.ID, out.Usuario.RestauranteID)

	out, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@fonda.co", Password: "supersecreta"})
	require.NoError(t, err)
	assert.Equal(t, first.Restaurante.ID, out.Usuario.RestauranteID)
}

func TestProfileYChangePassword(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()
	reg, err := uc.Register(ctx, registerReq("ana@fonda.co"))
	require.NoError(t, err)
	rid, uid := reg.Restaurante.ID, reg.Usuario.ID

	nombre, tel := "Ana María", "3001234567"
	prof, err := uc.UpdateProfile(ctx, rid, uid, dto.UpdateProfileRequest{Nombre: &nombre, Telefono: &tel})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", prof.Nombre)

	got, err := uc.Profile(ctx, rid, uid)
	require.NoError(t, err)
	assert.Equal(t, tel, got.Telefono)

	err = uc.ChangePassword(ctx, rid, uid, dto.ChangePasswordRequest{PasswordActual: "mala-clave", PasswordNueva: "nuevaclave123"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "passwordActual", ve.Fields[0].Path)

	require.NoError(t, uc.ChangePassword(ctx, rid, uid, dto.ChangePasswordRequest{PasswordActual: "supersecreta", PasswordNueva: "nuevaclave123"}))

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@fonda.co", Password: "supersecreta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@fonda.co", Password: "nuevaclave123"})
	assert.NoError(t, err)

	_, err = uc.Profile(ctx, "otro-restaurante", uid)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
