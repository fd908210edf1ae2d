package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func newUserUC(f *fixture) *UserUseCase {
	repos := f.store.Repos()
	return NewUserUseCase(repos.Users, repos.Restaurants, f.store.Stats(), f.store, f.clock)
}

func TestUserUseCase_Create(t *testing.T) {
	f := newFixture(t)
	uc := newUserUC(f)
	ctx := context.Background()

	out, err := uc.Create(ctx, f.rid, dto.CreateUserRequest{Nombre: "Mario", Email: "Mario@Fonda.co", Password: "12345678", Rol: entity.RoleMesero})
	require.NoError(t, err)
	assert.Equal(t, "mario@fonda.co", out.Email)
	assert.True(t, out.Activo)

	_, err = uc.Create(ctx, f.rid, dto.CreateUserRequest{Nombre: "Otro", Email: "mario@fonda.co", Password: "12345678", Rol: entity.RoleCajero})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = uc.Create(ctx, f.rid, dto.CreateUserRequest{Nombre: "X", Email: "x@fonda.co", Password: "12345678", Rol: "gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUseCase_ProtegeAdminPrincipal(t *testing.T) {
	f := newFixture(t)
	uc := newUserUC(f)
	ctx := context.Background()

	err := uc.Delete(ctx, f.rid, f.admin.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	rol := entity.RoleMesero
	_, err = uc.Update(ctx, f.rid, f.admin.ID, dto.UpdateUserRequest{Rol: &rol})
	assert.ErrorIs(t, err, domain.ErrConflict)

	inactivo := false
	_, err = uc.Update(ctx, f.rid, f.admin.ID, dto.UpdateUserRequest{Activo: &inactivo})
	assert.ErrorIs(t, err, domain.ErrConflict)

	nombre := "Ana"
	out, err := uc.Update(ctx, f.rid, f.admin.ID, dto.UpdateUserRequest{Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.Nombre)
}

func TestUserUseCase_DeleteYMeseros(t *testing.T) {
	f := newFixture(t)
	uc := newUserUC(f)
	ctx := context.Background()
	m1 := f.seedUser(t, "m1@fonda.co", entity.RoleMesero)
	f.seedUser(t, "m2@fonda.co", entity.RoleMesero)
	f.seedUser(t, "chef@fonda.co", entity.RoleCocinero)

	require.NoError(t, uc.Delete(ctx, f.rid, m1.ID))
	assert.ErrorIs(t, uc.Delete(ctx, f.rid, m1.ID), domain.ErrUserNotFound)

	waiters, err := uc.ListWaiters(ctx, f.rid)
	require.NoError(t, err)
	require.Len(t, waiters, 1)
	assert.Equal(t, "m2@fonda.co", waiters[0].Email)

	stats, err := uc.Stats(ctx, f.rid)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
}

func TestUserUseCase_List(t *testing.T) {
	f := newFixture(t)
	uc := newUserUC(f)
	ctx := context.Background()
	for _, e := range []string{"a@f.co", "b@f.co", "c@f.co"} {
		f.seedUser(t, e, entity.RoleCajero)
	}

	out, err := uc.List(ctx, f.rid, dto.UserListRequest{PageRequest: dto.PageRequest{Limit: 2}, Rol: entity.RoleCajero})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 3, out.Page.Total)

	out, err = uc.List(ctx, "otro", dto.UserListRequest{})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, 20, out.Page.Limit)

	_, err = uc.GetByID(ctx, "otro", f.admin.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserUseCase_MeseroSaleDeSusMesas(t *testing.T) {
	ctx := context.Background()
	cocinero := entity.RoleCocinero
	inactivo := false
	nombre := "Mario R."

	cases := []struct {
		name   string
		change func(uc *UserUseCase, rid, id string) error
	}{
		{"cambio de rol", func(uc *UserUseCase, rid, id string) error {
			_, err := uc.Update(ctx, rid, id, dto.UpdateUserRequest{Rol: &cocinero})
			return err
		}},
		{"desactivado", func(uc *UserUseCase, rid, id string) error {
			_, err := uc.Update(ctx, rid, id, dto.UpdateUserRequest{Activo: &inactivo})
			return err
		}},
		{"eliminado", func(uc *UserUseCase, rid, id string) error {
			return uc.Delete(ctx, rid, id)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			uc := newUserUC(f)
			tables := newTableUC(f, nil)
			mesero := f.seedUser(t, "mario@fonda.co", entity.RoleMesero)
			otro := f.seedUser(t, "lucia@fonda.co", entity.RoleMesero)

			m1, err := tables.Create(ctx, f.rid, dto.CreateTableRequest{Numero: 1, Capacidad: 4, MeseroID: &mesero.ID})
			require.NoError(t, err)
			m2, err := tables.Create(ctx, f.rid, dto.CreateTableRequest{Numero: 2, Capacidad: 4, MeseroID: &otro.ID})
			require.NoError(t, err)

			require.NoError(t, tc.change(uc, f.rid, mesero.ID))

			got, err := tables.GetByID(ctx, f.rid, m1.ID)
			require.NoError(t, err)
			assert.Nil(t, got.MeseroID)

			got, err = tables.GetByID(ctx, f.rid, m2.ID)
			require.NoError(t, err)
			require.NotNil(t, got.MeseroID)
			assert.Equal(t, otro.ID, *got.MeseroID)
		})
	}

	t.Run("cambio de nombre conserva mesas", func(t *testing.T) {
		f := newFixture(t)
		uc := newUserUC(f)
		tables := newTableUC(f, nil)
		mesero := f.seedUser(t, "mario@fonda.co", entity.RoleMesero)
		m1, err := tables.Create(ctx, f.rid, dto.CreateTableRequest{Numero: 1, Capacidad: 4, MeseroID: &mesero.ID})
		require.NoError(t, err)

		_, err = uc.Update(ctx, f.rid, mesero.ID, dto.UpdateUserRequest{Nombre: &nombre})
		require.NoError(t, err)

		got, err := tables.GetByID(ctx, f.rid, m1.ID)
		require.NoError(t, err)
		require.NotNil(t, got.MeseroID)
		assert.Equal(t, mesero.ID, *got.MeseroID)
	})
}
