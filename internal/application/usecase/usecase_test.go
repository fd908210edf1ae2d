package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/apptest"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

var testNow = time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)

type fixture struct {
	store *apptest.Store
	clock *apptest.Clock
	rid   string
	admin *entity.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{store: apptest.NewStore(), clock: apptest.NewClock(testNow), rid: uuid.New().String()}
	f.admin = f.seedUser(t, "admin@fonda.co", entity.RoleAdmin)
	require.NoError(t, f.store.Repos().Restaurants.Create(context.Background(), &entity.Restaurant{
		ID: f.rid, Nombre: "La Fonda", Moneda: "COP", AdminID: f.admin.ID, Active: true, CreatedAt: testNow,
	}))
	return f
}

func (f *fixture) seedUser(t *testing.T, email, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		ID: uuid.New().String(), RestauranteID: f.rid, Nombre: email, Email: email,
		PasswordHash: "x", Role: role, Active: true, CreatedAt: f.clock.Now(),
	}
	require.NoError(t, f.store.Repos().Users.Create(context.Background(), u))
	f.clock.Advance(time.Second)
	return u
}
