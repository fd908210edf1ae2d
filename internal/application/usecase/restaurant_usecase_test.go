package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
)

func TestRestaurantUseCase(t *testing.T) {
	f := newFixture(t)
	uc := NewRestaurantUseCase(f.store.Repos().Restaurants, f.clock)
	ctx := context.Background()

	got, err := uc.Get(ctx, f.rid)
	require.NoError(t, err)
	assert.Equal(t, "La Fonda", got.Nombre)

	moneda, horario := "usd", "Lun-Dom 12:00-23:00"
	out, err := uc.Update(ctx, f.rid, dto.UpdateRestaurantRequest{Moneda: &moneda, Horario: &horario})
	require.NoError(t, err)
	assert.Equal(t, "USD", out.Moneda)
	assert.Equal(t, horario, out.Horario)

	mala := "PESOS"
	_, err = uc.Update(ctx, f.rid, dto.UpdateRestaurantRequest{Moneda: &mala})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Get(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
