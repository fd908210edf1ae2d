package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func newProductUC(f *fixture) *ProductUseCase {
	return NewProductUseCase(f.store.Repos().Products, f.store.Stats(), f.clock)
}

func TestProductUseCase_CreateNombreUnico(t *testing.T) {
	f := newFixture(t)
	uc := newProductUC(f)
	ctx := context.Background()

	p, err := uc.Create(ctx, f.rid, dto.CreateProductRequest{
		Nombre: "Ajiaco Santafereño", Categoria: entity.ProductPlatoPrincipal,
		Precio: decimal.NewFromInt(28000), Etiquetas: []string{" Típico ", "típico", ""},
	})
	require.NoError(t, err)
	assert.True(t, p.Disponible)
	assert.Equal(t, []string{"típico"}, p.Etiquetas)

	_, err = uc.Create(ctx, f.rid, dto.CreateProductRequest{Nombre: "ajiaco  santafereno", Categoria: entity.ProductPlatoPrincipal})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, "otro-restaurante", dto.CreateProductRequest{Nombre: "Ajiaco Santafereño", Categoria: entity.ProductPlatoPrincipal})
	assert.NoError(t, err, "el nombre es único solo dentro del restaurante")

	require.NoError(t, uc.Delete(ctx, f.rid, p.ID))
	_, err = uc.Create(ctx, f.rid, dto.CreateProductRequest{Nombre: "Ajiaco Santafereño", Categoria: entity.ProductPlatoPrincipal})
	assert.NoError(t, err, "un producto eliminado libera el nombre")
}

func TestProductUseCase_Validaciones(t *testing.T) {
	f := newFixture(t)
	uc := newProductUC(f)

	_, err := uc.Create(context.Background(), f.rid, dto.CreateProductRequest{Categoria: "sopas", Precio: decimal.NewFromInt(-1)})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Fields, 3)
}

func TestProductUseCase_ToggleYUpdate(t *testing.T) {
	f := newFixture(t)
	uc := newProductUC(f)
	ctx := context.Background()
	p, err := uc.Create(ctx, f.rid, dto.CreateProductRequest{Nombre: "Limonada", Categoria: entity.ProductBebida, Precio: decimal.NewFromInt(6000)})
	require.NoError(t, err)

	out, err := uc.ToggleAvailability(ctx, f.rid, p.ID, dto.ToggleAvailabilityRequest{})
	require.NoError(t, err)
	assert.False(t, out.Disponible)

	si := true
	out, err = uc.ToggleAvailability(ctx, f.rid, p.ID, dto.ToggleAvailabilityRequest{Disponible: &si})
	require.NoError(t, err)
	assert.True(t, out.Disponible)

	precio := decimal.NewFromInt(7000)
	destacado := true
	out, err = uc.Update(ctx, f.rid, p.ID, dto.UpdateProductRequest{Precio: &precio, Destacado: &destacado})
	require.NoError(t, err)
	assert.True(t, out.Precio.Equal(precio))

	list, err := uc.List(ctx, f.rid, dto.ProductListRequest{Destacado: &destacado, Busqueda: "LIMON"})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page.Total)

	_, err = uc.GetByID(ctx, f.rid, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stats, err := uc.Stats(ctx, f.rid)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, entity.ProductBebida, stats.PorCategoria[0].Clave)
}
