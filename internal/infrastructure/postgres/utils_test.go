package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("timeout")))
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("7c9e6679-7425-40de-944b-e07fc1f90ae7"))
	assert.False(t, validID("no-es-uuid"))
	assert.False(t, validID(""))
}

// Con un id mal formado los Get* responden "no encontrado" sin usar el Querier (nil aquí).
func TestGetByID_IDMalFormado(t *testing.T) {
	ctx := context.Background()
	mesa, err := NewTableRepository(nil).GetByID(ctx, "rest-1", "abc")
	assert.NoError(t, err)
	assert.Nil(t, mesa)

	mesa, err = NewTableRepository(nil).GetForUpdate(ctx, "rest-1", "abc")
	assert.NoError(t, err)
	assert.Nil(t, mesa)

	pedido, err := NewOrderRepository(nil).GetByID(ctx, "rest-1", "abc")
	assert.NoError(t, err)
	assert.Nil(t, pedido)

	insumo, err := NewInventoryRepository(nil).GetForUpdate(ctx, "rest-1", "abc")
	assert.NoError(t, err)
	assert.Nil(t, insumo)

	u, err := NewUserRepository(nil).GetByID(ctx, "rest-1", "abc")
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestLimitArg(t *testing.T) {
	assert.Nil(t, limitArg(repository.Page{}))
	assert.Equal(t, 20, limitArg(repository.Page{Limit: 20}))
}

func TestMustAffect(t *testing.T) {
	assert.ErrorIs(t, mustAffect(pgconn.NewCommandTag("UPDATE 0"), domain.ErrStaleVersion), domain.ErrStaleVersion)
	assert.NoError(t, mustAffect(pgconn.NewCommandTag("UPDATE 1"), domain.ErrStaleVersion))
}

func TestWhereBuilder(t *testing.T) {
	w := newWhere("rest-1")
	assert.Equal(t, "", w.sql())
	w.add("estado = $%d", "pendiente")
	w.add("nombre_clave LIKE '%%' || $%d || '%%'", "sopa")
	assert.Equal(t, " AND estado = $2 AND nombre_clave LIKE '%' || $3 || '%'", w.sql())
	assert.Equal(t, []any{"rest-1", "pendiente", "sopa"}, w.args)
	assert.Equal(t, 4, w.next())
}

func TestOrderRowsRoundTrip(t *testing.T) {
	items := []entity.OrderItem{{ProductoID: "p1", Nombre: "Sopa", Cantidad: 2, PrecioUnitario: decimal.RequireFromString("6.25"), Subtotal: decimal.RequireFromString("12.5")}}
	rows := toItemRows(items)
	assert.Equal(t, "p1", rows[0].ProductoID)
	assert.True(t, rows[0].Subtotal.Equal(decimal.RequireFromString("12.5")))

	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	h := toStatusRows([]entity.StatusChange{{Estado: entity.OrderPendiente, Fecha: now, UsuarioID: "u1"}})
	assert.Equal(t, statusRow{Estado: entity.OrderPendiente, Fecha: now, UsuarioID: "u1"}, h[0])
}
