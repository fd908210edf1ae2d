package postgres

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/config"
)

// Requiere TEST_DATABASE_URL apuntando a una base desechable; sin ella se omite.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	cfg := config.DBConfig{DatabaseURL: dsn}
	m, err := NewMigrator(cfg.MigrateURL())
	require.NoError(t, err)
	require.NoError(t, m.Up())
	require.NoError(t, m.Close())

	ctx := context.Background()
	pool, err := NewPool(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func seedRestaurant(t *testing.T, repos repository.TxRepos) (*entity.Restaurant, *entity.Table) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	rest := &entity.Restaurant{ID: uuid.New().String(), Nombre: "La Fonda", Moneda: "COP", Active: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repos.Restaurants.Create(ctx, rest))
	mesa := &entity.Table{ID: uuid.New().String(), RestauranteID: rest.ID, Numero: 1, Capacidad: 4, Ubicacion: entity.LocationInterior,
		Estado: entity.TableDisponible, Active: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repos.Tables.Create(ctx, mesa))
	return rest, mesa
}

func TestIntegration_TableCAS(t *testing.T) {
	pool := testPool(t)
	repos := NewRepos(pool)
	ctx := context.Background()
	_, mesa := seedRestaurant(t, repos)

	a, err := repos.Tables.GetByID(ctx, mesa.RestauranteID, mesa.ID)
	require.NoError(t, err)
	b := *a
	require.NoError(t, repos.Tables.UpdateStatus(ctx, a, entity.TableOcupada))
	assert.Equal(t, 1, a.Version)
	assert.ErrorIs(t, repos.Tables.UpdateStatus(ctx, &b, entity.TableLimpieza), domain.ErrStaleVersion)

	dup := &entity.Table{ID: uuid.New().String(), RestauranteID: mesa.RestauranteID, Numero: 1, Capacidad: 2,
		Ubicacion: entity.LocationInterior, Estado: entity.TableDisponible, Active: true}
	assert.ErrorIs(t, repos.Tables.Create(ctx, dup), domain.ErrConflict)
}

func TestIntegration_SequencerConcurrent(t *testing.T) {
	pool := testPool(t)
	runner := NewTxRunner(pool, nil)
	rest, _ := seedRestaurant(t, NewRepos(pool))
	day := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	const n = 10
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[int]bool{}
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := runner.Run(context.Background(), func(tx repository.TxRepos) error {
				seq, err := tx.Sequencer.Next(context.Background(), rest.ID, day)
				if err != nil {
					return err
				}
				mu.Lock()
				seen[seq] = true
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Len(t, seen, n)
	for i := 1; i <= n; i++ {
		assert.True(t, seen[i], "falta el consecutivo %d", i)
	}
}

func TestIntegration_OrderRoundTripAndStats(t *testing.T) {
	pool := testPool(t)
	repos := NewRepos(pool)
	ctx := context.Background()
	rest, mesa := seedRestaurant(t, repos)
	now := time.Now().UTC().Truncate(time.Microsecond)

	o := &entity.Order{
		ID: uuid.New().String(), RestauranteID: rest.ID, Numero: "P-260510-0001", MesaID: mesa.ID, MeseroID: uuid.New().String(),
		Items:    []entity.OrderItem{{ProductoID: "p1", Nombre: "Sopa", Cantidad: 2, PrecioUnitario: decimal.RequireFromString("6.25"), Subtotal: decimal.RequireFromString("12.50")}},
		Subtotal: decimal.RequireFromString("12.50"), Total: decimal.RequireFromString("12.50"),
		Estado: entity.OrderPendiente, Historial: []entity.StatusChange{{Estado: entity.OrderPendiente, Fecha: now, UsuarioID: "u1"}},
		Active: true, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repos.Orders.Create(ctx, o))
	dup := *o
	dup.ID = uuid.New().String()
	assert.ErrorIs(t, repos.Orders.Create(ctx, &dup), domain.ErrConflict)

	got, err := repos.Orders.GetByID(ctx, rest.ID, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Sopa", got.Items[0].Nombre)
	assert.True(t, got.Items[0].PrecioUnitario.Equal(decimal.RequireFromString("6.25")))

	seq, err := repos.Orders.MaxSequence(ctx, rest.ID, time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, seq)

	got.Estado = entity.OrderEntregado
	got.EntregadoAt = &now
	require.NoError(t, repos.Orders.UpdateStatus(ctx, got))

	stats := NewStatsRepository(pool)
	total, count, err := stats.DeliveredSales(ctx, rest.ID, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, total.Equal(decimal.RequireFromString("12.50")))

	top, err := stats.TopProducts(ctx, rest.ID, now.Add(-time.Hour), now.Add(time.Hour), 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 2, top[0].Cantidad)
}
