package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool      *pgxpool.Pool
	sequencer repository.OrderNumberSequencer
}

// NewTxRunner construye el runner con el pool. sequencer nil = consecutivo en la tabla contadores_pedidos
// dentro de la misma transacción.
func NewTxRunner(pool *pgxpool.Pool, sequencer repository.OrderNumberSequencer) *TxRunner {
	return &TxRunner{pool: pool, sequencer: sequencer}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(tx repository.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := NewRepos(tx)
	if r.sequencer != nil {
		repos.Sequencer = r.sequencer
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRepos todos los repositorios sobre el mismo Querier (pool o tx).
func NewRepos(q Querier) repository.TxRepos {
	return repository.TxRepos{
		Restaurants:  NewRestaurantRepository(q),
		Users:        NewUserRepository(q),
		Products:     NewProductRepository(q),
		Inventory:    NewInventoryRepository(q),
		Tables:       NewTableRepository(q),
		Orders:       NewOrderRepository(q),
		Reservations: NewReservationRepository(q),
		Sequencer:    NewSequencer(q),
	}
}
