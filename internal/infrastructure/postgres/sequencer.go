package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.OrderNumberSequencer = (*Sequencer)(nil)

// Sequencer consecutivo diario de pedidos en la tabla contadores_pedidos.
// El upsert toma el lock de la fila, así dos transacciones del mismo día nunca obtienen el mismo valor.
type Sequencer struct {
	q Querier
}

// NewSequencer construye el consecutivo sobre pool o tx.
func NewSequencer(q Querier) *Sequencer {
	return &Sequencer{q: q}
}

// Next incrementa y devuelve el consecutivo del día. La primera vez del día parte del mayor número ya usado.
func (s *Sequencer) Next(ctx context.Context, restauranteID string, day time.Time) (int, error) {
	seed, err := NewOrderRepository(s.q).MaxSequence(ctx, restauranteID, day)
	if err != nil {
		return 0, err
	}
	query := `
		INSERT INTO contadores_pedidos (restaurante_id, dia, ultimo)
		VALUES ($1, $2::DATE, $3 + 1)
		ON CONFLICT (restaurante_id, dia) DO UPDATE SET ultimo = contadores_pedidos.ultimo + 1
		RETURNING ultimo`
	var n int
	if err := s.q.QueryRow(ctx, query, restauranteID, day.Format("2006-01-02"), seed).Scan(&n); err != nil {
		return 0, fmt.Errorf("siguiente consecutivo: %w", err)
	}
	return n, nil
}
