// Package redis consecutivo diario de pedidos sobre Redis (INCR atómico por restaurante y día).
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/config"
)

// KeyTTL vida de la clave del día; cubre el cambio de día en cualquier zona horaria.
const KeyTTL = 48 * time.Hour

// MaxSequencer mayor consecutivo ya persistido del día (semilla cuando la clave no existe).
type MaxSequencer interface {
	MaxSequence(ctx context.Context, restauranteID string, day time.Time) (int, error)
}

var _ repository.OrderNumberSequencer = (*Sequencer)(nil)

// Sequencer consecutivo de pedidos en Redis.
type Sequencer struct {
	client *goredis.Client
	seed   MaxSequencer
	ttl    time.Duration
}

// NewSequencer construye el consecutivo. seed evita repetir números si la clave se perdió (reinicio de Redis).
func NewSequencer(client *goredis.Client, seed MaxSequencer) *Sequencer {
	return &Sequencer{client: client, seed: seed, ttl: KeyTTL}
}

// Key clave del contador: pedidos:seq:<restaurante>:<YYYYMMDD>.
func Key(restauranteID string, day time.Time) string {
	return "pedidos:seq:" + restauranteID + ":" + day.Format("20060102")
}

// Next devuelve el siguiente consecutivo del día.
func (s *Sequencer) Next(ctx context.Context, restauranteID string, day time.Time) (int, error) {
	key := Key(restauranteID, day)
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis exists %s: %w", key, err)
	}
	if exists == 0 {
		start := 0
		if s.seed != nil {
			if start, err = s.seed.MaxSequence(ctx, restauranteID, day); err != nil {
				return 0, err
			}
		}
		// SETNX: si otra instancia sembró primero se conserva su valor.
		if err := s.client.SetNX(ctx, key, start, s.ttl).Err(); err != nil {
			return 0, fmt.Errorf("redis setnx %s: %w", key, err)
		}
	}
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr %s: %w", key, err)
	}
	return int(n), nil
}

// NewClient abre el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
