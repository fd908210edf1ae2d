package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/pkg/config"
)

type fixedSeed int

func (f fixedSeed) MaxSequence(context.Context, string, time.Time) (int, error) {
	return int(f), nil
}

func newSequencer(t *testing.T, seed MaxSequencer) (*Sequencer, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSequencer(client, seed), mr
}

func TestNext_PerRestaurantAndDay(t *testing.T) {
	s, mr := newSequencer(t, nil)
	ctx := context.Background()
	day := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	for want := 1; want <= 3; want++ {
		got, err := s.Next(ctx, "rest-1", day)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	got, err := s.Next(ctx, "rest-2", day)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	got, err = s.Next(ctx, "rest-1", day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	assert.Equal(t, KeyTTL, mr.TTL(Key("rest-1", day)))
}

func TestNext_SeedsFromPersistedMax(t *testing.T) {
	s, mr := newSequencer(t, fixedSeed(41))
	ctx := context.Background()
	day := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	got, err := s.Next(ctx, "rest-1", day)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	// la clave ya existe: la semilla no se vuelve a aplicar
	got, err = s.Next(ctx, "rest-1", day)
	require.NoError(t, err)
	assert.Equal(t, 43, got)

	mr.FastForward(KeyTTL + time.Second)
	got, err = s.Next(ctx, "rest-1", day)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestNext_Concurrent(t *testing.T) {
	s, _ := newSequencer(t, nil)
	day := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	const n = 50
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[int]bool{}
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.Next(context.Background(), "rest-1", day)
			assert.NoError(t, err)
			mu.Lock()
			seen[got] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, n)
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewClient(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	require.NoError(t, client.Close())

	mr.Close()
	_, err = NewClient(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	assert.Error(t, err)
}
