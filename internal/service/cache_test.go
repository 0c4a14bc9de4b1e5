package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/dangerclosesec/thinknest/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache is a map backed cache.Cache for tests.
type memoryCache struct {
	mu      sync.Mutex
	items   map[string][]byte
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return nil, false, errors.New("connection reset")
	}
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.items, k)
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCacheServiceGetSet(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCacheService(newMemoryCache(), service.CacheConfig{TTL: time.Minute}, discardLogger())

	var out []string
	assert.ErrorIs(t, svc.Get(ctx, "missing", &out), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Get(ctx, "", &out), domain.ErrInvalidInput)

	require.NoError(t, svc.Set(ctx, "k", []string{"a", "b"}))
	require.NoError(t, svc.Get(ctx, "k", &out))
	assert.Equal(t, []string{"a", "b"}, out)

	require.NoError(t, svc.Delete(ctx, "k"))
	assert.ErrorIs(t, svc.Get(ctx, "k", &out), domain.ErrNotFound)
}

func TestGetOrSet(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches once", func(t *testing.T) {
		svc := service.NewCacheService(newMemoryCache(), service.CacheConfig{TTL: time.Minute}, discardLogger())
		calls := 0
		fetch := func(context.Context) ([]int, error) {
			calls++
			return []int{2024, 2023}, nil
		}

		for i := 0; i < 3; i++ {
			got, err := service.GetOrSet(ctx, svc, "years", fetch)
			require.NoError(t, err)
			assert.Equal(t, []int{2024, 2023}, got)
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("cache errors fall through to fetch", func(t *testing.T) {
		mem := newMemoryCache()
		mem.failGet = true
		svc := service.NewCacheService(mem, service.CacheConfig{}, discardLogger())

		got, err := service.GetOrSet(ctx, svc, "years", func(context.Context) (int, error) { return 7, nil })
		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})

	t.Run("fetch errors are returned and not cached", func(t *testing.T) {
		mem := newMemoryCache()
		svc := service.NewCacheService(mem, service.CacheConfig{}, discardLogger())

		_, err := service.GetOrSet(ctx, svc, "years", func(context.Context) (int, error) { return 0, errors.New("db down") })
		assert.EqualError(t, err, "db down")
		assert.Empty(t, mem.items)
	})
}
