// internal/service/cache.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/thinknest/internal/cache"
	"github.com/dangerclosesec/thinknest/internal/domain"
)

const (
	cacheKeyHOFYears        = "hof:years"
	cacheKeyHOFBadges       = "hof:badges"
	cacheKeyHOFTags         = "hof:tags"
	cacheKeyJuryYears       = "jury:years"
	cacheKeyJuryExpertises  = "jury:expertises"
	cacheKeyCaseStudiesMeta = "case-studies:filters-meta"
)

// CacheService stores JSON encoded values in a cache.Cache. Cache failures are logged and
// treated as misses so the database stays the source of truth.
type CacheService struct {
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

type CacheConfig struct {
	TTL time.Duration
}

func NewCacheService(c cache.Cache, config CacheConfig, logger *slog.Logger) *CacheService {
	if c == nil {
		c = cache.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CacheService{cache: c, ttl: config.TTL, logger: logger}
}

// Set stores value under key as JSON
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling cache value: %w", err)
	}
	return s.cache.Set(ctx, key, data, s.ttl)
}

// Get decodes the value under key into result. A miss returns domain.ErrNotFound.
func (s *CacheService) Get(ctx context.Context, key string, result interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	data, found, err := s.cache.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("reading cache: %w", err)
	}
	if !found {
		return domain.ErrNotFound
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("unmarshaling cached value: %w", err)
	}
	return nil
}

// GetOrSet serves key from the cache or fills it from fetch.
func GetOrSet[T any](ctx context.Context, s *CacheService, key string, fetch func(context.Context) (T, error)) (T, error) {
	var cached T
	err := s.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if err != domain.ErrNotFound {
		s.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	}

	value, err := fetch(ctx)
	if err != nil {
		return value, err
	}

	if err := s.Set(ctx, key, value); err != nil {
		s.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
	return value, nil
}

// Delete removes keys from the cache
func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return domain.ErrInvalidInput
	}
	return s.cache.Delete(ctx, keys...)
}
