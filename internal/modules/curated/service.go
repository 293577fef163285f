// README: Curated subsets with a Redis cache-aside layer. Cache trouble is
// never fatal; the store answers directly when Redis misbehaves.
package curated

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"platefinder/internal/types"
)

const (
	featuredCacheKey = "curated:featured"
	londonCacheKey   = "curated:london"
)

// CuratedStore is what the service needs from persistence.
type CuratedStore interface {
	Featured(ctx context.Context) ([]types.Restaurant, error)
	ByCity(ctx context.Context, city string) ([]types.Restaurant, error)
}

type Service struct {
	store  CuratedStore
	cache  *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewService(store CuratedStore, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) *Service {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Service{store: store, cache: cache, ttl: ttl, logger: logger}
}

func (s *Service) Featured(ctx context.Context) ([]types.Restaurant, error) {
	return s.cached(ctx, featuredCacheKey, s.store.Featured)
}

func (s *Service) London(ctx context.Context) ([]types.Restaurant, error) {
	return s.cached(ctx, londonCacheKey, func(ctx context.Context) ([]types.Restaurant, error) {
		return s.store.ByCity(ctx, "London")
	})
}

func (s *Service) cached(ctx context.Context, key string, load func(context.Context) ([]types.Restaurant, error)) ([]types.Restaurant, error) {
	if s.cache != nil {
		val, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			var out []types.Restaurant
			if jsonErr := json.Unmarshal([]byte(val), &out); jsonErr == nil {
				return out, nil
			}
			// Corrupt entry: drop it and reload from the store.
			s.cache.Del(ctx, key)
		} else if err != redis.Nil {
			s.logger.Debug().Err(err).Str("key", key).Msg("curated cache read failed")
		}
	}

	out, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if buf, jsonErr := json.Marshal(out); jsonErr == nil {
			if setErr := s.cache.Set(ctx, key, buf, s.ttl).Err(); setErr != nil {
				s.logger.Debug().Err(setErr).Str("key", key).Msg("curated cache write failed")
			}
		}
	}
	return out, nil
}
