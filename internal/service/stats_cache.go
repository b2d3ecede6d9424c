package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"via-proposito/internal/cache"
	"via-proposito/internal/domain"
	"via-proposito/internal/logger"

	"go.uber.org/zap"
)

// StatsCacheService stores rendered dashboard payloads between submissions.
type StatsCacheService interface {
	// Get decodes the cached payload of kind into dest and reports whether it was found.
	Get(ctx context.Context, kind string, dest interface{}) (bool, error)
	Put(ctx context.Context, kind string, value interface{}) error
	// Invalidate drops every dashboard payload.
	Invalidate(ctx context.Context) error
}

type statsCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewStatsCacheService returns a no-op implementation when c is nil.
func NewStatsCacheService(c domain.Cache, ttl time.Duration) StatsCacheService {
	if c == nil || ttl <= 0 {
		logger.Get().Warn("StatsCacheService initialized without cache. Dashboard stats will not be cached.")
		return &noopStatsCacheService{}
	}
	return &statsCacheServiceImpl{cache: c, ttl: ttl}
}

func (s *statsCacheServiceImpl) Get(ctx context.Context, kind string, dest interface{}) (bool, error) {
	key := cache.StatsKey(kind)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Stats cache miss", zap.String("key", key))
			return false, nil
		}
		return false, domain.NewInternalError(fmt.Sprintf("failed to get stats from cache for key %s", key), err)
	}
	if data == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, domain.NewInternalError(fmt.Sprintf("failed to unmarshal stats from cache for key %s", key), err)
	}
	return true, nil
}

func (s *statsCacheServiceImpl) Put(ctx context.Context, kind string, value interface{}) error {
	key := cache.StatsKey(kind)
	data, err := json.Marshal(value)
	if err != nil {
		return domain.NewInternalError("failed to marshal stats for caching", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to set stats to cache for key %s", key), err)
	}
	logger.Get().Debug("Cached dashboard stats", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *statsCacheServiceImpl) Invalidate(ctx context.Context) error {
	if err := s.cache.Delete(ctx, cache.StatsKeys()...); err != nil {
		return domain.NewInternalError("failed to invalidate stats cache", err)
	}
	return nil
}

type noopStatsCacheService struct{}

func (noopStatsCacheService) Get(context.Context, string, interface{}) (bool, error) {
	return false, nil
}
func (noopStatsCacheService) Put(context.Context, string, interface{}) error { return nil }
func (noopStatsCacheService) Invalidate(context.Context) error               { return nil }
