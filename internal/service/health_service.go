package service

import (
	"context"
	"time"

	"via-proposito/internal/domain"
	"via-proposito/internal/dto"
	"via-proposito/internal/logger"

	"go.uber.org/zap"
)

const (
	statusUp       = "up"
	statusDown     = "down"
	statusDisabled = "disabled"
)

// HealthService reports whether the database and cache answer.
type HealthService interface {
	Check(ctx context.Context) (*dto.HealthResponse, error)
}

type healthService struct {
	stats domain.StatsRepository
	cache domain.Cache
}

func NewHealthService(stats domain.StatsRepository, cache domain.Cache) HealthService {
	return &healthService{stats: stats, cache: cache}
}

// Check returns a service unavailable error, alongside the report, when the
// database is down. A failing cache only degrades the report.
func (s *healthService) Check(ctx context.Context) (*dto.HealthResponse, error) {
	resp := &dto.HealthResponse{Status: statusUp, Database: statusUp, Cache: statusDisabled, Time: time.Now().UTC()}

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Cache health check failed", zap.Error(err))
			resp.Cache = statusDown
		} else {
			resp.Cache = statusUp
		}
	}

	if err := s.stats.Ping(ctx); err != nil {
		logger.Get().Error("Database health check failed", zap.Error(err))
		resp.Status = statusDown
		resp.Database = statusDown
		return resp, domain.NewError(domain.CodeServiceUnavailable, "Database is unavailable", err)
	}
	return resp, nil
}
