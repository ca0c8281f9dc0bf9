package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/ride-sharing-service/internal/domain"
	"github.com/spec-kit/ride-sharing-service/internal/repository"
)

const (
	passengerStatsKey = "analytics:passengers"
	driverStatsKey    = "analytics:drivers"
)

// AnalyticsService serves aggregated ride statistics. Results are cached in
// Redis for a short TTL; a cold or unreachable cache only means the
// aggregation runs again.
type AnalyticsService struct {
	analytics repository.AnalyticsRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewAnalyticsService builds the service. cache may be nil in tests.
func NewAnalyticsService(analytics repository.AnalyticsRepository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		analytics: analytics,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// PassengerStats returns per-passenger ride aggregates.
func (s *AnalyticsService) PassengerStats(ctx context.Context) ([]domain.PassengerStats, error) {
	var cached []domain.PassengerStats
	if s.fromCache(ctx, passengerStatsKey, &cached) {
		return cached, nil
	}

	stats, err := s.analytics.PassengerStats(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, passengerStatsKey, stats)
	return stats, nil
}

// DriverStats returns per-driver ride aggregates.
func (s *AnalyticsService) DriverStats(ctx context.Context) ([]domain.DriverStats, error) {
	var cached []domain.DriverStats
	if s.fromCache(ctx, driverStatsKey, &cached) {
		return cached, nil
	}

	stats, err := s.analytics.DriverStats(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, driverStatsKey, stats)
	return stats, nil
}

func (s *AnalyticsService) fromCache(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("analytics cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.logger.Warn("analytics cache decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *AnalyticsService) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("analytics cache write failed", zap.String("key", key), zap.Error(err))
	}
}
