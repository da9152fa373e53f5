package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"fitlife-service/internal/domain/dashboard"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	statsCacheKey = "fitlife:dashboard:stats"
	statsCacheTTL = 60 * time.Second
)

type StatsStore interface {
	CountMembers(ctx context.Context) (total, active int64, err error)
	CountTodayCheckins(ctx context.Context) (int64, error)
	MonthlyRevenue(ctx context.Context) (float64, error)
}

type DashboardService struct {
	statsRepo StatsStore
	cache     *redis.Client
	logger    *zap.Logger
}

// NewDashboardService builds the stats service. cache may be nil, in which
// case every request hits the database.
func NewDashboardService(statsRepo StatsStore, cache *redis.Client, logger *zap.Logger) *DashboardService {
	return &DashboardService{statsRepo: statsRepo, cache: cache, logger: logger}
}

// GetStats returns the landing-page summary, served from a short-lived
// redis cache when available.
func (s *DashboardService) GetStats(ctx context.Context) (*dashboard.Stats, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	total, active, err := s.statsRepo.CountMembers(ctx)
	if err != nil {
		return nil, err
	}

	todayCheckins, err := s.statsRepo.CountTodayCheckins(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.statsRepo.MonthlyRevenue(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dashboard.Stats{
		TotalMembers:   total,
		ActiveMembers:  active,
		TodayCheckins:  todayCheckins,
		MonthlyRevenue: revenue,
	}

	s.toCache(ctx, stats)

	return stats, nil
}

func (s *DashboardService) fromCache(ctx context.Context) *dashboard.Stats {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		return nil
	}

	var stats dashboard.Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil
	}

	return &stats
}

func (s *DashboardService) toCache(ctx context.Context, stats *dashboard.Stats) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
		s.logger.Warn("failed to cache dashboard stats", zap.Error(err))
	}
}
