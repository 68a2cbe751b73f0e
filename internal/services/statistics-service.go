package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/repositories"
)

const (
	statisticsCacheKey = "statistics:dashboard"
	statisticsCacheTTL = 30 * time.Second
)

type StatisticsServiceInterface interface {
	GetStatistics(ctx context.Context) (*dto.StatisticsDTO, error)
}

type StatisticsService struct {
	statsRepo repositories.StatisticsRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
}

func NewStatisticsService(
	statsRepo repositories.StatisticsRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) StatisticsServiceInterface {
	return &StatisticsService{statsRepo: statsRepo, cacheRepo: cacheRepo, logger: logger}
}

// GetStatistics serves the dashboard counters from a short redis cache.
// A cache failure degrades to a direct query, never to an error.
func (s *StatisticsService) GetStatistics(ctx context.Context) (*dto.StatisticsDTO, error) {
	if cached, err := s.cacheRepo.Get(ctx, statisticsCacheKey); err == nil {
		var stats dto.StatisticsDTO
		if json.Unmarshal([]byte(cached), &stats) == nil {
			return &stats, nil
		}
	}

	stats, err := s.statsRepo.GetStatistics(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(stats); err == nil {
		if err := s.cacheRepo.Set(ctx, statisticsCacheKey, string(encoded), statisticsCacheTTL); err != nil {
			s.logger.Warn("failed to cache statistics", zap.Error(err))
		}
	}
	return stats, nil
}
