package application

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/minseoh/task-tracker/internal/domain/entity"
	"github.com/minseoh/task-tracker/internal/domain/repository"
	"github.com/minseoh/task-tracker/pkg/helpers"
)

// StatsService serves the read-side aggregations. The global ranking is
// cached in Redis for a short TTL since it joins over all verified users.
type StatsService struct {
	Stats    repository.StatsRepository
	Redis    *redis.Client
	Logger   *logrus.Logger
	Location *time.Location
	CacheTTL time.Duration
}

func NewStatsService(stats repository.StatsRepository, rdb *redis.Client, logger *logrus.Logger, loc *time.Location, cacheTTL time.Duration) *StatsService {
	return &StatsService{Stats: stats, Redis: rdb, Logger: logger, Location: loc, CacheTTL: cacheTTL}
}

func rankingKey(limit int) string {
	return fmt.Sprintf("stats:ranking:%d", limit)
}

func (s *StatsService) Summary(ctx context.Context, userID string) (*entity.Summary, error) {
	total, completed, err := s.Stats.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}
	rate := 0
	if total > 0 {
		rate = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return &entity.Summary{TotalTasks: total, CompletedTasks: completed, CompletionRate: rate}, nil
}

func (s *StatsService) DailyCompletions(ctx context.Context, userID string, days int) ([]entity.DailyCompletion, error) {
	if days <= 0 {
		days = 30
	}
	return s.Stats.DailyCompletions(ctx, userID, days, s.Location)
}

// Ranking returns the leaderboard and whether it was served from cache.
func (s *StatsService) Ranking(ctx context.Context, limit int) ([]entity.RankingEntry, bool, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	if s.Redis != nil {
		var cached []entity.RankingEntry
		found, err := helpers.RedisGetJSON(ctx, s.Redis, rankingKey(limit), &cached)
		if err != nil {
			s.Logger.WithError(err).Warn("ranking cache read failed")
		}
		if found {
			return cached, true, nil
		}
	}

	entries, err := s.Stats.Ranking(ctx, limit)
	if err != nil {
		return nil, false, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, rankingKey(limit), entries, s.CacheTTL); err != nil {
			s.Logger.WithError(err).Warn("ranking cache write failed")
		}
	}
	return entries, false, nil
}
