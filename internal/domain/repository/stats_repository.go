package repository

import (
	"context"
	"time"

	"github.com/minseoh/task-tracker/internal/domain/entity"
)

// StatsRepository provides the read-side aggregations.
type StatsRepository interface {
	// Summary returns total and completed task counts for one user.
	Summary(ctx context.Context, userID string) (total, completed int, err error)

	// DailyCompletions buckets the user's completions of the last N days by
	// calendar day in the given timezone.
	DailyCompletions(ctx context.Context, userID string, days int, loc *time.Location) ([]entity.DailyCompletion, error)

	// Ranking returns the top verified users by completion count, ties broken
	// by user id.
	Ranking(ctx context.Context, limit int) ([]entity.RankingEntry, error)
}
