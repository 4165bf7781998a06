package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minseoh/task-tracker/internal/domain/entity"
	"github.com/minseoh/task-tracker/internal/domain/repository"
)

type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

func (r *StatsRepository) Summary(ctx context.Context, userID string) (int, int, error) {
	var total, completed int
	row := r.pool.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE completed)
		FROM tasks
		WHERE user_id = $1
	`, userID)
	if err := row.Scan(&total, &completed); err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}

func (r *StatsRepository) DailyCompletions(ctx context.Context, userID string, days int, loc *time.Location) ([]entity.DailyCompletion, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT to_char(completed_at AT TIME ZONE $3, 'YYYY-MM-DD') AS day,
		       COUNT(*)::int AS count
		FROM task_completions
		WHERE user_id = $1
		  AND completed_at >= now() - $2 * INTERVAL '1 day'
		GROUP BY day
		ORDER BY day
	`, userID, days, loc.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.DailyCompletion, 0)
	for rows.Next() {
		var d entity.DailyCompletion
		if err := rows.Scan(&d.Day, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *StatsRepository) Ranking(ctx context.Context, limit int) ([]entity.RankingEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id AS user_id,
		       u.username,
		       COUNT(tc.*)::int AS completions
		FROM users u
		LEFT JOIN task_completions tc ON tc.user_id = u.id
		WHERE u.email_verified = true
		GROUP BY u.id, u.username
		ORDER BY completions DESC, user_id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.RankingEntry, 0, limit)
	for rows.Next() {
		var e entity.RankingEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.Completions); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

var _ repository.StatsRepository = (*StatsRepository)(nil)
