package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minseoh/task-tracker/internal/domain/entity"
	"github.com/minseoh/task-tracker/internal/domain/repository"
)

const taskColumns = `id, user_id, title, description, due_date, priority, completed,
	       created_at, updated_at`

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	t := &entity.Task{}
	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.DueDate,
		&t.Priority, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*entity.Task, 0)
	for rows.Next() {
		t := &entity.Task{}
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.DueDate,
			&t.Priority, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, id, userID string) (*entity.Task, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	return scanTask(row)
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (user_id, title, description, due_date, priority)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, completed, created_at, updated_at
	`, t.UserID, t.Title, t.Description, t.DueDate, t.Priority)
	return row.Scan(&t.ID, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET title = $1,
		    description = $2,
		    due_date = $3,
		    priority = $4,
		    completed = $5,
		    updated_at = now()
		WHERE id = $6 AND user_id = $7
		RETURNING updated_at
	`, t.Title, t.Description, t.DueDate, t.Priority, t.Completed, t.ID, t.UserID)

	if err := row.Scan(&t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM tasks WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Complete flips the task to completed and records the completion history
// row in the same transaction.
func (r *TaskRepository) Complete(ctx context.Context, id, userID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `
		UPDATE tasks
		SET completed = true, updated_at = now()
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO task_completions (task_id, user_id)
		VALUES ($1, $2)
	`, id, userID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
