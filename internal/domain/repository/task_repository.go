package repository

import (
	"context"

	"github.com/minseoh/task-tracker/internal/domain/entity"
)

// TaskRepository defines persistence for to-do items. Every operation is
// scoped to the owning user; a foreign task behaves like a missing one.
type TaskRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*entity.Task, error)
	GetByID(ctx context.Context, id, userID string) (*entity.Task, error)
	Create(ctx context.Context, t *entity.Task) error
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, id, userID string) error

	// Complete marks the task completed and appends a completion history row
	// in one transaction.
	Complete(ctx context.Context, id, userID string) error
}
