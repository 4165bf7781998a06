package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minseoh/task-tracker/internal/domain/entity"
	"github.com/minseoh/task-tracker/internal/domain/repository"
)

// TaskService owns the to-do CRUD. Every operation acts on behalf of the
// authenticated user; foreign tasks are indistinguishable from missing ones.
type TaskService struct {
	Tasks  repository.TaskRepository
	Logger *logrus.Logger
}

func NewTaskService(tasks repository.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Tasks: tasks, Logger: logger}
}

type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    int
}

type UpdateTaskInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    int
	Completed   bool
}

func (s *TaskService) List(ctx context.Context, userID string) ([]*entity.Task, error) {
	return s.Tasks.ListByUser(ctx, userID)
}

func (s *TaskService) Get(ctx context.Context, id, userID string) (*entity.Task, error) {
	t, err := s.Tasks.GetByID(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTaskNotFound
	}
	return t, err
}

func (s *TaskService) Create(ctx context.Context, userID string, in CreateTaskInput) (*entity.Task, error) {
	t := &entity.Task{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Priority:    in.Priority,
	}
	if err := s.Tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, id, userID string, in UpdateTaskInput) (*entity.Task, error) {
	t := &entity.Task{
		ID:          id,
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Priority:    in.Priority,
		Completed:   in.Completed,
	}
	err := s.Tasks.Update(ctx, t)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	got, err := s.Tasks.GetByID(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTaskNotFound
	}
	return got, err
}

func (s *TaskService) Delete(ctx context.Context, id, userID string) error {
	err := s.Tasks.Delete(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}

// Complete marks the task as done and records the completion in the history
// used by the stats aggregations.
func (s *TaskService) Complete(ctx context.Context, id, userID string) error {
	err := s.Tasks.Complete(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}
