package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minseoh/task-tracker/internal/domain/entity"
	"github.com/minseoh/task-tracker/internal/domain/repository"
)

type fakeTaskRepo struct {
	tasks  map[string]*entity.Task
	nextID int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*entity.Task)}
}

func (r *fakeTaskRepo) add(t entity.Task) *entity.Task {
	if t.ID == "" {
		r.nextID++
		t.ID = fmt.Sprintf("task-%d", r.nextID)
	}
	now := time.Now()
	t.CreatedAt, t.UpdatedAt = now, now
	r.tasks[t.ID] = &t
	return &t
}

func (r *fakeTaskRepo) owned(id, userID string) *entity.Task {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return nil
	}
	return t
}

func (r *fakeTaskRepo) ListByUser(_ context.Context, userID string) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id, userID string) (*entity.Task, error) {
	t := r.owned(id, userID)
	if t == nil {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	stored := r.add(*t)
	*t = *stored
	return nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t *entity.Task) error {
	cur := r.owned(t.ID, t.UserID)
	if cur == nil {
		return repository.ErrNotFound
	}
	cur.Title = t.Title
	cur.Description = t.Description
	cur.DueDate = t.DueDate
	cur.Priority = t.Priority
	cur.Completed = t.Completed
	cur.UpdatedAt = time.Now()
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id, userID string) error {
	if r.owned(id, userID) == nil {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) Complete(_ context.Context, id, userID string) error {
	t := r.owned(id, userID)
	if t == nil {
		return repository.ErrNotFound
	}
	t.Completed = true
	t.UpdatedAt = time.Now()
	return nil
}

func TestTaskService_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, newTestLogger())
	ctx := context.Background()

	desc := "buy milk on the way home"
	created, err := svc.Create(ctx, "user-1", CreateTaskInput{
		Title:       "groceries",
		Description: &desc,
		Priority:    2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.Completed)

	got, err := svc.Get(ctx, created.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "groceries", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, desc, *got.Description)
}

func TestTaskService_ForeignTaskLooksMissing(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	seeded := repo.add(entity.Task{UserID: "user-1", Title: "secret"})
	svc := NewTaskService(repo, newTestLogger())
	ctx := context.Background()

	_, err := svc.Get(ctx, seeded.ID, "user-2")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.Update(ctx, seeded.ID, "user-2", UpdateTaskInput{Title: "stolen"})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, seeded.ID, "user-2"), ErrTaskNotFound)
	assert.ErrorIs(t, svc.Complete(ctx, seeded.ID, "user-2"), ErrTaskNotFound)

	// The owner still sees the unchanged task.
	got, err := svc.Get(ctx, seeded.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "secret", got.Title)
}

func TestTaskService_Update(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	seeded := repo.add(entity.Task{UserID: "user-1", Title: "draft", Priority: 1})
	svc := NewTaskService(repo, newTestLogger())

	due := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	got, err := svc.Update(context.Background(), seeded.ID, "user-1", UpdateTaskInput{
		Title:     "final",
		DueDate:   &due,
		Priority:  3,
		Completed: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, 3, got.Priority)
	assert.True(t, got.Completed)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))
}

func TestTaskService_DeleteAndComplete(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	a := repo.add(entity.Task{UserID: "user-1", Title: "a"})
	b := repo.add(entity.Task{UserID: "user-1", Title: "b"})
	svc := NewTaskService(repo, newTestLogger())
	ctx := context.Background()

	require.NoError(t, svc.Complete(ctx, a.ID, "user-1"))
	got, err := svc.Get(ctx, a.ID, "user-1")
	require.NoError(t, err)
	assert.True(t, got.Completed)

	require.NoError(t, svc.Delete(ctx, b.ID, "user-1"))
	_, err = svc.Get(ctx, b.ID, "user-1")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	list, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
