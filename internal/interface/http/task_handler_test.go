package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minseoh/task-tracker/internal/application"
	"github.com/minseoh/task-tracker/internal/domain/entity"
	"github.com/minseoh/task-tracker/internal/domain/repository"
	"github.com/minseoh/task-tracker/internal/interface/middleware"
	"github.com/minseoh/task-tracker/pkg/helpers"
)

type memTaskRepo struct {
	tasks  map[string]*entity.Task
	nextID int
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[string]*entity.Task)}
}

func (r *memTaskRepo) seed(t entity.Task) *entity.Task {
	if t.ID == "" {
		r.nextID++
		t.ID = fmt.Sprintf("task-%d", r.nextID)
	}
	r.tasks[t.ID] = &t
	return &t
}

func (r *memTaskRepo) owned(id, userID string) *entity.Task {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return nil
	}
	return t
}

func (r *memTaskRepo) ListByUser(_ context.Context, userID string) ([]*entity.Task, error) {
	out := []*entity.Task{}
	for _, t := range r.tasks {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id, userID string) (*entity.Task, error) {
	t := r.owned(id, userID)
	if t == nil {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTaskRepo) Create(_ context.Context, t *entity.Task) error {
	stored := r.seed(*t)
	*t = *stored
	return nil
}

func (r *memTaskRepo) Update(_ context.Context, t *entity.Task) error {
	cur := r.owned(t.ID, t.UserID)
	if cur == nil {
		return repository.ErrNotFound
	}
	cur.Title = t.Title
	cur.Description = t.Description
	cur.DueDate = t.DueDate
	cur.Priority = t.Priority
	cur.Completed = t.Completed
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id, userID string) error {
	if r.owned(id, userID) == nil {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *memTaskRepo) Complete(_ context.Context, id, userID string) error {
	t := r.owned(id, userID)
	if t == nil {
		return repository.ErrNotFound
	}
	t.Completed = true
	return nil
}

type taskFixture struct {
	router *gin.Engine
	repo   *memTaskRepo
	tokens *helpers.TokenManager
}

func newTaskFixture() *taskFixture {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := newMemTaskRepo()
	tokens := helpers.NewTokenManager("test-secret", time.Hour)
	h := NewTaskHandler(application.NewTaskService(repo, logger), logger)

	r := gin.New()
	g := r.Group("/api/tasks", middleware.Auth(tokens))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/complete", h.Complete)

	return &taskFixture{router: r, repo: repo, tokens: tokens}
}

func (f *taskFixture) do(t *testing.T, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		token, _, err := f.tokens.Generate(userID, "user-"+userID)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestTaskHandler_RequiresAuth(t *testing.T) {
	t.Parallel()

	f := newTaskFixture()
	w := f.do(t, http.MethodGet, "/api/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTaskHandler_CreateListGet(t *testing.T) {
	t.Parallel()

	f := newTaskFixture()

	w := f.do(t, http.MethodPost, "/api/tasks", "u1", gin.H{"title": "groceries", "priority": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data entity.Task `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)
	assert.Equal(t, "groceries", created.Data.Title)

	w = f.do(t, http.MethodGet, "/api/tasks", "u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "groceries")

	// Another user's listing is empty and direct access 404s.
	w = f.do(t, http.MethodGet, "/api/tasks", "u2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "groceries")

	w = f.do(t, http.MethodGet, "/api/tasks/"+created.Data.ID, "u2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskHandler_Create_MissingTitle(t *testing.T) {
	t.Parallel()

	f := newTaskFixture()
	w := f.do(t, http.MethodPost, "/api/tasks", "u1", gin.H{"priority": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_UpdateDeleteComplete(t *testing.T) {
	t.Parallel()

	f := newTaskFixture()
	seeded := f.repo.seed(entity.Task{UserID: "u1", Title: "draft"})

	w := f.do(t, http.MethodPut, "/api/tasks/"+seeded.ID, "u1", gin.H{"title": "final", "completed": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "final")

	w = f.do(t, http.MethodPost, "/api/tasks/"+seeded.ID+"/complete", "u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, f.repo.tasks[seeded.ID].Completed)

	w = f.do(t, http.MethodDelete, "/api/tasks/"+seeded.ID, "u1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(t, http.MethodDelete, "/api/tasks/"+seeded.ID, "u1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
