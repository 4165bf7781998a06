package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/minseoh/task-tracker/internal/application"
	"github.com/minseoh/task-tracker/internal/interface/middleware"
	"github.com/minseoh/task-tracker/pkg/response"
	"github.com/minseoh/task-tracker/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    int        `json:"priority"`
}

type updateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    int        `json:"priority"`
	Completed   bool       `json:"completed"`
}

// List GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	tasks, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("task list failed")
		response.Error(c, http.StatusInternalServerError, "failed to load tasks", nil)
		return
	}
	response.Success(c, http.StatusOK, tasks, "tasks", nil)
}

// Get GET /api/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	task, err := h.Svc.Get(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Error(c, http.StatusNotFound, "task not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("task get failed")
		response.Error(c, http.StatusInternalServerError, "failed to load task", nil)
		return
	}
	response.Success(c, http.StatusOK, task, "task", nil)
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	task, err := h.Svc.Create(c.Request.Context(), uid, application.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
	})
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("task create failed")
		response.Error(c, http.StatusInternalServerError, "failed to create task", nil)
		return
	}
	response.Success(c, http.StatusCreated, task, "task created", nil)
}

// Update PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	task, err := h.Svc.Update(c.Request.Context(), c.Param("id"), uid, application.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Completed:   req.Completed,
	})
	if err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Error(c, http.StatusNotFound, "task not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("task update failed")
		response.Error(c, http.StatusInternalServerError, "failed to update task", nil)
		return
	}
	response.Success(c, http.StatusOK, task, "task updated", nil)
}

// Delete DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), uid); err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Error(c, http.StatusNotFound, "task not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("task delete failed")
		response.Error(c, http.StatusInternalServerError, "failed to delete task", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// Complete POST /api/tasks/:id/complete
func (h *TaskHandler) Complete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Complete(c.Request.Context(), c.Param("id"), uid); err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Error(c, http.StatusNotFound, "task not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("task complete failed")
		response.Error(c, http.StatusInternalServerError, "failed to complete task", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "task completed", nil)
}
