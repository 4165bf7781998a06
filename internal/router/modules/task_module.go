package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minseoh/task-tracker/internal/container"
	handlers "github.com/minseoh/task-tracker/internal/interface/http"
	"github.com/minseoh/task-tracker/internal/interface/middleware"
	"github.com/minseoh/task-tracker/pkg/helpers"
)

type TaskModule struct {
	Handler *handlers.TaskHandler
	Tokens  *helpers.TokenManager
}

func NewTaskModule(h *handlers.TaskHandler, tokens *helpers.TokenManager) *TaskModule {
	return &TaskModule{Handler: h, Tokens: tokens}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/tasks")
	auth.Use(middleware.Auth(m.Tokens))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
		auth.POST("", m.Handler.Create)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
		auth.POST("/:id/complete", m.Handler.Complete)
	}
}
