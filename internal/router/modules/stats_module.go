package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minseoh/task-tracker/internal/container"
	handlers "github.com/minseoh/task-tracker/internal/interface/http"
	"github.com/minseoh/task-tracker/internal/interface/middleware"
	"github.com/minseoh/task-tracker/pkg/helpers"
)

type StatsModule struct {
	Handler *handlers.StatsHandler
	Tokens  *helpers.TokenManager
}

func NewStatsModule(h *handlers.StatsHandler, tokens *helpers.TokenManager) *StatsModule {
	return &StatsModule{Handler: h, Tokens: tokens}
}

func (m *StatsModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/stats")
	auth.Use(middleware.Auth(m.Tokens))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/summary", m.Handler.Summary)
		auth.GET("/completions/daily", m.Handler.DailyCompletions)
		auth.GET("/ranking", m.Handler.Ranking)
	}
}
