package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minseoh/task-tracker/internal/container"
	handlers "github.com/minseoh/task-tracker/internal/interface/http"
	"github.com/minseoh/task-tracker/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/verify-email", m.Handler.VerifyEmail)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
}
