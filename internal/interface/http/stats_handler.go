package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/minseoh/task-tracker/internal/application"
	"github.com/minseoh/task-tracker/internal/interface/middleware"
	"github.com/minseoh/task-tracker/pkg/response"
)

type StatsHandler struct {
	Svc    *application.StatsService
	Logger *logrus.Logger
}

func NewStatsHandler(svc *application.StatsService, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{Svc: svc, Logger: logger}
}

func intQuery(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Summary GET /api/stats/summary
func (h *StatsHandler) Summary(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	sum, err := h.Svc.Summary(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("stats summary failed")
		response.Error(c, http.StatusInternalServerError, "failed to load summary", nil)
		return
	}
	response.Success(c, http.StatusOK, sum, "summary", nil)
}

// DailyCompletions GET /api/stats/completions/daily?days=30
func (h *StatsHandler) DailyCompletions(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	days := intQuery(c, "days", 30)
	data, err := h.Svc.DailyCompletions(c.Request.Context(), uid, days)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("daily completions failed")
		response.Error(c, http.StatusInternalServerError, "failed to load daily completions", nil)
		return
	}
	response.Success(c, http.StatusOK, data, "daily completions", nil)
}

// Ranking GET /api/stats/ranking?limit=10
func (h *StatsHandler) Ranking(c *gin.Context) {
	limit := intQuery(c, "limit", 10)
	entries, cached, err := h.Svc.Ranking(c.Request.Context(), limit)
	if err != nil {
		h.Logger.WithError(err).Error("ranking failed")
		response.Error(c, http.StatusInternalServerError, "failed to load ranking", nil)
		return
	}
	response.Success(c, http.StatusOK, entries, "ranking", map[string]any{"cached": cached})
}
