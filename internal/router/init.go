package router

import (
	"github.com/minseoh/task-tracker/internal/application"
	"github.com/minseoh/task-tracker/internal/container"
	pginfra "github.com/minseoh/task-tracker/internal/infrastructure/postgres"
	handlers "github.com/minseoh/task-tracker/internal/interface/http"
	"github.com/minseoh/task-tracker/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup after the container has
// been populated.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	tokens := container.GetTokens()

	accounts := pginfra.NewAccountRepository(pool)
	tasks := pginfra.NewTaskRepository(pool)
	stats := pginfra.NewStatsRepository(pool)

	authSvc := application.NewAuthService(accounts, tokens, container.GetDispatcher(), logger, cfg.VerificationCodeTTL)
	taskSvc := application.NewTaskService(tasks, logger)
	statsSvc := application.NewStatsService(stats, container.GetRedis(), logger, cfg.StatsLocation(), cfg.RankingCacheTTL)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), tokens))
	r.Add(modules.NewStatsModule(handlers.NewStatsHandler(statsSvc, logger), tokens))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
