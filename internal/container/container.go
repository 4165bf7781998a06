package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/minseoh/task-tracker/config"
	"github.com/minseoh/task-tracker/pkg/helpers"
	"github.com/minseoh/task-tracker/pkg/mailer"
)

// app-level container to share constructed components across packages.
// The router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	tokenManager *helpers.TokenManager
	dispatcher   mailer.Dispatcher
	rabbitPub    *helpers.RabbitPublisher
)

func SetConfig(c *config.Config)         { cfg = c }
func GetConfig() *config.Config          { return cfg }
func SetLogger(l *logrus.Logger)         { logger = l }
func GetLogger() *logrus.Logger          { return logger }
func SetPGPool(p *pgxpool.Pool)          { pgPool = p }
func GetPGPool() *pgxpool.Pool           { return pgPool }
func SetRedis(r *redis.Client)           { redisClient = r }
func GetRedis() *redis.Client            { return redisClient }
func SetTokens(m *helpers.TokenManager)  { tokenManager = m }
func GetTokens() *helpers.TokenManager   { return tokenManager }
func SetDispatcher(d mailer.Dispatcher)  { dispatcher = d }
func GetDispatcher() mailer.Dispatcher   { return dispatcher }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
