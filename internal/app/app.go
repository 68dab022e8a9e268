package app

import (
	"errors"

	"go-hrm/internal/audit"
	"go-hrm/internal/config"
	"go-hrm/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const connectRetries = 5

// App owns the infrastructure handles opened by BuildApp.
type App struct {
	Audit   audit.Logger
	closers []func() error
}

// Close releases connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func BuildApp(router *gin.Engine, cfg *config.Config) (*App, error) {
	log := zap.L().Named("app")
	a := &App{}

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		connectRetries,
	)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, sqlDB.Close)
	log.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, connectRetries)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.closers = append(a.closers, redisClient.Close)
	log.Info("redis connection established")

	// Kafka is optional: without brokers the audit trail goes to the logs only.
	var auditLogger audit.Logger = audit.NewStdoutLogger()
	if len(cfg.Kafka.Brokers) > 0 {
		writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Brokers, cfg.Kafka.AuditTopic, connectRetries)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, writer.Close)
		auditLogger = audit.NewKafkaLogger(writer, auditLogger)
		log.Info("kafka audit stream enabled", zap.String("topic", cfg.Kafka.AuditTopic))
	}
	a.Audit = auditLogger

	// 2. Register Modules & Routes
	if err := registerModules(router, Deps{
		Config: cfg,
		DB:     sqlDB,
		GormDB: gormDB,
		Redis:  redisClient,
		Audit:  auditLogger,
	}); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}
