package main

import (
	"context"
	"time"

	"go-hrm/internal/auth"
	"go-hrm/internal/config"
	"go-hrm/internal/shared/connection"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	db, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		3,
	)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := auth.Seed(ctx, auth.NewRepository(db), auth.DefaultSeedAccounts())
	if err != nil {
		logger.Fatal("seed accounts failed", zap.Error(err))
	}
	logger.Info("seed completed", zap.Int("accounts_created", created))
}
