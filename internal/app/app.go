package app

import (
	"go-workforce/internal/config"
	"go-workforce/internal/middleware"
	"go-workforce/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	log.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	if cfg.Database.Migrate {
		if err := Migrate(gormDB, log); err != nil {
			return err
		}
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
		if err != nil {
			return err
		}
		log.Info("redis connection established", zap.String("addr", cfg.Redis.Addr))
	} else {
		log.Warn("redis address not set, caching and idempotency disabled")
	}

	router.Use(middleware.RequestID(), middleware.ContextLogger(logger))

	// 2. Register Modules & Routes
	return registerModules(router, sqlDB, gormDB, rdb, cfg, logger)
}
