package app

import (
	"go-offboarding/internal/activitylog"
	"go-offboarding/internal/clearance"
	"go-offboarding/internal/config"
	"go-offboarding/internal/exitrequest"
	"go-offboarding/internal/settlement"
	"go-offboarding/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) error {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, connectRetries, logger)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := migrate(gormDB); err != nil {
			return err
		}
		logger.Info("exit tables migrated")
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis, connectRetries, logger)
	if err != nil {
		return err
	}

	// 2. Register Modules & Routes
	return registerModules(router, cfg, sqlDB, gormDB, redisClient, logger)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&exitrequest.ExitRequest{},
		&clearance.ClearanceItem{},
		&settlement.SettlementCalculation{},
		&activitylog.Entry{},
	)
}
