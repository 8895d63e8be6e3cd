package app

import (
	"database/sql"

	"go-offboarding/internal/activitylog"
	"go-offboarding/internal/clearance"
	"go-offboarding/internal/config"
	"go-offboarding/internal/exitrequest"
	"go-offboarding/internal/messaging/kafka"
	"go-offboarding/internal/middleware"
	"go-offboarding/internal/rbac"
	"go-offboarding/internal/rbac/infra"
	"go-offboarding/internal/settlement"
	"go-offboarding/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// services is the exit core shared by the API and the consumer.
type services struct {
	activity   activitylog.Service
	exit       exitrequest.Service
	clearance  clearance.Service
	settlement settlement.Service
}

func buildServices(
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) *services {
	// --- Repositories ---
	activityRepo := activitylog.NewRepository(gormDB)
	exitRepo := exitrequest.NewRepository(gormDB)
	clearanceRepo := clearance.NewRepository(gormDB)
	settlementRepo := settlement.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	activityService := activitylog.NewService(activityRepo, logger)
	exitService := exitrequest.NewService(db, exitRepo, counterRepo, activityService, outboxRepo, rdb, logger)
	clearanceService := clearance.NewService(db, clearanceRepo, exitService, cfg.Clearance.Departments, logger)
	settlementService := settlement.NewService(db, settlementRepo, activityService, outboxRepo, rdb, logger)

	return &services{
		activity:   activityService,
		exit:       exitService,
		clearance:  clearanceService,
		settlement: settlementService,
	}
}

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBAC.ModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbac.NewRepository(gormDB), enforcer, logger)

	svc := buildServices(cfg, db, gormDB, rdb, logger)

	// --- Handlers ---
	activityHandler := activitylog.NewHandler(svc.activity, logger)
	exitHandler := exitrequest.NewHandler(svc.exit, rdb, logger)
	clearanceHandler := clearance.NewHandler(svc.clearance, logger)
	settlementHandler := settlement.NewHandler(svc.settlement, rdb, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst),
	)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		exitrequest.RegisterRoutes(api, exitHandler, rbacService, rdb)
		clearance.RegisterRoutes(api, clearanceHandler, rbacService)
		settlement.RegisterRoutes(api, settlementHandler, rbacService, rdb)
		activitylog.RegisterRoutes(api, activityHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
