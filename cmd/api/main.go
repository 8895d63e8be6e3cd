package main

import (
	"time"

	"go-offboarding/internal/app"
	"go-offboarding/internal/bootstrap"
	"go-offboarding/internal/config"
	"go-offboarding/internal/shared/apperror"
	"go-offboarding/internal/shared/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.App.LogFilePath, cfg.IsProduction())
	defer log.Sync()
	zap.ReplaceGlobals(log)

	apperror.Init()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	if err := app.BuildApp(r, cfg, log); err != nil {
		log.Fatal("build app failed", zap.Error(err))
	}

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.App.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		bootstrap.NewStdoutAuditLogger(),
	)
}
