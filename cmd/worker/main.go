package main

import (
	"go-offboarding/internal/app"
	"go-offboarding/internal/config"
	"go-offboarding/internal/shared/apperror"
	"go-offboarding/internal/shared/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.App.LogFilePath, cfg.IsProduction())
	defer log.Sync()
	zap.ReplaceGlobals(log)

	apperror.Init()

	if err := app.RunWorker(cfg, log); err != nil {
		log.Fatal("run worker failed", zap.Error(err))
	}
}
