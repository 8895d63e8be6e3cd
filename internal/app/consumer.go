package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-offboarding/internal/config"
	"go-offboarding/internal/events"
	"go-offboarding/internal/messaging/kafka/consumer"
	"go-offboarding/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer seeds and reconciles clearance checklists from exit
// lifecycle events until interrupted.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, connectRetries, logger)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// Redis is optional here; the exit service only uses it for cache eviction.
	svc := buildServices(cfg, sqlDB, gormDB, nil, logger)

	reader := connection.NewKafkaReader(cfg.Kafka, events.ExitLifecycleTopic)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeExitLifecycle(ctx, reader, svc.clearance, log)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
