package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-offboarding/internal/clearance"
	clearanceerrors "go-offboarding/internal/clearance/errors"
	"go-offboarding/internal/events"
	"go-offboarding/internal/exitrequest"
	exiterrors "go-offboarding/internal/exitrequest/errors"
	"go-offboarding/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeExitLifecycle seeds the default clearance checklist whenever an
// exit request reaches hr_approved, then completes clearance if the
// checklist is already fully approved.
func ConsumeExitLifecycle(
	ctx context.Context,
	reader MessageReader,
	clearanceService clearance.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.exit_lifecycle")
	log.Info("exit lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("exit lifecycle consumer stopped")
				return
			}
			log.Error("fetch exit lifecycle message failed", zap.Error(err))
			continue
		}

		if err := handleExitLifecycle(ctx, clearanceService, msg.Value, log); err != nil {
			// left uncommitted so the group redelivers it after a rebalance
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit exit lifecycle message failed", zap.Error(err))
		}
	}
}

// handleExitLifecycle returns an error only for failures worth redelivering.
func handleExitLifecycle(ctx context.Context, svc clearance.Service, value []byte, log *zap.Logger) error {
	var event events.ExitStatusChangedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		log.Error("decode exit lifecycle event failed", zap.Error(err))
		return nil
	}

	if event.EventType != events.EventExitStatusChanged || event.ToStatus != string(exitrequest.StatusHRApproved) {
		log.Debug("exit lifecycle event ignored",
			zap.String("event_type", event.EventType),
			zap.String("to_status", event.ToStatus),
		)
		return nil
	}

	ctx = contextutil.WithRequestID(ctx, event.RequestID)
	fields := []zap.Field{
		zap.String("request_id", event.RequestID),
		zap.String("exit_request_id", event.ExitRequestID),
		zap.String("company_id", event.CompanyID),
	}

	created, err := svc.SeedChecklist(ctx, event.CompanyID, event.ExitRequestID)
	if err != nil {
		if isStale(err) {
			log.Warn("exit request moved on before checklist seeding, skipping", append(fields, zap.Error(err))...)
			return nil
		}
		log.Error("seed clearance checklist failed", append(fields, zap.Error(err))...)
		return err
	}

	completed, err := svc.Reconcile(ctx, event.CompanyID, event.ExitRequestID, event.ActorID)
	if err != nil {
		if isStale(err) {
			log.Warn("exit request moved on before clearance reconcile, skipping", append(fields, zap.Error(err))...)
			return nil
		}
		log.Error("reconcile clearance failed", append(fields, zap.Error(err))...)
		return err
	}

	log.Info("clearance checklist seeded from hr_approved event",
		append(fields, zap.Int64("created", created), zap.Bool("clearance_completed", completed))...,
	)
	return nil
}

// isStale reports errors caused by the request having been cancelled,
// deleted or advanced since the event was written.
func isStale(err error) bool {
	return errors.Is(err, clearanceerrors.ErrChecklistLocked) ||
		errors.Is(err, clearanceerrors.ErrExitRequestNotFound) ||
		errors.Is(err, exiterrors.ErrExitRequestNotFound) ||
		errors.Is(err, exiterrors.ErrInvalidTransition)
}
