package settlement

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-offboarding/internal/activitylog"
	"go-offboarding/internal/events"
	"go-offboarding/internal/messaging/kafka"
	settlementerrors "go-offboarding/internal/settlement/errors"
	"go-offboarding/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const LatestKeyPrefix = "exits:settlement:latest:"

const latestTTL = 30 * time.Minute

// LatestCacheKey is the redis key holding the newest calculation of an exit
// request.
func LatestCacheKey(companyID, exitRequestID string) string {
	return LatestKeyPrefix + companyID + ":" + exitRequestID
}

// Statuses in which a settlement may be (re)calculated.
var eligibleStatuses = map[string]bool{
	"clearance_completed":  true,
	"settlement_completed": true,
}

//go:generate mockgen -source=settlement_service.go -destination=mock/settlement_service_mock.go -package=mock
type Service interface {
	// Preview runs the engine without touching storage.
	Preview(ctx context.Context, req CalculateSettlementRequest) (CalculationResponse, error)
	Calculate(ctx context.Context, companyID, exitRequestID, actorID string, req CalculateSettlementRequest) (SettlementResponse, error)
	GetLatest(ctx context.Context, companyID, exitRequestID string) (SettlementResponse, error)
	GetHistory(ctx context.Context, companyID, exitRequestID string) ([]SettlementResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	activity activitylog.Service
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	sf       *singleflight.Group
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	activity activitylog.Service,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("settlement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settlement.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		activity: activity,
		outbox:   outboxRepo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		now:      func() time.Time { return time.Now().UTC() },
		logger:   l,
	}
}

func (s *service) Preview(ctx context.Context, req CalculateSettlementRequest) (CalculationResponse, error) {
	in, invalid := req.toInputs()
	calc, err := s.calculate(in, invalid)
	if err != nil {
		s.logger.Warn("preview settlement rejected", zap.Error(err))
		return CalculationResponse{}, err
	}
	return toCalculationResponse(calc), nil
}

func (s *service) calculate(in engineInputs, invalid map[string]string) (Calculation, error) {
	if errs := in.validate(invalid); len(errs) > 0 {
		return Calculation{}, &ValidationError{Errors: errs}
	}
	return CalculateFinalSettlement(in.employee, in.payroll, in.exit)
}

func (s *service) Calculate(
	ctx context.Context,
	companyID, exitRequestID, actorID string,
	req CalculateSettlementRequest,
) (SettlementResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("calculate settlement requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("exit_request_id", exitRequestID),
		zap.String("actor_id", actorID),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SettlementResponse{}, settlementerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return SettlementResponse{}, settlementerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(exitRequestID); err != nil {
		return SettlementResponse{}, settlementerrors.ErrExitRequestNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("calculate settlement begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SettlementResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	snap, err := qtx.LockExitRequest(ctx, companyID, exitRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettlementResponse{}, settlementerrors.ErrExitRequestNotFound
		}
		s.logger.Error("calculate settlement lock exit request failed", zap.Error(err))
		return SettlementResponse{}, err
	}
	if !eligibleStatuses[snap.Status] {
		s.logger.Warn("calculate settlement exit request not eligible",
			zap.String("exit_request_id", exitRequestID),
			zap.String("status", snap.Status),
		)
		return SettlementResponse{}, settlementerrors.ErrNotEligible.WithDetails(map[string]string{"status": snap.Status})
	}

	in, invalid := req.toInputs()
	if in.employee != nil && in.employee.LastWorkingDay == nil && req.EmployeeInfo.LastWorkingDay == nil {
		lwd := snap.LastWorkingDay
		in.employee.LastWorkingDay = &lwd
	}

	calc, err := s.calculate(in, invalid)
	if err != nil {
		s.logger.Warn("calculate settlement rejected",
			zap.String("exit_request_id", exitRequestID),
			zap.Error(err),
		)
		return SettlementResponse{}, err
	}

	inputs, err := json.Marshal(req)
	if err != nil {
		return SettlementResponse{}, err
	}

	record := &SettlementCalculation{
		ID:               uuid.New(),
		CompanyID:        companyUUID,
		ExitRequestID:    snap.ID,
		TotalPayable:     calc.Earnings.TotalPayable,
		TotalRecoverable: calc.Deductions.TotalRecoverable,
		NetSettlement:    calc.NetSettlement,
		SettlementStatus: string(calc.SettlementStatus),
		Earnings:         datatypes.NewJSONType(calc.Earnings),
		Deductions:       datatypes.NewJSONType(calc.Deductions),
		Details:          datatypes.NewJSONType(calc.Details),
		Inputs:           datatypes.JSON(inputs),
		CalculatedBy:     actorUUID,
		CalculatedAt:     s.now(),
	}
	if err := qtx.Create(ctx, record); err != nil {
		s.logger.Error("calculate settlement persist failed", zap.Error(err))
		return SettlementResponse{}, err
	}

	if err := s.activity.WithTx(tx).Append(ctx, companyID, exitRequestID, activitylog.ActionSettlementCalculated, actorID,
		activitylog.SettlementDetails{
			CalculationID:    record.ID.String(),
			TotalPayable:     record.TotalPayable.StringFixed(2),
			TotalRecoverable: record.TotalRecoverable.StringFixed(2),
			NetSettlement:    record.NetSettlement.StringFixed(2),
			SettlementStatus: record.SettlementStatus,
		}); err != nil {
		s.logger.Error("calculate settlement activity append failed", zap.Error(err))
		return SettlementResponse{}, err
	}

	if s.outbox != nil {
		event, err := kafka.NewPendingEvent(rid, "exit_request", exitRequestID, events.EventSettlementCalculated, events.ExitLifecycleTopic,
			events.SettlementCalculatedEvent{
				EventType:        events.EventSettlementCalculated,
				RequestID:        rid,
				ExitRequestID:    exitRequestID,
				CompanyID:        companyID,
				CalculationID:    record.ID.String(),
				NetSettlement:    record.NetSettlement.StringFixed(2),
				SettlementStatus: record.SettlementStatus,
				OccurredAt:       record.CalculatedAt,
			})
		if err != nil {
			return SettlementResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("calculate settlement outbox persist failed", zap.Error(err))
			return SettlementResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("calculate settlement commit failed", zap.String("request_id", rid), zap.Error(err))
		return SettlementResponse{}, err
	}

	s.invalidateLatest(ctx, companyID, exitRequestID)

	s.logger.Info("calculate settlement success",
		zap.String("request_id", rid),
		zap.String("exit_request_id", exitRequestID),
		zap.String("calculation_id", record.ID.String()),
		zap.String("net_settlement", record.NetSettlement.StringFixed(2)),
		zap.String("settlement_status", record.SettlementStatus),
	)
	return mapToResponse(*record), nil
}

func (s *service) invalidateLatest(ctx context.Context, companyID, exitRequestID string) {
	if s.rdb == nil {
		return
	}
	key := LatestCacheKey(companyID, exitRequestID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate latest settlement cache",
			zap.Error(err),
			zap.String("key", key),
		)
	}
}

func (s *service) GetLatest(ctx context.Context, companyID, exitRequestID string) (SettlementResponse, error) {
	key := LatestCacheKey(companyID, exitRequestID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var resp SettlementResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		item, err := s.repo.FindLatestByExitRequest(ctx, companyID, exitRequestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, settlementerrors.ErrSettlementNotFound
			}
			return nil, err
		}

		resp := mapToResponse(*item)
		if s.rdb != nil {
			if raw, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, key, raw, latestTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		if !errors.Is(err, settlementerrors.ErrSettlementNotFound) {
			s.logger.Error("get latest settlement failed",
				zap.String("exit_request_id", exitRequestID),
				zap.Error(err),
			)
		}
		return SettlementResponse{}, err
	}

	return v.(SettlementResponse), nil
}

func (s *service) GetHistory(ctx context.Context, companyID, exitRequestID string) ([]SettlementResponse, error) {
	s.logger.Debug("get settlement history requested",
		zap.String("company_id", companyID),
		zap.String("exit_request_id", exitRequestID),
	)

	exists, err := s.repo.ExitRequestExists(ctx, companyID, exitRequestID)
	if err != nil {
		return nil, fmt.Errorf("check exit request: %w", err)
	}
	if !exists {
		return nil, settlementerrors.ErrExitRequestNotFound
	}

	items, err := s.repo.FindAllByExitRequest(ctx, companyID, exitRequestID)
	if err != nil {
		s.logger.Error("get settlement history failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(items), nil
}
