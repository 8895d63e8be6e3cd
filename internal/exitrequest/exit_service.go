package exitrequest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-offboarding/internal/activitylog"
	"go-offboarding/internal/events"
	exiterrors "go-offboarding/internal/exitrequest/errors"
	"go-offboarding/internal/messaging/kafka"
	"go-offboarding/internal/settlement"
	"go-offboarding/internal/shared/contextutil"
	"go-offboarding/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=exit_service.go -destination=mock/exit_service_mock.go -package=mock
type Service interface {
	Initiate(ctx context.Context, companyID, actorID string, req InitiateExitRequest) (ExitRequestResponse, error)
	// Transition moves the request one step forward, or to cancelled. A nil
	// details payload records the from/to pair only.
	Transition(ctx context.Context, companyID, id string, target Status, actorID string, details activitylog.Details) (ExitRequestResponse, error)
	Cancel(ctx context.Context, companyID, id, actorID, reason string) (ExitRequestResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ExitRequestResponse, error)
	GetAll(ctx context.Context, companyID string, status string) ([]ExitRequestResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	counter  counter.Repository
	activity activitylog.Service
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	activity activitylog.Service,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("exitrequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("exitrequest.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		counter:  counter,
		activity: activity,
		outbox:   outboxRepo,
		rdb:      rdb,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   l,
	}
}

// WithClock returns a copy of svc that reads time from now.
func WithClock(svc Service, now func() time.Time) Service {
	if s, ok := svc.(*service); ok {
		cp := *s
		cp.now = now
		return &cp
	}
	return svc
}

func (s *service) Initiate(ctx context.Context, companyID, actorID string, req InitiateExitRequest) (ExitRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("initiate exit requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("actor_id", actorID),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ExitRequestResponse{}, exiterrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ExitRequestResponse{}, exiterrors.ErrInvalidActorID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ExitRequestResponse{}, exiterrors.ErrInvalidEmployeeID
	}
	exitType := ExitType(req.ExitType)
	if !exitType.Valid() {
		return ExitRequestResponse{}, exiterrors.ErrInvalidExitType
	}
	resignationDate, err := time.Parse(dateLayout, req.ResignationDate)
	if err != nil {
		return ExitRequestResponse{}, exiterrors.ErrInvalidResignationDate
	}
	lastWorkingDay, err := time.Parse(dateLayout, req.LastWorkingDay)
	if err != nil {
		return ExitRequestResponse{}, exiterrors.ErrInvalidLastWorkingDay
	}
	if lastWorkingDay.Before(resignationDate) {
		return ExitRequestResponse{}, exiterrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("initiate exit begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ExitRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	active, err := qtx.FindActiveByEmployee(ctx, companyID, req.EmployeeID)
	if err != nil {
		s.logger.Error("initiate exit active lookup failed", zap.Error(err))
		return ExitRequestResponse{}, err
	}
	if active != nil {
		s.logger.Warn("initiate exit duplicate active request",
			zap.String("employee_id", req.EmployeeID),
			zap.String("existing_id", active.ID.String()),
			zap.String("existing_status", string(active.Status)),
		)
		return ExitRequestResponse{}, exiterrors.ErrDuplicateActiveRequest
	}

	seq, err := s.counter.GetNextValue(ctx, companyID, counter.TypeExitReference)
	if err != nil {
		s.logger.Error("initiate exit generate reference failed", zap.Error(err))
		return ExitRequestResponse{}, err
	}

	now := s.now()
	e := &ExitRequest{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		EmployeeID:      employeeUUID,
		ReferenceNo:     fmt.Sprintf("EXIT-%06d", seq),
		ExitType:        exitType,
		Status:          StatusInitiated,
		ResignationDate: resignationDate,
		LastWorkingDay:  lastWorkingDay,
		Reason:          req.Reason,
		InitiatedBy:     actorUUID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := qtx.Create(ctx, e); err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, exiterrors.ErrDuplicateActiveRequest) {
			s.logger.Warn("initiate exit duplicate active request on insert", zap.String("employee_id", req.EmployeeID))
		} else {
			s.logger.Error("initiate exit persist failed", zap.Error(err))
		}
		return ExitRequestResponse{}, mapped
	}

	if err := s.activity.WithTx(tx).Append(ctx, companyID, e.ID.String(), string(StatusInitiated), actorID,
		activitylog.InitiationDetails{
			ReferenceNo:     e.ReferenceNo,
			ExitType:        string(e.ExitType),
			ResignationDate: req.ResignationDate,
			LastWorkingDay:  req.LastWorkingDay,
		}); err != nil {
		s.logger.Error("initiate exit activity append failed", zap.Error(err))
		return ExitRequestResponse{}, err
	}

	if err := s.enqueue(ctx, tx, rid, events.EventExitInitiated, e, "", actorID); err != nil {
		return ExitRequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("initiate exit commit failed", zap.String("request_id", rid), zap.Error(err))
		return ExitRequestResponse{}, err
	}

	s.logger.Info("initiate exit success",
		zap.String("request_id", rid),
		zap.String("exit_request_id", e.ID.String()),
		zap.String("reference_no", e.ReferenceNo),
	)
	return mapToResponse(*e), nil
}

func (s *service) Cancel(ctx context.Context, companyID, id, actorID, reason string) (ExitRequestResponse, error) {
	return s.Transition(ctx, companyID, id, StatusCancelled, actorID, activitylog.TransitionDetails{Reason: reason})
}

func (s *service) Transition(ctx context.Context, companyID, id string, target Status, actorID string, details activitylog.Details) (ExitRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("transition exit requested",
		zap.String("request_id", rid),
		zap.String("exit_request_id", id),
		zap.String("target_status", string(target)),
		zap.String("actor_id", actorID),
	)

	if !target.Valid() {
		return ExitRequestResponse{}, exiterrors.ErrInvalidStatus
	}
	if _, err := uuid.Parse(actorID); err != nil {
		return ExitRequestResponse{}, exiterrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return ExitRequestResponse{}, exiterrors.ErrExitRequestNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition exit begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ExitRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	e, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		mapped := mapRepositoryError(err)
		if !errors.Is(mapped, exiterrors.ErrExitRequestNotFound) {
			s.logger.Error("transition exit load failed", zap.Error(err))
		}
		return ExitRequestResponse{}, mapped
	}

	from := e.Status
	if err := CanTransition(from, target); err != nil {
		s.logger.Warn("transition exit rejected",
			zap.String("exit_request_id", id),
			zap.String("from", string(from)),
			zap.String("to", string(target)),
			zap.Error(err),
		)
		return ExitRequestResponse{}, err
	}
	if err := s.checkGuards(ctx, qtx, companyID, id, from, target); err != nil {
		return ExitRequestResponse{}, err
	}

	if td, ok := details.(activitylog.TransitionDetails); ok && target == StatusCancelled && td.Reason != "" {
		reason := td.Reason
		e.CancellationReason = &reason
	}
	column := e.applyStatus(target, s.now())

	ok, err := qtx.UpdateStatusIfCurrent(ctx, e, from, column)
	if err != nil {
		s.logger.Error("transition exit persist failed", zap.Error(err))
		return ExitRequestResponse{}, err
	}
	if !ok {
		s.logger.Warn("transition exit lost concurrent update",
			zap.String("exit_request_id", id),
			zap.String("from", string(from)),
			zap.String("to", string(target)),
		)
		return ExitRequestResponse{}, &exiterrors.InvalidTransitionError{From: string(from), To: string(target), Reason: "status changed concurrently"}
	}

	if err := s.activity.WithTx(tx).Append(ctx, companyID, id, string(target), actorID, withEndpoints(details, from, target)); err != nil {
		s.logger.Error("transition exit activity append failed", zap.Error(err))
		return ExitRequestResponse{}, err
	}

	if err := s.enqueue(ctx, tx, rid, events.EventExitStatusChanged, e, from, actorID); err != nil {
		return ExitRequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("transition exit commit failed", zap.String("request_id", rid), zap.Error(err))
		return ExitRequestResponse{}, err
	}

	s.logger.Info("transition exit success",
		zap.String("request_id", rid),
		zap.String("exit_request_id", id),
		zap.String("from", string(from)),
		zap.String("to", string(target)),
	)
	return mapToResponse(*e), nil
}

// checkGuards enforces the downstream eligibility rules: clearance completes
// only when every item is approved, and settlement completes only after a
// calculation is stored.
func (s *service) checkGuards(ctx context.Context, qtx Repository, companyID, id string, from, target Status) error {
	switch target {
	case StatusClearanceCompleted:
		total, approved, err := qtx.CountClearanceItems(ctx, companyID, id)
		if err != nil {
			s.logger.Error("transition exit clearance count failed", zap.Error(err))
			return err
		}
		if total == 0 || approved < total {
			s.logger.Warn("transition exit clearance incomplete",
				zap.String("exit_request_id", id),
				zap.Int64("total", total),
				zap.Int64("approved", approved),
			)
			return &exiterrors.InvalidTransitionError{
				From:   string(from),
				To:     string(target),
				Reason: fmt.Sprintf("%d of %d clearance items approved", approved, total),
			}
		}
	case StatusSettlementCompleted:
		ok, err := qtx.HasSettlement(ctx, companyID, id)
		if err != nil {
			s.logger.Error("transition exit settlement lookup failed", zap.Error(err))
			return err
		}
		if !ok {
			s.logger.Warn("transition exit settlement missing", zap.String("exit_request_id", id))
			return &exiterrors.InvalidTransitionError{
				From:   string(from),
				To:     string(target),
				Reason: "no settlement has been calculated",
			}
		}
	}
	return nil
}

func withEndpoints(d activitylog.Details, from, to Status) activitylog.Details {
	switch v := d.(type) {
	case nil:
		return activitylog.TransitionDetails{From: string(from), To: string(to)}
	case activitylog.TransitionDetails:
		v.From, v.To = string(from), string(to)
		return v
	case activitylog.ClearanceDetails:
		v.From, v.To = string(from), string(to)
		return v
	default:
		return d
	}
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, rid, eventType string, e *ExitRequest, from Status, actorID string) error {
	if s.outbox == nil {
		return nil
	}

	event, err := kafka.NewPendingEvent(rid, "exit_request", e.ID.String(), eventType, events.ExitLifecycleTopic,
		events.ExitStatusChangedEvent{
			EventType:     eventType,
			RequestID:     rid,
			ExitRequestID: e.ID.String(),
			CompanyID:     e.CompanyID.String(),
			EmployeeID:    e.EmployeeID.String(),
			FromStatus:    string(from),
			ToStatus:      string(e.Status),
			ActorID:       actorID,
			OccurredAt:    e.UpdatedAt,
		})
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("exit outbox persist failed",
			zap.String("exit_request_id", e.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ExitRequestResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ExitRequestResponse{}, exiterrors.ErrExitRequestNotFound
	}
	e, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ExitRequestResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, status string) ([]ExitRequestResponse, error) {
	s.logger.Debug("get all exit requests requested",
		zap.String("company_id", companyID),
		zap.String("status", status),
	)
	if status != "" && !Status(status).Valid() {
		return nil, exiterrors.ErrInvalidStatus
	}

	items, err := s.repo.FindAllByCompany(ctx, companyID, Status(status))
	if err != nil {
		s.logger.Error("get all exit requests failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(items), nil
}

// Delete is the administrative removal of a request and everything it owns.
// It is not a lifecycle transition and records no activity.
func (s *service) Delete(ctx context.Context, companyID, id string) error {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(id); err != nil {
		return exiterrors.ErrExitRequestNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete exit begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindByIDForUpdate(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.DeleteCascade(ctx, companyID, id); err != nil {
		s.logger.Error("delete exit cascade failed", zap.String("exit_request_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete exit commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if s.rdb != nil {
		cacheKey := settlement.LatestCacheKey(companyID, id)
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate latest settlement cache",
				zap.Error(err),
				zap.String("key", cacheKey),
			)
		}
	}

	s.logger.Info("delete exit success",
		zap.String("request_id", rid),
		zap.String("exit_request_id", id),
	)
	return nil
}
