package activitylog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	activityerrors "go-offboarding/internal/activitylog/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=activity_service.go -destination=mock/activity_service_mock.go -package=mock
type Service interface {
	// WithTx binds appends to the caller's transaction so an entry commits
	// or rolls back together with the change it records.
	WithTx(tx *sql.Tx) Service
	Append(ctx context.Context, companyID, exitRequestID, action, actorID string, details Details) error
	ListFor(ctx context.Context, companyID, exitRequestID string) ([]EntryResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("activitylog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("activitylog.service")
	}
	return &service{repo: repo, now: func() time.Time { return time.Now().UTC() }, logger: l}
}

func (s *service) WithTx(tx *sql.Tx) Service {
	return &service{repo: s.repo.WithTx(tx), now: s.now, logger: s.logger}
}

func (s *service) Append(ctx context.Context, companyID, exitRequestID, action, actorID string, details Details) error {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return activityerrors.ErrInvalidCompanyID
	}
	exitUUID, err := uuid.Parse(exitRequestID)
	if err != nil {
		return activityerrors.ErrInvalidExitRequestID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return activityerrors.ErrInvalidActorID
	}
	if action == "" {
		return activityerrors.ErrActionRequired
	}

	kind, raw, err := Encode(details)
	if err != nil {
		return err
	}

	e := &Entry{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		ExitRequestID: exitUUID,
		Action:        action,
		ActorID:       actorUUID,
		DetailsKind:   kind,
		Details:       raw,
		CreatedAt:     s.now(),
	}
	if err := s.repo.Append(ctx, e); err != nil {
		s.logger.Error("append activity persist failed",
			zap.String("exit_request_id", exitRequestID),
			zap.String("action", action),
			zap.Error(err),
		)
		return err
	}

	s.logger.Debug("activity appended",
		zap.String("exit_request_id", exitRequestID),
		zap.String("action", action),
		zap.String("actor_id", actorID),
	)
	return nil
}

// ListFor returns the trail oldest first with details decoded to their
// concrete types.
func (s *service) ListFor(ctx context.Context, companyID, exitRequestID string) ([]EntryResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, activityerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(exitRequestID); err != nil {
		return nil, activityerrors.ErrInvalidExitRequestID
	}

	exists, err := s.repo.ExitRequestExists(ctx, companyID, exitRequestID)
	if err != nil {
		s.logger.Error("check exit request failed",
			zap.String("exit_request_id", exitRequestID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("check exit request: %w", err)
	}
	if !exists {
		return nil, activityerrors.ErrExitRequestNotFound
	}

	entries, err := s.repo.FindByExitRequest(ctx, companyID, exitRequestID)
	if err != nil {
		s.logger.Error("list activity failed",
			zap.String("exit_request_id", exitRequestID),
			zap.Error(err),
		)
		return nil, err
	}

	resp := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		details, err := Decode(e.DetailsKind, e.Details)
		if err != nil {
			s.logger.Error("decode activity details failed",
				zap.String("entry_id", e.ID.String()),
				zap.Error(err),
			)
			return nil, activityerrors.ErrCorruptDetails
		}
		resp = append(resp, EntryResponse{
			ID:            e.ID.String(),
			ExitRequestID: e.ExitRequestID.String(),
			Action:        e.Action,
			ActorID:       e.ActorID.String(),
			DetailsKind:   e.DetailsKind,
			Details:       details,
			CreatedAt:     e.CreatedAt.Format(time.RFC3339Nano),
		})
	}
	return resp, nil
}
