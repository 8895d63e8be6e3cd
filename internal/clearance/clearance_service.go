package clearance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go-offboarding/internal/activitylog"
	clearanceerrors "go-offboarding/internal/clearance/errors"
	"go-offboarding/internal/exitrequest"
	exiterrors "go-offboarding/internal/exitrequest/errors"
	"go-offboarding/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxDepartmentLength = 100

// openStatuses are the request statuses in which department sign-offs may
// still change.
var openStatuses = map[string]bool{
	string(exitrequest.StatusInitiated):       true,
	string(exitrequest.StatusManagerApproved): true,
	string(exitrequest.StatusHRApproved):      true,
}

// Transitioner is the part of the exit request service the checklist drives.
type Transitioner interface {
	Transition(ctx context.Context, companyID, id string, target exitrequest.Status, actorID string, details activitylog.Details) (exitrequest.ExitRequestResponse, error)
	GetByID(ctx context.Context, companyID, id string) (exitrequest.ExitRequestResponse, error)
}

//go:generate mockgen -source=clearance_service.go -destination=mock/clearance_service_mock.go -package=mock
type Service interface {
	// Upsert writes the department's item. When that leaves every item
	// approved on an hr_approved request, the request moves to
	// clearance_completed before Upsert returns. If a concurrent sign-off
	// changes the checklist first and the state machine rejects the
	// completion, the stored item is still returned without error.
	Upsert(ctx context.Context, companyID, exitRequestID, department, approverID string, req UpsertClearanceRequest) (ClearanceItemResponse, error)
	List(ctx context.Context, companyID, exitRequestID string) (ChecklistResponse, error)
	// SeedChecklist adds a pending item for each configured department that
	// has none yet.
	SeedChecklist(ctx context.Context, companyID, exitRequestID string) (int64, error)
	// Reconcile completes clearance for an hr_approved request whose
	// checklist is already fully approved. It reports whether it did.
	Reconcile(ctx context.Context, companyID, exitRequestID, actorID string) (bool, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	transitioner Transitioner
	departments  []string
	now          func() time.Time
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	transitioner Transitioner,
	departments []string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("clearance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("clearance.service")
	}

	seen := make(map[string]bool, len(departments))
	deps := make([]string, 0, len(departments))
	for _, d := range departments {
		d = strings.TrimSpace(d)
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		deps = append(deps, d)
	}

	return &service{
		db:           db,
		repo:         repo,
		transitioner: transitioner,
		departments:  deps,
		now:          func() time.Time { return time.Now().UTC() },
		logger:       l,
	}
}

func (s *service) Upsert(ctx context.Context, companyID, exitRequestID, department, approverID string, req UpsertClearanceRequest) (ClearanceItemResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("upsert clearance requested",
		zap.String("request_id", rid),
		zap.String("exit_request_id", exitRequestID),
		zap.String("department", department),
		zap.String("status", req.Status),
		zap.String("approver_id", approverID),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ClearanceItemResponse{}, clearanceerrors.ErrInvalidCompanyID
	}
	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return ClearanceItemResponse{}, clearanceerrors.ErrInvalidApproverID
	}
	exitUUID, err := uuid.Parse(exitRequestID)
	if err != nil {
		return ClearanceItemResponse{}, clearanceerrors.ErrExitRequestNotFound
	}
	department = strings.TrimSpace(department)
	if department == "" || utf8.RuneCountInString(department) > maxDepartmentLength {
		return ClearanceItemResponse{}, clearanceerrors.ErrInvalidDepartment
	}
	status := ItemStatus(req.Status)
	if !status.Valid() {
		return ClearanceItemResponse{}, clearanceerrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("upsert clearance begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ClearanceItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	exitStatus, err := s.lockOpen(ctx, qtx, companyID, exitRequestID)
	if err != nil {
		return ClearanceItemResponse{}, err
	}

	now := s.now()
	item := &ClearanceItem{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		ExitRequestID: exitUUID,
		Department:    department,
		Status:        status,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if status != ItemPending {
		item.ApproverID = &approverUUID
		item.ReviewedAt = &now
	}
	if err := qtx.Upsert(ctx, item); err != nil {
		s.logger.Error("upsert clearance persist failed", zap.Error(err))
		return ClearanceItemResponse{}, err
	}

	items, err := qtx.FindByExitRequest(ctx, companyID, exitRequestID)
	if err != nil {
		s.logger.Error("upsert clearance reload failed", zap.Error(err))
		return ClearanceItemResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("upsert clearance commit failed", zap.String("request_id", rid), zap.Error(err))
		return ClearanceItemResponse{}, err
	}

	saved := *item
	for _, it := range items {
		if it.Department == department {
			saved = it
			break
		}
	}

	s.logger.Info("upsert clearance success",
		zap.String("request_id", rid),
		zap.String("exit_request_id", exitRequestID),
		zap.String("department", department),
		zap.String("status", string(status)),
	)

	// An infrastructure failure here leaves the item written; repeating the
	// same upsert is harmless and retries the transition.
	if exitStatus == string(exitrequest.StatusHRApproved) && AllApproved(items) {
		if _, err := s.complete(ctx, companyID, exitRequestID, approverID, department); err != nil {
			return ClearanceItemResponse{}, err
		}
	}

	return mapToResponse(saved), nil
}

// lockOpen share-locks the request row and rejects statuses past hr_approved.
func (s *service) lockOpen(ctx context.Context, qtx Repository, companyID, exitRequestID string) (string, error) {
	exitStatus, err := qtx.LockExitStatus(ctx, companyID, exitRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", clearanceerrors.ErrExitRequestNotFound
		}
		s.logger.Error("clearance exit request lookup failed", zap.Error(err))
		return "", err
	}
	if !openStatuses[exitStatus] {
		s.logger.Warn("clearance checklist locked",
			zap.String("exit_request_id", exitRequestID),
			zap.String("status", exitStatus),
		)
		return "", clearanceerrors.ErrChecklistLocked.WithDetails(map[string]string{"status": exitStatus})
	}
	return exitStatus, nil
}

// complete asks the state machine for clearance_completed. Losing the race
// to another approver that completed it first counts as success.
func (s *service) complete(ctx context.Context, companyID, exitRequestID, actorID, department string) (bool, error) {
	_, err := s.transitioner.Transition(ctx, companyID, exitRequestID, exitrequest.StatusClearanceCompleted, actorID,
		activitylog.ClearanceDetails{Department: department})
	if err == nil {
		s.logger.Info("clearance completed",
			zap.String("exit_request_id", exitRequestID),
			zap.String("department", department),
		)
		return true, nil
	}

	if errors.Is(err, exiterrors.ErrInvalidTransition) {
		current, getErr := s.transitioner.GetByID(ctx, companyID, exitRequestID)
		if getErr == nil && current.Status == string(exitrequest.StatusClearanceCompleted) {
			s.logger.Debug("clearance already completed", zap.String("exit_request_id", exitRequestID))
			return false, nil
		}
		s.logger.Warn("clearance completion rejected",
			zap.String("exit_request_id", exitRequestID),
			zap.String("department", department),
			zap.Error(err),
		)
		return false, nil
	}

	s.logger.Error("clearance completion failed",
		zap.String("exit_request_id", exitRequestID),
		zap.String("department", department),
		zap.Error(err),
	)
	return false, err
}

func (s *service) List(ctx context.Context, companyID, exitRequestID string) (ChecklistResponse, error) {
	s.logger.Debug("list clearance requested", zap.String("exit_request_id", exitRequestID))

	if _, err := uuid.Parse(exitRequestID); err != nil {
		return ChecklistResponse{}, clearanceerrors.ErrExitRequestNotFound
	}
	if _, err := s.transitioner.GetByID(ctx, companyID, exitRequestID); err != nil {
		if errors.Is(err, exiterrors.ErrExitRequestNotFound) {
			return ChecklistResponse{}, clearanceerrors.ErrExitRequestNotFound
		}
		return ChecklistResponse{}, err
	}

	items, err := s.repo.FindByExitRequest(ctx, companyID, exitRequestID)
	if err != nil {
		s.logger.Error("list clearance failed", zap.Error(err))
		return ChecklistResponse{}, err
	}
	return mapToChecklist(items), nil
}

func (s *service) SeedChecklist(ctx context.Context, companyID, exitRequestID string) (int64, error) {
	rid := contextutil.GetRequestID(ctx)
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return 0, clearanceerrors.ErrInvalidCompanyID
	}
	exitUUID, err := uuid.Parse(exitRequestID)
	if err != nil {
		return 0, clearanceerrors.ErrExitRequestNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("seed clearance begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return 0, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := s.lockOpen(ctx, qtx, companyID, exitRequestID); err != nil {
		return 0, err
	}

	now := s.now()
	items := make([]ClearanceItem, 0, len(s.departments))
	for _, d := range s.departments {
		items = append(items, ClearanceItem{
			ID:            uuid.New(),
			CompanyID:     companyUUID,
			ExitRequestID: exitUUID,
			Department:    d,
			Status:        ItemPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	created, err := qtx.SeedPending(ctx, items)
	if err != nil {
		s.logger.Error("seed clearance persist failed", zap.Error(err))
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("seed clearance commit failed", zap.String("request_id", rid), zap.Error(err))
		return 0, err
	}

	s.logger.Info("seed clearance success",
		zap.String("request_id", rid),
		zap.String("exit_request_id", exitRequestID),
		zap.Int64("created", created),
	)
	return created, nil
}

func (s *service) Reconcile(ctx context.Context, companyID, exitRequestID, actorID string) (bool, error) {
	current, err := s.transitioner.GetByID(ctx, companyID, exitRequestID)
	if err != nil {
		return false, err
	}
	if current.Status != string(exitrequest.StatusHRApproved) {
		return false, nil
	}

	items, err := s.repo.FindByExitRequest(ctx, companyID, exitRequestID)
	if err != nil {
		s.logger.Error("reconcile clearance load failed", zap.Error(err))
		return false, err
	}
	if !AllApproved(items) {
		return false, nil
	}

	return s.complete(ctx, companyID, exitRequestID, actorID, lastReviewed(items).Department)
}

// lastReviewed returns the item signed off most recently.
func lastReviewed(items []ClearanceItem) ClearanceItem {
	last := items[0]
	for _, it := range items[1:] {
		if it.ReviewedAt == nil {
			continue
		}
		if last.ReviewedAt == nil || it.ReviewedAt.After(*last.ReviewedAt) {
			last = it
		}
	}
	return last
}
