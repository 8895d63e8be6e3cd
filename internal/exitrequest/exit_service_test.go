package exitrequest_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-offboarding/internal/activitylog"
	activityMock "go-offboarding/internal/activitylog/mock"
	"go-offboarding/internal/events"
	"go-offboarding/internal/exitrequest"
	exiterrors "go-offboarding/internal/exitrequest/errors"
	"go-offboarding/internal/messaging/kafka"
	kafkaMock "go-offboarding/internal/messaging/kafka/mock"
	"go-offboarding/internal/settlement"
	"go-offboarding/internal/shared/contextutil"
	"go-offboarding/internal/shared/counter"
	counterMock "go-offboarding/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// memoryExitRepository keeps requests in a map and honours the conditional
// status update the service relies on.
type memoryExitRepository struct {
	items             map[string]exitrequest.ExitRequest
	clearanceTotal    int64
	clearanceApproved int64
	settlements       int
	createErr         error
	beforeUpdate      func(m *memoryExitRepository, id string)
	deleted           []string
}

func newMemoryExitRepository() *memoryExitRepository {
	return &memoryExitRepository{items: map[string]exitrequest.ExitRequest{}}
}

func (m *memoryExitRepository) WithTx(tx *sql.Tx) exitrequest.Repository { return m }

func (m *memoryExitRepository) Create(ctx context.Context, e *exitrequest.ExitRequest) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.items[e.ID.String()] = *e
	return nil
}

func (m *memoryExitRepository) FindAllByCompany(ctx context.Context, companyID string, status exitrequest.Status) ([]exitrequest.ExitRequest, error) {
	var out []exitrequest.ExitRequest
	for _, e := range m.items {
		if e.CompanyID.String() != companyID {
			continue
		}
		if status != "" && e.Status != status {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *memoryExitRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*exitrequest.ExitRequest, error) {
	e, ok := m.items[id]
	if !ok || e.CompanyID.String() != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (m *memoryExitRepository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*exitrequest.ExitRequest, error) {
	return m.FindByIDAndCompany(ctx, companyID, id)
}

func (m *memoryExitRepository) FindActiveByEmployee(ctx context.Context, companyID, employeeID string) (*exitrequest.ExitRequest, error) {
	for _, e := range m.items {
		if e.CompanyID.String() == companyID && e.EmployeeID.String() == employeeID && !e.Status.IsTerminal() {
			found := e
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryExitRepository) UpdateStatusIfCurrent(ctx context.Context, e *exitrequest.ExitRequest, expected exitrequest.Status, stampColumn string) (bool, error) {
	if m.beforeUpdate != nil {
		m.beforeUpdate(m, e.ID.String())
	}
	stored, ok := m.items[e.ID.String()]
	if !ok || stored.Status != expected {
		return false, nil
	}
	m.items[e.ID.String()] = *e
	return true, nil
}

func (m *memoryExitRepository) CountClearanceItems(ctx context.Context, companyID, exitRequestID string) (int64, int64, error) {
	return m.clearanceTotal, m.clearanceApproved, nil
}

func (m *memoryExitRepository) HasSettlement(ctx context.Context, companyID, exitRequestID string) (bool, error) {
	return m.settlements > 0, nil
}

func (m *memoryExitRepository) DeleteCascade(ctx context.Context, companyID, id string) error {
	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type recordedActivity struct {
	action  string
	details activitylog.Details
}

type exitServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   exitrequest.Service
	repo      *memoryExitRepository
	counter   *counterMock.MockRepository
	activity  *activityMock.MockService
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
	logged    []recordedActivity
	queued    []kafka.OutboxEvent
	clock     time.Time
}

func setupExitServiceTest(t *testing.T) *exitServiceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	rdb, redisMock := redismock.NewClientMock()

	deps := &exitServiceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      newMemoryExitRepository(),
		counter:   counterMock.NewMockRepository(ctrl),
		activity:  activityMock.NewMockService(ctrl),
		outbox:    kafkaMock.NewMockOutboxRepository(ctrl),
		redismock: redisMock,
		clock:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	deps.activity.EXPECT().WithTx(gomock.Any()).Return(deps.activity).AnyTimes()
	deps.activity.EXPECT().
		Append(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, companyID, exitRequestID, action, actorID string, d activitylog.Details) error {
			deps.logged = append(deps.logged, recordedActivity{action: action, details: d})
			return nil
		}).AnyTimes()
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox).AnyTimes()
	deps.outbox.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e kafka.OutboxEvent) error {
			deps.queued = append(deps.queued, e)
			return nil
		}).AnyTimes()
	deps.counter.EXPECT().GetNextValue(gomock.Any(), gomock.Any(), counter.TypeExitReference).Return(int64(123), nil).AnyTimes()

	svc := exitrequest.NewService(db, deps.repo, deps.counter, deps.activity, deps.outbox, rdb)
	deps.service = exitrequest.WithClock(svc, func() time.Time {
		deps.clock = deps.clock.Add(time.Hour)
		return deps.clock
	})
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func initiateRequest(employeeID string) exitrequest.InitiateExitRequest {
	return exitrequest.InitiateExitRequest{
		EmployeeID:      employeeID,
		ResignationDate: "2026-03-01",
		LastWorkingDay:  "2026-03-31",
		ExitType:        "resignation",
	}
}

func (d *exitServiceDeps) initiate(t *testing.T, companyID, actorID string) exitrequest.ExitRequestResponse {
	t.Helper()
	expectTx(t, d.sqlMock, true)
	resp, err := d.service.Initiate(context.Background(), companyID, actorID, initiateRequest(uuid.New().String()))
	assert.NoError(t, err)
	return resp
}

// walkTo advances a fresh request along the lifecycle until it reaches target.
func (d *exitServiceDeps) walkTo(t *testing.T, companyID, actorID, id string, target exitrequest.Status) {
	t.Helper()
	for _, st := range forwardPath[1:] {
		if d.repo.items[id].Status == target {
			return
		}
		expectTx(t, d.sqlMock, true)
		_, err := d.service.Transition(context.Background(), companyID, id, st, actorID, nil)
		assert.NoError(t, err)
	}
}

func TestExitService_Initiate(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	companyID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupExitServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		employeeID := uuid.New().String()

		resp, err := deps.service.Initiate(ctx, companyID, actorID, initiateRequest(employeeID))

		assert.NoError(t, err)
		assert.Equal(t, "initiated", resp.Status)
		assert.Equal(t, "EXIT-000123", resp.ReferenceNo)
		assert.Equal(t, employeeID, resp.EmployeeID)
		assert.Equal(t, "2026-03-31", resp.LastWorkingDay)

		if assert.Len(t, deps.logged, 1) {
			assert.Equal(t, "initiated", deps.logged[0].action)
			assert.Equal(t, activitylog.InitiationDetails{
				ReferenceNo:     "EXIT-000123",
				ExitType:        "resignation",
				ResignationDate: "2026-03-01",
				LastWorkingDay:  "2026-03-31",
			}, deps.logged[0].details)
		}
		if assert.Len(t, deps.queued, 1) {
			assert.Equal(t, events.ExitLifecycleTopic, deps.queued[0].Topic)
			assert.Equal(t, "rid-1", deps.queued[0].RequestID)
			var payload events.ExitStatusChangedEvent
			assert.NoError(t, json.Unmarshal(deps.queued[0].Payload, &payload))
			assert.Equal(t, events.EventExitInitiated, payload.EventType)
			assert.Equal(t, "initiated", payload.ToStatus)
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("second request while first is active", func(t *testing.T) {
		deps := setupExitServiceTest(t)
		defer deps.db.Close()

		employeeID := uuid.New().String()
		expectTx(t, deps.sqlMock, true)
		_, err := deps.service.Initiate(ctx, companyID, actorID, initiateRequest(employeeID))
		assert.NoError(t, err)

		expectTx(t, deps.sqlMock, false)
		_, err = deps.service.Initiate(ctx, companyID, actorID, initiateRequest(employeeID))

		assert.ErrorIs(t, err, exiterrors.ErrDuplicateActiveRequest)
		assert.Len(t, deps.repo.items, 1)
		assert.Len(t, deps.logged, 1)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("allowed again once the previous request is cancelled", func(t *testing.T) {
		deps := setupExitServiceTest(t)
		defer deps.db.Close()

		employeeID := uuid.New().String()
		expectTx(t, deps.sqlMock, true)
		first, err := deps.service.Initiate(ctx, companyID, actorID, initiateRequest(employeeID))
		assert.NoError(t, err)

		expectTx(t, deps.sqlMock, true)
		_, err = deps.service.Cancel(ctx, companyID, first.ID, actorID, "changed mind")
		assert.NoError(t, err)

		expectTx(t, deps.sqlMock, true)
		_, err = deps.service.Initiate(ctx, companyID, actorID, initiateRequest(employeeID))
		assert.NoError(t, err)
	})

	t.Run("unique index race maps to duplicate", func(t *testing.T) {
		deps := setupExitServiceTest(t)
		defer deps.db.Close()

		deps.repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "uq_exit_active_employee"}
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Initiate(ctx, companyID, actorID, initiateRequest(uuid.New().String()))

		assert.ErrorIs(t, err, exiterrors.ErrDuplicateActiveRequest)
	})

	t.Run("input validation", func(t *testing.T) {
		deps := setupExitServiceTest(t)
		defer deps.db.Close()

		req := initiateRequest(uuid.New().String())
		req.ExitType = "retired"
		_, err := deps.service.Initiate(ctx, companyID, actorID, req)
		assert.ErrorIs(t, err, exiterrors.ErrInvalidExitType)

		req = initiateRequest(uuid.New().String())
		req.LastWorkingDay = "2026-02-01"
		_, err = deps.service.Initiate(ctx, companyID, actorID, req)
		assert.ErrorIs(t, err, exiterrors.ErrInvalidDateRange)

		req = initiateRequest(uuid.New().String())
		req.ResignationDate = "01/03/2026"
		_, err = deps.service.Initiate(ctx, companyID, actorID, req)
		assert.ErrorIs(t, err, exiterrors.ErrInvalidResignationDate)

		_, err = deps.service.Initiate(ctx, companyID, "bad", initiateRequest(uuid.New().String()))
		assert.ErrorIs(t, err, exiterrors.ErrInvalidActorID)

		assert.Empty(t, deps.repo.items)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestExitService_TransitionLifecycle(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()

	deps := setupExitServiceTest(t)
	defer deps.db.Close()
	deps.repo.clearanceTotal, deps.repo.clearanceApproved = 2, 2
	deps.repo.settlements = 1

	created := deps.initiate(t, companyID, actorID)

	stamp := func(e exitrequest.ExitRequest, s exitrequest.Status) *time.Time {
		switch s {
		case exitrequest.StatusManagerApproved:
			return e.ManagerApprovedAt
		case exitrequest.StatusHRApproved:
			return e.HRApprovedAt
		case exitrequest.StatusClearanceCompleted:
			return e.ClearanceCompletedAt
		case exitrequest.StatusSettlementCompleted:
			return e.SettlementCompletedAt
		case exitrequest.StatusCompleted:
			return e.CompletedAt
		}
		return nil
	}

	for _, target := range forwardPath[1:] {
		assert.Nil(t, stamp(deps.repo.items[created.ID], target), "stamp for %s set early", target)

		expectTx(t, deps.sqlMock, true)
		resp, err := deps.service.Transition(ctx, companyID, created.ID, target, actorID, nil)
		assert.NoError(t, err, "transition to %s", target)
		assert.Equal(t, string(target), resp.Status)
		assert.NotNil(t, stamp(deps.repo.items[created.ID], target), "stamp for %s", target)

		// the same call a second time is refused
		expectTx(t, deps.sqlMock, false)
		_, err = deps.service.Transition(ctx, companyID, created.ID, target, actorID, nil)
		assert.ErrorIs(t, err, exiterrors.ErrInvalidTransition, "repeat %s", target)
	}

	final := deps.repo.items[created.ID]
	assert.Nil(t, final.CancelledAt)
	prev := time.Time{}
	for _, st := range forwardPath[1:] {
		at := stamp(final, st)
		assert.False(t, at.Before(prev), "%s stamped before previous stage", st)
		prev = *at
	}

	// initiated + one entry per stage, each carrying from/to
	if assert.Len(t, deps.logged, len(forwardPath)) {
		last := deps.logged[len(deps.logged)-1]
		assert.Equal(t, "completed", last.action)
		assert.Equal(t, activitylog.TransitionDetails{From: "settlement_completed", To: "completed"}, last.details)
	}
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestExitService_TransitionRejections(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("skipping a stage leaves the request untouched", func(t *testing.T) {
		deps := setupExitServiceTest(t)
		defer deps.db.Close()
		created := deps.initiate(t, companyID, actorID)
		before := deps.repo.items[created.ID]

		expectTx(t, deps.sqlMock, false)
		_, err := deps.service.Transition(ctx, companyID, created.ID, exitrequest.StatusHRApproved, actorID, nil)

		assert.ErrorIs(t, err, exiterrors.ErrInvalidTransition)
		assert.Equal(t, before, deps.repo.items[created.ID])
		assert.Len(t, deps.logged, 1)
		assert.Len(t, deps.queued, 1)
	})

	t.Run("clearance cannot complete without items", func(t *testing.T) {
		deps := setupExitServiceTest(t)
		defer deps.db.Close()
		created := deps.initiate(t, companyID, actorID)
		deps.walkTo(t, companyID, actorID, created.ID, exitrequest.StatusHRApproved)

		expectTx(t, deps.sqlMock, false)
		_, err := deps.service.Transition(ctx, companyID, created.ID, exitrequest.StatusClearanceCompleted, actorID, nil)

		var terr *exiterrors.InvalidTransitionError
		if assert.True(t, errors.As(err, &terr)) {
			assert.Equal(t, "0 of 0 clearance items approved", terr.Reason)
		}
		assert.Equal(t, exitrequest.StatusHRApproved, deps.repo.items[created.ID].Status)
	})

	t.Run("clearance cannot complete with pending items", func(t *testing.T) {
		deps := setupExitServiceTest(t)
		defer deps.db.Close()
		deps.repo.clearanceTotal, deps.repo.clearanceApproved = 5, 4
		created := deps.initiate(t, companyID, actorID)
		deps.walkTo(t, companyID, actorID, created.ID, exitrequest.StatusHRApproved)

		expectTx(t, deps.sqlMock, false)
		_, err := deps.service.Transition(ctx, companyID, created.ID, exitrequest.StatusClearanceCompleted, actorID, nil)

		assert.ErrorIs(t, err, exiterrors.ErrInvalidTransition)
	})

	t.Run("settlement cannot complete before a calculation exists", func(t *testing.T) {
		deps := setupExitServiceTest(t)
		defer deps.db.Close()
		deps.repo.clearanceTotal, deps.repo.clearanceApproved = 1, 1
		created := deps.initiate(t, companyID, actorID)
		deps.walkTo(t, companyID, actorID, created.ID, exitrequest.StatusClearanceCompleted)

		expectTx(t, deps.sqlMock, false)
		_, err := deps.service.Transition(ctx, companyID, created.ID, exitrequest.StatusSettlementCompleted, actorID, nil)

		assert.ErrorIs(t, err, exiterrors.ErrInvalidTransition)
		assert.Nil(t, deps.repo.items[created.ID].SettlementCompletedAt)
	})

	t.Run("concurrent change wins", func(t *testing.T) {
		deps := setupExitServiceTest(t)
		defer deps.db.Close()
		created := deps.initiate(t, companyID, actorID)

		// another actor cancels between the read and the conditional write
		deps.repo.beforeUpdate = func(m *memoryExitRepository, id string) {
			e := m.items[id]
			e.Status = exitrequest.StatusCancelled
			m.items[id] = e
		}

		expectTx(t, deps.sqlMock, false)
		_, err := deps.service.Transition(ctx, companyID, created.ID, exitrequest.StatusManagerApproved, actorID, nil)

		assert.ErrorIs(t, err, exiterrors.ErrInvalidTransition)
		assert.Equal(t, exitrequest.StatusCancelled, deps.repo.items[created.ID].Status)
		assert.Len(t, deps.logged, 1)
	})

	t.Run("unknown status", func(t *testing.T) {
		deps := setupExitServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Transition(ctx, companyID, uuid.New().String(), "archived", actorID, nil)
		assert.ErrorIs(t, err, exiterrors.ErrInvalidStatus)
	})

	t.Run("missing request", func(t *testing.T) {
		deps := setupExitServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		_, err := deps.service.Transition(ctx, companyID, uuid.New().String(), exitrequest.StatusManagerApproved, actorID, nil)
		assert.ErrorIs(t, err, exiterrors.ErrExitRequestNotFound)
	})

	t.Run("clearance details keep the department", func(t *testing.T) {
		deps := setupExitServiceTest(t)
		defer deps.db.Close()
		deps.repo.clearanceTotal, deps.repo.clearanceApproved = 1, 1
		created := deps.initiate(t, companyID, actorID)
		deps.walkTo(t, companyID, actorID, created.ID, exitrequest.StatusHRApproved)

		expectTx(t, deps.sqlMock, true)
		_, err := deps.service.Transition(ctx, companyID, created.ID, exitrequest.StatusClearanceCompleted, actorID,
			activitylog.ClearanceDetails{Department: "IT"})

		assert.NoError(t, err)
		last := deps.logged[len(deps.logged)-1]
		assert.Equal(t, activitylog.ClearanceDetails{Department: "IT", From: "hr_approved", To: "clearance_completed"}, last.details)
	})
}

func TestExitService_Cancel(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()

	for _, from := range forwardPath[:len(forwardPath)-1] {
		t.Run("from "+string(from), func(t *testing.T) {
			deps := setupExitServiceTest(t)
			defer deps.db.Close()
			deps.repo.clearanceTotal, deps.repo.clearanceApproved = 1, 1
			deps.repo.settlements = 1
			created := deps.initiate(t, companyID, actorID)
			deps.walkTo(t, companyID, actorID, created.ID, from)

			expectTx(t, deps.sqlMock, true)
			resp, err := deps.service.Cancel(ctx, companyID, created.ID, actorID, "counter offer accepted")

			assert.NoError(t, err)
			assert.Equal(t, "cancelled", resp.Status)
			assert.NotNil(t, resp.CancelledAt)
			if assert.NotNil(t, resp.CancellationReason) {
				assert.Equal(t, "counter offer accepted", *resp.CancellationReason)
			}
			last := deps.logged[len(deps.logged)-1]
			assert.Equal(t, "cancelled", last.action)
			assert.Equal(t, activitylog.TransitionDetails{From: string(from), To: "cancelled", Reason: "counter offer accepted"}, last.details)
		})
	}

	for _, terminal := range []exitrequest.Status{exitrequest.StatusCompleted, exitrequest.StatusCancelled} {
		t.Run("never from "+string(terminal), func(t *testing.T) {
			deps := setupExitServiceTest(t)
			defer deps.db.Close()
			deps.repo.clearanceTotal, deps.repo.clearanceApproved = 1, 1
			deps.repo.settlements = 1
			created := deps.initiate(t, companyID, actorID)
			if terminal == exitrequest.StatusCancelled {
				expectTx(t, deps.sqlMock, true)
				_, err := deps.service.Cancel(ctx, companyID, created.ID, actorID, "")
				assert.NoError(t, err)
			} else {
				deps.walkTo(t, companyID, actorID, created.ID, terminal)
			}

			expectTx(t, deps.sqlMock, false)
			_, err := deps.service.Cancel(ctx, companyID, created.ID, actorID, "again")

			assert.ErrorIs(t, err, exiterrors.ErrInvalidTransition)
			assert.Equal(t, terminal, deps.repo.items[created.ID].Status)
		})
	}
}

func TestExitService_GetAll(t *testing.T) {
	deps := setupExitServiceTest(t)
	defer deps.db.Close()
	companyID := uuid.New().String()
	actorID := uuid.New().String()

	first := deps.initiate(t, companyID, actorID)
	deps.initiate(t, companyID, actorID)
	expectTx(t, deps.sqlMock, true)
	_, err := deps.service.Cancel(context.Background(), companyID, first.ID, actorID, "")
	assert.NoError(t, err)

	all, err := deps.service.GetAll(context.Background(), companyID, "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	cancelled, err := deps.service.GetAll(context.Background(), companyID, "cancelled")
	assert.NoError(t, err)
	if assert.Len(t, cancelled, 1) {
		assert.Equal(t, first.ID, cancelled[0].ID)
	}

	_, err = deps.service.GetAll(context.Background(), companyID, "archived")
	assert.ErrorIs(t, err, exiterrors.ErrInvalidStatus)
}

func TestExitService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("cascades and drops cached settlement", func(t *testing.T) {
		deps := setupExitServiceTest(t)
		defer deps.db.Close()
		created := deps.initiate(t, companyID, actorID)

		expectTx(t, deps.sqlMock, true)
		deps.redismock.ExpectDel(settlement.LatestCacheKey(companyID, created.ID)).SetVal(1)

		err := deps.service.Delete(ctx, companyID, created.ID)

		assert.NoError(t, err)
		assert.Equal(t, []string{created.ID}, deps.repo.deleted)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupExitServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		err := deps.service.Delete(ctx, companyID, uuid.New().String())

		assert.ErrorIs(t, err, exiterrors.ErrExitRequestNotFound)
	})
}
