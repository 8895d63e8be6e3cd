package activitylog

import (
	"context"
	"database/sql"

	"go-offboarding/internal/tenant"

	"gorm.io/gorm"
)

// Repository only appends and reads. Entries are never updated or deleted
// through this contract.
//
//go:generate mockgen -source=activity_repo.go -destination=mock/activity_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Append(ctx context.Context, e *Entry) error
	FindByExitRequest(ctx context.Context, companyID, exitRequestID string) ([]Entry, error)
	ExitRequestExists(ctx context.Context, companyID, exitRequestID string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Append(ctx context.Context, e *Entry) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindByExitRequest(ctx context.Context, companyID, exitRequestID string) ([]Entry, error) {
	var entries []Entry
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("exit_request_id = ?", exitRequestID).
		Order("created_at ASC").
		Order("seq ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) ExitRequestExists(ctx context.Context, companyID, exitRequestID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("exit_requests").
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", exitRequestID).
		Count(&count).Error
	return count > 0, err
}
