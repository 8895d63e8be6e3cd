package clearance

import (
	"context"
	"database/sql"

	"go-offboarding/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=clearance_repo.go -destination=mock/clearance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// LockExitStatus reads the owning request's status under a share lock so
	// the request cannot change status until the transaction ends.
	LockExitStatus(ctx context.Context, companyID, exitRequestID string) (string, error)
	Upsert(ctx context.Context, item *ClearanceItem) error
	// SeedPending inserts the given items and leaves existing departments
	// untouched. It returns the number of rows created.
	SeedPending(ctx context.Context, items []ClearanceItem) (int64, error)
	FindByExitRequest(ctx context.Context, companyID, exitRequestID string) ([]ClearanceItem, error)
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

func (r *repository) LockExitStatus(ctx context.Context, companyID, exitRequestID string) (string, error) {
	var row struct {
		Status string
	}
	err := r.conn(ctx).
		Table("exit_requests").
		Select("status").
		Clauses(clause.Locking{Strength: "SHARE"}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", exitRequestID).
		Take(&row).Error
	if err != nil {
		return "", err
	}
	return row.Status, nil
}

func (r *repository) Upsert(ctx context.Context, item *ClearanceItem) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "exit_request_id"}, {Name: "department"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "approver_id", "notes", "reviewed_at", "updated_at"}),
		}).
		Create(item).Error
}

func (r *repository) SeedPending(ctx context.Context, items []ClearanceItem) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	res := r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "exit_request_id"}, {Name: "department"}},
			DoNothing: true,
		}).
		Create(&items)
	return res.RowsAffected, res.Error
}

func (r *repository) FindByExitRequest(ctx context.Context, companyID, exitRequestID string) ([]ClearanceItem, error) {
	var items []ClearanceItem
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("exit_request_id = ?", exitRequestID).
		Order("department ASC").
		Find(&items).Error
	return items, err
}
