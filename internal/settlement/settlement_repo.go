package settlement

import (
	"context"
	"database/sql"

	"go-offboarding/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=settlement_repo.go -destination=mock/settlement_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// LockExitRequest reads the owning exit request with a row lock held
	// until the surrounding transaction ends.
	LockExitRequest(ctx context.Context, companyID, exitRequestID string) (*ExitSnapshot, error)
	ExitRequestExists(ctx context.Context, companyID, exitRequestID string) (bool, error)
	Create(ctx context.Context, s *SettlementCalculation) error
	FindLatestByExitRequest(ctx context.Context, companyID, exitRequestID string) (*SettlementCalculation, error)
	FindAllByExitRequest(ctx context.Context, companyID, exitRequestID string) ([]SettlementCalculation, error)
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

func (r *repository) LockExitRequest(ctx context.Context, companyID, exitRequestID string) (*ExitSnapshot, error) {
	var snap ExitSnapshot
	err := r.conn(ctx).
		Table("exit_requests").
		Select("id, company_id, employee_id, status, last_working_day").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", exitRequestID).
		Take(&snap).Error
	if err != nil {
		return nil, err
	}
	return &snap, nil
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

func (r *repository) Create(ctx context.Context, s *SettlementCalculation) error {
	return r.conn(ctx).Create(s).Error
}

func (r *repository) FindLatestByExitRequest(ctx context.Context, companyID, exitRequestID string) (*SettlementCalculation, error) {
	var s SettlementCalculation
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("exit_request_id = ?", exitRequestID).
		Order("calculated_at DESC").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindAllByExitRequest(ctx context.Context, companyID, exitRequestID string) ([]SettlementCalculation, error) {
	var items []SettlementCalculation
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("exit_request_id = ?", exitRequestID).
		Order("calculated_at DESC").
		Find(&items).Error
	return items, err
}
