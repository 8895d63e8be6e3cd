package exitrequest

import (
	"context"
	"database/sql"
	"errors"

	"go-offboarding/internal/activitylog"
	"go-offboarding/internal/settlement"
	"go-offboarding/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=exit_repo.go -destination=mock/exit_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *ExitRequest) error
	FindAllByCompany(ctx context.Context, companyID string, status Status) ([]ExitRequest, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*ExitRequest, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*ExitRequest, error)
	// FindActiveByEmployee returns nil when the employee has no request
	// outside completed/cancelled.
	FindActiveByEmployee(ctx context.Context, companyID, employeeID string) (*ExitRequest, error)
	// UpdateStatusIfCurrent writes the new status only if the stored status
	// still equals expected. It reports whether a row changed.
	UpdateStatusIfCurrent(ctx context.Context, e *ExitRequest, expected Status, stampColumn string) (bool, error)
	CountClearanceItems(ctx context.Context, companyID, exitRequestID string) (total int64, approved int64, err error)
	HasSettlement(ctx context.Context, companyID, exitRequestID string) (bool, error)
	DeleteCascade(ctx context.Context, companyID, id string) error
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

func (r *repository) Create(ctx context.Context, e *ExitRequest) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, status Status) ([]ExitRequest, error) {
	var items []ExitRequest
	db := r.conn(ctx).Scopes(tenant.Scope(companyID))
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*ExitRequest, error) {
	var e ExitRequest
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*ExitRequest, error) {
	var e ExitRequest
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Take(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindActiveByEmployee(ctx context.Context, companyID, employeeID string) (*ExitRequest, error) {
	var e ExitRequest
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status NOT IN ?", []Status{StatusCompleted, StatusCancelled}).
		Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) UpdateStatusIfCurrent(ctx context.Context, e *ExitRequest, expected Status, stampColumn string) (bool, error) {
	values := map[string]any{
		"status":              e.Status,
		"cancellation_reason": e.CancellationReason,
		"updated_at":          e.UpdatedAt,
	}
	if st, ok := stampFor(e.Status); ok && stampColumn != "" && st.column == stampColumn {
		values[stampColumn] = *st.field(e)
	}

	res := r.conn(ctx).
		Model(&ExitRequest{}).
		Scopes(tenant.Scope(e.CompanyID.String())).
		Where("id = ?", e.ID).
		Where("status = ?", expected).
		Updates(values)
	return res.RowsAffected == 1, res.Error
}

func (r *repository) CountClearanceItems(ctx context.Context, companyID, exitRequestID string) (int64, int64, error) {
	var counts struct {
		Total    int64
		Approved int64
	}
	err := r.conn(ctx).
		Table("clearance_items").
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE status = 'approved') AS approved").
		Scopes(tenant.Scope(companyID)).
		Where("exit_request_id = ?", exitRequestID).
		Scan(&counts).Error
	return counts.Total, counts.Approved, err
}

func (r *repository) HasSettlement(ctx context.Context, companyID, exitRequestID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&settlement.SettlementCalculation{}).
		Scopes(tenant.Scope(companyID)).
		Where("exit_request_id = ?", exitRequestID).
		Count(&count).Error
	return count > 0, err
}

// DeleteCascade removes the request with its clearance items, settlements
// and activity trail. It must run inside a transaction.
func (r *repository) DeleteCascade(ctx context.Context, companyID, id string) error {
	db := r.conn(ctx)

	if err := db.Exec(
		"DELETE FROM clearance_items WHERE company_id = ? AND exit_request_id = ?",
		companyID, id,
	).Error; err != nil {
		return err
	}
	if err := db.Scopes(tenant.Scope(companyID)).
		Where("exit_request_id = ?", id).
		Delete(&settlement.SettlementCalculation{}).Error; err != nil {
		return err
	}
	if err := db.Scopes(tenant.Scope(companyID)).
		Where("exit_request_id = ?", id).
		Delete(&activitylog.Entry{}).Error; err != nil {
		return err
	}

	res := db.Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&ExitRequest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
