package exitrequest

import (
	"time"

	"github.com/google/uuid"
)

// ExitRequest tracks one employee's departure. At most one request per
// employee may be outside completed/cancelled; the partial unique index
// enforces it in storage.
type ExitRequest struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID       uuid.UUID `gorm:"type:uuid;not null;index:idx_exit_company_status;uniqueIndex:uq_exit_reference"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_exit_active_employee,where:status <> 'completed' AND status <> 'cancelled'"`
	ReferenceNo     string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_exit_reference"`
	ExitType        ExitType  `gorm:"type:varchar(20);not null"`
	Status          Status    `gorm:"type:varchar(30);not null;default:'initiated';index:idx_exit_company_status"`
	ResignationDate time.Time `gorm:"type:date;not null"`
	LastWorkingDay  time.Time `gorm:"type:date;not null"`
	Reason          *string   `gorm:"type:text"`
	InitiatedBy     uuid.UUID `gorm:"type:uuid;not null"`

	ManagerApprovedAt     *time.Time
	HRApprovedAt          *time.Time
	ClearanceCompletedAt  *time.Time
	SettlementCompletedAt *time.Time
	CompletedAt           *time.Time
	CancelledAt           *time.Time
	CancellationReason    *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ExitRequest) TableName() string {
	return "exit_requests"
}
