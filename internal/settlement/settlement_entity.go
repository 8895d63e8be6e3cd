package settlement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// SettlementCalculation is an immutable stored result. A recalculation adds
// a new row; rows are only removed by the exit request's administrative
// delete.
type SettlementCalculation struct {
	ID               uuid.UUID                      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID        uuid.UUID                      `gorm:"type:uuid;not null;index:idx_settlement_exit_request"`
	ExitRequestID    uuid.UUID                      `gorm:"type:uuid;not null;index:idx_settlement_exit_request"`
	TotalPayable     decimal.Decimal                `gorm:"type:numeric(15,2);not null"`
	TotalRecoverable decimal.Decimal                `gorm:"type:numeric(15,2);not null"`
	NetSettlement    decimal.Decimal                `gorm:"type:numeric(15,2);not null"`
	SettlementStatus string                         `gorm:"type:varchar(30);not null"`
	Earnings         datatypes.JSONType[Earnings]   `gorm:"type:jsonb;not null"`
	Deductions       datatypes.JSONType[Deductions] `gorm:"type:jsonb;not null"`
	Details          datatypes.JSONType[Details]    `gorm:"type:jsonb;not null"`
	// Inputs is the request body the figures were derived from.
	Inputs           datatypes.JSON                 `gorm:"type:jsonb"`
	CalculatedBy     uuid.UUID                      `gorm:"type:uuid;not null"`
	CalculatedAt     time.Time                      `gorm:"not null;index:idx_settlement_exit_request"`
}

func (SettlementCalculation) TableName() string {
	return "settlement_calculations"
}

// ExitSnapshot is the part of an exit request the settlement flow reads.
type ExitSnapshot struct {
	ID             uuid.UUID
	CompanyID      uuid.UUID
	EmployeeID     uuid.UUID
	Status         string
	LastWorkingDay time.Time
}
