package clearance

import (
	"time"

	"github.com/google/uuid"
)

type ItemStatus string

const (
	ItemPending  ItemStatus = "pending"
	ItemApproved ItemStatus = "approved"
	ItemRejected ItemStatus = "rejected"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case ItemPending, ItemApproved, ItemRejected:
		return true
	}
	return false
}

// ClearanceItem is one department's sign-off for an exit request.
type ClearanceItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ExitRequestID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_clearance_department"`
	Department    string     `gorm:"type:varchar(100);not null;uniqueIndex:uq_clearance_department"`
	Status        ItemStatus `gorm:"type:varchar(20);not null;default:pending"`
	ApproverID    *uuid.UUID `gorm:"type:uuid"`
	Notes         *string    `gorm:"type:text"`
	ReviewedAt    *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (ClearanceItem) TableName() string {
	return "clearance_items"
}

// AllApproved reports whether the checklist is non-empty and every item is
// approved.
func AllApproved(items []ClearanceItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if it.Status != ItemApproved {
			return false
		}
	}
	return true
}
