package activitylog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Entry is one append-only audit record. Seq is assigned by the database and
// breaks ties between entries sharing a timestamp.
type Entry struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Seq           int64          `gorm:"->;type:bigserial;not null;uniqueIndex:uq_exit_activity_seq"`
	CompanyID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_exit_activity_request"`
	ExitRequestID uuid.UUID      `gorm:"type:uuid;not null;index:idx_exit_activity_request"`
	Action        string         `gorm:"type:varchar(40);not null"`
	ActorID       uuid.UUID      `gorm:"type:uuid;not null"`
	DetailsKind   string         `gorm:"type:varchar(20);not null"`
	Details       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"not null;index:idx_exit_activity_request"`
}

func (Entry) TableName() string {
	return "exit_activity_logs"
}
