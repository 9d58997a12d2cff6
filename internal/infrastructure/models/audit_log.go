package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog rows are append only. UserID has no FK constraint action beyond
// SET NULL so rows survive user deletion.
type AuditLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    *uuid.UUID     `gorm:"type:uuid;index"`
	Action    string         `gorm:"type:varchar(100);not null;index"`
	IPAddress *string        `gorm:"type:varchar(64)"`
	UserAgent *string        `gorm:"type:varchar(512)"`
	Metadata  datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	CreatedAt time.Time      `gorm:"index"`
}
