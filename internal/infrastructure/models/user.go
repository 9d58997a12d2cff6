package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email               string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash        string     `gorm:"type:varchar(255);not null"`
	Role                string     `gorm:"type:varchar(50);not null;index"`
	Status              string     `gorm:"type:varchar(50);not null;default:'PENDING_VERIFICATION';index"`
	ResetToken          *string    `gorm:"type:varchar(255);index"`
	ResetTokenExpiresAt *time.Time `gorm:"type:timestamp"`
	FailedLoginAttempts int        `gorm:"not null;default:0"`
	LockedUntil         *time.Time `gorm:"type:timestamp"`
	LastLoginAt         *time.Time `gorm:"type:timestamp"`
	LastLoginIP         *string    `gorm:"type:varchar(64)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}
