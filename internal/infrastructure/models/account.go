package models

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Type              string    `gorm:"type:varchar(50);not null"`
	Provider          string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_provider_account"`
	ProviderAccountID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_provider_account"`
	RefreshToken      *string   `gorm:"type:text"`
	AccessToken       *string   `gorm:"type:text"`
	ExpiresAt         *int64
	TokenType         *string `gorm:"type:varchar(50)"`
	Scope             *string `gorm:"type:varchar(255)"`
	IDToken           *string `gorm:"type:text"`
	CreatedAt         time.Time

	User User `gorm:"foreignKey:UserID"`
}

type Session struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionToken string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	IPAddress    *string   `gorm:"type:varchar(64)"`
	UserAgent    *string   `gorm:"type:varchar(512)"`
	ExpiresAt    time.Time `gorm:"not null;index"`
	CreatedAt    time.Time
}

type VerificationToken struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Identifier string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_identifier_token"`
	Token      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_identifier_token"`
	ExpiresAt  time.Time `gorm:"not null"`
	CreatedAt  time.Time
}
