package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type WorkerProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	FirstName   string     `gorm:"type:varchar(100);not null"`
	LastName    string     `gorm:"type:varchar(100);not null"`
	DateOfBirth *time.Time `gorm:"type:timestamp"`
	Mobile      *string    `gorm:"type:varchar(32)"`

	Address  *string `gorm:"type:varchar(255)"`
	Suburb   *string `gorm:"type:varchar(100)"`
	State    *string `gorm:"type:varchar(50)"`
	Postcode *string `gorm:"type:varchar(10)"`

	Languages               datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Services                datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	SupportWorkerCategories datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	Bio            *string `gorm:"type:text"`
	Experience     *string `gorm:"type:text"`
	Qualifications *string `gorm:"type:text"`

	Photos                datatypes.JSON `gorm:"type:jsonb"`
	VerificationChecklist datatypes.JSON `gorm:"type:jsonb"`
	SubmittedDocuments    datatypes.JSON `gorm:"type:jsonb"`

	VerificationStatus string     `gorm:"type:varchar(50);not null;default:'NOT_STARTED';index"`
	SubmittedAt        *time.Time `gorm:"type:timestamp"`
	ReviewedAt         *time.Time `gorm:"type:timestamp"`
	ApprovedAt         *time.Time `gorm:"type:timestamp"`
	RejectedAt         *time.Time `gorm:"type:timestamp"`
	RejectionReason    *string    `gorm:"type:text"`
	ReviewedBy         *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time

	User         User                      `gorm:"foreignKey:UserID"`
	Requirements []VerificationRequirement `gorm:"foreignKey:WorkerProfileID"`
}

type VerificationRequirement struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	WorkerProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type            string    `gorm:"type:varchar(100);not null"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Category        string    `gorm:"column:document_category;type:varchar(50);not null"`
	IsRequired      bool      `gorm:"not null;default:true"`
	Status          string    `gorm:"type:varchar(50);not null;default:'PENDING';index"`

	DocumentURL *string    `gorm:"type:varchar(1024)"`
	UploadedAt  *time.Time `gorm:"type:timestamp"`

	ReviewedAt      *time.Time `gorm:"type:timestamp"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time `gorm:"type:timestamp"`
	RejectedAt      *time.Time `gorm:"type:timestamp"`
	ExpiresAt       *time.Time `gorm:"type:timestamp;index"`
	Notes           *string    `gorm:"type:text"`
	RejectionReason *string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
