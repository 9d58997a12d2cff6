package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DocumentCategory classifies a compliance document
type DocumentCategory string

const (
	DocumentCategoryPrimary       DocumentCategory = "PRIMARY"
	DocumentCategorySecondary     DocumentCategory = "SECONDARY"
	DocumentCategoryWorkingRights DocumentCategory = "WORKING_RIGHTS"
)

// RequirementStatus represents the state of a single compliance item
type RequirementStatus string

const (
	RequirementPending   RequirementStatus = "PENDING"
	RequirementSubmitted RequirementStatus = "SUBMITTED"
	RequirementApproved  RequirementStatus = "APPROVED"
	RequirementRejected  RequirementStatus = "REJECTED"
	RequirementExpired   RequirementStatus = "EXPIRED"
)

// CanSubmitDocument reports whether a document upload is allowed from this
// state. Rejected and expired items accept a replacement document.
func (s RequirementStatus) CanSubmitDocument() bool {
	return s == RequirementPending || s == RequirementRejected || s == RequirementExpired
}

// Satisfied reports whether the item counts toward submit-for-review
func (s RequirementStatus) Satisfied() bool {
	return s == RequirementSubmitted || s == RequirementApproved
}

// VerificationRequirement represents one compliance item on a worker's
// verification checklist
type VerificationRequirement struct {
	ID              uuid.UUID         `json:"id"`
	WorkerProfileID uuid.UUID         `json:"workerProfileId"`
	Type            string            `json:"type"` // machine key, e.g. photo_id
	Name            string            `json:"name"` // human readable
	Category        DocumentCategory  `json:"documentCategory"`
	IsRequired      bool              `json:"isRequired"`
	Status          RequirementStatus `json:"status"`

	DocumentURL null.String `json:"documentUrl,omitempty"`
	UploadedAt  null.Time   `json:"uploadedAt,omitempty"`

	ReviewedAt      null.Time   `json:"reviewedAt,omitempty"`
	ReviewedBy      *uuid.UUID  `json:"reviewedBy,omitempty"`
	ApprovedAt      null.Time   `json:"approvedAt,omitempty"`
	RejectedAt      null.Time   `json:"rejectedAt,omitempty"`
	ExpiresAt       null.Time   `json:"expiresAt,omitempty"`
	Notes           null.String `json:"notes,omitempty"`
	RejectionReason null.String `json:"rejectionReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubmitDocumentInput carries a document upload for a requirement
type SubmitDocumentInput struct {
	DocumentURL string `json:"documentUrl" binding:"required,url"`
}

// ReviewRequirementInput carries a coordinator's decision on a requirement
type ReviewRequirementInput struct {
	Approve         bool       `json:"approve"`
	Notes           string     `json:"notes,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"` // only meaningful on approve
}

// CreateRequirementInput lets a coordinator add a checklist item
type CreateRequirementInput struct {
	Type       string           `json:"type" binding:"required"`
	Name       string           `json:"name" binding:"required"`
	Category   DocumentCategory `json:"documentCategory" binding:"required"`
	IsRequired bool             `json:"isRequired"`
}

// DefaultRequirement describes one entry of the checklist seeded for every
// new worker profile
type DefaultRequirement struct {
	Type       string
	Name       string
	Category   DocumentCategory
	IsRequired bool
}

// DefaultWorkerRequirements is the checklist seeded on worker registration
var DefaultWorkerRequirements = []DefaultRequirement{
	{Type: "photo_id", Name: "Photo ID", Category: DocumentCategoryPrimary, IsRequired: true},
	{Type: "police_check", Name: "National Police Check", Category: DocumentCategoryPrimary, IsRequired: true},
	{Type: "ndis_screening", Name: "NDIS Worker Screening Check", Category: DocumentCategoryPrimary, IsRequired: true},
	{Type: "working_rights", Name: "Proof of Working Rights", Category: DocumentCategoryWorkingRights, IsRequired: true},
	{Type: "first_aid", Name: "First Aid Certificate", Category: DocumentCategorySecondary, IsRequired: false},
}
