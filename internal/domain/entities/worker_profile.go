package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationStatus represents the worker verification lifecycle
type VerificationStatus string

const (
	VerificationNotStarted    VerificationStatus = "NOT_STARTED"
	VerificationInProgress    VerificationStatus = "IN_PROGRESS"
	VerificationPendingReview VerificationStatus = "PENDING_REVIEW"
	VerificationApproved      VerificationStatus = "APPROVED"
	VerificationRejected      VerificationStatus = "REJECTED"
)

// CanSubmitForReview reports whether a profile in this state may be sent to
// a coordinator. REJECTED profiles may amend and resubmit.
func (s VerificationStatus) CanSubmitForReview() bool {
	return s == VerificationInProgress || s == VerificationRejected
}

// WorkerProfile represents the extended profile of a WORKER user
type WorkerProfile struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`

	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	DateOfBirth null.Time   `json:"dateOfBirth,omitempty"`
	Mobile      null.String `json:"mobile,omitempty"`

	Address  null.String `json:"address,omitempty"`
	Suburb   null.String `json:"suburb,omitempty"`
	State    null.String `json:"state,omitempty"`
	Postcode null.String `json:"postcode,omitempty"`

	Languages               []string `json:"languages"`
	Services                []string `json:"services"`
	SupportWorkerCategories []string `json:"supportWorkerCategories"`

	Bio            null.String `json:"bio,omitempty"`
	Experience     null.String `json:"experience,omitempty"`
	Qualifications null.String `json:"qualifications,omitempty"`

	Photos                null.JSON `json:"photos,omitempty"`
	VerificationChecklist null.JSON `json:"verificationChecklist,omitempty"`
	SubmittedDocuments    null.JSON `json:"submittedDocuments,omitempty"`

	VerificationStatus VerificationStatus `json:"verificationStatus"`
	SubmittedAt        null.Time          `json:"submittedAt,omitempty"`
	ReviewedAt         null.Time          `json:"reviewedAt,omitempty"`
	ApprovedAt         null.Time          `json:"approvedAt,omitempty"`
	RejectedAt         null.Time          `json:"rejectedAt,omitempty"`
	RejectionReason    null.String        `json:"rejectionReason,omitempty"`
	ReviewedBy         *uuid.UUID         `json:"reviewedBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateWorkerProfileInput carries the worker-editable profile fields
type UpdateWorkerProfileInput struct {
	FirstName   string     `json:"firstName,omitempty"`
	LastName    string     `json:"lastName,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Mobile      string     `json:"mobile,omitempty"`

	Address  string `json:"address,omitempty"`
	Suburb   string `json:"suburb,omitempty"`
	State    string `json:"state,omitempty"`
	Postcode string `json:"postcode,omitempty"`

	Languages               []string `json:"languages,omitempty"`
	Services                []string `json:"services,omitempty"`
	SupportWorkerCategories []string `json:"supportWorkerCategories,omitempty"`

	Bio            string `json:"bio,omitempty"`
	Experience     string `json:"experience,omitempty"`
	Qualifications string `json:"qualifications,omitempty"`

	Photos interface{} `json:"photos,omitempty"`
}

// WorkerProfileFilter narrows coordinator listings
type WorkerProfileFilter struct {
	VerificationStatus VerificationStatus
	Search             string
}
