package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AuditAction identifies the kind of event recorded in the audit log
type AuditAction string

const (
	AuditLoginSuccess          AuditAction = "LOGIN_SUCCESS"
	AuditLoginFailed           AuditAction = "LOGIN_FAILED"
	AuditAccountLocked         AuditAction = "ACCOUNT_LOCKED"
	AuditLogout                AuditAction = "LOGOUT"
	AuditPasswordChange        AuditAction = "PASSWORD_CHANGE"
	AuditPasswordResetRequest  AuditAction = "PASSWORD_RESET_REQUEST"
	AuditPasswordReset         AuditAction = "PASSWORD_RESET"
	AuditEmailVerified         AuditAction = "EMAIL_VERIFIED"
	AuditRoleChange            AuditAction = "ROLE_CHANGE"
	AuditStatusChange          AuditAction = "STATUS_CHANGE"
	AuditProfileUpdate         AuditAction = "PROFILE_UPDATE"
	AuditVerificationSubmitted AuditAction = "VERIFICATION_SUBMITTED"
	AuditVerificationApproved  AuditAction = "VERIFICATION_APPROVED"
	AuditVerificationRejected  AuditAction = "VERIFICATION_REJECTED"
	AuditRequirementSubmitted  AuditAction = "REQUIREMENT_SUBMITTED"
	AuditRequirementApproved   AuditAction = "REQUIREMENT_APPROVED"
	AuditRequirementRejected   AuditAction = "REQUIREMENT_REJECTED"
	AuditRequirementExpired    AuditAction = "REQUIREMENT_EXPIRED"
	AuditAccountLinked         AuditAction = "ACCOUNT_LINKED"
	AuditAccountUnlinked       AuditAction = "ACCOUNT_UNLINKED"
	AuditUserCreated           AuditAction = "USER_CREATED"
)

// AuditLog is an append-only security/activity event. UserID is nullable:
// system-initiated events carry no user, and rows outlive their user.
type AuditLog struct {
	ID        uuid.UUID              `json:"id"`
	UserID    *uuid.UUID             `json:"userId,omitempty"`
	Action    AuditAction            `json:"action"`
	IPAddress null.String            `json:"ipAddress,omitempty"`
	UserAgent null.String            `json:"userAgent,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

// AuditLogFilter narrows audit log listings
type AuditLogFilter struct {
	UserID *uuid.UUID
	Action AuditAction
	From   *time.Time
	To     *time.Time
}
