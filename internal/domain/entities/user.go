package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleWorker      UserRole = "WORKER"
	UserRoleClient      UserRole = "CLIENT"
	UserRoleCoordinator UserRole = "COORDINATOR"
)

// Valid reports whether the role is one of the known values
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleWorker, UserRoleClient, UserRoleCoordinator:
		return true
	}
	return false
}

// AccountStatus represents the lifecycle state of a user account
type AccountStatus string

const (
	AccountStatusActive              AccountStatus = "ACTIVE"
	AccountStatusSuspended           AccountStatus = "SUSPENDED"
	AccountStatusLocked              AccountStatus = "LOCKED"
	AccountStatusPendingVerification AccountStatus = "PENDING_VERIFICATION"
)

// User represents a platform identity
type User struct {
	ID                  uuid.UUID     `json:"id"`
	Email               string        `json:"email"`
	PasswordHash        string        `json:"-"`
	Role                UserRole      `json:"role"`
	Status              AccountStatus `json:"status"`
	ResetToken          null.String   `json:"-"`
	ResetTokenExpiresAt null.Time     `json:"-"`
	FailedLoginAttempts int           `json:"-"`
	LockedUntil         null.Time     `json:"lockedUntil,omitempty"`
	LastLoginAt         null.Time     `json:"lastLoginAt,omitempty"`
	LastLoginIP         null.String   `json:"-"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
	DeletedAt           null.Time     `json:"-"`
}

// IsLocked reports whether the account lock is still in force at ts
func (u *User) IsLocked(ts time.Time) bool {
	return u.LockedUntil.Valid && u.LockedUntil.Time.After(ts)
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=8"`
	Role      UserRole `json:"role" binding:"required"`
	FirstName string   `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string   `json:"lastName" binding:"required,min=1,max=100"`
	Mobile    string   `json:"mobile,omitempty"`
	// Coordinator registrations may carry their organisation
	Organization string `json:"organization,omitempty"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"` // If true, store tokens in Redis and return SessionID
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}

// ChangePasswordInput represents input for changing user password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=8"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ResetPasswordInput carries a reset token and the replacement password
type ResetPasswordInput struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// UserFilter narrows admin user listings
type UserFilter struct {
	Role   UserRole
	Status AccountStatus
	Search string
}
