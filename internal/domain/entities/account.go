package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Account represents an OAuth provider linkage for a user.
// Unique on (provider, providerAccountId).
type Account struct {
	ID                uuid.UUID   `json:"id"`
	UserID            uuid.UUID   `json:"userId"`
	Type              string      `json:"type"` // oauth, oidc
	Provider          string      `json:"provider"`
	ProviderAccountID string      `json:"providerAccountId"`
	RefreshToken      null.String `json:"-"`
	AccessToken       null.String `json:"-"`
	ExpiresAt         null.Int64  `json:"expiresAt,omitempty"` // unix seconds, provider supplied
	TokenType         null.String `json:"tokenType,omitempty"`
	Scope             null.String `json:"scope,omitempty"`
	IDToken           null.String `json:"-"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// LinkAccountInput represents input for linking an OAuth account
type LinkAccountInput struct {
	Type              string `json:"type" binding:"required"`
	Provider          string `json:"provider" binding:"required"`
	ProviderAccountID string `json:"providerAccountId" binding:"required"`
	RefreshToken      string `json:"refreshToken,omitempty"`
	AccessToken       string `json:"accessToken,omitempty"`
	ExpiresAt         int64  `json:"expiresAt,omitempty"`
	TokenType         string `json:"tokenType,omitempty"`
	Scope             string `json:"scope,omitempty"`
	IDToken           string `json:"idToken,omitempty"`
}

// Session represents a server-side login session.
// Unique on SessionToken; expiry mirrors the refresh token lifetime.
type Session struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"userId"`
	SessionToken string      `json:"-"`
	IPAddress    null.String `json:"ipAddress,omitempty"`
	UserAgent    null.String `json:"userAgent,omitempty"`
	ExpiresAt    time.Time   `json:"expiresAt"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// Expired reports whether the session is past its expiry at ts
func (s *Session) Expired(ts time.Time) bool {
	return !s.ExpiresAt.After(ts)
}

// VerificationToken is a standalone identifier+token pair used for email
// verification and similar single-use flows. Unique on (identifier, token).
type VerificationToken struct {
	ID         uuid.UUID `json:"id"`
	Identifier string    `json:"identifier"` // usually the email address
	Token      string    `json:"-"`
	ExpiresAt  time.Time `json:"expiresAt"`
	CreatedAt  time.Time `json:"createdAt"`
}
