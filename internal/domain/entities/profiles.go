package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ClientProfile represents the profile of a CLIENT user
type ClientProfile struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"userId"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Mobile    null.String `json:"mobile,omitempty"`
	Suburb    null.String `json:"suburb,omitempty"`
	State     null.String `json:"state,omitempty"`
	Postcode  null.String `json:"postcode,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// CoordinatorProfile represents the profile of a COORDINATOR user
type CoordinatorProfile struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"userId"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	Mobile       null.String `json:"mobile,omitempty"`
	Organization null.String `json:"organization,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// UpdateClientProfileInput carries client-editable fields
type UpdateClientProfileInput struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Mobile    string `json:"mobile,omitempty"`
	Suburb    string `json:"suburb,omitempty"`
	State     string `json:"state,omitempty"`
	Postcode  string `json:"postcode,omitempty"`
}

// UpdateCoordinatorProfileInput carries coordinator-editable fields
type UpdateCoordinatorProfileInput struct {
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Mobile       string `json:"mobile,omitempty"`
	Organization string `json:"organization,omitempty"`
}
