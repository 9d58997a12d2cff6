package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"care-connect.backend/internal/domain/entities"
	"care-connect.backend/internal/domain/repositories"
)

// ProfileUsecase handles client and coordinator profiles
type ProfileUsecase struct {
	clientRepo repositories.ClientProfileRepository
	coordRepo  repositories.CoordinatorProfileRepository
	auditLogs  repositories.AuditLogRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(
	clientRepo repositories.ClientProfileRepository,
	coordRepo repositories.CoordinatorProfileRepository,
	auditLogs repositories.AuditLogRepository,
) *ProfileUsecase {
	return &ProfileUsecase{
		clientRepo: clientRepo,
		coordRepo:  coordRepo,
		auditLogs:  auditLogs,
	}
}

// GetClientProfile returns the client profile of the calling user
func (u *ProfileUsecase) GetClientProfile(ctx context.Context, userID uuid.UUID) (*entities.ClientProfile, error) {
	return u.clientRepo.GetByUserID(ctx, userID)
}

// UpdateClientProfile applies client-editable fields
func (u *ProfileUsecase) UpdateClientProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateClientProfileInput) (*entities.ClientProfile, error) {
	profile, err := u.clientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		profile.FirstName = input.FirstName
	}
	if input.LastName != "" {
		profile.LastName = input.LastName
	}
	if input.Mobile != "" {
		profile.Mobile = null.StringFrom(input.Mobile)
	}
	if input.Suburb != "" {
		profile.Suburb = null.StringFrom(input.Suburb)
	}
	if input.State != "" {
		profile.State = null.StringFrom(input.State)
	}
	if input.Postcode != "" {
		profile.Postcode = null.StringFrom(input.Postcode)
	}

	if err := u.clientRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	u.audit(ctx, userID, "client")
	return u.clientRepo.GetByUserID(ctx, userID)
}

// GetCoordinatorProfile returns the coordinator profile of the calling user
func (u *ProfileUsecase) GetCoordinatorProfile(ctx context.Context, userID uuid.UUID) (*entities.CoordinatorProfile, error) {
	return u.coordRepo.GetByUserID(ctx, userID)
}

// UpdateCoordinatorProfile applies coordinator-editable fields
func (u *ProfileUsecase) UpdateCoordinatorProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateCoordinatorProfileInput) (*entities.CoordinatorProfile, error) {
	profile, err := u.coordRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		profile.FirstName = input.FirstName
	}
	if input.LastName != "" {
		profile.LastName = input.LastName
	}
	if input.Mobile != "" {
		profile.Mobile = null.StringFrom(input.Mobile)
	}
	if input.Organization != "" {
		profile.Organization = null.StringFrom(input.Organization)
	}

	if err := u.coordRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	u.audit(ctx, userID, "coordinator")
	return u.coordRepo.GetByUserID(ctx, userID)
}

func (u *ProfileUsecase) audit(ctx context.Context, userID uuid.UUID, kind string) {
	_ = u.auditLogs.Create(ctx, &entities.AuditLog{
		UserID:    &userID,
		Action:    entities.AuditProfileUpdate,
		Metadata:  map[string]interface{}{"profile": kind},
		CreatedAt: time.Now(),
	})
}
