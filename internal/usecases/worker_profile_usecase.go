package usecases

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"care-connect.backend/internal/domain/entities"
	"care-connect.backend/internal/domain/repositories"
)

// WorkerProfileUsecase handles a worker's own profile
type WorkerProfileUsecase struct {
	workerRepo   repositories.WorkerProfileRepository
	requirements repositories.VerificationRequirementRepository
	auditLogs    repositories.AuditLogRepository
}

// NewWorkerProfileUsecase creates a new worker profile usecase
func NewWorkerProfileUsecase(
	workerRepo repositories.WorkerProfileRepository,
	requirements repositories.VerificationRequirementRepository,
	auditLogs repositories.AuditLogRepository,
) *WorkerProfileUsecase {
	return &WorkerProfileUsecase{
		workerRepo:   workerRepo,
		requirements: requirements,
		auditLogs:    auditLogs,
	}
}

// GetOwnProfile returns the worker profile of the calling user
func (u *WorkerProfileUsecase) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*entities.WorkerProfile, error) {
	return u.workerRepo.GetByUserID(ctx, userID)
}

// UpdateOwnProfile applies worker-editable fields. The first meaningful
// update moves the verification lifecycle to IN_PROGRESS.
func (u *WorkerProfileUsecase) UpdateOwnProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateWorkerProfileInput) (*entities.WorkerProfile, error) {
	profile, err := u.workerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyWorkerProfileInput(profile, input)

	if err := u.workerRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	if profile.VerificationStatus == entities.VerificationNotStarted {
		profile.VerificationStatus = entities.VerificationInProgress
		if err := u.workerRepo.UpdateVerification(ctx, profile); err != nil {
			return nil, err
		}
	}

	_ = u.auditLogs.Create(ctx, &entities.AuditLog{
		UserID:    &userID,
		Action:    entities.AuditProfileUpdate,
		Metadata:  map[string]interface{}{"profile": "worker"},
		CreatedAt: time.Now(),
	})

	return u.workerRepo.GetByUserID(ctx, userID)
}

// ListOwnRequirements lists the compliance checklist of the calling worker
func (u *WorkerProfileUsecase) ListOwnRequirements(ctx context.Context, userID uuid.UUID) ([]*entities.VerificationRequirement, error) {
	profile, err := u.workerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.requirements.ListByProfileID(ctx, profile.ID)
}

func applyWorkerProfileInput(profile *entities.WorkerProfile, input *entities.UpdateWorkerProfileInput) {
	if input.FirstName != "" {
		profile.FirstName = input.FirstName
	}
	if input.LastName != "" {
		profile.LastName = input.LastName
	}
	if input.DateOfBirth != nil {
		profile.DateOfBirth = null.TimeFromPtr(input.DateOfBirth)
	}
	if input.Mobile != "" {
		profile.Mobile = null.StringFrom(input.Mobile)
	}
	if input.Address != "" {
		profile.Address = null.StringFrom(input.Address)
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
	if input.Languages != nil {
		profile.Languages = input.Languages
	}
	if input.Services != nil {
		profile.Services = input.Services
	}
	if input.SupportWorkerCategories != nil {
		profile.SupportWorkerCategories = input.SupportWorkerCategories
	}
	if input.Bio != "" {
		profile.Bio = null.StringFrom(input.Bio)
	}
	if input.Experience != "" {
		profile.Experience = null.StringFrom(input.Experience)
	}
	if input.Qualifications != "" {
		profile.Qualifications = null.StringFrom(input.Qualifications)
	}
	if input.Photos != nil {
		if b, err := json.Marshal(input.Photos); err == nil {
			profile.Photos = null.JSONFrom(b)
		}
	}
}
