package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"care-connect.backend/internal/domain/entities"
)

// WorkerProfileRepository defines worker profile data operations
type WorkerProfileRepository interface {
	Create(ctx context.Context, profile *entities.WorkerProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.WorkerProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.WorkerProfile, error)
	Update(ctx context.Context, profile *entities.WorkerProfile) error
	UpdateVerification(ctx context.Context, profile *entities.WorkerProfile) error
	List(ctx context.Context, filter entities.WorkerProfileFilter, limit, offset int) ([]*entities.WorkerProfile, int64, error)
}

// VerificationRequirementRepository defines checklist item operations
type VerificationRequirementRepository interface {
	Create(ctx context.Context, req *entities.VerificationRequirement) error
	CreateBatch(ctx context.Context, reqs []*entities.VerificationRequirement) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRequirement, error)
	ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]*entities.VerificationRequirement, error)
	Update(ctx context.Context, req *entities.VerificationRequirement) error
	ListExpiredApproved(ctx context.Context, asOf time.Time, limit int) ([]*entities.VerificationRequirement, error)
	MarkExpired(ctx context.Context, ids []uuid.UUID) error
}

// ClientProfileRepository defines client profile data operations
type ClientProfileRepository interface {
	Create(ctx context.Context, profile *entities.ClientProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.ClientProfile, error)
	Update(ctx context.Context, profile *entities.ClientProfile) error
}

// CoordinatorProfileRepository defines coordinator profile data operations
type CoordinatorProfileRepository interface {
	Create(ctx context.Context, profile *entities.CoordinatorProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CoordinatorProfile, error)
	Update(ctx context.Context, profile *entities.CoordinatorProfile) error
}
