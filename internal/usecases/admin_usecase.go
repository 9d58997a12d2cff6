package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/domain/repositories"
)

// AdminUsecase handles coordinator-only platform administration
type AdminUsecase struct {
	userRepo     repositories.UserRepository
	workerRepo   repositories.WorkerProfileRepository
	requirements repositories.VerificationRequirementRepository
	clientRepo   repositories.ClientProfileRepository
	coordRepo    repositories.CoordinatorProfileRepository
	auditLogs    repositories.AuditLogRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	workerRepo repositories.WorkerProfileRepository,
	requirements repositories.VerificationRequirementRepository,
	clientRepo repositories.ClientProfileRepository,
	coordRepo repositories.CoordinatorProfileRepository,
	auditLogs repositories.AuditLogRepository,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:     userRepo,
		workerRepo:   workerRepo,
		requirements: requirements,
		clientRepo:   clientRepo,
		coordRepo:    coordRepo,
		auditLogs:    auditLogs,
	}
}

// ListUsers lists users with filters and pagination
func (u *AdminUsecase) ListUsers(ctx context.Context, filter entities.UserFilter, limit, offset int) ([]*entities.User, int64, error) {
	return u.userRepo.List(ctx, filter, limit, offset)
}

// ChangeUserStatus suspends or reactivates an account. Coordinators cannot
// change their own status.
func (u *AdminUsecase) ChangeUserStatus(ctx context.Context, actorID, userID uuid.UUID, status entities.AccountStatus) (*entities.User, error) {
	if actorID == userID {
		return nil, domainerrors.Forbidden("cannot change own status")
	}
	if status != entities.AccountStatusActive && status != entities.AccountStatusSuspended {
		return nil, domainerrors.BadRequest("status must be ACTIVE or SUSPENDED")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status == status {
		return user, nil
	}

	if err := u.userRepo.UpdateStatus(ctx, userID, status); err != nil {
		return nil, err
	}

	u.audit(ctx, actorID, entities.AuditStatusChange, map[string]interface{}{
		"userId": userID.String(),
		"from":   string(user.Status),
		"to":     string(status),
	})

	user.Status = status
	return user, nil
}

// ChangeUserRole changes a user's role and creates the new role profile if
// the user never had one. Coordinators cannot change their own role.
func (u *AdminUsecase) ChangeUserRole(ctx context.Context, actorID, userID uuid.UUID, role entities.UserRole) (*entities.User, error) {
	if actorID == userID {
		return nil, domainerrors.Forbidden("cannot change own role")
	}
	if !role.Valid() {
		return nil, domainerrors.BadRequest("unknown role")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == role {
		return user, nil
	}

	oldRole := user.Role
	if err := u.userRepo.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}

	if err := u.ensureProfile(ctx, user, role); err != nil {
		return nil, err
	}

	u.audit(ctx, actorID, entities.AuditRoleChange, map[string]interface{}{
		"userId": userID.String(),
		"from":   string(oldRole),
		"to":     string(role),
	})

	user.Role = role
	return user, nil
}

// ensureProfile creates the role profile for a newly assigned role when the
// user has never held it. Names are carried over from any existing profile.
func (u *AdminUsecase) ensureProfile(ctx context.Context, user *entities.User, role entities.UserRole) error {
	firstName, lastName := u.knownNames(ctx, user)

	switch role {
	case entities.UserRoleWorker:
		_, err := u.workerRepo.GetByUserID(ctx, user.ID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
		profile := &entities.WorkerProfile{
			UserID:             user.ID,
			FirstName:          firstName,
			LastName:           lastName,
			VerificationStatus: entities.VerificationNotStarted,
		}
		if err := u.workerRepo.Create(ctx, profile); err != nil {
			return err
		}
		reqs := make([]*entities.VerificationRequirement, 0, len(entities.DefaultWorkerRequirements))
		for _, d := range entities.DefaultWorkerRequirements {
			reqs = append(reqs, &entities.VerificationRequirement{
				WorkerProfileID: profile.ID,
				Type:            d.Type,
				Name:            d.Name,
				Category:        d.Category,
				IsRequired:      d.IsRequired,
				Status:          entities.RequirementPending,
			})
		}
		return u.requirements.CreateBatch(ctx, reqs)
	case entities.UserRoleClient:
		_, err := u.clientRepo.GetByUserID(ctx, user.ID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
		return u.clientRepo.Create(ctx, &entities.ClientProfile{
			UserID:    user.ID,
			FirstName: firstName,
			LastName:  lastName,
		})
	case entities.UserRoleCoordinator:
		_, err := u.coordRepo.GetByUserID(ctx, user.ID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
		return u.coordRepo.Create(ctx, &entities.CoordinatorProfile{
			UserID:    user.ID,
			FirstName: firstName,
			LastName:  lastName,
		})
	}
	return nil
}

// knownNames pulls first/last name from whichever profile the user already
// has, falling back to the local part of the email
func (u *AdminUsecase) knownNames(ctx context.Context, user *entities.User) (string, string) {
	if p, err := u.workerRepo.GetByUserID(ctx, user.ID); err == nil {
		return p.FirstName, p.LastName
	}
	if p, err := u.clientRepo.GetByUserID(ctx, user.ID); err == nil {
		return p.FirstName, p.LastName
	}
	if p, err := u.coordRepo.GetByUserID(ctx, user.ID); err == nil {
		return p.FirstName, p.LastName
	}
	local := user.Email
	if at := strings.Index(local, "@"); at > 0 {
		local = local[:at]
	}
	return local, ""
}

// ListAuditLogs lists audit events, newest first
func (u *AdminUsecase) ListAuditLogs(ctx context.Context, filter entities.AuditLogFilter, limit, offset int) ([]*entities.AuditLog, int64, error) {
	return u.auditLogs.List(ctx, filter, limit, offset)
}

func (u *AdminUsecase) audit(ctx context.Context, actorID uuid.UUID, action entities.AuditAction, metadata map[string]interface{}) {
	_ = u.auditLogs.Create(ctx, &entities.AuditLog{
		UserID:    &actorID,
		Action:    action,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	})
}
