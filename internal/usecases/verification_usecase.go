package usecases

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/domain/repositories"
	"care-connect.backend/internal/infrastructure/email"
)

// VerificationUsecase drives the worker verification lifecycle: document
// submission by workers and review decisions by coordinators.
type VerificationUsecase struct {
	workerRepo   repositories.WorkerProfileRepository
	requirements repositories.VerificationRequirementRepository
	userRepo     repositories.UserRepository
	auditLogs    repositories.AuditLogRepository
	mailer       email.Sender
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	workerRepo repositories.WorkerProfileRepository,
	requirements repositories.VerificationRequirementRepository,
	userRepo repositories.UserRepository,
	auditLogs repositories.AuditLogRepository,
	mailer email.Sender,
) *VerificationUsecase {
	return &VerificationUsecase{
		workerRepo:   workerRepo,
		requirements: requirements,
		userRepo:     userRepo,
		auditLogs:    auditLogs,
		mailer:       mailer,
	}
}

// SubmitDocument attaches a document to one of the caller's checklist items.
// Allowed from PENDING, REJECTED and EXPIRED; review fields reset.
func (u *VerificationUsecase) SubmitDocument(ctx context.Context, userID, requirementID uuid.UUID, input *entities.SubmitDocumentInput) (*entities.VerificationRequirement, error) {
	profile, err := u.workerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	req, err := u.requirements.GetByID(ctx, requirementID)
	if err != nil {
		return nil, err
	}
	if req.WorkerProfileID != profile.ID {
		return nil, domainerrors.ErrForbidden
	}
	if !req.Status.CanSubmitDocument() {
		return nil, domainerrors.InvalidState("requirement cannot accept a document in status " + string(req.Status))
	}

	req.Status = entities.RequirementSubmitted
	req.DocumentURL = null.StringFrom(input.DocumentURL)
	req.UploadedAt = null.TimeFrom(time.Now())
	req.ReviewedAt = null.Time{}
	req.ReviewedBy = nil
	req.ApprovedAt = null.Time{}
	req.RejectedAt = null.Time{}
	req.ExpiresAt = null.Time{}
	req.Notes = null.String{}
	req.RejectionReason = null.String{}

	if err := u.requirements.Update(ctx, req); err != nil {
		return nil, err
	}

	u.audit(ctx, &userID, entities.AuditRequirementSubmitted, map[string]interface{}{
		"requirementId": req.ID.String(),
		"type":          req.Type,
	})
	return req, nil
}

// SubmitForReview hands the caller's profile to coordinators. Every required
// checklist item must be satisfied first.
func (u *VerificationUsecase) SubmitForReview(ctx context.Context, userID uuid.UUID) (*entities.WorkerProfile, error) {
	profile, err := u.workerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.VerificationStatus.CanSubmitForReview() {
		return nil, domainerrors.InvalidState("profile cannot be submitted from status " + string(profile.VerificationStatus))
	}

	reqs, err := u.requirements.ListByProfileID(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	var missing []string
	for _, req := range reqs {
		if req.IsRequired && !req.Status.Satisfied() {
			missing = append(missing, req.Type)
		}
	}
	if len(missing) > 0 {
		return nil, domainerrors.NewAppError(
			http.StatusUnprocessableEntity,
			domainerrors.CodeChecklistIncomplete,
			"missing required documents: "+strings.Join(missing, ", "),
			domainerrors.ErrChecklistIncomplete,
		)
	}

	profile.VerificationStatus = entities.VerificationPendingReview
	profile.SubmittedAt = null.TimeFrom(time.Now())
	if err := u.workerRepo.UpdateVerification(ctx, profile); err != nil {
		return nil, err
	}

	u.audit(ctx, &userID, entities.AuditVerificationSubmitted, map[string]interface{}{
		"workerProfileId": profile.ID.String(),
	})
	return profile, nil
}

// ListPendingReview lists profiles awaiting a coordinator decision
func (u *VerificationUsecase) ListPendingReview(ctx context.Context, limit, offset int) ([]*entities.WorkerProfile, int64, error) {
	filter := entities.WorkerProfileFilter{VerificationStatus: entities.VerificationPendingReview}
	return u.workerRepo.List(ctx, filter, limit, offset)
}

// GetWorkerProfile returns any worker profile with its checklist, for
// coordinator review
func (u *VerificationUsecase) GetWorkerProfile(ctx context.Context, profileID uuid.UUID) (*entities.WorkerProfile, []*entities.VerificationRequirement, error) {
	profile, err := u.workerRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, nil, err
	}
	reqs, err := u.requirements.ListByProfileID(ctx, profile.ID)
	if err != nil {
		return nil, nil, err
	}
	return profile, reqs, nil
}

// CreateRequirement lets a coordinator add a checklist item to a profile
func (u *VerificationUsecase) CreateRequirement(ctx context.Context, coordinatorID, profileID uuid.UUID, input *entities.CreateRequirementInput) (*entities.VerificationRequirement, error) {
	if _, err := u.workerRepo.GetByID(ctx, profileID); err != nil {
		return nil, err
	}

	req := &entities.VerificationRequirement{
		WorkerProfileID: profileID,
		Type:            input.Type,
		Name:            input.Name,
		Category:        input.Category,
		IsRequired:      input.IsRequired,
		Status:          entities.RequirementPending,
	}
	if err := u.requirements.Create(ctx, req); err != nil {
		return nil, err
	}

	u.audit(ctx, &coordinatorID, entities.AuditProfileUpdate, map[string]interface{}{
		"workerProfileId": profileID.String(),
		"requirement":     input.Type,
	})
	return req, nil
}

// ReviewRequirement records a coordinator decision on a single document.
// Only SUBMITTED items can be reviewed.
func (u *VerificationUsecase) ReviewRequirement(ctx context.Context, coordinatorID, requirementID uuid.UUID, input *entities.ReviewRequirementInput) (*entities.VerificationRequirement, error) {
	req, err := u.requirements.GetByID(ctx, requirementID)
	if err != nil {
		return nil, err
	}
	if req.Status != entities.RequirementSubmitted {
		return nil, domainerrors.InvalidState("requirement is not awaiting review")
	}

	now := time.Now()
	req.ReviewedAt = null.TimeFrom(now)
	req.ReviewedBy = &coordinatorID
	req.Notes = null.NewString(input.Notes, input.Notes != "")

	action := entities.AuditRequirementApproved
	if input.Approve {
		req.Status = entities.RequirementApproved
		req.ApprovedAt = null.TimeFrom(now)
		req.ExpiresAt = null.TimeFromPtr(input.ExpiresAt)
	} else {
		if input.RejectionReason == "" {
			return nil, domainerrors.BadRequest("rejectionReason is required when rejecting")
		}
		req.Status = entities.RequirementRejected
		req.RejectedAt = null.TimeFrom(now)
		req.RejectionReason = null.StringFrom(input.RejectionReason)
		action = entities.AuditRequirementRejected
	}

	if err := u.requirements.Update(ctx, req); err != nil {
		return nil, err
	}

	u.audit(ctx, &coordinatorID, action, map[string]interface{}{
		"requirementId":   req.ID.String(),
		"workerProfileId": req.WorkerProfileID.String(),
		"type":            req.Type,
	})
	return req, nil
}

// ApproveWorker finalises a verification. All required checklist items must
// already be APPROVED.
func (u *VerificationUsecase) ApproveWorker(ctx context.Context, coordinatorID, profileID uuid.UUID) (*entities.WorkerProfile, error) {
	profile, err := u.workerRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.VerificationStatus != entities.VerificationPendingReview {
		return nil, domainerrors.InvalidState("profile is not awaiting review")
	}

	reqs, err := u.requirements.ListByProfileID(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	var unapproved []string
	for _, req := range reqs {
		if req.IsRequired && req.Status != entities.RequirementApproved {
			unapproved = append(unapproved, req.Type)
		}
	}
	if len(unapproved) > 0 {
		return nil, domainerrors.NewAppError(
			http.StatusUnprocessableEntity,
			domainerrors.CodeChecklistIncomplete,
			"required documents not approved: "+strings.Join(unapproved, ", "),
			domainerrors.ErrChecklistIncomplete,
		)
	}

	now := time.Now()
	profile.VerificationStatus = entities.VerificationApproved
	profile.ReviewedAt = null.TimeFrom(now)
	profile.ApprovedAt = null.TimeFrom(now)
	profile.RejectedAt = null.Time{}
	profile.RejectionReason = null.String{}
	profile.ReviewedBy = &coordinatorID
	if err := u.workerRepo.UpdateVerification(ctx, profile); err != nil {
		return nil, err
	}

	u.audit(ctx, &coordinatorID, entities.AuditVerificationApproved, map[string]interface{}{
		"workerProfileId": profile.ID.String(),
	})
	u.notifyWorker(ctx, profile, true, "")
	return profile, nil
}

// RejectWorker records a rejection; the worker can amend and resubmit
func (u *VerificationUsecase) RejectWorker(ctx context.Context, coordinatorID, profileID uuid.UUID, reason string) (*entities.WorkerProfile, error) {
	if reason == "" {
		return nil, domainerrors.BadRequest("reason is required")
	}

	profile, err := u.workerRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.VerificationStatus != entities.VerificationPendingReview {
		return nil, domainerrors.InvalidState("profile is not awaiting review")
	}

	now := time.Now()
	profile.VerificationStatus = entities.VerificationRejected
	profile.ReviewedAt = null.TimeFrom(now)
	profile.RejectedAt = null.TimeFrom(now)
	profile.RejectionReason = null.StringFrom(reason)
	profile.ReviewedBy = &coordinatorID
	if err := u.workerRepo.UpdateVerification(ctx, profile); err != nil {
		return nil, err
	}

	u.audit(ctx, &coordinatorID, entities.AuditVerificationRejected, map[string]interface{}{
		"workerProfileId": profile.ID.String(),
		"reason":          reason,
	})
	u.notifyWorker(ctx, profile, false, reason)
	return profile, nil
}

func (u *VerificationUsecase) notifyWorker(ctx context.Context, profile *entities.WorkerProfile, approved bool, reason string) {
	if u.mailer == nil {
		return
	}
	user, err := u.userRepo.GetByID(ctx, profile.UserID)
	if err != nil {
		return
	}
	u.mailer.SendVerificationOutcomeEmail(ctx, user.Email, approved, reason)
}

func (u *VerificationUsecase) audit(ctx context.Context, userID *uuid.UUID, action entities.AuditAction, metadata map[string]interface{}) {
	_ = u.auditLogs.Create(ctx, &entities.AuditLog{
		UserID:    userID,
		Action:    action,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	})
}
