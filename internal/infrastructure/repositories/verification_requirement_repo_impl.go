package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/infrastructure/models"
	"care-connect.backend/pkg/utils"
)

// VerificationRequirementRepository implements checklist item persistence
type VerificationRequirementRepository struct {
	db *gorm.DB
}

// NewVerificationRequirementRepository creates a new requirement repository
func NewVerificationRequirementRepository(db *gorm.DB) *VerificationRequirementRepository {
	return &VerificationRequirementRepository{db: db}
}

// Create creates a single checklist item
func (r *VerificationRequirementRepository) Create(ctx context.Context, req *entities.VerificationRequirement) error {
	if req.ID == uuid.Nil {
		req.ID = utils.GenerateUUIDv7()
	}

	m := requirementToModel(req)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	req.ID = m.ID
	req.CreatedAt = m.CreatedAt
	req.UpdatedAt = m.UpdatedAt
	return nil
}

// CreateBatch inserts a set of checklist items in one statement. Used for
// seeding the default checklist on worker registration.
func (r *VerificationRequirementRepository) CreateBatch(ctx context.Context, reqs []*entities.VerificationRequirement) error {
	if len(reqs) == 0 {
		return nil
	}

	ms := make([]*models.VerificationRequirement, 0, len(reqs))
	for _, req := range reqs {
		if req.ID == uuid.Nil {
			req.ID = utils.GenerateUUIDv7()
		}
		ms = append(ms, requirementToModel(req))
	}

	if err := r.db.WithContext(ctx).Create(&ms).Error; err != nil {
		return err
	}
	for i, m := range ms {
		reqs[i].ID = m.ID
	}
	return nil
}

// GetByID gets a checklist item by ID
func (r *VerificationRequirementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRequirement, error) {
	var m models.VerificationRequirement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return requirementToEntity(&m), nil
}

// ListByProfileID lists all checklist items of a worker profile
func (r *VerificationRequirementRepository) ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]*entities.VerificationRequirement, error) {
	var ms []models.VerificationRequirement
	if err := r.db.WithContext(ctx).
		Where("worker_profile_id = ?", profileID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	reqs := make([]*entities.VerificationRequirement, 0, len(ms))
	for i := range ms {
		reqs = append(reqs, requirementToEntity(&ms[i]))
	}
	return reqs, nil
}

// Update persists the mutable fields of a checklist item
func (r *VerificationRequirementRepository) Update(ctx context.Context, req *entities.VerificationRequirement) error {
	result := r.db.WithContext(ctx).Model(&models.VerificationRequirement{}).
		Where("id = ?", req.ID).
		Updates(map[string]interface{}{
			"status":           string(req.Status),
			"document_url":     req.DocumentURL.Ptr(),
			"uploaded_at":      req.UploadedAt.Ptr(),
			"reviewed_at":      req.ReviewedAt.Ptr(),
			"reviewed_by":      req.ReviewedBy,
			"approved_at":      req.ApprovedAt.Ptr(),
			"rejected_at":      req.RejectedAt.Ptr(),
			"expires_at":       req.ExpiresAt.Ptr(),
			"notes":            req.Notes.Ptr(),
			"rejection_reason": req.RejectionReason.Ptr(),
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListExpiredApproved lists approved items whose expiry has passed as of
// the given time, oldest expiry first
func (r *VerificationRequirementRepository) ListExpiredApproved(ctx context.Context, asOf time.Time, limit int) ([]*entities.VerificationRequirement, error) {
	var ms []models.VerificationRequirement
	query := r.db.WithContext(ctx).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?", string(entities.RequirementApproved), asOf).
		Order("expires_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	reqs := make([]*entities.VerificationRequirement, 0, len(ms))
	for i := range ms {
		reqs = append(reqs, requirementToEntity(&ms[i]))
	}
	return reqs, nil
}

// MarkExpired flips the given items to EXPIRED in one update
func (r *VerificationRequirementRepository) MarkExpired(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.VerificationRequirement{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":     string(entities.RequirementExpired),
			"updated_at": time.Now(),
		}).Error
}

func requirementToModel(e *entities.VerificationRequirement) *models.VerificationRequirement {
	return &models.VerificationRequirement{
		ID:              e.ID,
		WorkerProfileID: e.WorkerProfileID,
		Type:            e.Type,
		Name:            e.Name,
		Category:        string(e.Category),
		IsRequired:      e.IsRequired,
		Status:          string(e.Status),
		DocumentURL:     e.DocumentURL.Ptr(),
		UploadedAt:      e.UploadedAt.Ptr(),
		ReviewedAt:      e.ReviewedAt.Ptr(),
		ReviewedBy:      e.ReviewedBy,
		ApprovedAt:      e.ApprovedAt.Ptr(),
		RejectedAt:      e.RejectedAt.Ptr(),
		ExpiresAt:       e.ExpiresAt.Ptr(),
		Notes:           e.Notes.Ptr(),
		RejectionReason: e.RejectionReason.Ptr(),
	}
}

func requirementToEntity(m *models.VerificationRequirement) *entities.VerificationRequirement {
	return &entities.VerificationRequirement{
		ID:              m.ID,
		WorkerProfileID: m.WorkerProfileID,
		Type:            m.Type,
		Name:            m.Name,
		Category:        entities.DocumentCategory(m.Category),
		IsRequired:      m.IsRequired,
		Status:          entities.RequirementStatus(m.Status),
		DocumentURL:     null.StringFromPtr(m.DocumentURL),
		UploadedAt:      null.TimeFromPtr(m.UploadedAt),
		ReviewedAt:      null.TimeFromPtr(m.ReviewedAt),
		ReviewedBy:      m.ReviewedBy,
		ApprovedAt:      null.TimeFromPtr(m.ApprovedAt),
		RejectedAt:      null.TimeFromPtr(m.RejectedAt),
		ExpiresAt:       null.TimeFromPtr(m.ExpiresAt),
		Notes:           null.StringFromPtr(m.Notes),
		RejectionReason: null.StringFromPtr(m.RejectionReason),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
