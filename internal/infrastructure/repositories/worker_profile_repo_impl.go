package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/infrastructure/models"
	"care-connect.backend/pkg/utils"
)

// WorkerProfileRepository implements worker profile data operations
type WorkerProfileRepository struct {
	db *gorm.DB
}

// NewWorkerProfileRepository creates a new worker profile repository
func NewWorkerProfileRepository(db *gorm.DB) *WorkerProfileRepository {
	return &WorkerProfileRepository{db: db}
}

// Create creates a new worker profile
func (r *WorkerProfileRepository) Create(ctx context.Context, profile *entities.WorkerProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = utils.GenerateUUIDv7()
	}

	m := workerProfileToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	profile.ID = m.ID
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a worker profile by ID
func (r *WorkerProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.WorkerProfile, error) {
	var m models.WorkerProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return workerProfileToEntity(&m), nil
}

// GetByUserID gets a worker profile by the owning user's ID
func (r *WorkerProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.WorkerProfile, error) {
	var m models.WorkerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return workerProfileToEntity(&m), nil
}

// Update persists the worker-editable profile fields
func (r *WorkerProfileRepository) Update(ctx context.Context, profile *entities.WorkerProfile) error {
	updates := map[string]interface{}{
		"first_name":                profile.FirstName,
		"last_name":                 profile.LastName,
		"date_of_birth":             profile.DateOfBirth.Ptr(),
		"mobile":                    profile.Mobile.Ptr(),
		"address":                   profile.Address.Ptr(),
		"suburb":                    profile.Suburb.Ptr(),
		"state":                     profile.State.Ptr(),
		"postcode":                  profile.Postcode.Ptr(),
		"languages":                 stringListToJSON(profile.Languages),
		"services":                  stringListToJSON(profile.Services),
		"support_worker_categories": stringListToJSON(profile.SupportWorkerCategories),
		"bio":                       profile.Bio.Ptr(),
		"experience":                profile.Experience.Ptr(),
		"qualifications":            profile.Qualifications.Ptr(),
		"updated_at":                time.Now(),
	}
	if profile.Photos.Valid {
		updates["photos"] = datatypes.JSON(profile.Photos.JSON)
	}

	result := r.db.WithContext(ctx).Model(&models.WorkerProfile{}).
		Where("id = ?", profile.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateVerification persists only the verification lifecycle fields
func (r *WorkerProfileRepository) UpdateVerification(ctx context.Context, profile *entities.WorkerProfile) error {
	updates := map[string]interface{}{
		"verification_status": string(profile.VerificationStatus),
		"submitted_at":        profile.SubmittedAt.Ptr(),
		"reviewed_at":         profile.ReviewedAt.Ptr(),
		"approved_at":         profile.ApprovedAt.Ptr(),
		"rejected_at":         profile.RejectedAt.Ptr(),
		"rejection_reason":    profile.RejectionReason.Ptr(),
		"reviewed_by":         profile.ReviewedBy,
		"updated_at":          time.Now(),
	}
	if profile.VerificationChecklist.Valid {
		updates["verification_checklist"] = datatypes.JSON(profile.VerificationChecklist.JSON)
	}
	if profile.SubmittedDocuments.Valid {
		updates["submitted_documents"] = datatypes.JSON(profile.SubmittedDocuments.JSON)
	}

	result := r.db.WithContext(ctx).Model(&models.WorkerProfile{}).
		Where("id = ?", profile.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists worker profiles with filters and pagination
func (r *WorkerProfileRepository) List(ctx context.Context, filter entities.WorkerProfileFilter, limit, offset int) ([]*entities.WorkerProfile, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.WorkerProfile{})

	if filter.VerificationStatus != "" {
		query = query.Where("verification_status = ?", string(filter.VerificationStatus))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var ms []models.WorkerProfile
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	profiles := make([]*entities.WorkerProfile, 0, len(ms))
	for i := range ms {
		profiles = append(profiles, workerProfileToEntity(&ms[i]))
	}
	return profiles, total, nil
}

func workerProfileToModel(e *entities.WorkerProfile) *models.WorkerProfile {
	m := &models.WorkerProfile{
		ID:                      e.ID,
		UserID:                  e.UserID,
		FirstName:               e.FirstName,
		LastName:                e.LastName,
		DateOfBirth:             e.DateOfBirth.Ptr(),
		Mobile:                  e.Mobile.Ptr(),
		Address:                 e.Address.Ptr(),
		Suburb:                  e.Suburb.Ptr(),
		State:                   e.State.Ptr(),
		Postcode:                e.Postcode.Ptr(),
		Languages:               stringListToJSON(e.Languages),
		Services:                stringListToJSON(e.Services),
		SupportWorkerCategories: stringListToJSON(e.SupportWorkerCategories),
		Bio:                     e.Bio.Ptr(),
		Experience:              e.Experience.Ptr(),
		Qualifications:          e.Qualifications.Ptr(),
		VerificationStatus:      string(e.VerificationStatus),
		SubmittedAt:             e.SubmittedAt.Ptr(),
		ReviewedAt:              e.ReviewedAt.Ptr(),
		ApprovedAt:              e.ApprovedAt.Ptr(),
		RejectedAt:              e.RejectedAt.Ptr(),
		RejectionReason:         e.RejectionReason.Ptr(),
		ReviewedBy:              e.ReviewedBy,
	}
	if e.Photos.Valid {
		m.Photos = datatypes.JSON(e.Photos.JSON)
	}
	if e.VerificationChecklist.Valid {
		m.VerificationChecklist = datatypes.JSON(e.VerificationChecklist.JSON)
	}
	if e.SubmittedDocuments.Valid {
		m.SubmittedDocuments = datatypes.JSON(e.SubmittedDocuments.JSON)
	}
	return m
}

func workerProfileToEntity(m *models.WorkerProfile) *entities.WorkerProfile {
	e := &entities.WorkerProfile{
		ID:                      m.ID,
		UserID:                  m.UserID,
		FirstName:               m.FirstName,
		LastName:                m.LastName,
		DateOfBirth:             null.TimeFromPtr(m.DateOfBirth),
		Mobile:                  null.StringFromPtr(m.Mobile),
		Address:                 null.StringFromPtr(m.Address),
		Suburb:                  null.StringFromPtr(m.Suburb),
		State:                   null.StringFromPtr(m.State),
		Postcode:                null.StringFromPtr(m.Postcode),
		Languages:               jsonToStringList(m.Languages),
		Services:                jsonToStringList(m.Services),
		SupportWorkerCategories: jsonToStringList(m.SupportWorkerCategories),
		Bio:                     null.StringFromPtr(m.Bio),
		Experience:              null.StringFromPtr(m.Experience),
		Qualifications:          null.StringFromPtr(m.Qualifications),
		VerificationStatus:      entities.VerificationStatus(m.VerificationStatus),
		SubmittedAt:             null.TimeFromPtr(m.SubmittedAt),
		ReviewedAt:              null.TimeFromPtr(m.ReviewedAt),
		ApprovedAt:              null.TimeFromPtr(m.ApprovedAt),
		RejectedAt:              null.TimeFromPtr(m.RejectedAt),
		RejectionReason:         null.StringFromPtr(m.RejectionReason),
		ReviewedBy:              m.ReviewedBy,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
	if len(m.Photos) > 0 {
		e.Photos = null.JSONFrom([]byte(m.Photos))
	}
	if len(m.VerificationChecklist) > 0 {
		e.VerificationChecklist = null.JSONFrom([]byte(m.VerificationChecklist))
	}
	if len(m.SubmittedDocuments) > 0 {
		e.SubmittedDocuments = null.JSONFrom([]byte(m.SubmittedDocuments))
	}
	return e
}
