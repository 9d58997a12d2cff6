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

// ClientProfileRepository implements client profile data operations
type ClientProfileRepository struct {
	db *gorm.DB
}

// NewClientProfileRepository creates a new client profile repository
func NewClientProfileRepository(db *gorm.DB) *ClientProfileRepository {
	return &ClientProfileRepository{db: db}
}

// Create creates a new client profile
func (r *ClientProfileRepository) Create(ctx context.Context, profile *entities.ClientProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = utils.GenerateUUIDv7()
	}

	m := &models.ClientProfile{
		ID:        profile.ID,
		UserID:    profile.UserID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Mobile:    profile.Mobile.Ptr(),
		Suburb:    profile.Suburb.Ptr(),
		State:     profile.State.Ptr(),
		Postcode:  profile.Postcode.Ptr(),
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	profile.ID = m.ID
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID gets a client profile by the owning user's ID
func (r *ClientProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.ClientProfile, error) {
	var m models.ClientProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.ClientProfile{
		ID:        m.ID,
		UserID:    m.UserID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Mobile:    null.StringFromPtr(m.Mobile),
		Suburb:    null.StringFromPtr(m.Suburb),
		State:     null.StringFromPtr(m.State),
		Postcode:  null.StringFromPtr(m.Postcode),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// Update persists the client-editable fields
func (r *ClientProfileRepository) Update(ctx context.Context, profile *entities.ClientProfile) error {
	result := r.db.WithContext(ctx).Model(&models.ClientProfile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"first_name": profile.FirstName,
			"last_name":  profile.LastName,
			"mobile":     profile.Mobile.Ptr(),
			"suburb":     profile.Suburb.Ptr(),
			"state":      profile.State.Ptr(),
			"postcode":   profile.Postcode.Ptr(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CoordinatorProfileRepository implements coordinator profile data operations
type CoordinatorProfileRepository struct {
	db *gorm.DB
}

// NewCoordinatorProfileRepository creates a new coordinator profile repository
func NewCoordinatorProfileRepository(db *gorm.DB) *CoordinatorProfileRepository {
	return &CoordinatorProfileRepository{db: db}
}

// Create creates a new coordinator profile
func (r *CoordinatorProfileRepository) Create(ctx context.Context, profile *entities.CoordinatorProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = utils.GenerateUUIDv7()
	}

	m := &models.CoordinatorProfile{
		ID:           profile.ID,
		UserID:       profile.UserID,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		Mobile:       profile.Mobile.Ptr(),
		Organization: profile.Organization.Ptr(),
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	profile.ID = m.ID
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID gets a coordinator profile by the owning user's ID
func (r *CoordinatorProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CoordinatorProfile, error) {
	var m models.CoordinatorProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.CoordinatorProfile{
		ID:           m.ID,
		UserID:       m.UserID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Mobile:       null.StringFromPtr(m.Mobile),
		Organization: null.StringFromPtr(m.Organization),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

// Update persists the coordinator-editable fields
func (r *CoordinatorProfileRepository) Update(ctx context.Context, profile *entities.CoordinatorProfile) error {
	result := r.db.WithContext(ctx).Model(&models.CoordinatorProfile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"first_name":   profile.FirstName,
			"last_name":    profile.LastName,
			"mobile":       profile.Mobile.Ptr(),
			"organization": profile.Organization.Ptr(),
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
