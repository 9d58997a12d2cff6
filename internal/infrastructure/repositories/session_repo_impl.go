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

// SessionRepository implements server-side session persistence
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session row
func (r *SessionRepository) Create(ctx context.Context, session *entities.Session) error {
	if session.ID == uuid.Nil {
		session.ID = utils.GenerateUUIDv7()
	}

	m := &models.Session{
		ID:           session.ID,
		UserID:       session.UserID,
		SessionToken: session.SessionToken,
		IPAddress:    session.IPAddress.Ptr(),
		UserAgent:    session.UserAgent.Ptr(),
		ExpiresAt:    session.ExpiresAt,
		CreatedAt:    session.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	session.ID = m.ID
	return nil
}

// GetByToken gets a session by its opaque token
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*entities.Session, error) {
	var m models.Session
	if err := r.db.WithContext(ctx).Where("session_token = ?", token).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return sessionToEntity(&m), nil
}

// ListByUserID lists all sessions of a user, newest first
func (r *SessionRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Session, error) {
	var ms []models.Session
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	sessions := make([]*entities.Session, 0, len(ms))
	for i := range ms {
		sessions = append(sessions, sessionToEntity(&ms[i]))
	}
	return sessions, nil
}

// RotateToken swaps the session token and extends the expiry in one update
func (r *SessionRepository) RotateToken(ctx context.Context, id uuid.UUID, newToken string, expiresAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Session{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"session_token": newToken,
			"expires_at":    expiresAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a session by ID
func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Session{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByToken removes a session by its token
func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).Delete(&models.Session{}, "session_token = ?", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByUserID removes all sessions of a user
func (r *SessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Session{}, "user_id = ?", userID).Error
}

// DeleteExpired removes up to limit sessions whose expiry has passed.
// The subquery keeps the delete bounded so the cleanup job can run in
// small batches.
func (r *SessionRepository) DeleteExpired(ctx context.Context, limit int) (int64, error) {
	sub := r.db.WithContext(ctx).Model(&models.Session{}).
		Select("id").
		Where("expires_at <= ?", time.Now()).
		Limit(limit)

	result := r.db.WithContext(ctx).Delete(&models.Session{}, "id IN (?)", sub)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func sessionToEntity(m *models.Session) *entities.Session {
	return &entities.Session{
		ID:           m.ID,
		UserID:       m.UserID,
		SessionToken: m.SessionToken,
		IPAddress:    null.StringFromPtr(m.IPAddress),
		UserAgent:    null.StringFromPtr(m.UserAgent),
		ExpiresAt:    m.ExpiresAt,
		CreatedAt:    m.CreatedAt,
	}
}

// VerificationTokenRepository implements single-use token persistence
type VerificationTokenRepository struct {
	db *gorm.DB
}

// NewVerificationTokenRepository creates a new verification token repository
func NewVerificationTokenRepository(db *gorm.DB) *VerificationTokenRepository {
	return &VerificationTokenRepository{db: db}
}

// Create creates a new verification token
func (r *VerificationTokenRepository) Create(ctx context.Context, vt *entities.VerificationToken) error {
	if vt.ID == uuid.Nil {
		vt.ID = utils.GenerateUUIDv7()
	}

	m := &models.VerificationToken{
		ID:         vt.ID,
		Identifier: vt.Identifier,
		Token:      vt.Token,
		ExpiresAt:  vt.ExpiresAt,
		CreatedAt:  vt.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	vt.ID = m.ID
	return nil
}

// GetByToken gets a verification token by its token value
func (r *VerificationTokenRepository) GetByToken(ctx context.Context, token string) (*entities.VerificationToken, error) {
	var m models.VerificationToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.VerificationToken{
		ID:         m.ID,
		Identifier: m.Identifier,
		Token:      m.Token,
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
	}, nil
}

// Consume atomically deletes the (identifier, token) pair. ErrNotFound
// means the token was never issued or was already used.
func (r *VerificationTokenRepository) Consume(ctx context.Context, identifier, token string) error {
	result := r.db.WithContext(ctx).
		Delete(&models.VerificationToken{}, "identifier = ? AND token = ?", identifier, token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByIdentifier removes all outstanding tokens for an identifier
func (r *VerificationTokenRepository) DeleteByIdentifier(ctx context.Context, identifier string) error {
	return r.db.WithContext(ctx).Delete(&models.VerificationToken{}, "identifier = ?", identifier).Error
}
