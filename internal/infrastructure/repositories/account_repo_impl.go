package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/infrastructure/models"
	"care-connect.backend/pkg/utils"
)

// AccountRepository implements OAuth account linkage operations
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account link
func (r *AccountRepository) Create(ctx context.Context, account *entities.Account) error {
	if account.ID == uuid.Nil {
		account.ID = utils.GenerateUUIDv7()
	}

	m := &models.Account{
		ID:                account.ID,
		UserID:            account.UserID,
		Type:              account.Type,
		Provider:          account.Provider,
		ProviderAccountID: account.ProviderAccountID,
		RefreshToken:      account.RefreshToken.Ptr(),
		AccessToken:       account.AccessToken.Ptr(),
		TokenType:         account.TokenType.Ptr(),
		Scope:             account.Scope.Ptr(),
		IDToken:           account.IDToken.Ptr(),
		CreatedAt:         account.CreatedAt,
	}
	if account.ExpiresAt.Valid {
		v := account.ExpiresAt.Int64
		m.ExpiresAt = &v
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	account.ID = m.ID
	return nil
}

// GetByID gets an account link by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	var m models.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return accountToEntity(&m), nil
}

// GetByProvider gets an account by its (provider, providerAccountId) pair
func (r *AccountRepository) GetByProvider(ctx context.Context, provider, providerAccountID string) (*entities.Account, error) {
	var m models.Account
	err := r.db.WithContext(ctx).
		Where("provider = ? AND provider_account_id = ?", provider, providerAccountID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return accountToEntity(&m), nil
}

// ListByUserID lists all account links of a user
func (r *AccountRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Account, error) {
	var ms []models.Account
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	accounts := make([]*entities.Account, 0, len(ms))
	for i := range ms {
		accounts = append(accounts, accountToEntity(&ms[i]))
	}
	return accounts, nil
}

// Delete removes an account link
func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Account{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func accountToEntity(m *models.Account) *entities.Account {
	e := &entities.Account{
		ID:                m.ID,
		UserID:            m.UserID,
		Type:              m.Type,
		Provider:          m.Provider,
		ProviderAccountID: m.ProviderAccountID,
		RefreshToken:      null.StringFromPtr(m.RefreshToken),
		AccessToken:       null.StringFromPtr(m.AccessToken),
		TokenType:         null.StringFromPtr(m.TokenType),
		Scope:             null.StringFromPtr(m.Scope),
		IDToken:           null.StringFromPtr(m.IDToken),
		CreatedAt:         m.CreatedAt,
	}
	if m.ExpiresAt != nil {
		e.ExpiresAt = null.Int64From(*m.ExpiresAt)
	}
	return e
}
