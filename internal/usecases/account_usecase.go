package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/domain/repositories"
)

// AccountUsecase handles OAuth account linkage
type AccountUsecase struct {
	accountRepo repositories.AccountRepository
	auditLogs   repositories.AuditLogRepository
}

// NewAccountUsecase creates a new account usecase
func NewAccountUsecase(accountRepo repositories.AccountRepository, auditLogs repositories.AuditLogRepository) *AccountUsecase {
	return &AccountUsecase{
		accountRepo: accountRepo,
		auditLogs:   auditLogs,
	}
}

// LinkAccount attaches an OAuth provider account to a user. A provider
// account can only be linked once across the platform.
func (u *AccountUsecase) LinkAccount(ctx context.Context, userID uuid.UUID, input *entities.LinkAccountInput) (*entities.Account, error) {
	existing, err := u.accountRepo.GetByProvider(ctx, input.Provider, input.ProviderAccountID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.UserID == userID {
			return existing, nil
		}
		return nil, domainerrors.Conflict("provider account already linked to another user")
	}

	account := &entities.Account{
		UserID:            userID,
		Type:              input.Type,
		Provider:          input.Provider,
		ProviderAccountID: input.ProviderAccountID,
		RefreshToken:      null.NewString(input.RefreshToken, input.RefreshToken != ""),
		AccessToken:       null.NewString(input.AccessToken, input.AccessToken != ""),
		TokenType:         null.NewString(input.TokenType, input.TokenType != ""),
		Scope:             null.NewString(input.Scope, input.Scope != ""),
		IDToken:           null.NewString(input.IDToken, input.IDToken != ""),
	}
	if input.ExpiresAt != 0 {
		account.ExpiresAt = null.Int64From(input.ExpiresAt)
	}

	if err := u.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	u.audit(ctx, &userID, entities.AuditAccountLinked, map[string]interface{}{
		"provider": input.Provider,
	})
	return account, nil
}

// ListAccounts lists the OAuth accounts linked to a user
func (u *AccountUsecase) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*entities.Account, error) {
	return u.accountRepo.ListByUserID(ctx, userID)
}

// UnlinkAccount removes an OAuth account link. Only the owner may unlink.
func (u *AccountUsecase) UnlinkAccount(ctx context.Context, userID, accountID uuid.UUID) error {
	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.UserID != userID {
		return domainerrors.ErrForbidden
	}

	if err := u.accountRepo.Delete(ctx, accountID); err != nil {
		return err
	}

	u.audit(ctx, &userID, entities.AuditAccountUnlinked, map[string]interface{}{
		"provider": account.Provider,
	})
	return nil
}

func (u *AccountUsecase) audit(ctx context.Context, userID *uuid.UUID, action entities.AuditAction, metadata map[string]interface{}) {
	_ = u.auditLogs.Create(ctx, &entities.AuditLog{
		UserID:    userID,
		Action:    action,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	})
}
