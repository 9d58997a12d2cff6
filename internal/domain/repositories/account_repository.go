package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"care-connect.backend/internal/domain/entities"
)

// AccountRepository defines OAuth account linkage operations
type AccountRepository interface {
	Create(ctx context.Context, account *entities.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error)
	GetByProvider(ctx context.Context, provider, providerAccountID string) (*entities.Account, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionRepository defines server-side session operations
type SessionRepository interface {
	Create(ctx context.Context, session *entities.Session) error
	GetByToken(ctx context.Context, token string) (*entities.Session, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Session, error)
	RotateToken(ctx context.Context, id uuid.UUID, newToken string, expiresAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, limit int) (int64, error)
}

// VerificationTokenRepository defines single-use token operations
type VerificationTokenRepository interface {
	Create(ctx context.Context, token *entities.VerificationToken) error
	GetByToken(ctx context.Context, token string) (*entities.VerificationToken, error)
	Consume(ctx context.Context, identifier, token string) error
	DeleteByIdentifier(ctx context.Context, identifier string) error
}
