package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"care-connect.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByResetToken(ctx context.Context, token string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.AccountStatus) error
	UpdateRole(ctx context.Context, id uuid.UUID, role entities.UserRole) error
	RecordLoginSuccess(ctx context.Context, id uuid.UUID, at time.Time, ip string) error
	RecordLoginFailure(ctx context.Context, id uuid.UUID, attempts int, lockedUntil *time.Time) error
	SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error
	ClearResetToken(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter entities.UserFilter, limit, offset int) ([]*entities.User, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
