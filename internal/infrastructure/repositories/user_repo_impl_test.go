package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
)

func TestUserRepository_CRUDAndList(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	now := time.Now()
	u := &entities.User{
		ID:           uuid.New(),
		Email:        "worker@careconnect.au",
		PasswordHash: "hash",
		Role:         entities.UserRoleWorker,
		Status:       entities.AccountStatusPendingVerification,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(ctx, u))

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)
	require.Equal(t, entities.AccountStatusPendingVerification, byID.Status)

	byEmail, err := repo.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	require.NoError(t, repo.UpdateStatus(ctx, u.ID, entities.AccountStatusActive))
	require.NoError(t, repo.UpdateRole(ctx, u.ID, entities.UserRoleCoordinator))
	require.NoError(t, repo.UpdatePassword(ctx, u.ID, "hash2"))

	updated, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, entities.AccountStatusActive, updated.Status)
	require.Equal(t, entities.UserRoleCoordinator, updated.Role)
	require.Equal(t, "hash2", updated.PasswordHash)

	items, total, err := repo.List(ctx, entities.UserFilter{Role: entities.UserRoleCoordinator}, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, items, 1)

	items, total, err = repo.List(ctx, entities.UserFilter{Search: "worker@"}, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, items, 1)

	items, total, err = repo.List(ctx, entities.UserFilter{Status: entities.AccountStatusSuspended}, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 0, total)
	require.Empty(t, items)

	require.NoError(t, repo.SoftDelete(ctx, u.ID))
	_, err = repo.GetByID(ctx, u.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_Create_AssignsIDWhenMissing(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{
		Email:        "noid@careconnect.au",
		PasswordHash: "hash",
		Role:         entities.UserRoleWorker,
		Status:       entities.AccountStatusPendingVerification,
	}
	require.NoError(t, repo.Create(ctx, u))
	require.NotEqual(t, uuid.Nil, u.ID)

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "noid@careconnect.au", got.Email)
}

func TestUserRepository_LoginTracking(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{
		ID:           uuid.New(),
		Email:        "lock@careconnect.au",
		PasswordHash: "hash",
		Role:         entities.UserRoleClient,
		Status:       entities.AccountStatusActive,
	}
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, repo.RecordLoginFailure(ctx, u.ID, 1, nil))
	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.FailedLoginAttempts)
	require.False(t, got.LockedUntil.Valid)
	require.Equal(t, entities.AccountStatusActive, got.Status)

	lockedUntil := time.Now().Add(15 * time.Minute)
	require.NoError(t, repo.RecordLoginFailure(ctx, u.ID, 5, &lockedUntil))
	got, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, 5, got.FailedLoginAttempts)
	require.True(t, got.LockedUntil.Valid)
	require.Equal(t, entities.AccountStatusLocked, got.Status)

	at := time.Now()
	require.NoError(t, repo.RecordLoginSuccess(ctx, u.ID, at, "10.0.0.1"))
	got, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.FailedLoginAttempts)
	require.False(t, got.LockedUntil.Valid)
	require.True(t, got.LastLoginAt.Valid)
	require.Equal(t, "10.0.0.1", got.LastLoginIP.String)
}

func TestUserRepository_ResetToken(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{
		ID:           uuid.New(),
		Email:        "reset@careconnect.au",
		PasswordHash: "hash",
		Role:         entities.UserRoleWorker,
		Status:       entities.AccountStatusActive,
	}
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, repo.SetResetToken(ctx, u.ID, "tok123", time.Now().Add(time.Hour)))

	byToken, err := repo.GetByResetToken(ctx, "tok123")
	require.NoError(t, err)
	require.Equal(t, u.ID, byToken.ID)

	require.NoError(t, repo.ClearResetToken(ctx, u.ID))
	_, err = repo.GetByResetToken(ctx, "tok123")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	// an expired token must not resolve
	require.NoError(t, repo.SetResetToken(ctx, u.ID, "tok456", time.Now().Add(-time.Minute)))
	_, err = repo.GetByResetToken(ctx, "tok456")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.GetByID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@careconnect.au")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.User{ID: id, Email: "x@careconnect.au", Role: entities.UserRoleWorker, Status: entities.AccountStatusActive})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.ErrorIs(t, repo.UpdatePassword(ctx, id, "hash"), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.UpdateStatus(ctx, id, entities.AccountStatusActive), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.UpdateRole(ctx, id, entities.UserRoleClient), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.RecordLoginSuccess(ctx, id, time.Now(), "1.1.1.1"), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.RecordLoginFailure(ctx, id, 1, nil), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.SetResetToken(ctx, id, "tok", time.Now().Add(time.Hour)), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.ClearResetToken(ctx, id), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.SoftDelete(ctx, id), domainerrors.ErrNotFound)
}
