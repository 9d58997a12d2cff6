package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"care-connect.backend/internal/domain/entities"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByResetToken(ctx context.Context, token string) (*entities.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.AccountStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entities.UserRole) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepository) RecordLoginSuccess(ctx context.Context, id uuid.UUID, at time.Time, ip string) error {
	args := m.Called(ctx, id, at, ip)
	return args.Error(0)
}

func (m *MockUserRepository) RecordLoginFailure(ctx context.Context, id uuid.UUID, attempts int, lockedUntil *time.Time) error {
	args := m.Called(ctx, id, attempts, lockedUntil)
	return args.Error(0)
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	args := m.Called(ctx, id, token, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) ClearResetToken(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, filter entities.UserFilter, limit, offset int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entities.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByProvider(ctx context.Context, provider, providerAccountID string) (*entities.Account, error) {
	args := m.Called(ctx, provider, providerAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entities.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByToken(ctx context.Context, token string) (*entities.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Session), args.Error(1)
}

func (m *MockSessionRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Session, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Session), args.Error(1)
}

func (m *MockSessionRepository) RotateToken(ctx context.Context, id uuid.UUID, newToken string, expiresAt time.Time) error {
	args := m.Called(ctx, id, newToken, expiresAt)
	return args.Error(0)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, limit int) (int64, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).(int64), args.Error(1)
}

// Mock VerificationTokenRepository
type MockVerificationTokenRepository struct {
	mock.Mock
}

func (m *MockVerificationTokenRepository) Create(ctx context.Context, vt *entities.VerificationToken) error {
	args := m.Called(ctx, vt)
	return args.Error(0)
}

func (m *MockVerificationTokenRepository) GetByToken(ctx context.Context, token string) (*entities.VerificationToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VerificationToken), args.Error(1)
}

func (m *MockVerificationTokenRepository) Consume(ctx context.Context, identifier, token string) error {
	args := m.Called(ctx, identifier, token)
	return args.Error(0)
}

func (m *MockVerificationTokenRepository) DeleteByIdentifier(ctx context.Context, identifier string) error {
	args := m.Called(ctx, identifier)
	return args.Error(0)
}

// Mock WorkerProfileRepository
type MockWorkerProfileRepository struct {
	mock.Mock
}

func (m *MockWorkerProfileRepository) Create(ctx context.Context, profile *entities.WorkerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockWorkerProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.WorkerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WorkerProfile), args.Error(1)
}

func (m *MockWorkerProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.WorkerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WorkerProfile), args.Error(1)
}

func (m *MockWorkerProfileRepository) Update(ctx context.Context, profile *entities.WorkerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockWorkerProfileRepository) UpdateVerification(ctx context.Context, profile *entities.WorkerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockWorkerProfileRepository) List(ctx context.Context, filter entities.WorkerProfileFilter, limit, offset int) ([]*entities.WorkerProfile, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.WorkerProfile), args.Get(1).(int64), args.Error(2)
}

// Mock VerificationRequirementRepository
type MockVerificationRequirementRepository struct {
	mock.Mock
}

func (m *MockVerificationRequirementRepository) Create(ctx context.Context, req *entities.VerificationRequirement) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockVerificationRequirementRepository) CreateBatch(ctx context.Context, reqs []*entities.VerificationRequirement) error {
	args := m.Called(ctx, reqs)
	return args.Error(0)
}

func (m *MockVerificationRequirementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRequirement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VerificationRequirement), args.Error(1)
}

func (m *MockVerificationRequirementRepository) ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]*entities.VerificationRequirement, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VerificationRequirement), args.Error(1)
}

func (m *MockVerificationRequirementRepository) Update(ctx context.Context, req *entities.VerificationRequirement) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockVerificationRequirementRepository) ListExpiredApproved(ctx context.Context, asOf time.Time, limit int) ([]*entities.VerificationRequirement, error) {
	args := m.Called(ctx, asOf, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VerificationRequirement), args.Error(1)
}

func (m *MockVerificationRequirementRepository) MarkExpired(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// Mock ClientProfileRepository
type MockClientProfileRepository struct {
	mock.Mock
}

func (m *MockClientProfileRepository) Create(ctx context.Context, profile *entities.ClientProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockClientProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.ClientProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ClientProfile), args.Error(1)
}

func (m *MockClientProfileRepository) Update(ctx context.Context, profile *entities.ClientProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// Mock CoordinatorProfileRepository
type MockCoordinatorProfileRepository struct {
	mock.Mock
}

func (m *MockCoordinatorProfileRepository) Create(ctx context.Context, profile *entities.CoordinatorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockCoordinatorProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CoordinatorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CoordinatorProfile), args.Error(1)
}

func (m *MockCoordinatorProfileRepository) Update(ctx context.Context, profile *entities.CoordinatorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// Mock AuditLogRepository
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(ctx context.Context, log *entities.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) List(ctx context.Context, filter entities.AuditLogFilter, limit, offset int) ([]*entities.AuditLog, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.AuditLog), args.Get(1).(int64), args.Error(2)
}

// Mock mail sender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) SendVerificationEmail(ctx context.Context, to, token string) {
	m.Called(ctx, to, token)
}

func (m *MockMailSender) SendPasswordResetEmail(ctx context.Context, to, token string) {
	m.Called(ctx, to, token)
}

func (m *MockMailSender) SendVerificationOutcomeEmail(ctx context.Context, to string, approved bool, reason string) {
	m.Called(ctx, to, approved, reason)
}
