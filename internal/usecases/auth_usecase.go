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
	"care-connect.backend/internal/infrastructure/email"
	"care-connect.backend/pkg/crypto"
	"care-connect.backend/pkg/jwt"
	"care-connect.backend/pkg/redis"
)

const (
	verificationTokenTTL = 24 * time.Hour
	resetTokenTTL        = time.Hour
)

// LockoutPolicy is the failed-login lockout policy applied by Login
type LockoutPolicy struct {
	MaxFailedLogins int
	LockoutDuration time.Duration
}

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo      repositories.UserRepository
	sessionRepo   repositories.SessionRepository
	verifTokens   repositories.VerificationTokenRepository
	workerRepo    repositories.WorkerProfileRepository
	requirements  repositories.VerificationRequirementRepository
	clientRepo    repositories.ClientProfileRepository
	coordRepo     repositories.CoordinatorProfileRepository
	auditLogs     repositories.AuditLogRepository
	jwtService    *jwt.JWTService
	sessionStore  *redis.SessionStore
	mailer        email.Sender
	lockoutPolicy LockoutPolicy
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	verifTokens repositories.VerificationTokenRepository,
	workerRepo repositories.WorkerProfileRepository,
	requirements repositories.VerificationRequirementRepository,
	clientRepo repositories.ClientProfileRepository,
	coordRepo repositories.CoordinatorProfileRepository,
	auditLogs repositories.AuditLogRepository,
	jwtService *jwt.JWTService,
	sessionStore *redis.SessionStore,
	mailer email.Sender,
	lockoutPolicy LockoutPolicy,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		verifTokens:   verifTokens,
		workerRepo:    workerRepo,
		requirements:  requirements,
		clientRepo:    clientRepo,
		coordRepo:     coordRepo,
		auditLogs:     auditLogs,
		jwtService:    jwtService,
		sessionStore:  sessionStore,
		mailer:        mailer,
		lockoutPolicy: lockoutPolicy,
	}
}

// Register registers a new user with an empty role profile and sends the
// email verification link
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	if !input.Role.Valid() {
		return nil, domainerrors.ErrInvalidInput
	}

	// Check if email already exists
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         input.Role,
		Status:       entities.AccountStatusPendingVerification,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := u.seedProfile(ctx, user, input); err != nil {
		return nil, err
	}

	token, err := crypto.GenerateVerificationToken()
	if err != nil {
		return nil, err
	}
	vt := &entities.VerificationToken{
		Identifier: user.Email,
		Token:      token,
		ExpiresAt:  time.Now().Add(verificationTokenTTL),
	}
	if err := u.verifTokens.Create(ctx, vt); err != nil {
		return nil, err
	}

	if u.mailer != nil {
		u.mailer.SendVerificationEmail(ctx, user.Email, token)
	}

	u.audit(ctx, &user.ID, entities.AuditUserCreated, "", "", map[string]interface{}{
		"role": string(user.Role),
	})

	return user, nil
}

// seedProfile creates the empty role-specific profile. Workers also get the
// default compliance checklist.
func (u *AuthUsecase) seedProfile(ctx context.Context, user *entities.User, input *entities.RegisterInput) error {
	switch user.Role {
	case entities.UserRoleWorker:
		profile := &entities.WorkerProfile{
			UserID:             user.ID,
			FirstName:          input.FirstName,
			LastName:           input.LastName,
			Mobile:             null.NewString(input.Mobile, input.Mobile != ""),
			VerificationStatus: entities.VerificationNotStarted,
		}
		if err := u.workerRepo.Create(ctx, profile); err != nil {
			return err
		}
		reqs := make([]*entities.VerificationRequirement, 0, len(entities.DefaultWorkerRequirements))
		for _, d := range entities.DefaultWorkerRequirements {
			reqs = append(reqs, &entities.VerificationRequirement{
				WorkerProfileID: profile.ID,
				Type:            d.Type,
				Name:            d.Name,
				Category:        d.Category,
				IsRequired:      d.IsRequired,
				Status:          entities.RequirementPending,
			})
		}
		return u.requirements.CreateBatch(ctx, reqs)
	case entities.UserRoleClient:
		return u.clientRepo.Create(ctx, &entities.ClientProfile{
			UserID:    user.ID,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Mobile:    null.NewString(input.Mobile, input.Mobile != ""),
		})
	case entities.UserRoleCoordinator:
		return u.coordRepo.Create(ctx, &entities.CoordinatorProfile{
			UserID:       user.ID,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Mobile:       null.NewString(input.Mobile, input.Mobile != ""),
			Organization: null.NewString(input.Organization, input.Organization != ""),
		})
	}
	return domainerrors.ErrInvalidInput
}

// VerifyEmail consumes a verification token and activates the account
func (u *AuthUsecase) VerifyEmail(ctx context.Context, token string) error {
	vt, err := u.verifTokens.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrInvalidInput
		}
		return err
	}
	if time.Now().After(vt.ExpiresAt) {
		return domainerrors.ErrTokenExpired
	}

	user, err := u.userRepo.GetByEmail(ctx, vt.Identifier)
	if err != nil {
		return err
	}

	if err := u.verifTokens.Consume(ctx, vt.Identifier, vt.Token); err != nil {
		return err
	}

	if user.Status == entities.AccountStatusPendingVerification {
		if err := u.userRepo.UpdateStatus(ctx, user.ID, entities.AccountStatusActive); err != nil {
			return err
		}
	}

	u.audit(ctx, &user.ID, entities.AuditEmailVerified, "", "", nil)
	return nil
}

// Login authenticates a user, enforcing the failed-login lockout policy
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput, ipAddress, userAgent string) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	now := time.Now()
	if user.IsLocked(now) {
		return nil, domainerrors.ErrAccountLocked
	}

	switch user.Status {
	case entities.AccountStatusSuspended:
		return nil, domainerrors.ErrAccountSuspended
	case entities.AccountStatusPendingVerification:
		return nil, domainerrors.ErrEmailNotVerified
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, u.recordFailedLogin(ctx, user, ipAddress, userAgent)
	}

	if err := u.userRepo.RecordLoginSuccess(ctx, user.ID, now, ipAddress); err != nil {
		return nil, err
	}
	// a lapsed lock clears on the next successful login
	if user.Status == entities.AccountStatusLocked {
		if err := u.userRepo.UpdateStatus(ctx, user.ID, entities.AccountStatusActive); err != nil {
			return nil, err
		}
		user.Status = entities.AccountStatusActive
	}
	user.FailedLoginAttempts = 0
	user.LockedUntil = null.Time{}
	user.LastLoginAt = null.TimeFrom(now)

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	session := &entities.Session{
		UserID:       user.ID,
		SessionToken: tokenPair.RefreshToken,
		IPAddress:    null.NewString(ipAddress, ipAddress != ""),
		UserAgent:    null.NewString(userAgent, userAgent != ""),
		ExpiresAt:    now.Add(u.jwtService.RefreshExpiry()),
	}
	if err := u.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	resp := &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}

	if input.UseSession && u.sessionStore != nil {
		sessionID, err := crypto.GenerateSessionToken()
		if err != nil {
			return nil, err
		}
		data := &redis.SessionData{
			UserID:       user.ID.String(),
			AccessToken:  tokenPair.AccessToken,
			RefreshToken: tokenPair.RefreshToken,
		}
		if err := u.sessionStore.CreateSession(ctx, sessionID, data, u.jwtService.RefreshExpiry()); err != nil {
			return nil, err
		}
		resp.SessionID = sessionID
	}

	u.audit(ctx, &user.ID, entities.AuditLoginSuccess, ipAddress, userAgent, nil)
	return resp, nil
}

// recordFailedLogin bumps the counter, locks the account at the threshold
// and always reports invalid credentials or a fresh lock
func (u *AuthUsecase) recordFailedLogin(ctx context.Context, user *entities.User, ipAddress, userAgent string) error {
	attempts := user.FailedLoginAttempts + 1

	var lockedUntil *time.Time
	if u.lockoutPolicy.MaxFailedLogins > 0 && attempts >= u.lockoutPolicy.MaxFailedLogins {
		t := time.Now().Add(u.lockoutPolicy.LockoutDuration)
		lockedUntil = &t
	}

	if err := u.userRepo.RecordLoginFailure(ctx, user.ID, attempts, lockedUntil); err != nil {
		return err
	}

	u.audit(ctx, &user.ID, entities.AuditLoginFailed, ipAddress, userAgent, map[string]interface{}{
		"attempts": attempts,
	})

	if lockedUntil != nil {
		u.audit(ctx, &user.ID, entities.AuditAccountLocked, ipAddress, userAgent, map[string]interface{}{
			"lockedUntil": lockedUntil.Format(time.RFC3339),
		})
		return domainerrors.ErrAccountLocked
	}
	return domainerrors.ErrInvalidCredentials
}

// RefreshToken rotates the session and mints a new token pair. The refresh
// token is only honoured while its session row is alive.
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	session, err := u.sessionRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}
		return nil, err
	}
	if session.Expired(time.Now()) {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}
		return nil, err
	}
	if user.Status != entities.AccountStatusActive {
		return nil, domainerrors.ErrUnauthorized
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(u.jwtService.RefreshExpiry())
	if err := u.sessionRepo.RotateToken(ctx, session.ID, tokenPair.RefreshToken, expiresAt); err != nil {
		return nil, err
	}

	return tokenPair, nil
}

// Logout revokes the session backing a refresh token
func (u *AuthUsecase) Logout(ctx context.Context, refreshToken, sessionID string) error {
	var userID *uuid.UUID
	if claims, err := u.jwtService.ValidateToken(refreshToken); err == nil {
		userID = &claims.UserID
	}

	if err := u.sessionRepo.DeleteByToken(ctx, refreshToken); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}
	if sessionID != "" && u.sessionStore != nil {
		if err := u.sessionStore.DeleteSession(ctx, sessionID); err != nil {
			return err
		}
	}

	u.audit(ctx, userID, entities.AuditLogout, "", "", nil)
	return nil
}

// RequestPasswordReset issues a reset token. It never discloses whether the
// email is registered.
func (u *AuthUsecase) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := u.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return err
	}

	token, err := crypto.GenerateVerificationToken()
	if err != nil {
		return err
	}
	if err := u.userRepo.SetResetToken(ctx, user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return err
	}

	if u.mailer != nil {
		u.mailer.SendPasswordResetEmail(ctx, user.Email, token)
	}

	u.audit(ctx, &user.ID, entities.AuditPasswordResetRequest, "", "", nil)
	return nil
}

// ResetPassword replaces the password via a reset token and revokes every
// session of the user
func (u *AuthUsecase) ResetPassword(ctx context.Context, input *entities.ResetPasswordInput) error {
	user, err := u.userRepo.GetByResetToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrTokenExpired
		}
		return err
	}

	passwordHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	if err := u.userRepo.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return err
	}
	if err := u.userRepo.ClearResetToken(ctx, user.ID); err != nil {
		return err
	}
	if err := u.sessionRepo.DeleteByUserID(ctx, user.ID); err != nil {
		return err
	}

	u.audit(ctx, &user.ID, entities.AuditPasswordReset, "", "", nil)
	return nil
}

// ChangePassword replaces the password of a logged-in user and revokes all
// sessions except the supplied one
func (u *AuthUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput, keepRefreshToken string) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !crypto.CheckPassword(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	passwordHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	if err := u.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return err
	}

	sessions, err := u.sessionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}
	for _, s := range sessions {
		if s.SessionToken == keepRefreshToken {
			continue
		}
		if err := u.sessionRepo.Delete(ctx, s.ID); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
	}

	u.audit(ctx, &userID, entities.AuditPasswordChange, "", "", nil)
	return nil
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// ListSessions lists the active sessions of a user
func (u *AuthUsecase) ListSessions(ctx context.Context, userID uuid.UUID) ([]*entities.Session, error) {
	sessions, err := u.sessionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	active := make([]*entities.Session, 0, len(sessions))
	for _, s := range sessions {
		if !s.Expired(now) {
			active = append(active, s)
		}
	}
	return active, nil
}

// RevokeSession deletes one session of the calling user
func (u *AuthUsecase) RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	sessions, err := u.sessionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}
	for _, s := range sessions {
		if s.ID == sessionID {
			return u.sessionRepo.Delete(ctx, sessionID)
		}
	}
	return domainerrors.ErrNotFound
}

// audit appends an event; audit failures never fail the operation
func (u *AuthUsecase) audit(ctx context.Context, userID *uuid.UUID, action entities.AuditAction, ipAddress, userAgent string, metadata map[string]interface{}) {
	event := &entities.AuditLog{
		UserID:    userID,
		Action:    action,
		IPAddress: null.NewString(ipAddress, ipAddress != ""),
		UserAgent: null.NewString(userAgent, userAgent != ""),
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}
	_ = u.auditLogs.Create(ctx, event)
}
