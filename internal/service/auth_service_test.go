package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"renta-autos/internal/config"
	"renta-autos/internal/domain"
	"renta-autos/internal/repository"
	"renta-autos/tests/mocks"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
}

func hashedPassword(t *testing.T, plain string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	sessionRepo := new(mocks.SessionRepository)
	email := new(mocks.EmailService)
	svc := NewAuthService(userRepo, sessionRepo, email, testAuthConfig(), testLogger())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "ana@renta-autos.test",
		PasswordHash: hashedPassword(t, "correct horse"),
		Role:         string(domain.RoleEmployee),
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*repository.Session")).Return(nil)

	gotUser, tokens, err := svc.Login(context.Background(), domain.LoginInput{
		Email:    user.Email,
		Password: "correct horse",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, user.ID, gotUser.ID)
	require.NotNil(t, tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	claims, err := svc.ValidateAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, string(domain.RoleEmployee), claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	sessionRepo := new(mocks.SessionRepository)
	email := new(mocks.EmailService)
	svc := NewAuthService(userRepo, sessionRepo, email, testAuthConfig(), testLogger())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "ana@renta-autos.test",
		PasswordHash: hashedPassword(t, "correct horse"),
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	_, _, err := svc.Login(context.Background(), domain.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	}, nil)

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_UnknownUser(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	sessionRepo := new(mocks.SessionRepository)
	email := new(mocks.EmailService)
	svc := NewAuthService(userRepo, sessionRepo, email, testAuthConfig(), testLogger())

	userRepo.On("GetByEmail", mock.Anything, "ghost@renta-autos.test").Return(nil, nil)

	_, _, err := svc.Login(context.Background(), domain.LoginInput{
		Email:    "ghost@renta-autos.test",
		Password: "whatever",
	}, nil)

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	sessionRepo := new(mocks.SessionRepository)
	email := new(mocks.EmailService)
	svc := NewAuthService(userRepo, sessionRepo, email, testAuthConfig(), testLogger())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "ana@renta-autos.test",
		PasswordHash: hashedPassword(t, "correct horse"),
		IsActive:     false,
	}
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	_, _, err := svc.Login(context.Background(), domain.LoginInput{
		Email:    user.Email,
		Password: "correct horse",
	}, nil)

	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	svc := NewAuthService(new(mocks.UserRepository), new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig(), testLogger())

	_, err := svc.ValidateAccessToken("not-a-jwt")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken_UnknownSession(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	sessionRepo := new(mocks.SessionRepository)
	svc := NewAuthService(userRepo, sessionRepo, new(mocks.EmailService), testAuthConfig(), testLogger())

	sessionRepo.On("GetByTokenHash", mock.Anything, mock.AnythingOfType("string")).Return(nil, nil)

	_, err := svc.RefreshToken(context.Background(), "revoked-or-bogus")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken_RotatesSession(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	sessionRepo := new(mocks.SessionRepository)
	svc := NewAuthService(userRepo, sessionRepo, new(mocks.EmailService), testAuthConfig(), testLogger())

	user := &domain.User{ID: uuid.New(), Email: "ana@renta-autos.test", IsActive: true}
	session := &repository.Session{ID: uuid.New(), UserID: user.ID}

	sessionRepo.On("GetByTokenHash", mock.Anything, mock.AnythingOfType("string")).Return(session, nil)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	sessionRepo.On("Revoke", mock.Anything, session.ID).Return(nil)
	sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*repository.Session")).Return(nil)

	tokens, err := svc.RefreshToken(context.Background(), "old-refresh-token")

	require.NoError(t, err)
	require.NotNil(t, tokens)
	sessionRepo.AssertCalled(t, "Revoke", mock.Anything, session.ID)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := NewAuthService(userRepo, new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig(), testLogger())

	expired := time.Now().Add(-time.Hour)
	user := &domain.User{ID: uuid.New(), PasswordResetExpiresAt: &expired}
	userRepo.On("GetUserByResetToken", mock.Anything, "stale").Return(user, nil)

	err := svc.ResetPassword(context.Background(), "stale", "new-password-123")

	assert.ErrorIs(t, err, ErrTokenExpired)
}
