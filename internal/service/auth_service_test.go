package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/faculty-service/internal/auth"
	"github.com/spec-kit/faculty-service/internal/config"
	"github.com/spec-kit/faculty-service/internal/domain"
	apperrors "github.com/spec-kit/faculty-service/pkg/util"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 30,
		BcryptCost:            4,
	}}
	return NewAuthService(cfg, users), users
}

func addAccount(t *testing.T, users *fakeUserRepo, email, password string, active bool) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	require.NoError(t, err)
	return users.add(&domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleStaff,
		Active:       active,
	})
}

func TestLoginIssuesParsableToken(t *testing.T) {
	svc, users := newAuthFixture(t)
	ctx := context.Background()
	addAccount(t, users, "a@mcc.edu.in", "Mcc@123", true)

	user, token, expires, err := svc.Login(ctx, "a@mcc.edu.in", "Mcc@123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expires.IsZero())

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleStaff, claims.Role)

	// first login is recorded
	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt)
}

func TestLoginHidesWhichCredentialFailed(t *testing.T) {
	svc, users := newAuthFixture(t)
	ctx := context.Background()
	addAccount(t, users, "a@mcc.edu.in", "Mcc@123", true)

	_, _, _, badPassword := svc.Login(ctx, "a@mcc.edu.in", "wrong")
	_, _, _, badEmail := svc.Login(ctx, "nobody@mcc.edu.in", "Mcc@123")

	pwErr := apperrors.ToDomainError(badPassword)
	emailErr := apperrors.ToDomainError(badEmail)
	assert.Equal(t, 401, pwErr.HTTPStatus)
	assert.Equal(t, emailErr.Message, pwErr.Message)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	svc, users := newAuthFixture(t)
	addAccount(t, users, "a@mcc.edu.in", "Mcc@123", false)

	_, _, _, err := svc.Login(context.Background(), "a@mcc.edu.in", "Mcc@123")
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 401, domainErr.HTTPStatus)
}

func TestChangePasswordFlipsPasswordChanged(t *testing.T) {
	svc, users := newAuthFixture(t)
	ctx := context.Background()
	user := addAccount(t, users, "a@mcc.edu.in", "Mcc@123", true)

	require.NoError(t, svc.ChangePassword(ctx, user, "Mcc@123", "Stronger#1"))

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, stored.PasswordChanged)
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "Stronger#1"))
}

func TestChangePasswordRequiresCurrentPassword(t *testing.T) {
	svc, users := newAuthFixture(t)
	user := addAccount(t, users, "a@mcc.edu.in", "Mcc@123", true)

	err := svc.ChangePassword(context.Background(), user, "wrong", "Stronger#1")
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 401, domainErr.HTTPStatus)
}
