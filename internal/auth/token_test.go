package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/faculty-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 30)
	user := &domain.User{
		ID:              "u1",
		Email:           "a@mcc.edu.in",
		Role:            domain.RoleStaff,
		PasswordChanged: true,
	}

	token, expires, err := tm.GenerateToken(user)
	require.NoError(t, err)
	assert.True(t, expires.After(time.Now()))

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "a@mcc.edu.in", claims.Email)
	assert.Equal(t, domain.RoleStaff, claims.Role)
	assert.True(t, claims.PasswordChanged)
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 30)
	verifier := NewTokenManager("secret-b", 30)

	token, _, err := issuer.GenerateToken(&domain.User{ID: "u1", Role: domain.RoleStaff})
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("secret", 30)
	_, err := tm.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Mcc@123", 4)
	require.NoError(t, err)
	assert.NoError(t, ComparePassword(hash, "Mcc@123"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}
