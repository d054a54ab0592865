package services

import (
	"testing"
	"time"

	"github.com/jorge-trivilin/ecommerce-backend/repository"
	"github.com/jorge-trivilin/ecommerce-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), testSecret, time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("alice", "Alice@Example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email, "email is normalized")
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	token, logged, err := svc.Login("alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	claims, err := utils.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.False(t, claims.IsAdmin)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register("alice", "other@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register("alice2", "alice@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	// wrong password and unknown user answer identically
	_, _, err = svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	got, err := svc.Profile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, got.Username)
}

func TestProfileUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Profile(42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
