package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestJWTManager(t *testing.T) *JWTManager {
	t.Helper()
	return &JWTManager{secret: "test-secret"}
}

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := newTestJWTManager(t)

	token, err := manager.GenerateAccessJWT("john@example.com", defaultJWTDuration)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	email, err := manager.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "john@example.com", email)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	manager := newTestJWTManager(t)

	token, err := manager.GenerateAccessJWT("john@example.com", -time.Minute)
	assert.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredJWTToken)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	manager := newTestJWTManager(t)

	token, err := manager.GenerateAccessJWT("john@example.com", defaultJWTDuration)
	assert.NoError(t, err)

	other := &JWTManager{secret: "another-secret"}
	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_GarbageToken(t *testing.T) {
	manager := newTestJWTManager(t)

	_, err := manager.ValidateAccessToken("not.a.token")
	assert.Error(t, err)
}
