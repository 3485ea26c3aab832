package auth

import (
	"testing"
	"time"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", 45*time.Minute)
	userID := uuid.New()

	token, err := manager.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestTokenManager_Expired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Issue(uuid.New())
	require.NoError(t, err)

	_, err = manager.Parse(token)
	assert.ErrorIs(t, err, domain.ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("one-secret", 45*time.Minute)
	verifier := NewTokenManager("another-secret", 45*time.Minute)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	manager := NewTokenManager("test-secret", 45*time.Minute)

	_, err := manager.Parse("not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
