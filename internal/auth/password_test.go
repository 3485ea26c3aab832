package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(4)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, "secret", hash)
	assert.NotEmpty(t, hash)

	assert.True(t, hasher.Verify(hash, "secret"))
	assert.False(t, hasher.Verify(hash, "wrong"))
	assert.False(t, hasher.Verify(hash, ""))
}

func TestPasswordHasher_DistinctSalts(t *testing.T) {
	hasher := NewPasswordHasher(4)

	first, err := hasher.Hash("secret")
	require.NoError(t, err)
	second, err := hasher.Hash("secret")
	require.NoError(t, err)

	// Same password, different salt, different hash.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify(first, "secret"))
	assert.True(t, hasher.Verify(second, "secret"))
}

func TestPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(99)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	assert.True(t, hasher.Verify(hash, "secret"))
}
