package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	assert.True(t, VerifyPassword("secret123", digest))
	assert.False(t, VerifyPassword("wrong", digest))
}

func TestPassword_DigestsDiffer(t *testing.T) {
	a, err := HashPassword("secret123")
	require.NoError(t, err)
	b, err := HashPassword("secret123")
	require.NoError(t, err)

	// Each digest carries its own salt.
	assert.NotEqual(t, a, b)
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	assert.False(t, VerifyPassword("secret123", ""))
	assert.False(t, VerifyPassword("secret123", "not-a-bcrypt-digest"))
}
