package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.Issue(42, RoleAdmin, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, ok := codec.Verify(token)
	require.True(t, ok)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, 5*time.Second)
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.Issue(42, RoleUser, -time.Minute)
	require.NoError(t, err)

	claims, ok := codec.Verify(token)
	assert.False(t, ok)
	assert.Nil(t, claims)
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	token, err := NewTokenCodec("secret-a").Issue(1, RoleUser, time.Hour)
	require.NoError(t, err)

	claims, ok := NewTokenCodec("secret-b").Verify(token)
	assert.False(t, ok)
	assert.Nil(t, claims)
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	for _, tok := range []string{"", "not-a-token", "a.b.c", "eyJhbGciOiJIUzI1NiJ9"} {
		claims, ok := codec.Verify(tok)
		assert.False(t, ok, "token %q should not verify", tok)
		assert.Nil(t, claims)
	}
}

func TestTokenCodec_TamperedPayload(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.Issue(1, RoleUser, time.Hour)
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	_, ok := codec.Verify(tampered)
	assert.False(t, ok)
}
