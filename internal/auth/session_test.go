package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func newSessionManager() *SessionManager {
	return NewSessionManager(NewTokenCodec("test-secret"), false)
}

func responseCookie(t *testing.T, ctx *fasthttp.RequestCtx) *fasthttp.Cookie {
	t.Helper()
	c := fasthttp.AcquireCookie()
	t.Cleanup(func() { fasthttp.ReleaseCookie(c) })
	c.SetKey(SessionCookie)
	require.True(t, ctx.Response.Header.Cookie(c), "response should carry the session cookie")
	return c
}

func TestSessionManager_StartSetsCookie(t *testing.T) {
	sessions := newSessionManager()
	ctx := &fasthttp.RequestCtx{}

	require.NoError(t, sessions.Start(ctx, 7, RoleUser))

	c := responseCookie(t, ctx)
	assert.NotEmpty(t, c.Value())
	assert.True(t, c.HTTPOnly())
	assert.Equal(t, "/", string(c.Path()))
	assert.Equal(t, fasthttp.CookieSameSiteLaxMode, c.SameSite())
	assert.WithinDuration(t, time.Now().Add(SessionDuration), c.Expire(), 5*time.Second)

	// The cookie value is a token the codec accepts.
	claims, ok := sessions.codec.Verify(string(c.Value()))
	require.True(t, ok)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestSessionManager_SecureFlagInProduction(t *testing.T) {
	sessions := NewSessionManager(NewTokenCodec("test-secret"), true)
	ctx := &fasthttp.RequestCtx{}

	require.NoError(t, sessions.Start(ctx, 7, RoleUser))

	c := responseCookie(t, ctx)
	assert.True(t, c.Secure())
}

func TestSessionManager_Current(t *testing.T) {
	sessions := newSessionManager()

	token, err := sessions.codec.Issue(7, RoleAdmin, time.Hour)
	require.NoError(t, err)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetCookie(SessionCookie, token)

	claims, ok := sessions.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestSessionManager_CurrentAbsentOrInvalid(t *testing.T) {
	sessions := newSessionManager()

	ctx := &fasthttp.RequestCtx{}
	_, ok := sessions.Current(ctx)
	assert.False(t, ok, "no cookie")

	ctx = &fasthttp.RequestCtx{}
	ctx.Request.Header.SetCookie(SessionCookie, "garbage")
	_, ok = sessions.Current(ctx)
	assert.False(t, ok, "invalid token")
}

func TestSessionManager_EndIsIdempotent(t *testing.T) {
	sessions := newSessionManager()
	ctx := &fasthttp.RequestCtx{}

	sessions.End(ctx)
	sessions.End(ctx)

	c := responseCookie(t, ctx)
	assert.Empty(t, c.Value())
	assert.True(t, c.Expire().Before(time.Now()))

	_, ok := sessions.Current(ctx)
	assert.False(t, ok)
}
