package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

type fakeStore struct {
	users map[int64]*Principal
}

func (s *fakeStore) FindPrincipal(_ context.Context, id int64) (*Principal, error) {
	p, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func newGuard(users map[int64]*Principal) (*Guard, *SessionManager) {
	sessions := NewSessionManager(NewTokenCodec("test-secret"), false)
	return NewGuard(sessions, &fakeStore{users: users}), sessions
}

func requestWithSession(t *testing.T, sessions *SessionManager, userID int64, role string) *fasthttp.RequestCtx {
	t.Helper()
	token, err := sessions.codec.Issue(userID, role, time.Hour)
	require.NoError(t, err)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetCookie(SessionCookie, token)
	return ctx
}

func TestGuard_RequireAuth(t *testing.T) {
	guard, sessions := newGuard(map[int64]*Principal{
		1: {ID: 1, Name: "Ada", Email: "ada@example.com", Role: RoleUser},
	})

	rctx := requestWithSession(t, sessions, 1, RoleUser)
	p, err := guard.RequireAuth(context.Background(), rctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "ada@example.com", p.Email)
}

func TestGuard_RequireAuth_NoCookie(t *testing.T) {
	guard, _ := newGuard(nil)

	_, err := guard.RequireAuth(context.Background(), &fasthttp.RequestCtx{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestGuard_RequireAuth_StaleUser(t *testing.T) {
	// Well-formed token, but the user row is gone: unauthenticated, not
	// forbidden.
	guard, sessions := newGuard(map[int64]*Principal{})

	rctx := requestWithSession(t, sessions, 99, RoleAdmin)
	_, err := guard.RequireAuth(context.Background(), rctx)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestGuard_RequireRole_FreshRoleWins(t *testing.T) {
	// Token says admin, store says user: the store is the source of truth.
	guard, sessions := newGuard(map[int64]*Principal{
		1: {ID: 1, Role: RoleUser},
	})

	rctx := requestWithSession(t, sessions, 1, RoleAdmin)
	_, err := guard.RequireRole(context.Background(), rctx, RoleAdmin)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGuard_RequireAdmin(t *testing.T) {
	guard, sessions := newGuard(map[int64]*Principal{
		1: {ID: 1, Role: RoleUser},
		2: {ID: 2, Role: RoleAdmin},
	})

	rctx := requestWithSession(t, sessions, 1, RoleUser)
	_, err := guard.RequireAdmin(context.Background(), rctx)
	assert.ErrorIs(t, err, ErrForbidden)

	rctx = requestWithSession(t, sessions, 2, RoleAdmin)
	p, err := guard.RequireAdmin(context.Background(), rctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID)
}

func TestGuard_UnauthenticatedBeforeForbidden(t *testing.T) {
	// A request that is both anonymous and role-insufficient must be told
	// "unauthenticated" first.
	guard, _ := newGuard(nil)

	_, err := guard.RequireRole(context.Background(), &fasthttp.RequestCtx{}, RoleAdmin)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestGuard_RequireRole_MultipleRoles(t *testing.T) {
	guard, sessions := newGuard(map[int64]*Principal{
		1: {ID: 1, Role: RoleUser},
	})

	rctx := requestWithSession(t, sessions, 1, RoleUser)
	p, err := guard.RequireRole(context.Background(), rctx, RoleAdmin, RoleUser)
	require.NoError(t, err)
	assert.Equal(t, RoleUser, p.Role)
}
