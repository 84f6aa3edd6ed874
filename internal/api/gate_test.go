package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/auth"
)

func userClaims(role string) *auth.SessionClaims {
	return &auth.SessionClaims{UserID: 1, Role: role}
}

func TestClassifyRequest(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		claims *auth.SessionClaims
		want   gateAction
	}{
		{"dashboard without session redirects to login", "/dashboard", nil, gateRedirectLogin},
		{"dashboard subpage without session redirects to login", "/dashboard/tasks", nil, gateRedirectLogin},
		{"dashboard with session proceeds", "/dashboard", userClaims(auth.RoleUser), gateAllow},
		{"task api without session gets 401", "/api/v1/tasks", nil, gateUnauthorized},
		{"task api with session proceeds", "/api/v1/tasks", userClaims(auth.RoleUser), gateAllow},
		{"admin api without session gets 403", "/api/v1/admin/users", nil, gateForbidden},
		{"admin api with user role gets 403", "/api/v1/admin/users", userClaims(auth.RoleUser), gateForbidden},
		{"admin api with admin role proceeds", "/api/v1/admin/users", userClaims(auth.RoleAdmin), gateAllow},
		{"login with session redirects to dashboard", "/login", userClaims(auth.RoleUser), gateRedirectDashboard},
		{"signup with session redirects to dashboard", "/signup", userClaims(auth.RoleAdmin), gateRedirectDashboard},
		{"login without session proceeds", "/login", nil, gateAllow},
		{"public path proceeds either way", "/api/health", userClaims(auth.RoleUser), gateAllow},
		{"unknown path proceeds", "/docs", nil, gateAllow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyRequest(tt.path, tt.claims))
		})
	}
}

func newGateServer() *Server {
	codec := auth.NewTokenCodec("test-secret")
	return &Server{sessions: auth.NewSessionManager(codec, false)}
}

func gateRequest(t *testing.T, path string, role string) *fasthttp.RequestCtx {
	t.Helper()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI(path)
	if role != "" {
		token, err := auth.NewTokenCodec("test-secret").Issue(1, role, time.Hour)
		require.NoError(t, err)
		ctx.Request.Header.SetCookie(auth.SessionCookie, token)
	}
	return ctx
}

func TestWithEdgeGate_RedirectsAnonymousDashboard(t *testing.T) {
	s := newGateServer()
	handler := s.withEdgeGate(func(ctx *fasthttp.RequestCtx) {
		t.Fatal("handler should not be reached")
	})

	ctx := gateRequest(t, "/dashboard", "")
	handler(ctx)

	assert.Equal(t, fasthttp.StatusSeeOther, ctx.Response.StatusCode())
	assert.Equal(t, "/login", string(ctx.Response.Header.Peek("Location")))
}

func TestWithEdgeGate_UnauthorizedTaskAPI(t *testing.T) {
	s := newGateServer()
	handler := s.withEdgeGate(func(ctx *fasthttp.RequestCtx) {
		t.Fatal("handler should not be reached")
	})

	ctx := gateRequest(t, "/api/v1/tasks", "")
	handler(ctx)

	assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "Authentication required")
}

func TestWithEdgeGate_ForbiddenAdminAPI(t *testing.T) {
	s := newGateServer()
	handler := s.withEdgeGate(func(ctx *fasthttp.RequestCtx) {
		t.Fatal("handler should not be reached")
	})

	ctx := gateRequest(t, "/api/v1/admin/users", auth.RoleUser)
	handler(ctx)

	assert.Equal(t, fasthttp.StatusForbidden, ctx.Response.StatusCode())
}

func TestWithEdgeGate_ExpiredTokenIsAnonymous(t *testing.T) {
	s := newGateServer()
	handler := s.withEdgeGate(func(ctx *fasthttp.RequestCtx) {
		t.Fatal("handler should not be reached")
	})

	token, err := auth.NewTokenCodec("test-secret").Issue(1, auth.RoleUser, -time.Minute)
	require.NoError(t, err)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/api/v1/tasks")
	ctx.Request.Header.SetCookie(auth.SessionCookie, token)
	handler(ctx)

	assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
}

func TestWithEdgeGate_LoggedInLoginRedirects(t *testing.T) {
	s := newGateServer()
	handler := s.withEdgeGate(func(ctx *fasthttp.RequestCtx) {
		t.Fatal("handler should not be reached")
	})

	ctx := gateRequest(t, "/login", auth.RoleUser)
	handler(ctx)

	assert.Equal(t, fasthttp.StatusSeeOther, ctx.Response.StatusCode())
	assert.Equal(t, "/dashboard", string(ctx.Response.Header.Peek("Location")))
}

func TestWithEdgeGate_AllowsValidSession(t *testing.T) {
	s := newGateServer()

	reached := false
	handler := s.withEdgeGate(func(ctx *fasthttp.RequestCtx) {
		reached = true
	})

	ctx := gateRequest(t, "/api/v1/tasks", auth.RoleUser)
	handler(ctx)

	assert.True(t, reached)
}
