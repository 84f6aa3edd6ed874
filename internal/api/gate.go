package api

import (
	"errors"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/api/response"
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/auth"
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/perrors"
)

// Route prefix classes enforced before any handler runs.
var (
	protectedPrefixes = []string{"/dashboard", "/api/v1/tasks"}
	authOnlyPrefixes  = []string{"/login", "/signup"}
	adminPrefixes     = []string{"/api/v1/admin"}
)

type gateAction int

const (
	gateAllow gateAction = iota
	gateRedirectLogin
	gateRedirectDashboard
	gateUnauthorized
	gateForbidden
)

func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// classifyRequest decides what happens to a request before routing. It
// is a pure function of the path and the verified session claims (nil
// when the cookie is absent or the token invalid).
//
// Evaluation order is fixed: protected, then admin-only, then
// auth-only; the first matching rejection wins. The gate trusts the
// token's embedded role since it has no store access; handlers re-check
// the live role through the guard.
func classifyRequest(path string, claims *auth.SessionClaims) gateAction {
	if matchesAny(path, protectedPrefixes) && claims == nil {
		// API clients get a status code, page visitors a redirect.
		if strings.HasPrefix(path, "/api/") {
			return gateUnauthorized
		}
		return gateRedirectLogin
	}

	if matchesAny(path, adminPrefixes) && (claims == nil || claims.Role != auth.RoleAdmin) {
		return gateForbidden
	}

	if matchesAny(path, authOnlyPrefixes) && claims != nil {
		return gateRedirectDashboard
	}

	return gateAllow
}

// withEdgeGate short-circuits disallowed requests before they reach the
// router.
func (s *Server) withEdgeGate(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		var claims *auth.SessionClaims
		if c, ok := s.sessions.Current(ctx); ok {
			claims = c
		}

		switch classifyRequest(string(ctx.Path()), claims) {
		case gateRedirectLogin:
			ctx.Redirect("/login", fasthttp.StatusSeeOther)
		case gateRedirectDashboard:
			ctx.Redirect("/dashboard", fasthttp.StatusSeeOther)
		case gateUnauthorized:
			response.NewResponse[any](ctx, "Authentication required", nil).
				WithError(perrors.NewErrUnauthorized("Authentication required", errors.New("no valid session"))).
				Write(ctx)
		case gateForbidden:
			response.NewResponse[any](ctx, "Admin access required", nil).
				WithError(perrors.NewErrForbidden("Admin access required", errors.New("admin role required"))).
				Write(ctx)
		default:
			next(ctx)
		}
	}
}
