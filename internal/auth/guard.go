package auth

import (
	"context"
	"errors"

	"github.com/valyala/fasthttp"
)

var (
	// ErrUnauthenticated means there is no valid session, or the session
	// references a user that no longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the session is valid but the user's current role
	// does not satisfy the requirement.
	ErrForbidden = errors.New("insufficient role")
)

// Principal is the resolved acting user for one request, loaded fresh
// from the store at guard time.
type Principal struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// PrincipalStore resolves a user id to its current identity record.
type PrincipalStore interface {
	FindPrincipal(ctx context.Context, id int64) (*Principal, error)
}

// Guard is the per-handler enforcement point. The session token only
// proves prior authentication; name, email and role always come from the
// store so deletions and demotions take effect immediately.
type Guard struct {
	sessions *SessionManager
	store    PrincipalStore
}

func NewGuard(sessions *SessionManager, store PrincipalStore) *Guard {
	return &Guard{sessions: sessions, store: store}
}

// RequireAuth resolves the acting principal for the request, failing
// with ErrUnauthenticated when there is no session or the referenced
// user row is gone (stale session).
func (g *Guard) RequireAuth(ctx context.Context, rctx *fasthttp.RequestCtx) (*Principal, error) {
	claims, ok := g.sessions.Current(rctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	p, err := g.store.FindPrincipal(ctx, claims.UserID)
	if err != nil || p == nil {
		return nil, ErrUnauthenticated
	}

	return p, nil
}

// RequireRole authenticates first, then checks the freshly loaded role.
// The ordering is load-bearing: an anonymous request is never told
// "forbidden".
func (g *Guard) RequireRole(ctx context.Context, rctx *fasthttp.RequestCtx, roles ...string) (*Principal, error) {
	p, err := g.RequireAuth(ctx, rctx)
	if err != nil {
		return nil, err
	}

	for _, r := range roles {
		if p.Role == r {
			return p, nil
		}
	}

	return nil, ErrForbidden
}

// RequireAdmin is RequireRole("admin").
func (g *Guard) RequireAdmin(ctx context.Context, rctx *fasthttp.RequestCtx) (*Principal, error) {
	return g.RequireRole(ctx, rctx, RoleAdmin)
}
