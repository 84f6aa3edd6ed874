package auth

import (
	"time"

	"github.com/valyala/fasthttp"
)

// SessionCookie is the cookie that carries the signed session token.
const SessionCookie = "session"

// SessionManager binds the token codec to the HTTP cookie lifecycle.
// Sessions are fully stateless: nothing is stored server-side, validity
// is a function of signature and expiry alone.
type SessionManager struct {
	codec  *TokenCodec
	secure bool
}

func NewSessionManager(codec *TokenCodec, secure bool) *SessionManager {
	return &SessionManager{codec: codec, secure: secure}
}

// Start issues a token and sets it as the session cookie. Cookie expiry
// is aligned with token expiry.
func (s *SessionManager) Start(ctx *fasthttp.RequestCtx, userID int64, role string) error {
	token, err := s.codec.Issue(userID, role, SessionDuration)
	if err != nil {
		return err
	}

	var cookie fasthttp.Cookie
	cookie.SetKey(SessionCookie)
	cookie.SetValue(token)
	cookie.SetPath("/")
	cookie.SetHTTPOnly(true)
	cookie.SetSecure(s.secure)
	cookie.SetSameSite(fasthttp.CookieSameSiteLaxMode)
	cookie.SetExpire(time.Now().Add(SessionDuration))
	ctx.Response.Header.SetCookie(&cookie)

	return nil
}

// Current returns the claims carried by the session cookie. A missing
// cookie and an invalid token are deliberately indistinguishable.
func (s *SessionManager) Current(ctx *fasthttp.RequestCtx) (*SessionClaims, bool) {
	token := ctx.Request.Header.Cookie(SessionCookie)
	if len(token) == 0 {
		return nil, false
	}
	return s.codec.Verify(string(token))
}

// End removes the session cookie. Idempotent, logout is purely
// client-side cookie deletion.
func (s *SessionManager) End(ctx *fasthttp.RequestCtx) {
	var cookie fasthttp.Cookie
	cookie.SetKey(SessionCookie)
	cookie.SetValue("")
	cookie.SetPath("/")
	cookie.SetHTTPOnly(true)
	cookie.SetExpire(time.Now().Add(-1 * time.Hour))
	ctx.Response.Header.SetCookie(&cookie)
}
