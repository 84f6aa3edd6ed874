package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// SessionDuration is how long an issued session token stays valid.
const SessionDuration = 7 * 24 * time.Hour

// SessionClaims is the payload carried by a session token. The embedded
// role reflects the user's role at issuance time; authorization decisions
// must re-read the current role from the store.
type SessionClaims struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies session tokens with a process-wide
// secret loaded once at startup.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Issue signs a token for the given user with iat/exp derived from ttl.
func (c *TokenCodec) Issue(userID int64, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify decodes a token. An invalid token (bad signature, malformed
// structure, past expiry) yields ok=false; it never returns an error for
// the caller to handle.
func (c *TokenCodec) Verify(token string) (*SessionClaims, bool) {
	parsed, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, false
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}
