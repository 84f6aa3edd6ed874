package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the user table was seeded with.
const bcryptCost = 10

// HashPassword produces a self-describing bcrypt digest (algorithm, cost
// and salt are encoded in the digest itself).
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether password matches the stored digest.
// A malformed digest verifies as false, it never panics.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
