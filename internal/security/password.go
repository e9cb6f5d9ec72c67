// Package security holds the credential hashing and session token primitives
// shared by the authentication service and the HTTP middleware.
package security

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/personal/inventory-api/internal/api/metrics"
)

// HashPassword produces a salted bcrypt digest of the plaintext. The salt is
// random, so repeated calls on the same input yield different digests.
func HashPassword(plaintext string) (string, error) {
	start := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	metrics.PasswordHashDuration.WithLabelValues("hash").Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext is the password originally hashed
// into digest. A malformed digest simply yields false; it never propagates an
// error into authentication logic.
func CheckPassword(plaintext, digest string) bool {
	start := time.Now()
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	metrics.PasswordHashDuration.WithLabelValues("verify").Observe(time.Since(start).Seconds())
	return err == nil
}
