package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/personal/inventory-api/internal/core/domain"
)

// TokenService signs and verifies stateless HS256 session tokens. The secret
// and TTL are fixed at construction and read-only afterwards, so a single
// instance is safe for concurrent use across requests.
type TokenService struct {
	secret []byte
	ttl    time.Duration

	// now is swappable in tests to exercise expiry.
	now func() time.Time
}

const defaultTokenTTL = 24 * time.Hour

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue creates a signed token for the given subject. The claim set is the
// minimum for stateless authentication: subject, issued-at, expiry. Roles are
// deliberately not embedded: authorities are re-derived on every request so
// revocation takes effect before the token expires.
func (s *TokenService) Issue(subject string) (string, error) {
	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's structure, signature, and expiry and returns the
// subject it was issued for. Any failure collapses to domain.ErrTokenInvalid;
// claims from an unverified token are never returned. Expiry is a hard cutoff
// with no clock-skew leeway.
func (s *TokenService) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid {
		return "", domain.ErrTokenInvalid
	}
	if claims.ExpiresAt == nil || claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}
