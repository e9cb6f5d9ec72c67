package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/personal/inventory-api/internal/api/metrics"
	"github.com/personal/inventory-api/internal/core/domain"
)

// PrincipalKey is the echo context key the authenticated principal is stored
// under.
const PrincipalKey = "principal"

// TokenVerifier is the slice of the token service the gate depends on.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// PrincipalLoader loads the principal for a verified token subject.
type PrincipalLoader interface {
	Resolve(ctx context.Context, username string) (*domain.Principal, error)
}

// Auth extracts and verifies the bearer token and attaches the resolved
// principal to the request context. A missing or invalid token is not an
// error here: the request continues without a principal and route-level
// authorization rejects it if one is required. Authorities are re-resolved
// from the user store on every request, so a role removed mid-token-lifetime
// stops granting access immediately.
func Auth(tokens TokenVerifier, resolver PrincipalLoader, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return next(c)
			}

			subject, err := tokens.Verify(token)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				log.Debug().Str("path", c.Path()).Msg("rejected invalid bearer token")
				return next(c)
			}
			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()

			principal, err := resolver.Resolve(c.Request().Context(), subject)
			if err != nil {
				// Token subject no longer exists; treat as unauthenticated.
				log.Debug().Str("subject", subject).Msg("token subject not resolvable")
				return next(c)
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

// bearerToken pulls the token out of the standard bearer-auth header.
// Returns "" when the header is absent or not a bearer scheme.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Principal returns the principal attached by Auth, or nil when the request
// is unauthenticated.
func Principal(c echo.Context) *domain.Principal {
	p, _ := c.Get(PrincipalKey).(*domain.Principal)
	return p
}
