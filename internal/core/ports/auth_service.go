package ports

import (
	"context"

	"github.com/personal/inventory-api/internal/core/domain"
)

// SignUpInput carries everything needed to register a new account.
type SignUpInput struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
	// Roles holds the role names requested by the caller. Nil or empty means
	// the default role assignment (USER).
	Roles []string
	// RemoteAddr is recorded in the audit trail only.
	RemoteAddr string
}

// SignInInput carries login credentials.
type SignInInput struct {
	Username   string
	Password   string
	RemoteAddr string
}

// SignInResult is returned on successful authentication.
type SignInResult struct {
	Token       string
	ID          string
	Username    string
	Email       string
	Authorities []string
}

// AuthService implements registration and login.
type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, error)
	SignIn(ctx context.Context, input SignInInput) (*SignInResult, error)
}

// PrincipalResolver loads a user's stored identity and role set into the
// request-scoped principal representation used by the authorization layer.
type PrincipalResolver interface {
	Resolve(ctx context.Context, username string) (*domain.Principal, error)
	ResolveByID(ctx context.Context, id string) (*domain.Principal, error)
	// ResolveByCredentials verifies the supplied plaintext password against
	// the stored hash before returning the principal. Unknown users yield
	// domain.ErrUserNotFound and bad passwords domain.ErrInvalidCredentials;
	// callers must collapse both to one generic surface.
	ResolveByCredentials(ctx context.Context, username, password string) (*domain.Principal, error)
}

// TokenIssuer is the slice of the token service the auth flow depends on.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// LoginLimiter throttles repeated failed sign-in attempts per username.
type LoginLimiter interface {
	// Allow reports whether another attempt is permitted right now.
	Allow(ctx context.Context, username string) (bool, error)
	// RecordFailure counts a failed attempt against the username.
	RecordFailure(ctx context.Context, username string) error
	// Reset clears the failure count after a successful sign-in.
	Reset(ctx context.Context, username string) error
}
