package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/personal/inventory-api/internal/core/domain"
	"github.com/personal/inventory-api/internal/core/ports"
	"github.com/personal/inventory-api/internal/security"
)

// AuthService implements registration and login on top of the user and role
// stores, the credential hasher, and the token service.
type AuthService struct {
	users    ports.UserRepository
	roles    ports.RoleRepository
	resolver ports.PrincipalResolver
	tokens   ports.TokenIssuer
	limiter  ports.LoginLimiter // optional
	audit    ports.AuditSink    // optional
	logger   zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	resolver ports.PrincipalResolver,
	tokens ports.TokenIssuer,
	limiter ports.LoginLimiter,
	audit ports.AuditSink,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		roles:    roles,
		resolver: resolver,
		tokens:   tokens,
		limiter:  limiter,
		audit:    audit,
		logger:   logger,
	}
}

// SignIn verifies the credentials and issues a session token bound to the
// resolved username. Unknown users and wrong passwords both surface as
// domain.ErrInvalidCredentials so usernames cannot be enumerated.
func (s *AuthService) SignIn(ctx context.Context, input ports.SignInInput) (*ports.SignInResult, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, input.Username)
		if err != nil {
			// Throttling is advisory: a broken limiter must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login limiter unavailable")
		} else if !allowed {
			s.recordAudit(input.Username, domain.ActionSignIn, false, input.RemoteAddr, "throttled")
			return nil, domain.ErrTooManyAttempts
		}
	}

	principal, err := s.resolver.ResolveByCredentials(ctx, input.Username, input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
			if s.limiter != nil {
				if lerr := s.limiter.RecordFailure(ctx, input.Username); lerr != nil {
					s.logger.Warn().Err(lerr).Msg("failed to record login failure")
				}
			}
			s.recordAudit(input.Username, domain.ActionSignIn, false, input.RemoteAddr, "bad credentials")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := s.tokens.Issue(principal.Username)
	if err != nil {
		return nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, input.Username); err != nil {
			s.logger.Warn().Err(err).Msg("failed to reset login limiter")
		}
	}
	s.recordAudit(principal.Username, domain.ActionSignIn, true, input.RemoteAddr, "")
	s.logger.Info().Str("username", principal.Username).Msg("user signed in")

	return &ports.SignInResult{
		Token:       token,
		ID:          principal.ID,
		Username:    principal.Username,
		Email:       principal.Email,
		Authorities: principal.Authorities,
	}, nil
}

// SignUp registers a new account. The username uniqueness check runs before
// the email check; when both are violated only the username failure is
// reported. Requested role names resolve case-insensitively against the
// closed enumeration, unknown names falling back to USER; a missing seed role
// is a bootstrap defect and aborts the registration.
func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) (*domain.User, error) {
	taken, err := s.users.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		s.recordAudit(input.Username, domain.ActionSignUp, false, input.RemoteAddr, "username taken")
		return nil, domain.ErrUsernameTaken
	}

	inUse, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if inUse {
		s.recordAudit(input.Username, domain.ActionSignUp, false, input.RemoteAddr, "email in use")
		return nil, domain.ErrEmailInUse
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	roles, err := s.resolveRoles(ctx, input.Roles)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
		Active:       true,
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.recordAudit(created.Username, domain.ActionSignUp, true, input.RemoteAddr, "")
	s.logger.Info().Str("username", created.Username).Strs("roles", created.Authorities()).Msg("user registered")
	return created, nil
}

// resolveRoles maps requested role names onto stored roles, verifying each
// one exists in the role store before it is assigned.
func (s *AuthService) resolveRoles(ctx context.Context, names []string) ([]domain.Role, error) {
	resolved := domain.ResolveRoles(names)
	roles := make([]domain.Role, 0, len(resolved))
	for _, r := range resolved {
		stored, err := s.roles.FindByName(ctx, string(r))
		if err != nil {
			return nil, err
		}
		roles = append(roles, stored)
	}
	return roles, nil
}

func (s *AuthService) recordAudit(username string, action domain.AuthAction, success bool, remoteAddr, reason string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuthEvent{
		Username:   username,
		Action:     action,
		Success:    success,
		RemoteAddr: remoteAddr,
		Reason:     reason,
		Timestamp:  time.Now().UTC(),
	})
}
