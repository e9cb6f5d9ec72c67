package service

import (
	"context"

	"github.com/personal/inventory-api/internal/core/domain"
	"github.com/personal/inventory-api/internal/core/ports"
	"github.com/personal/inventory-api/internal/security"
)

// PrincipalResolver projects stored users into request-scoped principals.
// Authorities are derived from the user's role set at resolution time, never
// cached, so role changes apply on the next request.
type PrincipalResolver struct {
	users ports.UserRepository
}

func NewPrincipalResolver(users ports.UserRepository) *PrincipalResolver {
	return &PrincipalResolver{users: users}
}

// Resolve loads the principal for the given username.
func (r *PrincipalResolver) Resolve(ctx context.Context, username string) (*domain.Principal, error) {
	user, err := r.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return buildPrincipal(user), nil
}

// ResolveByID loads the principal for the given user id.
func (r *PrincipalResolver) ResolveByID(ctx context.Context, id string) (*domain.Principal, error) {
	user, err := r.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return buildPrincipal(user), nil
}

// ResolveByCredentials verifies the plaintext password against the stored
// hash before returning the principal. Inactive accounts are treated as bad
// credentials so their state is not observable from the outside.
func (r *PrincipalResolver) ResolveByCredentials(ctx context.Context, username, password string) (*domain.Principal, error) {
	user, err := r.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, domain.ErrInvalidCredentials
	}
	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return buildPrincipal(user), nil
}

func buildPrincipal(user *domain.User) *domain.Principal {
	return &domain.Principal{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Authorities: user.Authorities(),
	}
}
