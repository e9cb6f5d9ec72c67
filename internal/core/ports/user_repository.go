package ports

import (
	"context"

	"github.com/personal/inventory-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// RoleRepository looks up members of the seeded role enumeration.
type RoleRepository interface {
	// FindByName returns the stored role with the given name, or
	// domain.ErrRoleNotSeeded when the bootstrap seed is missing it.
	FindByName(ctx context.Context, name string) (domain.Role, error)
}
