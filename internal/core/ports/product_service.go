package ports

import (
	"context"

	"github.com/personal/inventory-api/internal/core/domain"
)

// ProductInput is the DTO passed from the transport layer for create/update.
type ProductInput struct {
	Name        string
	Description string
	Quantity    int
}

// ProductService implements inventory CRUD business logic.
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
