package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/personal/inventory-api/internal/core/domain"
	"github.com/personal/inventory-api/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.nextID++
	clone := *p
	clone.ID = fmt.Sprintf("prod-%d", r.nextID)
	r.products[clone.ID] = &clone
	return &clone, nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, p *domain.Product) (*domain.Product, error) {
	existing, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	existing.Name = p.Name
	existing.Description = p.Description
	existing.Quantity = p.Quantity
	existing.UpdatedAt = p.UpdatedAt
	clone := *existing
	return &clone, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func TestProductService_CRUD(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.ProductInput{Name: "Widget", Description: "A widget", Quantity: 3})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" || created.Name != "Widget" || created.Quantity != 3 {
		t.Fatalf("unexpected product: %+v", created)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("timestamps must be set on create")
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil || got.Name != "Widget" {
		t.Fatalf("Get: %+v %v", got, err)
	}

	updated, err := svc.Update(ctx, created.ID, ports.ProductInput{Name: "Widget v2", Description: "Better", Quantity: 7})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Widget v2" || updated.Quantity != 7 {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	all, err := svc.List(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("List: %d items, err %v", len(all), err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
}

func TestProductService_GetUnknown(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
