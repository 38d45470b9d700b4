package ports

import (
	"context"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

// CreateSweetInput carries all data needed to add a catalog item.
type CreateSweetInput struct {
	Name     string
	Category string
	Price    float64
	Quantity int64
}

// SweetService defines the catalog and inventory use-cases. Actor is the
// authenticated subject performing the mutation, recorded in the audit trail.
type SweetService interface {
	Create(ctx context.Context, input CreateSweetInput) (*domain.Sweet, error)
	List(ctx context.Context) ([]*domain.Sweet, error)
	Search(ctx context.Context, filter SearchFilter) ([]*domain.Sweet, error)
	Purchase(ctx context.Context, id, actor string) (*domain.Sweet, error)
	Restock(ctx context.Context, id string, amount int64, actor string) (*domain.Sweet, error)
	Update(ctx context.Context, id string, patch domain.SweetPatch) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
}
