package ports

import (
	"context"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

// SearchFilter carries the optional query parameters for searching sweets.
// Nil fields are not applied; all provided filters AND together.
type SearchFilter struct {
	Name     string // case-insensitive substring match
	Category string // exact match
	MinPrice *float64
	MaxPrice *float64
}

// SweetRepository defines persistence operations for the sweets collection.
// Every id-taking operation treats a malformed id as domain.ErrSweetNotFound.
type SweetRepository interface {
	// Create rejects negative price or quantity with domain.ErrInvalidSweet
	// and returns the stored record including its assigned id.
	Create(ctx context.Context, sweet *domain.Sweet) (*domain.Sweet, error)
	List(ctx context.Context) ([]*domain.Sweet, error)
	Search(ctx context.Context, filter SearchFilter) ([]*domain.Sweet, error)
	// Purchase atomically decrements the stock count by one, guarded by a
	// quantity > 0 precondition in the same storage operation. It returns
	// the updated record, domain.ErrSweetNotFound, or domain.ErrOutOfStock.
	Purchase(ctx context.Context, id string) (*domain.Sweet, error)
	// Restock atomically increments the stock count. A non-positive amount
	// fails with domain.ErrInvalidQuantity.
	Restock(ctx context.Context, id string, amount int64) (*domain.Sweet, error)
	// Update merges the provided patch fields into the record.
	Update(ctx context.Context, id string, patch domain.SweetPatch) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
}
