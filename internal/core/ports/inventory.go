package ports

import (
	"context"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

// InventoryRepository persists stock-mutation audit records.
type InventoryRepository interface {
	InsertEvent(ctx context.Context, event *domain.InventoryEvent) error
}

// InventoryService consumes inventory events dequeued by the dispatcher.
type InventoryService interface {
	Process(ctx context.Context, event domain.InventoryEvent) error
}
