package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

type inventoryService struct {
	repo ports.InventoryRepository
	log  zerolog.Logger
}

// NewInventoryService returns an InventoryService that persists stock
// mutations to the audit collection.
func NewInventoryService(repo ports.InventoryRepository, log zerolog.Logger) ports.InventoryService {
	return &inventoryService{repo: repo, log: log}
}

// Process persists a single inventory event. The stock count itself was
// already mutated atomically by the sweet repository; this is audit only.
func (s *inventoryService) Process(ctx context.Context, event domain.InventoryEvent) error {
	if err := s.repo.InsertEvent(ctx, &event); err != nil {
		return fmt.Errorf("process inventory event: %w", err)
	}

	s.log.Debug().
		Str("sweet_id", event.SweetID).
		Str("action", string(event.Action)).
		Int64("delta", event.Delta).
		Msg("inventory event recorded")

	return nil
}
