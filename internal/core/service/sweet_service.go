package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-shop-api/internal/api/metrics"
	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

// InventoryDispatcher is the interface the service uses to enqueue audit
// events for asynchronous persistence.
type InventoryDispatcher interface {
	Enqueue(event domain.InventoryEvent)
}

// SweetService implements catalog CRUD and the purchase/restock inventory
// operations. Stock invariants are enforced by the repository's atomic
// conditional updates; this layer validates input and records the outcome.
type SweetService struct {
	repo       ports.SweetRepository
	dispatcher InventoryDispatcher
	logger     zerolog.Logger
}

func NewSweetService(repo ports.SweetRepository, dispatcher InventoryDispatcher, logger zerolog.Logger) *SweetService {
	return &SweetService{repo: repo, dispatcher: dispatcher, logger: logger}
}

func (s *SweetService) Create(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
	if input.Name == "" || input.Price < 0 || input.Quantity < 0 {
		return nil, domain.ErrInvalidSweet
	}

	sweet := &domain.Sweet{
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Quantity: input.Quantity,
	}

	created, err := s.repo.Create(ctx, sweet)
	if err != nil {
		return nil, err
	}

	metrics.SweetsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.logger.Info().Str("sweet_id", created.ID).Str("name", created.Name).Msg("sweet created")
	return created, nil
}

func (s *SweetService) List(ctx context.Context) ([]*domain.Sweet, error) {
	return s.repo.List(ctx)
}

func (s *SweetService) Search(ctx context.Context, filter ports.SearchFilter) ([]*domain.Sweet, error) {
	return s.repo.Search(ctx, filter)
}

// Purchase decrements stock by one. The quantity > 0 check and the decrement
// happen in a single storage operation, so concurrent purchases can never
// drive the count below zero.
func (s *SweetService) Purchase(ctx context.Context, id, actor string) (*domain.Sweet, error) {
	updated, err := s.repo.Purchase(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrOutOfStock) {
			metrics.PurchasesTotal.WithLabelValues("out_of_stock").Inc()
		}
		return nil, err
	}

	metrics.PurchasesTotal.WithLabelValues("ok").Inc()
	s.enqueue(domain.InventoryEvent{
		SweetID:   updated.ID,
		SweetName: updated.Name,
		Action:    domain.ActionPurchase,
		Delta:     -1,
		Remaining: updated.Quantity,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})

	s.logger.Info().Str("sweet_id", updated.ID).Int64("remaining", updated.Quantity).Str("actor", actor).Msg("sweet purchased")
	return updated, nil
}

// Restock increments stock by amount. The surface validates amount already;
// the repository re-validates it as the last line of defense.
func (s *SweetService) Restock(ctx context.Context, id string, amount int64, actor string) (*domain.Sweet, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	updated, err := s.repo.Restock(ctx, id, amount)
	if err != nil {
		return nil, err
	}

	metrics.RestocksTotal.Inc()
	s.enqueue(domain.InventoryEvent{
		SweetID:   updated.ID,
		SweetName: updated.Name,
		Action:    domain.ActionRestock,
		Delta:     amount,
		Remaining: updated.Quantity,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})

	s.logger.Info().Str("sweet_id", updated.ID).Int64("amount", amount).Str("actor", actor).Msg("sweet restocked")
	return updated, nil
}

func (s *SweetService) Update(ctx context.Context, id string, patch domain.SweetPatch) (*domain.Sweet, error) {
	if patch.Price != nil && *patch.Price < 0 {
		return nil, domain.ErrInvalidSweet
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return nil, domain.ErrInvalidSweet
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *SweetService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("sweet_id", id).Msg("sweet deleted")
	return nil
}

func (s *SweetService) enqueue(event domain.InventoryEvent) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Enqueue(event)
}
