package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

const inventoryCollection = "inventory_events"

// InventoryRepository persists stock-mutation audit records.
type InventoryRepository struct {
	coll *mongo.Collection
}

func NewInventoryRepository(db *mongo.Database) ports.InventoryRepository {
	return &InventoryRepository{coll: db.Collection(inventoryCollection)}
}

func (r *InventoryRepository) InsertEvent(ctx context.Context, event *domain.InventoryEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"sweet_id":     event.SweetID,
		"sweet_name":   event.SweetName,
		"action":       string(event.Action),
		"delta":        event.Delta,
		"remaining":    event.Remaining,
		"actor":        event.Actor,
		"timestamp":    event.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return storeErr("insert inventory event", err)
	}
	return nil
}
