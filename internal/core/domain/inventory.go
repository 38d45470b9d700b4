package domain

import "time"

// InventoryAction identifies the kind of stock mutation recorded in the audit trail.
type InventoryAction string

const (
	ActionPurchase InventoryAction = "purchase"
	ActionRestock  InventoryAction = "restock"
)

// InventoryEvent is an audit record of a single stock mutation.
type InventoryEvent struct {
	SweetID   string
	SweetName string
	Action    InventoryAction
	// Delta is the signed change applied to the stock count (-1 for a
	// purchase, +amount for a restock).
	Delta     int64
	Remaining int64
	Actor     string
	Timestamp time.Time
}
