package domain

import "errors"

var ErrSweetNotFound = errors.New("sweet not found")
var ErrOutOfStock = errors.New("sweet is out of stock")
var ErrInvalidQuantity = errors.New("quantity must be greater than zero")
var ErrInvalidSweet = errors.New("price and quantity must not be negative")
var ErrForbidden = errors.New("access forbidden")
var ErrStoreUnavailable = errors.New("store unavailable")

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrTooManyAttempts = errors.New("too many login attempts")

// Sweet is a catalog item. Quantity is the current stock count and must
// never go negative; decrements happen only through conditional updates at
// the storage layer.
type Sweet struct {
	ID       string  `json:"id" bson:"_id,omitempty"`
	Name     string  `json:"name" bson:"name"`
	Category string  `json:"category" bson:"category"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int64   `json:"quantity" bson:"quantity"`
}

// SweetPatch carries a partial update. Nil fields are left unchanged.
type SweetPatch struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int64
}

// Empty reports whether the patch carries no fields at all.
func (p SweetPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.Price == nil && p.Quantity == nil
}
