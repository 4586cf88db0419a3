package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is a purchase placed by a user. Lines are created atomically with
// the order; Status is mutable independently afterwards.
type Order struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TotalAmount float64
	Status      string
	Lines       []OrderLine
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderLine is a single product position within an order. Price is the
// price-at-order snapshot, not a live reference to the product's price.
type OrderLine struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Price     float64
}
