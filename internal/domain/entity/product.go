package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item. ImageURL is empty when no image has been
// uploaded for the product.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
