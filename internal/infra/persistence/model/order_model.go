package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Lines cascade on create so an order
// and its lines land in the same insert batch.
type OrderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TotalAmount float64   `gorm:"type:numeric(12,2);not null"`
	Status      string    `gorm:"type:varchar(50);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Lines []OrderLineModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel mirrors the 'order_lines' table. Price is the snapshot
// taken at order time.
type OrderLineModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	Price     float64   `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}
