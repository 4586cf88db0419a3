package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderLineInput is one product position in a new order. Price is the
// client-supplied snapshot persisted as the price at time of order.
type OrderLineInput struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

// CreateOrderInput defines the data required to place an order. Products
// must be a non-empty list.
type CreateOrderInput struct {
	UserID      uuid.UUID        `json:"userId"`
	Products    []OrderLineInput `json:"products"`
	TotalAmount float64          `json:"totalAmount"`
	Status      string           `json:"status"`
}

// UpdateOrderStatusInput carries the new status for an existing order.
type UpdateOrderStatusInput struct {
	Status string `json:"status" form:"status"`
}

// OrderLineOutput is the public view of an order line.
type OrderLineOutput struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

// OrderOutput is the public view of an order with its lines.
type OrderOutput struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"userId"`
	TotalAmount float64           `json:"totalAmount"`
	Status      string            `json:"status"`
	Products    []OrderLineOutput `json:"products"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// NewOrderOutput maps a domain order to its public view.
func NewOrderOutput(order *entity.Order) *OrderOutput {
	lines := make([]OrderLineOutput, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, OrderLineOutput{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	return &OrderOutput{
		ID:          order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		Products:    lines,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

// OrderUsecase defines the interface for order operations.
type OrderUsecase interface {
	// CreateOrder persists the order and all of its lines atomically.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*OrderOutput, error)

	ListOrders(ctx context.Context) ([]*OrderOutput, error)

	GetOrder(ctx context.Context, id uuid.UUID) (*OrderOutput, error)

	UpdateOrderStatus(ctx context.Context, id uuid.UUID, input *UpdateOrderStatusInput) (*OrderOutput, error)
}
