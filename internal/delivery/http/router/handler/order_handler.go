package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// Create places a new order. The order and all of its lines are persisted
// atomically.
func (h *OrderHandler) Create(c echo.Context) error {
	var input usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_ORDER_DATA", "Invalid order data")
	}

	if !validOrderInput(&input) {
		return response.BadRequest(c, "INVALID_ORDER_DATA", "Invalid order data")
	}

	output, err := h.uc.CreateOrder(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, output, "Order created successfully")
}

// List returns all orders with their lines.
func (h *OrderHandler) List(c echo.Context) error {
	output, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Orders retrieved successfully")
}

// Get returns a single order by id.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "ORDER_NOT_FOUND", "Order not found")
	}

	output, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Order retrieved successfully")
}

// UpdateStatus changes the status of an existing order.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "ORDER_NOT_FOUND", "Order not found")
	}

	var input usecase.UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid status input")
	}
	if input.Status == "" {
		return response.BadRequest(c, "MISSING_FIELDS", "Status is required")
	}

	output, err := h.uc.UpdateOrderStatus(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Order status updated successfully")
}

// validOrderInput checks the structural preconditions for placing an order:
// a known user, a non-empty product list with positive quantities and
// prices, a positive total, and a status.
func validOrderInput(input *usecase.CreateOrderInput) bool {
	if input.UserID == uuid.Nil || len(input.Products) == 0 {
		return false
	}
	if input.TotalAmount <= 0 || input.Status == "" {
		return false
	}
	for _, line := range input.Products {
		if line.ProductID == uuid.Nil || line.Quantity <= 0 || line.Price <= 0 {
			return false
		}
	}

	return true
}
