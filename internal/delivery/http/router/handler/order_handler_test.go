package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderUsecase struct {
	createInput *usecase.CreateOrderInput
	statusInput *usecase.UpdateOrderStatusInput
	statusID    uuid.UUID
}

func (s *stubOrderUsecase) CreateOrder(_ context.Context, input *usecase.CreateOrderInput) (*usecase.OrderOutput, error) {
	s.createInput = input

	return &usecase.OrderOutput{ID: uuid.New(), UserID: input.UserID, Status: input.Status}, nil
}

func (s *stubOrderUsecase) ListOrders(context.Context) ([]*usecase.OrderOutput, error) {
	return []*usecase.OrderOutput{}, nil
}

func (s *stubOrderUsecase) GetOrder(_ context.Context, id uuid.UUID) (*usecase.OrderOutput, error) {
	return &usecase.OrderOutput{ID: id}, nil
}

func (s *stubOrderUsecase) UpdateOrderStatus(_ context.Context, id uuid.UUID, input *usecase.UpdateOrderStatusInput) (*usecase.OrderOutput, error) {
	s.statusID = id
	s.statusInput = input

	return &usecase.OrderOutput{ID: id, Status: input.Status}, nil
}

func newOrderHandlerFixture() (*OrderHandler, *stubOrderUsecase) {
	uc := &stubOrderUsecase{}

	return NewOrderHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil))), uc
}

func orderJSON(userID, productID uuid.UUID) string {
	return fmt.Sprintf(
		`{"userId":%q,"products":[{"productId":%q,"quantity":2,"price":9.99}],"totalAmount":19.98,"status":"pending"}`,
		userID, productID)
}

func TestOrderHandler_Create_Success(t *testing.T) {
	handler, uc := newOrderHandlerFixture()
	userID := uuid.New()

	c, rec := postJSON(t, "/api/order", orderJSON(userID, uuid.New()))
	require.NoError(t, handler.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order created successfully")
	require.NotNil(t, uc.createInput)
	assert.Equal(t, userID, uc.createInput.UserID)
	assert.Equal(t, 9.99, uc.createInput.Products[0].Price)
}

func TestOrderHandler_Create_Invalid(t *testing.T) {
	handler, uc := newOrderHandlerFixture()
	userID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name string
		body string
	}{
		{"missing user", fmt.Sprintf(
			`{"products":[{"productId":%q,"quantity":1,"price":5}],"totalAmount":5,"status":"pending"}`, productID)},
		{"empty products", fmt.Sprintf(
			`{"userId":%q,"products":[],"totalAmount":5,"status":"pending"}`, userID)},
		{"zero quantity", fmt.Sprintf(
			`{"userId":%q,"products":[{"productId":%q,"quantity":0,"price":5}],"totalAmount":5,"status":"pending"}`, userID, productID)},
		{"negative price", fmt.Sprintf(
			`{"userId":%q,"products":[{"productId":%q,"quantity":1,"price":-5}],"totalAmount":5,"status":"pending"}`, userID, productID)},
		{"missing status", fmt.Sprintf(
			`{"userId":%q,"products":[{"productId":%q,"quantity":1,"price":5}],"totalAmount":5}`, userID, productID)},
		{"zero total", fmt.Sprintf(
			`{"userId":%q,"products":[{"productId":%q,"quantity":1,"price":5}],"totalAmount":0,"status":"pending"}`, userID, productID)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := postJSON(t, "/api/order", tt.body)
			require.NoError(t, handler.Create(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "INVALID_ORDER_DATA")
			assert.Nil(t, uc.createInput)
		})
	}
}

func TestOrderHandler_Get_BadID(t *testing.T) {
	handler, _ := newOrderHandlerFixture()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/order/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ORDER_NOT_FOUND")
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	handler, uc := newOrderHandlerFixture()
	orderID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/order/"+orderID.String()+"/status",
		strings.NewReader(`{"status":"shipped"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	require.NoError(t, handler.UpdateStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, orderID, uc.statusID)
	assert.Equal(t, "shipped", uc.statusInput.Status)
}

func TestOrderHandler_UpdateStatus_MissingStatus(t *testing.T) {
	handler, uc := newOrderHandlerFixture()
	orderID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/order/"+orderID.String()+"/status",
		strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	require.NoError(t, handler.UpdateStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Status is required")
	assert.Nil(t, uc.statusInput)
}
