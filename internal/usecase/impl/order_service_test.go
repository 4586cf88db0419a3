package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	service   usecase.OrderUsecase
	orderRepo *fakeOrderRepo
	txManager *fakeTxManager
}

func createTestOrderService(t *testing.T) *orderServiceFixture {
	t.Helper()

	orderRepo := newFakeOrderRepo()
	txManager := &fakeTxManager{
		factory: &fakeRepoFactory{
			userRepo:    newFakeUserRepo(),
			productRepo: newFakeProductRepo(),
			orderRepo:   orderRepo,
		},
	}

	return &orderServiceFixture{
		service: NewOrderService(OrderServiceParams{
			TxManager: txManager,
			OrderRepo: orderRepo,
			Logger:    discardLogger(),
		}),
		orderRepo: orderRepo,
		txManager: txManager,
	}
}

func orderInput() *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		UserID: uuid.New(),
		Products: []usecase.OrderLineInput{
			{ProductID: uuid.New(), Quantity: 2, Price: 9.99},
			{ProductID: uuid.New(), Quantity: 1, Price: 49.50},
		},
		TotalAmount: 69.48,
		Status:      "pending",
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	input := orderInput()

	output, err := fx.service.CreateOrder(context.Background(), input)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, output.ID)
	assert.Equal(t, input.UserID, output.UserID)
	assert.Equal(t, "pending", output.Status)
	assert.Equal(t, 69.48, output.TotalAmount)
	require.Len(t, output.Products, 2)

	// Line prices are the snapshot the client supplied, not a catalog lookup.
	assert.Equal(t, 9.99, output.Products[0].Price)
	assert.Equal(t, 49.50, output.Products[1].Price)

	// The write went through the transaction manager.
	assert.Equal(t, 1, fx.txManager.executed)
}

func TestOrderService_CreateOrder_EmptyProducts(t *testing.T) {
	fx := createTestOrderService(t)
	input := orderInput()
	input.Products = nil

	_, err := fx.service.CreateOrder(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderData))

	// Nothing persisted and no transaction started.
	assert.Empty(t, fx.orderRepo.orders)
	assert.Zero(t, fx.txManager.executed)
}

func TestOrderService_CreateOrder_TransactionFailureLeavesNothing(t *testing.T) {
	fx := createTestOrderService(t)
	fx.orderRepo.createErr = errors.New("constraint violation")

	_, err := fx.service.CreateOrder(context.Background(), orderInput())
	require.Error(t, err)
	assert.Empty(t, fx.orderRepo.orders)
}

func TestOrderService_GetOrder(t *testing.T) {
	fx := createTestOrderService(t)

	created, err := fx.service.CreateOrder(context.Background(), orderInput())
	require.NoError(t, err)

	fetched, err := fx.service.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Len(t, fetched.Products, 2)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.GetOrder(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.CreateOrder(context.Background(), orderInput())
	require.NoError(t, err)
	_, err = fx.service.CreateOrder(context.Background(), orderInput())
	require.NoError(t, err)

	outputs, err := fx.service.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, outputs, 2)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	fx := createTestOrderService(t)

	created, err := fx.service.CreateOrder(context.Background(), orderInput())
	require.NoError(t, err)

	updated, err := fx.service.UpdateOrderStatus(context.Background(), created.ID, &usecase.UpdateOrderStatusInput{
		Status: "shipped",
	})
	require.NoError(t, err)
	assert.Equal(t, "shipped", updated.Status)
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), &usecase.UpdateOrderStatusInput{
		Status: "shipped",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
