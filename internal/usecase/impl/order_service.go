package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder persists the order and its lines as one indivisible write.
// A partial write (order without lines, or vice versa) must never land.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*usecase.OrderOutput, error) {
	if len(input.Products) == 0 {
		return nil, domainerrors.ErrInvalidOrderData.WrapMessage("products must be a non-empty list")
	}

	lines := make([]entity.OrderLine, 0, len(input.Products))
	for _, product := range input.Products {
		lines = append(lines, entity.OrderLine{
			ProductID: product.ProductID,
			Quantity:  product.Quantity,
			// Client-supplied price persisted as the at-order snapshot.
			Price: product.Price,
		})
	}

	order := &entity.Order{
		UserID:      input.UserID,
		TotalAmount: input.TotalAmount,
		Status:      input.Status,
		Lines:       lines,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute order creation transaction", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Order created", slog.Any("orderID", order.ID), slog.Int("lines", len(order.Lines)))

	return usecase.NewOrderOutput(order), nil
}

func (srv *orderService) ListOrders(ctx context.Context) ([]*usecase.OrderOutput, error) {
	orders, err := srv.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	outputs := make([]*usecase.OrderOutput, 0, len(orders))
	for _, order := range orders {
		outputs = append(outputs, usecase.NewOrderOutput(order))
	}

	return outputs, nil
}

func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*usecase.OrderOutput, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return usecase.NewOrderOutput(order), nil
}

func (srv *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, input *usecase.UpdateOrderStatusInput) (*usecase.OrderOutput, error) {
	order, err := srv.orderRepo.UpdateStatus(ctx, id, input.Status)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("status update failed")
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Debug("Order status updated", slog.Any("orderID", id), slog.String("status", input.Status))

	return usecase.NewOrderOutput(order), nil
}
