package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists an order and all of its lines. GORM cascades the Lines
// association; callers run this inside TransactionManager.Execute to make
// the whole write all-or-nothing.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidOrderData.WrapMessage("order references a missing user or product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	*order = *toOrderDomain(orderM)

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Lines").
		First(&orderM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	var models []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Lines").
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(models))
	for i := range models {
		orders = append(orders, toOrderDomain(&models[i]))
	}

	return orders, nil
}

// UpdateStatus changes the status of an existing order and returns the
// updated entity.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrOrderNotFound
	}

	return repo.FindByID(ctx, id)
}

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	lines := make([]model.OrderLineModel, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, model.OrderLineModel{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	return &model.OrderModel{
		ID:          order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		Lines:       lines,
	}
}

func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	lines := make([]entity.OrderLine, 0, len(orderM.Lines))
	for _, lineM := range orderM.Lines {
		lines = append(lines, entity.OrderLine{
			ID:        lineM.ID,
			OrderID:   lineM.OrderID,
			ProductID: lineM.ProductID,
			Quantity:  lineM.Quantity,
			Price:     lineM.Price,
		})
	}

	return &entity.Order{
		ID:          orderM.ID,
		UserID:      orderM.UserID,
		TotalAmount: orderM.TotalAmount,
		Status:      orderM.Status,
		Lines:       lines,
		CreatedAt:   orderM.CreatedAt,
		UpdatedAt:   orderM.UpdatedAt,
	}
}
