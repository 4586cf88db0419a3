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

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	var models []model.ProductModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(models))
	for i := range models {
		products = append(products, toProductDomain(&models[i]))
	}

	return products, nil
}

// Update overwrites the stored product with the given entity. Field-level
// fallback for partial updates is resolved by the use case before this call.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        productM.Name,
			"description": productM.Description,
			"price":       productM.Price,
			"image_url":   productM.ImageURL,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	var imageURL *string
	if product.ImageURL != "" {
		imageURL = &product.ImageURL
	}

	return &model.ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    imageURL,
	}
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:          productM.ID,
		Name:        productM.Name,
		Description: productM.Description,
		Price:       productM.Price,
		CreatedAt:   productM.CreatedAt,
		UpdatedAt:   productM.UpdatedAt,
	}
	if productM.ImageURL != nil {
		product.ImageURL = *productM.ImageURL
	}

	return product
}
