package usecase

import (
	"context"
	"io"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ImageUpload carries an attached image file through the use case layer.
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Image       *ImageUpload
}

// UpdateProductInput is a partial update: nil fields keep their previous
// value rather than being cleared.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *ImageUpload
}

// ProductOutput is the public view of a product.
type ProductOutput struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewProductOutput maps a domain product to its public view.
func NewProductOutput(product *entity.Product) *ProductOutput {
	return &ProductOutput{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ProductUsecase defines the interface for catalog operations.
type ProductUsecase interface {
	// CreateProduct uploads the attached image (if any) and persists the
	// product. Upload failure aborts the whole operation.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*ProductOutput, error)

	ListProducts(ctx context.Context) ([]*ProductOutput, error)

	GetProduct(ctx context.Context, id uuid.UUID) (*ProductOutput, error)

	// UpdateProduct applies a partial update. When a new image is attached
	// it is uploaded and confirmed before the old remote image is deleted;
	// deleting the old image is best-effort.
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*ProductOutput, error)

	// DeleteProduct removes the product. Remote image deletion is attempted
	// but its failure does not block removal of the local record.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
