package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	imageStore  service.ImageStore
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ImageStore  service.ImageStore
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		imageStore:  params.ImageStore,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct uploads the attached image first so a failed upload never
// leaves a product row pointing at nothing.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*usecase.ProductOutput, error) {
	var imageURL string
	if input.Image != nil {
		url, err := srv.imageStore.Upload(ctx, input.Image.Filename, input.Image.ContentType, input.Image.Content)
		if err != nil {
			srv.log(ctx).Error("Image upload failed", slog.Any("error", err))

			return nil, domainerrors.ErrImageUploadFailed.WrapMessage("create product aborted")
		}
		imageURL = url
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    imageURL,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID))

	return usecase.NewProductOutput(product), nil
}

func (srv *productService) ListProducts(ctx context.Context) ([]*usecase.ProductOutput, error) {
	products, err := srv.productRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	outputs := make([]*usecase.ProductOutput, 0, len(products))
	for _, product := range products {
		outputs = append(outputs, usecase.NewProductOutput(product))
	}

	return outputs, nil
}

func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*usecase.ProductOutput, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	return usecase.NewProductOutput(product), nil
}

// UpdateProduct resolves each field independently: a field omitted from the
// request keeps its previous value. A new image is uploaded and confirmed
// before the old remote image is deleted; that delete is best-effort.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*usecase.ProductOutput, error) {
	existing, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	imageURL := existing.ImageURL
	oldImageURL := ""
	if input.Image != nil {
		url, err := srv.imageStore.Upload(ctx, input.Image.Filename, input.Image.ContentType, input.Image.Content)
		if err != nil {
			srv.log(ctx).Error("Image upload failed", slog.Any("error", err))

			return nil, domainerrors.ErrImageUploadFailed.WrapMessage("update product aborted")
		}
		oldImageURL = existing.ImageURL
		imageURL = url
	}

	updated := &entity.Product{
		ID:          existing.ID,
		Name:        fallback(input.Name, existing.Name),
		Description: fallback(input.Description, existing.Description),
		Price:       fallback(input.Price, existing.Price),
		ImageURL:    imageURL,
	}
	if err := srv.productRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product vanished during update")
		}

		return nil, err
	}

	// Only after the new image and the row are in place does the old remote
	// image get removed.
	if oldImageURL != "" {
		if err := srv.imageStore.Delete(ctx, oldImageURL); err != nil {
			srv.log(ctx).Warn("Failed to delete replaced image", slog.String("url", oldImageURL), slog.Any("error", err))
		}
	}

	return srv.GetProduct(ctx, id)
}

// DeleteProduct attempts remote image deletion but removes the local record
// even when the remote call fails.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return err
	}

	if product.ImageURL != "" {
		if err := srv.imageStore.Delete(ctx, product.ImageURL); err != nil {
			srv.log(ctx).Warn("Failed to delete product image", slog.String("url", product.ImageURL), slog.Any("error", err))
		}
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product vanished during delete")
		}

		return err
	}

	srv.log(ctx).Debug("Product deleted", slog.Any("productID", id))

	return nil
}

func (srv *productService) findProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// fallback returns the override when supplied, the existing value otherwise.
func fallback[T any](override *T, existing T) T {
	if override != nil {
		return *override
	}

	return existing
}
