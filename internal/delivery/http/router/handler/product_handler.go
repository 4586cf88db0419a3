package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/validation"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// imageFormField is the multipart field carrying the product image.
const imageFormField = "image"

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc        usecase.ProductUsecase
	validator *validation.Validator
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, validator *validation.Validator, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:        uc,
		validator: validator,
		logger:    logger,
	}
}

// Create handles product creation from a multipart form with an optional
// image file.
func (h *ProductHandler) Create(c echo.Context) error {
	name := c.FormValue("name")
	description := c.FormValue("description")
	priceRaw := c.FormValue("price")

	fieldErrors := h.validator.Apply(map[string]string{
		"price": priceRaw,
	}, validation.ProductRules())
	if len(fieldErrors) > 0 {
		return response.ValidationFailed(c, fieldErrors)
	}

	if name == "" || description == "" || priceRaw == "" {
		return response.BadRequest(c, "MISSING_FIELDS", "All fields are required")
	}

	// The rule list already proved priceRaw parses as a positive number.
	price, _ := strconv.ParseFloat(priceRaw, 64)

	input := &usecase.CreateProductInput{
		Name:        name,
		Description: description,
		Price:       price,
	}

	image, closeImage, err := h.openImage(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid image attachment")
	}
	if image != nil {
		defer closeImage()
		input.Image = image
	}

	output, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, output, "Product created successfully")
}

// List returns all catalog products.
func (h *ProductHandler) List(c echo.Context) error {
	output, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Products retrieved successfully")
}

// Get returns a single product by id.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	output, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Product retrieved successfully")
}

// Update applies a partial update: fields absent from the form keep their
// previous values.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	params, err := c.FormParams()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product input")
	}

	input := &usecase.UpdateProductInput{}
	provided := map[string]string{}

	if params.Has("name") {
		name := params.Get("name")
		input.Name = &name
	}
	if params.Has("description") {
		description := params.Get("description")
		input.Description = &description
	}
	if params.Has("price") {
		provided["price"] = params.Get("price")
	}

	fieldErrors := h.validator.Apply(provided, validation.ProductRules())
	if len(fieldErrors) > 0 {
		return response.ValidationFailed(c, fieldErrors)
	}

	if raw, ok := provided["price"]; ok {
		price, _ := strconv.ParseFloat(raw, 64)
		input.Price = &price
	}

	image, closeImage, err := h.openImage(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid image attachment")
	}
	if image != nil {
		defer closeImage()
		input.Image = image
	}

	output, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Product updated successfully")
}

// Delete removes a product and attempts remote image cleanup.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted successfully"}, "Product deleted successfully")
}

// openImage extracts the optional image attachment from the request. The
// returned close function releases the underlying multipart file.
func (h *ProductHandler) openImage(c echo.Context) (*usecase.ImageUpload, func(), error) {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		// http.ErrMissingFile and absent multipart bodies both mean "no
		// attachment", which is fine.
		return nil, nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	upload := &usecase.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	}

	return upload, func() { _ = file.Close() }, nil
}
