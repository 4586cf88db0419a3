// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/validation"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler holds dependencies for registration, login, and user listing.
type AuthHandler struct {
	uc        usecase.UserUsecase
	validator *validation.Validator
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, validator *validation.Validator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:        uc,
		validator: validator,
		logger:    logger,
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration input")
	}

	fieldErrors := h.validator.Apply(map[string]string{
		"email":    input.Email,
		"password": input.Password,
		"username": input.Username,
	}, validation.RegistrationRules())
	if len(fieldErrors) > 0 {
		return response.ValidationFailed(c, fieldErrors)
	}

	if input.Email == "" || input.Password == "" || input.Username == "" || input.Name == "" {
		return response.BadRequest(c, "MISSING_FIELDS", "All fields are required")
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, output, "User registered successfully")
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}

	fieldErrors := h.validator.Apply(map[string]string{
		"email":    input.Email,
		"password": input.Password,
	}, validation.LoginRules())
	if len(fieldErrors) > 0 {
		return response.ValidationFailed(c, fieldErrors)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// ListUsers returns every registered user, passwords excluded.
func (h *AuthHandler) ListUsers(c echo.Context) error {
	output, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Users retrieved successfully")
}
