// Package router contains routing setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects the handlers and middleware the router registers.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the router. Fx injects the handlers.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Frontend page stub
	e.File("/", "web/index.html")

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/all-users", r.authHandler.ListUsers, r.authMiddleware.Authenticate)
	}

	productGroup := api.Group("/product")
	{
		productGroup.POST("", r.productHandler.Create, r.authMiddleware.Authenticate)
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.PUT("/:id", r.productHandler.Update, r.authMiddleware.Authenticate)
		productGroup.DELETE("/:id", r.productHandler.Delete, r.authMiddleware.Authenticate)
	}

	orderGroup := api.Group("/order", r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.PUT("/:id/status", r.orderHandler.UpdateStatus)
	}
}
