package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/http/validation"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProductService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			validation.New,
			handler.NewAuthHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
