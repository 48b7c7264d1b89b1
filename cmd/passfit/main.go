package main

import (
	"context"
	"log/slog"
	"os"

	"passfit/config"
	"passfit/internal/delivery"
	"passfit/internal/delivery/http"
	"passfit/internal/delivery/http/middleware"
	"passfit/internal/delivery/http/router/handler"
	"passfit/internal/domain/service"
	"passfit/internal/infra/auth"
	"passfit/internal/infra/cache"
	"passfit/internal/infra/location"
	logs "passfit/internal/infra/log"
	"passfit/internal/infra/persistence/firestore"
	"passfit/internal/infra/pubsub"
	"passfit/internal/infra/qrcode"
	"passfit/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		pubsub.Module,
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
		firestore.New,
		cache.NewStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewUserRepository,
			firestore.NewStudioRepository,
			firestore.NewCheckInRepository,
			firestore.NewSubscriptionRepository,
			firestore.NewPositionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewFirebaseTokenVerifier,
			location.NewDevicePositionSource,
			newCheckInCodeService,
		),
	)
}

// newCheckInCodeService creates the QR code service with dependency injection
func newCheckInCodeService(cfg *config.Config) service.CheckInCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewCheckInCodeService(256, "M")
	}

	return qrcode.NewCheckInCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewLocatorService,
			impl.NewDirectoryService,
			impl.NewCheckInService,
			impl.NewSubscriptionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewLocationHandler,
			handler.NewStudioHandler,
			handler.NewCheckInHandler,
			handler.NewSubscriptionHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
