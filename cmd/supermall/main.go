package main

import (
	"context"
	"log/slog"
	"os"

	"supermall/config"
	"supermall/internal/delivery"
	"supermall/internal/delivery/http"
	"supermall/internal/delivery/http/middleware"
	"supermall/internal/delivery/http/router/handler"
	"supermall/internal/domain/service"
	"supermall/internal/infra/audit"
	"supermall/internal/infra/auth"
	"supermall/internal/infra/auth/firebase"
	logs "supermall/internal/infra/log"
	"supermall/internal/infra/persistence/firestore"
	"supermall/internal/infra/pubsub"
	"supermall/internal/infra/qrcode"
	"supermall/internal/infra/upload"
	"supermall/internal/usecase/impl"

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
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewProfileRepository,
			firestore.NewMallRepository,
			firestore.NewShopRepository,
			firestore.NewProductRepository,
			firestore.NewOfferRepository,
			firestore.NewLookupRepository,
			firestore.NewActionLogRepository,
			firestore.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.NewIdentityProvider,
			auth.NewBcryptHasher,
			newQRCodeService,
			pubsub.NewEventPublisher,
			audit.NewTrail,
			upload.NewImageUploader,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewMerchantService,
			impl.NewMallService,
			impl.NewShopService,
			impl.NewProductService,
			impl.NewOfferService,
			impl.NewProfileService,
			impl.NewLookupService,
			impl.NewAuditService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMallHandler,
			handler.NewMerchantHandler,
			handler.NewShopHandler,
			handler.NewProductHandler,
			handler.NewOfferHandler,
			handler.NewProfileHandler,
			handler.NewLookupHandler,
			handler.NewUploadHandler,
			handler.NewAuditHandler,
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
