package impl

import (
	"context"
	"log/slog"

	deliverycontext "supermall/internal/delivery/context"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/service"
	"supermall/internal/usecase"
	"supermall/internal/validation"

	"go.uber.org/fx"
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	uploader service.ImageUploader
	audit    service.AuditTrail
	logger   *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Uploader service.ImageUploader
	Audit    service.AuditTrail
	Logger   *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		uploader: params.Uploader,
		audit:    params.Audit,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage validates type and size, forwards the image to the host,
// and returns the hosted public URL.
func (srv *uploadService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (string, error) {
	if !validation.ImageFile(input.ContentType, input.Size) {
		return "", domainerrors.ErrInvalidImage
	}

	url, err := srv.uploader.Upload(ctx, input.Filename, input.ContentType, input.Data)
	if err != nil {
		srv.log(ctx).Error("image upload failed",
			slog.String("filename", input.Filename),
			slog.Any("error", err),
		)

		return "", domainerrors.ErrImageUploadFailed
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    input.ActorUID,
		Action:      "upload.image",
		Description: "image uploaded",
		Metadata:    map[string]string{"filename": input.Filename},
	})

	return url, nil
}
