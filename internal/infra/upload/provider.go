// Package upload implements the image host contract. Images are pushed to
// either Cloudinary's unsigned upload endpoint or a cloud storage bucket,
// and the returned public URL is what gets stored on the catalog document.
package upload

import (
	"log/slog"

	"supermall/config"
	"supermall/internal/domain/constants"
	"supermall/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the image uploader, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewImageUploader creates an ImageUploader based on configuration
func NewImageUploader(params Params) (service.ImageUploader, error) {
	cfg := params.Config.Upload

	switch cfg.Provider {
	case constants.UploadProviderCloudinary:
		if cfg.CloudName == "" || cfg.UploadPreset == "" {
			return nil, errors.New("cloud name and upload preset are required for cloudinary provider")
		}
		params.Logger.Info("Using Cloudinary image uploader",
			slog.String("cloud_name", cfg.CloudName),
		)

		return NewCloudinaryUploader(cfg.CloudName, cfg.UploadPreset), nil

	case constants.UploadProviderBucket:
		if cfg.BucketURL == "" {
			return nil, errors.New("bucket url is required for bucket provider")
		}
		params.Logger.Info("Using bucket image uploader",
			slog.String("bucket_url", cfg.BucketURL),
		)

		return NewBucketUploader(params.Lifecycle, cfg.BucketURL, cfg.PublicBaseURL)

	default:
		return nil, errors.Errorf("unknown upload provider: %s", cfg.Provider)
	}
}
