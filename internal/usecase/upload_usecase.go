package usecase

import (
	"context"
	"io"
)

// UploadImageInput carries one image upload. Size is the declared length
// in bytes; type and size are validated before the host is contacted.
type UploadImageInput struct {
	ActorUID    string
	Filename    string
	ContentType string
	Size        int64
	Data        io.Reader
}

// UploadUsecase validates and forwards image uploads to the configured
// image host, returning the hosted public URL.
type UploadUsecase interface {
	UploadImage(ctx context.Context, input *UploadImageInput) (string, error)
}
