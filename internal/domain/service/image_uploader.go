package service

import (
	"context"
	"io"
)

// ImageUploader uploads an image to the configured host and returns its
// public URL. Validation of type and size happens before this is called.
type ImageUploader interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}
