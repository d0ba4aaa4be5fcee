package upload

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"supermall/internal/domain/lifecycle"
	"supermall/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Registered bucket drivers. The URL scheme in config selects one.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// bucketUploader stores images in a cloud storage bucket opened through a
// portable gocloud.dev URL. Objects get uuid keys so uploads never clash.
type bucketUploader struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBucketUploader opens the bucket and ties its shutdown to the
// application lifecycle.
func NewBucketUploader(lc fx.Lifecycle, bucketURL, publicBaseURL string) (service.ImageUploader, error) {
	if publicBaseURL == "" {
		return nil, errors.New("public base url is required for bucket provider")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &bucketUploader{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Upload writes the image under a fresh uuid key and returns its public URL.
func (u *bucketUploader) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	key := uuid.New().String() + strings.ToLower(path.Ext(filename))

	writer, err := u.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}
	if _, err := io.Copy(writer, r); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write image to bucket")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize bucket write")
	}

	return fmt.Sprintf("%s/%s", u.publicBaseURL, key), nil
}
