package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/usecase"
	"supermall/internal/validation"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	url string
	err error

	uploadedFilename string
}

func (f *fakeUploader) Upload(_ context.Context, filename, _ string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploadedFilename = filename
	_, _ = io.Copy(io.Discard, r)

	return f.url, nil
}

func createTestUploadService(t *testing.T, uploader *fakeUploader) (usecase.UploadUsecase, *fakeAudit) {
	t.Helper()
	audit := &fakeAudit{}
	service := NewUploadService(UploadServiceParams{
		Uploader: uploader,
		Audit:    audit,
		Logger:   newDiscardLogger(),
	})

	return service, audit
}

func TestUploadService_UploadImage(t *testing.T) {
	uploader := &fakeUploader{url: "https://img.example.com/abc.png"}
	service, audit := createTestUploadService(t, uploader)

	url, err := service.UploadImage(context.Background(), &usecase.UploadImageInput{
		ActorUID:    "merchant-1",
		Filename:    "logo.png",
		ContentType: "image/png",
		Size:        1024,
		Data:        strings.NewReader("png bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/abc.png", url)
	assert.Equal(t, "logo.png", uploader.uploadedFilename)
	assert.Contains(t, audit.actions(), "upload.image")
}

func TestUploadService_UploadImage_RejectsBadType(t *testing.T) {
	service, _ := createTestUploadService(t, &fakeUploader{url: "unused"})

	_, err := service.UploadImage(context.Background(), &usecase.UploadImageInput{
		ActorUID:    "merchant-1",
		Filename:    "doc.pdf",
		ContentType: "application/pdf",
		Size:        1024,
		Data:        strings.NewReader("pdf bytes"),
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestUploadService_UploadImage_RejectsOversize(t *testing.T) {
	service, _ := createTestUploadService(t, &fakeUploader{url: "unused"})

	_, err := service.UploadImage(context.Background(), &usecase.UploadImageInput{
		ActorUID:    "merchant-1",
		Filename:    "huge.png",
		ContentType: "image/png",
		Size:        validation.MaxImageSize + 1,
		Data:        strings.NewReader("too big"),
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestUploadService_UploadImage_MapsHostFailure(t *testing.T) {
	service, audit := createTestUploadService(t, &fakeUploader{err: errors.New("host down")})

	_, err := service.UploadImage(context.Background(), &usecase.UploadImageInput{
		ActorUID:    "merchant-1",
		Filename:    "logo.png",
		ContentType: "image/png",
		Size:        1024,
		Data:        strings.NewReader("png bytes"),
	})

	require.ErrorIs(t, err, domainerrors.ErrImageUploadFailed)
	assert.Empty(t, audit.actions())
}
