package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"supermall/internal/domain/service"

	"github.com/pkg/errors"
)

const cloudinaryTimeout = 30 * time.Second

// cloudinaryUploader pushes images to Cloudinary's unsigned upload
// endpoint. Unsigned uploads carry no credentials; the preset on the
// Cloudinary side restricts what they may do.
type cloudinaryUploader struct {
	endpoint     string
	uploadPreset string
	httpClient   *http.Client
}

// NewCloudinaryUploader creates a new Cloudinary uploader
func NewCloudinaryUploader(cloudName, uploadPreset string) service.ImageUploader {
	return &cloudinaryUploader{
		endpoint:     fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
		uploadPreset: uploadPreset,
		httpClient:   &http.Client{Timeout: cloudinaryTimeout},
	}
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
}

// Upload sends the image as one multipart request and returns the hosted
// secure URL.
func (u *cloudinaryUploader) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("upload_preset", u.uploadPreset); err != nil {
		return "", errors.Wrap(err, "failed to write upload preset field")
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", errors.Wrap(err, "failed to create multipart file part")
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", errors.Wrap(err, "failed to copy image data")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", errors.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to call image host")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return "", errors.Errorf("image host returned status %d: %s", resp.StatusCode, payload)
	}

	var result cloudinaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "failed to decode image host response")
	}
	if result.SecureURL == "" {
		return "", errors.New("image host response missing secure url")
	}

	return result.SecureURL, nil
}
