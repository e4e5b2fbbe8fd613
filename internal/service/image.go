package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pageza/pantrychef/backend/config"
)

// maxImageBytes caps the size of a mirrored image.
const maxImageBytes = 10 << 20

// ObjectPutter is the part of the S3 client used for uploads.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageMirror copies a remote image somewhere durable and returns the new URL.
type ImageMirror interface {
	Mirror(ctx context.Context, imageURL string) (string, error)
}

// ImageService mirrors generated recipe images into S3
type ImageService struct {
	s3        ObjectPutter
	bucket    string
	publicURL func(key string) string
	client    *http.Client
}

// NewImageService creates a new ImageService instance
func NewImageService(s3Config *config.S3Config) *ImageService {
	return newImageService(s3Config.Client, s3Config.BucketName, s3Config.PublicURL, &http.Client{
		Timeout: 30 * time.Second,
	})
}

func newImageService(putter ObjectPutter, bucket string, publicURL func(string) string, client *http.Client) *ImageService {
	return &ImageService{s3: putter, bucket: bucket, publicURL: publicURL, client: client}
}

// Mirror downloads imageURL and uploads it under recipe-images/.
func (s *ImageService) Mirror(ctx context.Context, imageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download image, status: %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}
	if len(imageData) > maxImageBytes {
		return "", fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	contentType, ext := imageType(resp.Header.Get("Content-Type"), imageURL)
	key := fmt.Sprintf("recipe-images/%s%s", uuid.New().String(), ext)

	_, err = s.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := s.publicURL(key)
	zerolog.Ctx(ctx).Debug().Str("source", imageURL).Str("url", url).Msg("image mirrored")
	return url, nil
}

// imageType picks the content type and file extension, preferring the
// response header over the URL path.
func imageType(header, imageURL string) (string, string) {
	if mediaType, _, err := mime.ParseMediaType(header); err == nil && strings.HasPrefix(mediaType, "image/") {
		switch mediaType {
		case "image/jpeg":
			return mediaType, ".jpg"
		case "image/png":
			return mediaType, ".png"
		case "image/webp":
			return mediaType, ".webp"
		case "image/gif":
			return mediaType, ".gif"
		}
	}

	if i := strings.IndexAny(imageURL, "?#"); i >= 0 {
		imageURL = imageURL[:i]
	}
	switch strings.ToLower(path.Ext(imageURL)) {
	case ".png":
		return "image/png", ".png"
	case ".webp":
		return "image/webp", ".webp"
	case ".gif":
		return "image/gif", ".gif"
	default:
		return "image/jpeg", ".jpg"
	}
}
