package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/nutridiary/backend/config"
)

// ImageService stores food images in S3 and hands back public URLs for the
// imageUrl field on catalog foods and log entries.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates a new ImageService instance.
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// Upload stores the image under a fresh key and returns its public URL.
func (s *ImageService) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if s.s3Config == nil || s.s3Config.Client == nil {
		return "", fmt.Errorf("image storage is not configured")
	}

	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return "", validationf("unsupported image type %q", ext)
	}

	key := fmt.Sprintf("food-images/%s%s", uuid.NewString(), ext)
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("[ImageService] Uploaded %s to %s", filename, url)
	return url, nil
}
