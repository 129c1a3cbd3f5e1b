package media

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"nazzy-pedidos/internal/config"
)

// Service stores image assets (avatars, logos, backgrounds) and returns the
// public URLs used as image references in user and settings records.
type Service interface {
	Upload(ctx context.Context, kind, fileName, mimeType string, fileSize int64, reader io.Reader) (string, error)
}

type service struct {
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(minioClient *minio.Client, cfg *config.Config) Service {
	return &service{minioClient: minioClient, cfg: cfg}
}

func (s *service) Upload(ctx context.Context, kind, fileName, mimeType string, fileSize int64, reader io.Reader) (string, error) {
	if s.minioClient == nil {
		return "", fmt.Errorf("media storage is not configured")
	}

	storagePath := fmt.Sprintf("%s/%s/%s", kind, time.Now().Format("2006/01"), uuid.New().String())
	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return s.publicURL(storagePath), nil
}

func (s *service) publicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	u := url.URL{
		Scheme: scheme,
		Host:   s.cfg.MinIOPublicEndpoint,
		Path:   fmt.Sprintf("/%s/%s", s.cfg.MinIOBucket, storagePath),
	}
	return u.String()
}
