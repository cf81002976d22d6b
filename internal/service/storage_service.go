package service

import (
	"bytes"
	"career_coach_backend/internal/config"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageService stores exported documents (resume markdown) either in
// MinIO or on local disk, selected by config.
type StorageService struct {
	Cfg   *config.StorageConfig
	minio *minio.Client
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	s := &StorageService{Cfg: &cfg.Storage}

	if cfg.Storage.Type == "minio" {
		client, err := minio.New(cfg.Storage.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.MinioAccessID, cfg.Storage.MinioSecret, ""),
			Secure: cfg.Storage.MinioUseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("init minio client: %w", err)
		}
		s.minio = client
	}

	return s, nil
}

// Upload writes the document under the given key and returns a
// retrievable location.
func (s *StorageService) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if s.minio != nil {
		_, err := s.minio.PutObject(ctx, s.Cfg.MinioBucket, key,
			bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{ContentType: contentType})
		if err != nil {
			return "", fmt.Errorf("minio upload: %w", err)
		}
		return fmt.Sprintf("%s/%s", s.Cfg.MinioBucket, key), nil
	}

	dst := filepath.Join(s.Cfg.LocalPath, key)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", err
	}
	return dst, nil
}
