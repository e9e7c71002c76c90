package filestore

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"print3d-backend/internal/config"
)

// keyPrefix — все загрузки лежат под одним префиксом бакета.
const keyPrefix = "uploads/"

type S3 struct {
	client        *minio.Client
	bucket        string
	region        string
	acl           string
	presignExpiry time.Duration
}

func NewS3(cfg config.S3Config) (*S3, error) {
	const op = "filestore.NewS3"

	client, err := minio.New("s3.amazonaws.com", &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: true,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &S3{
		client:        client,
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		acl:           cfg.ACL,
		presignExpiry: time.Duration(cfg.PresignExpiry) * time.Second,
	}, nil
}

func (s *S3) Storage() string { return StorageS3 }

func (s *S3) Save(ctx context.Context, src io.Reader, size int64, originalName, contentType, baseURL string) (StoredFile, error) {
	const op = "filestore.S3.Save"

	key := fmt.Sprintf("%s%d_%s", keyPrefix, time.Now().UnixMilli(), originalName)

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	opts := minio.PutObjectOptions{ContentType: contentType}
	if s.acl != "" {
		opts.UserMetadata = map[string]string{"x-amz-acl": s.acl}
	}

	if _, err := s.client.PutObject(ctx, s.bucket, key, src, size, opts); err != nil {
		return StoredFile{}, fmt.Errorf("%s: %w", op, err)
	}

	return StoredFile{
		URL:     fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key),
		Key:     key,
		Storage: StorageS3,
	}, nil
}

// PresignedURL выдаёт подписанную ссылку на объект с ограниченным сроком.
func (s *S3) PresignedURL(ctx context.Context, key string) (string, error) {
	const op = "filestore.S3.PresignedURL"

	signed, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.presignExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed.String(), nil
}
