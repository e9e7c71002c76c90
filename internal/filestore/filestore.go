package filestore

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"print3d-backend/internal/config"
)

const (
	StorageDisk = "disk"
	StorageS3   = "s3"
)

// StoredFile — адрес сохранённого файла. Path заполнен у дискового
// бэкенда, Key — у объектного хранилища.
type StoredFile struct {
	URL     string
	Path    string
	Key     string
	Storage string
}

// Backend persists raw upload bytes. The implementation is chosen once at
// startup and never changes for the process lifetime.
type Backend interface {
	// Save stores src and returns its addressable reference. baseURL is the
	// scheme://host of the current request, used only by the disk backend to
	// build a public URL.
	Save(ctx context.Context, src io.Reader, size int64, originalName, contentType, baseURL string) (StoredFile, error)
	Storage() string
}

// Presigner выдаёт временную подписанную ссылку. Реализует только S3-бэкенд.
type Presigner interface {
	PresignedURL(ctx context.Context, key string) (string, error)
}

// New selects the backend from configuration: all four S3 credentials
// present → object store, otherwise local disk.
func New(cfg config.Config, log *slog.Logger) (Backend, error) {
	const op = "filestore.New"

	if cfg.S3.Enabled() {
		backend, err := NewS3(cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Info("storage backend selected", slog.String("storage", StorageS3), slog.String("bucket", cfg.S3.Bucket))
		return backend, nil
	}

	backend, err := NewDisk(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log.Info("storage backend selected", slog.String("storage", StorageDisk), slog.String("dir", cfg.UploadDir))
	return backend, nil
}
