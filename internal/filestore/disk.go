package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// PublicUploadsPath — префикс, под которым раздаётся статика в дисковом режиме.
const PublicUploadsPath = "/uploads"

type Disk struct {
	dir string
}

func NewDisk(dir string) (*Disk, error) {
	const op = "filestore.NewDisk"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Disk{dir: dir}, nil
}

func (d *Disk) Storage() string { return StorageDisk }

func (d *Disk) Save(ctx context.Context, src io.Reader, size int64, originalName, contentType, baseURL string) (StoredFile, error) {
	const op = "filestore.Disk.Save"

	// Имя файла — миллисекундный таймстемп плюс исходное расширение.
	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(originalName))
	path := filepath.Join(d.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return StoredFile{}, fmt.Errorf("%s: %w", op, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return StoredFile{}, fmt.Errorf("%s: %w", op, err)
	}

	return StoredFile{
		URL:     baseURL + PublicUploadsPath + "/" + name,
		Path:    path,
		Storage: StorageDisk,
	}, nil
}
