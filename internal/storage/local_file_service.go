package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// LocalFileService writes blobs into the upload directory, which the
// router serves statically under /uploads.
type LocalFileService struct {
	dir string
}

func NewLocalFileService(dir string) (*LocalFileService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &LocalFileService{dir: dir}, nil
}

func (s *LocalFileService) Dir() string {
	return s.dir
}

func (s *LocalFileService) Save(ctx context.Context, name string, body io.Reader) error {
	file, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("creating upload file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, body); err != nil {
		return fmt.Errorf("writing upload file: %w", err)
	}
	return nil
}

func (s *LocalFileService) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.dir, name))
}

func (s *LocalFileService) Exists(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *LocalFileService) Delete(ctx context.Context, name string) error {
	return os.Remove(filepath.Join(s.dir, name))
}

func (s *LocalFileService) PublicURL(name string) string {
	return path.Join("/uploads", name)
}
