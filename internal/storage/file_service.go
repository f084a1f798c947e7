package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"time"
)

// FileService stores uploaded blobs under generated names.
type FileService interface {
	Save(ctx context.Context, name string, body io.Reader) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Exists(ctx context.Context, name string) (bool, error)
	Delete(ctx context.Context, name string) error
	PublicURL(name string) string
}

// GenerateName builds a collision-resistant upload name as
// <currentTimeMillis>-<random 64-bit hex><original extension>.
func GenerateName(originalFilename string) string {
	var suffix [8]byte
	if _, err := rand.Read(suffix[:]); err != nil {
		panic(err)
	}
	ext := filepath.Ext(originalFilename)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(suffix[:]), ext)
}
