// Package media holds the upload collaborator this core delegates binary
// persistence to. Registration needs a durable URL for the avatar (and
// optionally the cover image); everything behind that URL is out of scope.
package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists an uploaded file and returns a durable, publicly servable URL.
type Store interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// DiskStore is a Store that writes uploads under a local directory and serves
// them from a configured base URL. It is the seam an object-storage SDK would
// plug into.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore creates a DiskStore rooted at dir, creating it if necessary.
func NewDiskStore(dir string, baseURL string) (*DiskStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("media storage directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media storage directory %s: %w", dir, err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

var _ Store = (*DiskStore)(nil)

// Save writes the upload under a fresh UUID-prefixed name so distinct uploads
// of the same filename never collide.
func (s *DiskStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + "_" + sanitizeFilename(filename)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// sanitizeFilename strips path separators and keeps only the base name.
func sanitizeFilename(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "upload"
	}
	return base
}
