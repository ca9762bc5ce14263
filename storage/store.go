package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store is the object half of the media backend: blobs addressed by a
// bucket-relative path, exposed through stable public URLs. Upload never
// overwrites an existing path; Remove is best-effort at the call sites.
type Store interface {
	Upload(ctx context.Context, path string, r io.Reader, contentType string) (string, error)
	PublicURL(path string) string
	Remove(ctx context.Context, path string) error
}

var ErrInvalidPath = errors.New("storage: path escapes the store root")

// DiskStore keeps objects on the local filesystem under basePath and serves
// them statically under baseURL.
type DiskStore struct {
	basePath string
	baseURL  string
}

func NewDiskStore(basePath, baseURL string) (*DiskStore, error) {
	for _, dir := range []string{"images", "videos", "thumbnails"} {
		if err := os.MkdirAll(filepath.Join(basePath, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir failed: %w", err)
		}
	}
	return &DiskStore{basePath: basePath, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *DiskStore) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", ErrInvalidPath
	}
	return filepath.Join(s.basePath, clean), nil
}

// Upload stores the blob and returns its public URL. The content type is
// recorded by extension only; the static file server infers it on read.
func (s *DiskStore) Upload(_ context.Context, path string, r io.Reader, _ string) (string, error) {
	abs, err := s.resolve(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("create object dir failed: %w", err)
	}

	// O_EXCL guarantees a fresh path is never overwritten.
	f, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create object failed: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(abs)
		return "", fmt.Errorf("write object failed: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(abs)
		return "", fmt.Errorf("close object failed: %w", err)
	}

	return s.PublicURL(path), nil
}

// PublicURL derives the fetchable URL for a stored path. Pure, no I/O.
func (s *DiskStore) PublicURL(path string) string {
	return s.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (s *DiskStore) Remove(_ context.Context, path string) error {
	abs, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		return fmt.Errorf("remove object failed: %w", err)
	}
	return nil
}
