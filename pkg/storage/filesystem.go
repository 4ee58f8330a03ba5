package storage

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage persists uploaded files on disk under a base directory.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage ensures the base directory exists and returns a handle.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// SaveStream copies from reader into a freshly generated file name derived
// from the original upload name, and returns that name.
func (s *LocalStorage) SaveStream(originalName string, r io.Reader) (string, int64, error) {
	filename := GenerateFilename(originalName)
	path := s.resolve(filename)

	file, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("create upload file: %w", err)
	}
	defer file.Close() //nolint:errcheck

	written, err := io.Copy(file, r)
	if err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("write upload stream: %w", err)
	}
	return filename, written, nil
}

// Open returns a read-only handle for the stored file.
func (s *LocalStorage) Open(filename string) (*os.File, error) {
	file, err := os.Open(s.resolve(filename))
	if err != nil {
		return nil, fmt.Errorf("open upload file: %w", err)
	}
	return file, nil
}

// Delete removes a stored file if present.
func (s *LocalStorage) Delete(filename string) error {
	if err := os.Remove(s.resolve(filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload file: %w", err)
	}
	return nil
}

// Dir exposes the base directory (used for static file serving).
func (s *LocalStorage) Dir() string {
	return s.baseDir
}

// Path exposes the underlying path for a stored file.
func (s *LocalStorage) Path(filename string) string {
	return s.resolve(filename)
}

// GenerateFilename produces a collision-resistant name preserving the
// original extension.
func GenerateFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%09d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
}

func (s *LocalStorage) resolve(filename string) string {
	// Uploaded names are generated server-side, but never allow escaping
	// the base directory.
	return filepath.Join(s.baseDir, filepath.Base(filename))
}
