package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyFilename = errors.New("empty filename")
	ErrUnsafeName    = errors.New("filename escapes upload directory")
)

// FileStore persists uploaded proof-of-payment artifacts in a single
// shared directory, keyed by generated filename.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	return &FileStore{dir: dir, logger: logger}
}

// sanitizeName strips any path components from a client-supplied
// filename. Uploaded names are attacker-influenceable and must never be
// allowed to carry separators into the stored path.
func sanitizeName(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	if name == "" || name == "." || name == ".." || name == "/" {
		return "", ErrEmptyFilename
	}
	return name, nil
}

// Save writes the uploaded bytes under a collision-free generated name
// and returns that name. The upload directory is created if absent.
func (s *FileStore) Save(originalName string, src io.Reader) (string, error) {
	base, err := sanitizeName(originalName)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	storedName := fmt.Sprintf("%s_%s", uuid.New().String(), base)
	path := filepath.Join(s.dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return storedName, nil
}

// Open resolves a stored filename strictly inside the upload directory.
// Returns os.ErrNotExist (wrapped) for unknown names.
func (s *FileStore) Open(name string) (*os.File, os.FileInfo, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	return f, info, nil
}

// Remove deletes a stored file. Used to roll back a write whose record
// insert failed; best effort, the caller only logs the outcome.
func (s *FileStore) Remove(name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func (s *FileStore) resolve(name string) (string, error) {
	base, err := sanitizeName(name)
	if err != nil {
		return "", err
	}
	if base != name {
		return "", ErrUnsafeName
	}
	return filepath.Join(s.dir, base), nil
}

// ContentType maps a stored filename's extension to its MIME type.
func ContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
