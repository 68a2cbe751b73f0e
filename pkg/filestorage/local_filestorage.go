package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileStorageInterface is the contract the backup job writes snapshots
// through. relPath is interpreted under the storage base directory.
type FileStorageInterface interface {
	Save(relPath string, r io.Reader) (fullPath string, err error)
	Delete(relPath string) error
}

type LocalFileStorage struct {
	basePath string
}

func NewLocalFileStorage(basePath string) (FileStorageInterface, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}
	return &LocalFileStorage{basePath: basePath}, nil
}

func (s *LocalFileStorage) Save(relPath string, r io.Reader) (string, error) {
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", err
	}
	return fullPath, nil
}

func (s *LocalFileStorage) Delete(relPath string) error {
	return os.Remove(filepath.Join(s.basePath, filepath.FromSlash(relPath)))
}
