package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileSystemBackend stores each key as <dir>/<key>.json
type FileSystemBackend struct {
	dir string
}

// NewFileSystemBackend creates the directory if needed
func NewFileSystemBackend(dir string) (*FileSystemBackend, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileSystemBackend{dir: dir}, nil
}

// DefaultDirectory returns the per-user data directory for saves
func DefaultDirectory() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(base, "xochi"), nil
}

func (b *FileSystemBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

// Dir returns the backing directory
func (b *FileSystemBackend) Dir() string {
	return b.dir
}

func (b *FileSystemBackend) Get(key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

func (b *FileSystemBackend) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return AtomicWriteFile(b.path(key), value, 0o644)
}

func (b *FileSystemBackend) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := os.Remove(b.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
