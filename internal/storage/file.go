package storage

import (
	"errors"
	"os"
	"path/filepath"
)

// FileBackend implements Backend with one JSON file per key.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a FileBackend rooted at the given directory.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

// Dir returns the backing directory.
func (b *FileBackend) Dir() string {
	return b.dir
}

// Read returns the stored blob, or (nil, nil) if the key was never written.
func (b *FileBackend) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Write overwrites the blob for the key, creating the directory if needed.
func (b *FileBackend) Write(key string, data []byte) error {
	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(b.path(key), data, 0644)
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

// DefaultDir returns the default storage directory: ~/.config/pin
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "pin"), nil
}
