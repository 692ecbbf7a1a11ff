package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists each key as a JSON file in a directory. Writes go
// through a temp file and rename so a crash never leaves a torn snapshot.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the snapshot file for key or returns ErrNotFound.
func (s *FileStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}
	return data, nil
}

// Save atomically replaces the snapshot file for key.
func (s *FileStore) Save(ctx context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot for %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot %s: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot %s: %w", key, err)
	}
	return nil
}
