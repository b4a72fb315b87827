// Package store provides durable key-value persistence for the article
// library and research goal, with file and PostgreSQL backends.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// KV is the narrow persistence contract: flat string keys to string values.
// Get reports ok=false for absent keys; Set unconditionally overwrites.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// FileKV stores each key as one flat file under a data directory.
type FileKV struct {
	dir string
}

// NewFileKV creates a file-backed store rooted at dir, creating it if needed.
func NewFileKV(dir string) (*FileKV, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileKV{dir: dir}, nil
}

// Get reads the value stored for key, reporting ok=false if absent.
func (s *FileKV) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set overwrites the value stored for key.
func (s *FileKV) Set(_ context.Context, key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *FileKV) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// MemoryKV is an in-process KV used by tests and as a last-resort fallback.
type MemoryKV struct {
	values map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get reads the value stored for key, reporting ok=false if absent.
func (s *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := s.values[key]
	return value, ok, nil
}

// Set overwrites the value stored for key.
func (s *MemoryKV) Set(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}
