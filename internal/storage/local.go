package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStorage writes uploads to a directory served statically at
// /uploads by the API process.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (l *LocalStorage) Dir() string { return l.dir }

func (l *LocalStorage) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	path := filepath.Join(l.dir, filepath.Base(key))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	return "/uploads/" + filepath.Base(key), nil
}

var _ Storage = (*LocalStorage)(nil)
