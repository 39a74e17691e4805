package storage

import "context"

// Storage persists processed upload bytes under a key and returns the
// URL the stored object is served from.
type Storage interface {
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
