package profile

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("profile not found")

// Repository abstracts the key-document store holding the profile.
type Repository interface {
	Get(ctx context.Context, key string) (Record, error)
	// InsertIfAbsent stores doc only when nothing is stored under key yet.
	InsertIfAbsent(ctx context.Context, key string, doc Document) error
	// Upsert replaces the whole document stored under key.
	Upsert(ctx context.Context, key string, doc Document) error
}
