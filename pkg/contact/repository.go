package contact

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("contact request not found")

type Repository interface {
	Create(ctx context.Context, r Request) error
	// List returns requests newest first.
	List(ctx context.Context, limit, offset int) ([]Request, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Notifier tells the site owner about a new request.
type Notifier interface {
	NotifyContact(ctx context.Context, r Request) error
}
