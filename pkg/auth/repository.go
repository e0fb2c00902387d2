package auth

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("credential already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMissing       = errors.New("token missing")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidCode        = errors.New("invalid one-time code")
	ErrChallengeExpired   = errors.New("one-time code expired")
)

// CredentialRepository abstracts persistence of admin credentials.
// Lookups are case-insensitive on the identifier.
type CredentialRepository interface {
	Create(ctx context.Context, c Credential) error
	GetByIdentifier(ctx context.Context, identifier string) (Credential, error)
}
