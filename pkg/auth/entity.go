package auth

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the administrator's login record. Identifier is stored lower-case.
type Credential struct {
	ID         uuid.UUID
	Identifier string
	SecretHash string
	CreatedAt  time.Time
}

// Subject is the identity a verified session token speaks for.
type Subject struct {
	ID        string
	ExpiresAt time.Time
}

// Session is a freshly issued token.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Challenge is a pending one-time-code login.
type Challenge struct {
	Token     string
	ExpiresAt time.Time
}
