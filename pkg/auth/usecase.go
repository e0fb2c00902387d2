package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase describes administrator authentication.
type AuthUseCase interface {
	Login(ctx context.Context, identifier, secret string) (Session, error)
	Verify(token string) (Subject, error)
	EnsureAdmin(ctx context.Context, identifier, secret string) error
	StartChallenge(ctx context.Context, identifier string) (Challenge, error)
	CompleteChallenge(ctx context.Context, challenge, code string) (Session, error)
}

type authService struct {
	repo   CredentialRepository
	tokens TokenManager
	codes  CodeSender
}

// NewAuthService returns default implementation of AuthUseCase.
// codes may be nil when the one-time-code login is disabled.
func NewAuthService(repo CredentialRepository, tokens TokenManager, codes CodeSender) AuthUseCase {
	return &authService{repo: repo, tokens: tokens, codes: codes}
}

// dummyHash is compared against when the identifier is unknown so both
// failure paths cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("portfolio-dummy-secret"), bcrypt.DefaultCost)
	return h
})

// HashSecret hashes an admin secret for storage.
func HashSecret(secret string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(h), nil
}

func (s *authService) Login(ctx context.Context, identifier, secret string) (Session, error) {
	cred, err := s.repo.GetByIdentifier(ctx, normalizeIdentifier(identifier))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return Session{}, fmt.Errorf("lookup credential: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(secret))
		return Session{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.SecretHash), []byte(secret)) != nil {
		return Session{}, ErrInvalidCredentials
	}
	return s.tokens.Issue(ctx, cred)
}

func (s *authService) Verify(token string) (Subject, error) {
	if strings.TrimSpace(token) == "" {
		return Subject{}, ErrTokenMissing
	}
	return s.tokens.Verify(token)
}

// EnsureAdmin creates the administrator credential unless one already exists.
func (s *authService) EnsureAdmin(ctx context.Context, identifier, secret string) error {
	identifier = normalizeIdentifier(identifier)
	if identifier == "" || secret == "" {
		return errors.New("admin identifier and secret are required")
	}
	if _, err := s.repo.GetByIdentifier(ctx, identifier); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("lookup credential: %w", err)
	}
	hash, err := HashSecret(secret)
	if err != nil {
		return err
	}
	err = s.repo.Create(ctx, Credential{
		ID:         uuid.New(),
		Identifier: identifier,
		SecretHash: hash,
		CreatedAt:  time.Now().UTC(),
	})
	if errors.Is(err, ErrAlreadyExists) {
		return nil
	}
	return err
}

// StartChallenge mails a fresh one-time code and returns the signed
// challenge the client must send back with it.
func (s *authService) StartChallenge(ctx context.Context, identifier string) (Challenge, error) {
	if s.codes == nil {
		return Challenge{}, errors.New("one-time code login is not configured")
	}
	cred, err := s.repo.GetByIdentifier(ctx, normalizeIdentifier(identifier))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Challenge{}, ErrInvalidCredentials
		}
		return Challenge{}, fmt.Errorf("lookup credential: %w", err)
	}
	code, err := generateCode()
	if err != nil {
		return Challenge{}, err
	}
	ch, err := s.tokens.IssueChallenge(ctx, cred, code)
	if err != nil {
		return Challenge{}, err
	}
	if err := s.codes.SendCode(ctx, cred.Identifier, code); err != nil {
		return Challenge{}, fmt.Errorf("send one-time code: %w", err)
	}
	return ch, nil
}

func (s *authService) CompleteChallenge(ctx context.Context, challenge, code string) (Session, error) {
	if strings.TrimSpace(challenge) == "" {
		return Session{}, ErrTokenMissing
	}
	identifier, err := s.tokens.VerifyChallenge(challenge, strings.TrimSpace(code))
	if err != nil {
		return Session{}, err
	}
	cred, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("lookup credential: %w", err)
	}
	return s.tokens.Issue(ctx, cred)
}

func normalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// generateCode returns a six-digit code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate one-time code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
