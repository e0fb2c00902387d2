package contact

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ValidationError reports a rejected submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type UseCase interface {
	Submit(ctx context.Context, in Input) (Request, error)
	List(ctx context.Context, limit, offset int) ([]Request, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo          Repository
	notifier      Notifier
	notifyTimeout time.Duration
	log           *zap.Logger
	now           func() time.Time
}

// NewService wires the intake. notifier may be nil.
func NewService(repo Repository, notifier Notifier, notifyTimeout time.Duration, log *zap.Logger) UseCase {
	if notifyTimeout <= 0 {
		notifyTimeout = 10 * time.Second
	}
	return &service{
		repo:          repo,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		log:           log,
		now:           time.Now,
	}
}

// Submit stores the request and then notifies the owner. A failed
// notification is logged; the stored request still counts as success.
func (s *service) Submit(ctx context.Context, in Input) (Request, error) {
	req, err := validate(in)
	if err != nil {
		return Request{}, err
	}
	req.ID = uuid.New()
	req.CreatedAt = s.now().UTC()
	if err := s.repo.Create(ctx, req); err != nil {
		return Request{}, fmt.Errorf("save contact request: %w", err)
	}
	if s.notifier != nil {
		nctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
		defer cancel()
		if err := s.notifier.NotifyContact(nctx, req); err != nil {
			s.log.Warn("contact request saved but not notified",
				zap.String("id", req.ID.String()), zap.Error(err))
		}
	}
	return req, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Request, error) {
	items, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contact requests: %w", err)
	}
	if items == nil {
		items = []Request{}
	}
	return items, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func validate(in Input) (Request, error) {
	r := Request{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Company: strings.TrimSpace(in.Company),
		Message: strings.TrimSpace(in.Message),
	}
	switch {
	case r.Name == "":
		return Request{}, &ValidationError{Field: "name", Message: "name is required"}
	case r.Email == "":
		return Request{}, &ValidationError{Field: "email", Message: "email is required"}
	case r.Message == "":
		return Request{}, &ValidationError{Field: "message", Message: "message is required"}
	}
	// Only a bare address is accepted, not "Name <addr>".
	addr, err := mail.ParseAddress(r.Email)
	if err != nil || addr.Address != r.Email {
		return Request{}, &ValidationError{Field: "email", Message: "email is not a valid address"}
	}
	return r, nil
}
