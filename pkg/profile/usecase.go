package profile

import (
	"context"
	"errors"
	"fmt"
)

// UseCase serves and replaces the singleton profile document.
type UseCase interface {
	// Get returns the stored document, creating the empty default on first access.
	Get(ctx context.Context) (Document, error)
	// Replace overwrites the whole stored document. There is no field-level merge.
	Replace(ctx context.Context, doc Document) (Document, error)
	// ReplaceJSON validates a raw payload and then behaves like Replace.
	ReplaceJSON(ctx context.Context, raw []byte) (Document, error)
}

type service struct {
	repo Repository
	key  string
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo, key: DocumentKey}
}

func (s *service) Get(ctx context.Context) (Document, error) {
	rec, err := s.repo.Get(ctx, s.key)
	if err == nil {
		return rec.Document.Normalize(), nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Document{}, fmt.Errorf("get profile: %w", err)
	}
	// Insert-if-absent keeps a save racing with the first read intact.
	if err := s.repo.InsertIfAbsent(ctx, s.key, Default()); err != nil {
		return Document{}, fmt.Errorf("create default profile: %w", err)
	}
	rec, err = s.repo.Get(ctx, s.key)
	if err != nil {
		return Document{}, fmt.Errorf("get profile: %w", err)
	}
	return rec.Document.Normalize(), nil
}

func (s *service) Replace(ctx context.Context, doc Document) (Document, error) {
	doc = doc.Normalize()
	if err := s.repo.Upsert(ctx, s.key, doc); err != nil {
		return Document{}, fmt.Errorf("save profile: %w", err)
	}
	return doc, nil
}

func (s *service) ReplaceJSON(ctx context.Context, raw []byte) (Document, error) {
	doc, err := Decode(raw)
	if err != nil {
		return Document{}, err
	}
	return s.Replace(ctx, doc)
}
