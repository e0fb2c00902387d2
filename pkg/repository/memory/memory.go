// Package memory holds process-local repositories. They back the
// "memory" storage driver used for local runs and handler tests; nothing
// survives a restart.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harizal/portfolio/pkg/auth"
	"github.com/harizal/portfolio/pkg/contact"
	"github.com/harizal/portfolio/pkg/profile"
)

type ProfileRepository struct {
	mu   sync.RWMutex
	docs map[string]profile.Record
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{docs: map[string]profile.Record{}}
}

func (r *ProfileRepository) Get(_ context.Context, key string) (profile.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.docs[key]
	if !ok {
		return profile.Record{}, profile.ErrNotFound
	}
	return rec, nil
}

func (r *ProfileRepository) InsertIfAbsent(_ context.Context, key string, doc profile.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[key]; !ok {
		r.docs[key] = profile.Record{Key: key, Document: clone(doc), UpdatedAt: time.Now().UTC()}
	}
	return nil
}

func (r *ProfileRepository) Upsert(_ context.Context, key string, doc profile.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[key] = profile.Record{Key: key, Document: clone(doc), UpdatedAt: time.Now().UTC()}
	return nil
}

// clone detaches the stored copy from the caller's slices.
func clone(d profile.Document) profile.Document {
	d.Education = slices.Clone(d.Education)
	d.WorkExperience = slices.Clone(d.WorkExperience)
	d.Certifications = slices.Clone(d.Certifications)
	d.Trainings = slices.Clone(d.Trainings)
	d.Projects.IT = slices.Clone(d.Projects.IT)
	d.Projects.NetworkInfrastructure = slices.Clone(d.Projects.NetworkInfrastructure)
	d.Projects.Security = slices.Clone(d.Projects.Security)
	return d
}

type ContactRepository struct {
	mu    sync.RWMutex
	items []contact.Request
}

func NewContactRepository() *ContactRepository { return &ContactRepository{} }

func (r *ContactRepository) Create(_ context.Context, req contact.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, req)
	return nil
}

func (r *ContactRepository) List(_ context.Context, limit, offset int) ([]contact.Request, error) {
	r.mu.RLock()
	sorted := slices.Clone(r.items)
	r.mu.RUnlock()

	// later inserts win ties on createdAt
	slices.Reverse(sorted)
	slices.SortStableFunc(sorted, func(a, b contact.Request) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit <= 0 {
		limit = 50
	}
	if offset >= len(sorted) {
		return []contact.Request{}, nil
	}
	sorted = sorted[offset:]
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *ContactRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.IndexFunc(r.items, func(req contact.Request) bool { return req.ID == id })
	if i < 0 {
		return contact.ErrNotFound
	}
	r.items = slices.Delete(r.items, i, i+1)
	return nil
}

type CredentialRepository struct {
	mu    sync.RWMutex
	creds map[string]auth.Credential
}

func NewCredentialRepository() *CredentialRepository {
	return &CredentialRepository{creds: map[string]auth.Credential{}}
}

func (r *CredentialRepository) Create(_ context.Context, c auth.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(c.Identifier)
	if _, ok := r.creds[key]; ok {
		return auth.ErrAlreadyExists
	}
	c.Identifier = key
	r.creds[key] = c
	return nil
}

func (r *CredentialRepository) GetByIdentifier(_ context.Context, identifier string) (auth.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.creds[strings.ToLower(identifier)]
	if !ok {
		return auth.Credential{}, auth.ErrNotFound
	}
	return c, nil
}
