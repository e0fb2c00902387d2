package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harizal/portfolio/pkg/auth"
	"github.com/harizal/portfolio/pkg/contact"
	"github.com/harizal/portfolio/pkg/profile"
)

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository()

	_, err := repo.Get(ctx, profile.DocumentKey)
	assert.ErrorIs(t, err, profile.ErrNotFound)

	first := profile.Default()
	first.PersonalInfo.Name = "first"
	require.NoError(t, repo.InsertIfAbsent(ctx, profile.DocumentKey, first))

	second := profile.Default()
	second.PersonalInfo.Name = "second"
	require.NoError(t, repo.InsertIfAbsent(ctx, profile.DocumentKey, second))

	rec, err := repo.Get(ctx, profile.DocumentKey)
	require.NoError(t, err)
	assert.Equal(t, "first", rec.Document.PersonalInfo.Name)

	second.Certifications = []string{"CCNA"}
	require.NoError(t, repo.Upsert(ctx, profile.DocumentKey, second))
	second.Certifications[0] = "mutated"

	rec, err = repo.Get(ctx, profile.DocumentKey)
	require.NoError(t, err)
	assert.Equal(t, "second", rec.Document.PersonalInfo.Name)
	assert.Equal(t, []string{"CCNA"}, rec.Document.Certifications)
}

func TestContactRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	ids := make([]uuid.UUID, 3)
	for i := range ids {
		ids[i] = uuid.New()
		require.NoError(t, repo.Create(ctx, contact.Request{ID: ids[i], Name: "n", CreatedAt: base.Add(time.Duration(i) * time.Hour)}))
	}

	items, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, ids[2], items[0].ID)
	assert.Equal(t, ids[0], items[2].ID)

	page, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, ids[1], page[0].ID)

	empty, err := repo.List(ctx, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, repo.Delete(ctx, ids[1]))
	assert.ErrorIs(t, repo.Delete(ctx, ids[1]), contact.ErrNotFound)
	items, _ = repo.List(ctx, 0, 0)
	assert.Len(t, items, 2)
}

func TestCredentialRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCredentialRepository()
	require.NoError(t, repo.Create(ctx, auth.Credential{ID: uuid.New(), Identifier: "Harizal"}))
	assert.ErrorIs(t, repo.Create(ctx, auth.Credential{ID: uuid.New(), Identifier: "harizal"}), auth.ErrAlreadyExists)

	c, err := repo.GetByIdentifier(ctx, "HARIZAL")
	require.NoError(t, err)
	assert.Equal(t, "harizal", c.Identifier)

	_, err = repo.GetByIdentifier(ctx, "nobody")
	assert.ErrorIs(t, err, auth.ErrNotFound)
}
