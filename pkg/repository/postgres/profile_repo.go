package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harizal/portfolio/pkg/profile"
)

// ProfileRepository keeps whole documents as JSONB rows keyed by name.
// Every write replaces one row, which Postgres applies atomically.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Get(ctx context.Context, key string) (profile.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT key, body, updated_at FROM documents WHERE key = $1
`, key)
	var rec profile.Record
	var body []byte
	var updated time.Time
	if err := row.Scan(&rec.Key, &body, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Record{}, profile.ErrNotFound
		}
		return profile.Record{}, err
	}
	if err := json.Unmarshal(body, &rec.Document); err != nil {
		return profile.Record{}, fmt.Errorf("decode document %q: %w", key, err)
	}
	rec.UpdatedAt = updated.UTC()
	return rec, nil
}

func (r *ProfileRepository) InsertIfAbsent(ctx context.Context, key string, doc profile.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO documents (key, body, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (key) DO NOTHING
`, key, body, time.Now().UTC())
	return err
}

func (r *ProfileRepository) Upsert(ctx context.Context, key string, doc profile.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO documents (key, body, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
`, key, body, time.Now().UTC())
	return err
}
