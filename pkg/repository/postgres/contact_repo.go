package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harizal/portfolio/pkg/contact"
)

// ContactRepository stores contact requests.
type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, req contact.Request) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO contact_requests (id, name, email, company, message, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, req.ID, req.Name, req.Email, req.Company, req.Message, req.CreatedAt)
	return err
}

func (r *ContactRepository) List(ctx context.Context, limit, offset int) ([]contact.Request, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, name, email, company, message, created_at
FROM contact_requests
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []contact.Request{}
	for rows.Next() {
		var m contact.Request
		var created time.Time
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Company, &m.Message, &created); err != nil {
			return nil, err
		}
		m.CreatedAt = created.UTC()
		res = append(res, m)
	}
	return res, rows.Err()
}

func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return contact.ErrNotFound
	}
	return nil
}
