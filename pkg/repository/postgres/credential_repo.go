package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harizal/portfolio/pkg/auth"
)

// CredentialRepository implements auth.CredentialRepository backed by PostgreSQL (pgx).
type CredentialRepository struct {
	pool *pgxpool.Pool
}

func NewCredentialRepository(pool *pgxpool.Pool) *CredentialRepository {
	return &CredentialRepository{pool: pool}
}

func (r *CredentialRepository) Create(ctx context.Context, c auth.Credential) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO admin_credentials (id, identifier, secret_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, c.ID, strings.ToLower(c.Identifier), c.SecretHash, c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return auth.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *CredentialRepository) GetByIdentifier(ctx context.Context, identifier string) (auth.Credential, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, identifier, secret_hash, created_at
		FROM admin_credentials WHERE identifier = $1
	`, strings.ToLower(identifier))
	var c auth.Credential
	var createdAt time.Time
	if err := row.Scan(&c.ID, &c.Identifier, &c.SecretHash, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Credential{}, auth.ErrNotFound
		}
		return auth.Credential{}, err
	}
	c.CreatedAt = createdAt.UTC()
	return c, nil
}
