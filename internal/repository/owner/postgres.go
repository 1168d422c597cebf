package owner

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bahikhata/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) UpsertByEmail(ctx context.Context, o domain.StoreOwner) (*domain.StoreOwner, error) {
	const q = `
INSERT INTO store_owners (email, phone, store_name, owner_name)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE SET phone = EXCLUDED.phone, updated_at = now()
RETURNING id::text, email, COALESCE(phone, ''), COALESCE(store_name, ''), COALESCE(owner_name, ''), created_at, updated_at
`
	return r.scanOwner(r.pool.QueryRow(ctx, q, strings.ToLower(o.Email), o.Phone, o.StoreName, o.OwnerName))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.StoreOwner, error) {
	const q = `
SELECT id::text, email, COALESCE(phone, ''), COALESCE(store_name, ''), COALESCE(owner_name, ''), created_at, updated_at
FROM store_owners
WHERE id = $1
LIMIT 1
`
	return r.scanOwner(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) scanOwner(row pgx.Row) (*domain.StoreOwner, error) {
	var o domain.StoreOwner
	err := row.Scan(&o.ID, &o.Email, &o.Phone, &o.StoreName, &o.OwnerName, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("owner repo: scan error=%v", err)
		return nil, err
	}
	return &o, nil
}
