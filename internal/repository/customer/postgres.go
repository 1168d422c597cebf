package customer

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bahikhata/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const customerColumns = `id::text, store_owner_id::text, code, name, display_name, COALESCE(phone, ''), created_at, updated_at`

func (r *postgresRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Customer, error) {
	const q = `
SELECT ` + customerColumns + `
FROM customers
WHERE store_owner_id = $1
ORDER BY updated_at DESC
`
	rows, err := r.pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, ownerID, id string) (*domain.Customer, error) {
	const q = `
SELECT ` + customerColumns + `
FROM customers
WHERE store_owner_id = $1 AND id = $2
LIMIT 1
`
	var c domain.Customer
	if err := scanCustomer(r.pool.QueryRow(ctx, q, ownerID, id), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) CountByName(ctx context.Context, ownerID, name string) (int, error) {
	const q = `
SELECT count(*)
FROM customers
WHERE store_owner_id = $1 AND name = $2
`
	var count int
	if err := r.pool.QueryRow(ctx, q, ownerID, name).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanCustomer(row pgx.Row, c *domain.Customer) error {
	return row.Scan(&c.ID, &c.StoreOwnerID, &c.Code, &c.Name, &c.DisplayName, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
}
