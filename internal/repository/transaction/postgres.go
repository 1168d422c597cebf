package transaction

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

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

// Amounts travel as text so numeric values survive the round trip without
// float conversion.
const txColumns = `id::text, store_owner_id::text, customer_id::text, amount::text, kind, COALESCE(notes, ''), created_at`

func (r *postgresRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	const q = `
SELECT ` + txColumns + `
FROM transactions
WHERE store_owner_id = $1
ORDER BY created_at DESC
`
	return r.list(ctx, q, ownerID)
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, ownerID, customerID string) ([]domain.Transaction, error) {
	const q = `
SELECT ` + txColumns + `
FROM transactions
WHERE store_owner_id = $1 AND customer_id = $2
ORDER BY created_at DESC
`
	return r.list(ctx, q, ownerID, customerID)
}

func (r *postgresRepo) ListRecent(ctx context.Context, ownerID string, limit int) ([]domain.Transaction, error) {
	const q = `
SELECT t.id::text, t.store_owner_id::text, t.customer_id::text, t.amount::text, t.kind, COALESCE(t.notes, ''), t.created_at,
       c.id::text, c.store_owner_id::text, c.code, c.name, c.display_name, COALESCE(c.phone, ''), c.created_at, c.updated_at
FROM transactions t
JOIN customers c ON c.id = t.customer_id
WHERE t.store_owner_id = $1
ORDER BY t.created_at DESC
LIMIT $2
`
	rows, err := r.pool.Query(ctx, q, ownerID, limit)
	if err != nil {
		r.logger.Printf("transaction repo: list recent owner=%s error=%v", ownerID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		var c domain.Customer
		var amount string
		err := rows.Scan(
			&t.ID, &t.StoreOwnerID, &t.CustomerID, &amount, &t.Kind, &t.Notes, &t.CreatedAt,
			&c.ID, &c.StoreOwnerID, &c.Code, &c.Name, &c.DisplayName, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		t.Customer = &c
		result = append(result, t)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, t domain.Transaction) (*domain.Transaction, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	created, err := insertTransaction(ctx, tx, t)
	if err != nil {
		return nil, err
	}
	if err := touchCustomer(ctx, tx, t.StoreOwnerID, t.CustomerID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *postgresRepo) CreateWithCustomer(ctx context.Context, c domain.Customer, t domain.Transaction) (*domain.Customer, *domain.Transaction, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO customers (id, store_owner_id, code, name, display_name, phone)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
RETURNING id::text, store_owner_id::text, code, name, display_name, COALESCE(phone, ''), created_at, updated_at
`
	var createdCustomer domain.Customer
	err = tx.QueryRow(ctx, q, c.ID, c.StoreOwnerID, c.Code, c.Name, c.DisplayName, c.Phone).Scan(
		&createdCustomer.ID, &createdCustomer.StoreOwnerID, &createdCustomer.Code, &createdCustomer.Name,
		&createdCustomer.DisplayName, &createdCustomer.Phone, &createdCustomer.CreatedAt, &createdCustomer.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("transaction repo: create customer owner=%s error=%v", c.StoreOwnerID, err)
		return nil, nil, err
	}

	t.CustomerID = createdCustomer.ID
	createdTx, err := insertTransaction(ctx, tx, t)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}
	return &createdCustomer, createdTx, nil
}

func (r *postgresRepo) list(ctx context.Context, q string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("transaction repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		var amount string
		if err := rows.Scan(&t.ID, &t.StoreOwnerID, &t.CustomerID, &amount, &t.Kind, &t.Notes, &t.CreatedAt); err != nil {
			return nil, err
		}
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func insertTransaction(ctx context.Context, tx pgx.Tx, t domain.Transaction) (*domain.Transaction, error) {
	const q = `
INSERT INTO transactions (id, store_owner_id, customer_id, amount, kind, notes)
VALUES ($1, $2, $3, $4::numeric, $5, NULLIF($6, ''))
RETURNING id::text, store_owner_id::text, customer_id::text, amount::text, kind, COALESCE(notes, ''), created_at
`
	var created domain.Transaction
	var amount string
	err := tx.QueryRow(ctx, q, t.ID, t.StoreOwnerID, t.CustomerID, t.Amount.String(), t.Kind, t.Notes).Scan(
		&created.ID, &created.StoreOwnerID, &created.CustomerID, &amount, &created.Kind, &created.Notes, &created.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if created.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, err
	}
	return &created, nil
}

func touchCustomer(ctx context.Context, tx pgx.Tx, ownerID, customerID string) error {
	tag, err := tx.Exec(ctx, `UPDATE customers SET updated_at = now() WHERE store_owner_id = $1 AND id = $2`, ownerID, customerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
