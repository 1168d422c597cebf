package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type customerSeed struct {
	Code        string
	Name        string
	DisplayName string
	Phone       string
	Entries     []entrySeed
}

type entrySeed struct {
	Amount  string
	Kind    string
	Notes   string
	DaysAgo int
}

// Apply inserts a demo tenant with a few customers and transactions for
// manual testing. It is idempotent via ON CONFLICT / existence checks.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	ownerID, err := ensureOwner(ctx, pool, "+919876500001@phone.local", "+919876500001", "Sharma Kirana Store", "Ramesh Sharma")
	if err != nil {
		return fmt.Errorf("ensure owner: %w", err)
	}

	customers := []customerSeed{
		{
			Code:        "ravi_kumar_3210_000001",
			Name:        "Ravi Kumar",
			DisplayName: "Ravi Kumar",
			Phone:       "+919876543210",
			Entries: []entrySeed{
				{Amount: "500.00", Kind: "CREDIT_GIVEN", Notes: "Groceries", DaysAgo: 12},
				{Amount: "200.00", Kind: "PAYMENT_RECEIVED", Notes: "Partial payment", DaysAgo: 4},
			},
		},
		{
			Code:        "sunita_devi_7788_000002",
			Name:        "Sunita Devi",
			DisplayName: "Sunita Devi",
			Phone:       "+919812347788",
			Entries: []entrySeed{
				{Amount: "1250.50", Kind: "CREDIT_GIVEN", Notes: "Monthly ration", DaysAgo: 2},
			},
		},
		{
			Code:        "mohan_0000_000003",
			Name:        "Mohan",
			DisplayName: "Mohan",
			Entries: []entrySeed{
				{Amount: "300.00", Kind: "CREDIT_GIVEN", DaysAgo: 20},
				{Amount: "300.00", Kind: "PAYMENT_RECEIVED", Notes: "Settled", DaysAgo: 15},
			},
		},
	}

	for _, c := range customers {
		if err := upsertCustomer(ctx, pool, ownerID, c); err != nil {
			return fmt.Errorf("upsert customer %s: %w", c.Code, err)
		}
	}

	return nil
}

func ensureOwner(ctx context.Context, pool *pgxpool.Pool, email, phone, storeName, ownerName string) (string, error) {
	const q = `
INSERT INTO store_owners (email, phone, store_name, owner_name)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE SET store_name = EXCLUDED.store_name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, email, phone, storeName, ownerName).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertCustomer(ctx context.Context, pool *pgxpool.Pool, ownerID string, c customerSeed) error {
	var customerID string
	err := pool.QueryRow(ctx, `
SELECT id::text FROM customers WHERE store_owner_id = $1 AND code = $2
`, ownerID, c.Code).Scan(&customerID)
	if err == nil {
		return nil // already seeded, keep the existing history
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	customerID = uuid.NewString()
	if _, err := pool.Exec(ctx, `
INSERT INTO customers (id, store_owner_id, code, name, display_name, phone)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
`, customerID, ownerID, c.Code, c.Name, c.DisplayName, c.Phone); err != nil {
		return err
	}

	for _, e := range c.Entries {
		createdAt := time.Now().AddDate(0, 0, -e.DaysAgo)
		if _, err := pool.Exec(ctx, `
INSERT INTO transactions (id, store_owner_id, customer_id, amount, kind, notes, created_at)
VALUES ($1, $2, $3, $4::numeric, $5, NULLIF($6, ''), $7)
`, uuid.NewString(), ownerID, customerID, e.Amount, e.Kind, e.Notes, createdAt); err != nil {
			return err
		}
	}
	return nil
}
