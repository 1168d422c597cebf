package transaction

import (
	"context"

	"bahikhata/internal/domain"
)

// Repository persists and fetches ledger transactions, always scoped to the
// owning tenant.
type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error)
	ListByCustomer(ctx context.Context, ownerID, customerID string) ([]domain.Transaction, error)
	ListRecent(ctx context.Context, ownerID string, limit int) ([]domain.Transaction, error)
	Create(ctx context.Context, t domain.Transaction) (*domain.Transaction, error)
	// CreateWithCustomer inserts a new customer and its first transaction as
	// one unit: either both rows exist afterwards or neither does.
	CreateWithCustomer(ctx context.Context, c domain.Customer, t domain.Transaction) (*domain.Customer, *domain.Transaction, error)
}
