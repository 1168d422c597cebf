package customer

import (
	"context"

	"bahikhata/internal/domain"
)

// Repository fetches customers. Every method takes the owning tenant's id so
// cross-tenant access cannot be expressed. Customer creation happens in the
// transaction repository, atomically with the first transaction.
type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Customer, error)
	GetByID(ctx context.Context, ownerID, id string) (*domain.Customer, error)
	CountByName(ctx context.Context, ownerID, name string) (int, error)
}
