package owner

import (
	"context"

	"bahikhata/internal/domain"
)

// Repository persists and fetches store owners.
type Repository interface {
	UpsertByEmail(ctx context.Context, o domain.StoreOwner) (*domain.StoreOwner, error)
	GetByID(ctx context.Context, id string) (*domain.StoreOwner, error)
}
