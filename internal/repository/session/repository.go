package session

import (
	"context"
	"time"
)

// Session is an opaque bearer token tied to a store owner.
type Session struct {
	Token        string
	StoreOwnerID string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

type Repository interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
