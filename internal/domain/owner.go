package domain

import "time"

// StoreOwner is the tenant root: a shop owner keeping the ledger. Created on
// first sign-in, never deleted.
type StoreOwner struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	StoreName string    `json:"storeName,omitempty"`
	OwnerName string    `json:"ownerName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
