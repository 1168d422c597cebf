package domain

import "time"

// Customer is a person who owes or is owed money by a store owner. Code is the
// generated external-facing customer code; DisplayName may carry a "(last4)"
// suffix when the tenant already had a customer with the same name.
type Customer struct {
	ID           string    `json:"id"`
	StoreOwnerID string    `json:"-"`
	Code         string    `json:"customerId"`
	Name         string    `json:"customerName"`
	DisplayName  string    `json:"displayName"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
