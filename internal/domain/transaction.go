package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is one of exactly two ledger entry kinds.
type TransactionKind string

const (
	// CreditGiven increases what the customer owes the store owner.
	CreditGiven TransactionKind = "CREDIT_GIVEN"
	// PaymentReceived decreases what the customer owes the store owner.
	PaymentReceived TransactionKind = "PAYMENT_RECEIVED"
)

// Valid reports whether k is a known kind.
func (k TransactionKind) Valid() bool {
	return k == CreditGiven || k == PaymentReceived
}

// Transaction is an immutable ledger entry. Amount is always positive; the
// kind decides the sign it contributes to the balance.
type Transaction struct {
	ID           string          `json:"id"`
	StoreOwnerID string          `json:"-"`
	CustomerID   string          `json:"customerId"`
	Amount       decimal.Decimal `json:"amount"`
	Kind         TransactionKind `json:"type"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	Customer     *Customer       `json:"customer,omitempty"`
}
