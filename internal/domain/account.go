package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerAccount is a customer plus balance fields derived from their
// transaction history. It is never persisted.
type CustomerAccount struct {
	Customer
	CurrentBalance      decimal.Decimal `json:"currentBalance"`
	TotalTransactions   int             `json:"totalTransactions"`
	LastTransactionDate time.Time       `json:"lastTransactionDate"`
}

// DashboardStats aggregates a whole tenant for the dashboard page.
// TotalOutstanding sums strictly-positive balances only.
type DashboardStats struct {
	TotalOutstanding   decimal.Decimal `json:"totalOutstanding"`
	TotalCustomers     int             `json:"totalCustomers"`
	WeeklyTransactions int             `json:"weeklyTransactions"`
}
