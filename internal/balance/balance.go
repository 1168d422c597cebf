// Package balance derives balances and dashboard aggregates from in-memory
// transaction collections. All functions are pure: no I/O, no clock reads,
// no failure paths.
package balance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"bahikhata/internal/domain"
)

// Summary is the derived view of one customer's transaction history.
type Summary struct {
	Balance      decimal.Decimal
	Count        int
	LastActivity time.Time
}

// Summarize computes the running balance for one customer's transactions:
// credit given minus payments received, in exact decimal arithmetic.
// LastActivity is the latest transaction time, zero when txs is empty (the
// caller substitutes the customer's creation time).
func Summarize(txs []domain.Transaction) Summary {
	s := Summary{Balance: decimal.Zero, Count: len(txs)}
	for _, t := range txs {
		switch t.Kind {
		case domain.CreditGiven:
			s.Balance = s.Balance.Add(t.Amount)
		case domain.PaymentReceived:
			s.Balance = s.Balance.Sub(t.Amount)
		}
		if t.CreatedAt.After(s.LastActivity) {
			s.LastActivity = t.CreatedAt
		}
	}
	return s
}

// Stats aggregates a tenant for the dashboard. TotalOutstanding sums only
// strictly-positive balances: settled accounts and customers the owner owes
// are not outstanding receivable. WeeklyTransactions counts entries created
// within the trailing 7 days of now, lower bound inclusive.
func Stats(accounts []domain.CustomerAccount, txs []domain.Transaction, now time.Time) domain.DashboardStats {
	outstanding := decimal.Zero
	for _, a := range accounts {
		if a.CurrentBalance.IsPositive() {
			outstanding = outstanding.Add(a.CurrentBalance)
		}
	}

	cutoff := now.AddDate(0, 0, -7)
	weekly := 0
	for _, t := range txs {
		if !t.CreatedAt.Before(cutoff) {
			weekly++
		}
	}

	return domain.DashboardStats{
		TotalOutstanding:   outstanding,
		TotalCustomers:     len(accounts),
		WeeklyTransactions: weekly,
	}
}

// SortByBalance orders accounts by descending balance, largest debt first.
// The sort is stable so equal balances keep their storage order.
func SortByBalance(accounts []domain.CustomerAccount) {
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].CurrentBalance.GreaterThan(accounts[j].CurrentBalance)
	})
}
