// Package ledger orchestrates the read and write flows of the customer-credit
// book: recording transactions, deriving balances and shaping dashboard data.
package ledger

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bahikhata/internal/balance"
	"bahikhata/internal/domain"
	"bahikhata/internal/identity"
	customerrepo "bahikhata/internal/repository/customer"
	txrepo "bahikhata/internal/repository/transaction"
)

var (
	// ErrAmountNotPositive rejects zero and negative amounts.
	ErrAmountNotPositive = errors.New("amount must be greater than 0")
	// ErrInvalidKind rejects unknown transaction types.
	ErrInvalidKind = errors.New("invalid transaction type")
	// ErrCustomerRequired is returned when neither customerId nor customerName is given.
	ErrCustomerRequired = errors.New("customer name is required for new customers")
	// ErrAmbiguousCustomer is returned when both customerId and customerName are given.
	ErrAmbiguousCustomer = errors.New("provide either customerId or customerName, not both")
)

const recentLimit = 50

// Service exposes the tenant-scoped ledger operations. Every method takes the
// store owner id explicitly; there is no ambient identity state.
type Service struct {
	customers    customerrepo.Repository
	transactions txrepo.Repository
	now          func() time.Time
}

// New creates a Service using the wall clock.
func New(customers customerrepo.Repository, transactions txrepo.Repository) *Service {
	return &Service{
		customers:    customers,
		transactions: transactions,
		now:          time.Now,
	}
}

// ListCustomers returns the tenant's customers, most recently updated first.
func (s *Service) ListCustomers(ctx context.Context, ownerID string) ([]domain.Customer, error) {
	return s.customers.ListByOwner(ctx, ownerID)
}

// CustomerDetail is one customer with full history and derived balance fields.
type CustomerDetail struct {
	domain.CustomerAccount
	Transactions []domain.Transaction
}

// GetCustomer fetches one customer with transaction history and derived
// balance. Foreign and missing customers both yield domain.ErrNotFound.
func (s *Service) GetCustomer(ctx context.Context, ownerID, customerID string) (*CustomerDetail, error) {
	c, err := s.customers.GetByID(ctx, ownerID, customerID)
	if err != nil {
		return nil, err
	}
	txs, err := s.transactions.ListByCustomer(ctx, ownerID, c.ID)
	if err != nil {
		return nil, err
	}
	return &CustomerDetail{
		CustomerAccount: toAccount(*c, txs),
		Transactions:    txs,
	}, nil
}

// RecentTransactions returns the 50 most recent transactions with their
// customers embedded.
func (s *Service) RecentTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	return s.transactions.ListRecent(ctx, ownerID, recentLimit)
}

// RecordInput carries a transaction-creation request. Exactly one of
// CustomerID and CustomerName must be set.
type RecordInput struct {
	CustomerID   string
	CustomerName string
	Phone        string
	Amount       decimal.Decimal
	Kind         domain.TransactionKind
	Notes        string
}

// Record validates and persists a transaction. When the input names a
// not-yet-existing customer, the customer and its first transaction are
// created as one atomic unit.
func (s *Service) Record(ctx context.Context, ownerID string, in RecordInput) (*domain.Transaction, *domain.Customer, error) {
	if !in.Amount.IsPositive() {
		return nil, nil, ErrAmountNotPositive
	}
	if !in.Kind.Valid() {
		return nil, nil, ErrInvalidKind
	}
	customerID := strings.TrimSpace(in.CustomerID)
	name := strings.TrimSpace(in.CustomerName)
	if customerID != "" && name != "" {
		return nil, nil, ErrAmbiguousCustomer
	}
	if customerID == "" && name == "" {
		return nil, nil, ErrCustomerRequired
	}

	tx := domain.Transaction{
		ID:           uuid.NewString(),
		StoreOwnerID: ownerID,
		Amount:       in.Amount,
		Kind:         in.Kind,
		Notes:        strings.TrimSpace(in.Notes),
	}

	if customerID != "" {
		c, err := s.customers.GetByID(ctx, ownerID, customerID)
		if err != nil {
			return nil, nil, err
		}
		tx.CustomerID = c.ID
		created, err := s.transactions.Create(ctx, tx)
		if err != nil {
			return nil, nil, err
		}
		return created, c, nil
	}

	phone := strings.TrimSpace(in.Phone)
	duplicates, err := s.customers.CountByName(ctx, ownerID, name)
	if err != nil {
		return nil, nil, err
	}

	newCustomer := domain.Customer{
		ID:           uuid.NewString(),
		StoreOwnerID: ownerID,
		Code:         identity.CustomerCode(name, phone, s.now()),
		Name:         name,
		DisplayName:  identity.DisplayName(name, phone, duplicates > 0),
		Phone:        phone,
	}
	createdCustomer, createdTx, err := s.transactions.CreateWithCustomer(ctx, newCustomer, tx)
	if err != nil {
		return nil, nil, err
	}
	return createdTx, createdCustomer, nil
}

// Dashboard returns tenant-level stats plus all customers with derived
// balances, sorted by descending balance.
func (s *Service) Dashboard(ctx context.Context, ownerID string) (domain.DashboardStats, []domain.CustomerAccount, error) {
	customers, err := s.customers.ListByOwner(ctx, ownerID)
	if err != nil {
		return domain.DashboardStats{}, nil, err
	}
	txs, err := s.transactions.ListByOwner(ctx, ownerID)
	if err != nil {
		return domain.DashboardStats{}, nil, err
	}

	byCustomer := make(map[string][]domain.Transaction, len(customers))
	for _, t := range txs {
		byCustomer[t.CustomerID] = append(byCustomer[t.CustomerID], t)
	}

	accounts := make([]domain.CustomerAccount, 0, len(customers))
	for _, c := range customers {
		accounts = append(accounts, toAccount(c, byCustomer[c.ID]))
	}

	stats := balance.Stats(accounts, txs, s.now())
	balance.SortByBalance(accounts)
	return stats, accounts, nil
}

func toAccount(c domain.Customer, txs []domain.Transaction) domain.CustomerAccount {
	summary := balance.Summarize(txs)
	lastDate := summary.LastActivity
	if lastDate.IsZero() {
		lastDate = c.CreatedAt
	}
	return domain.CustomerAccount{
		Customer:            c,
		CurrentBalance:      summary.Balance,
		TotalTransactions:   summary.Count,
		LastTransactionDate: lastDate,
	}
}
