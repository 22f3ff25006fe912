package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
)

// CreateTransactionInput carries the fields of a transaction creation request
type CreateTransactionInput struct {
	CustomerID  uint64
	Amount      decimal.Decimal
	Currency    string
	Category    string
	Description string
}

// ListTransactionsInput is the raw, optional, conjunctive filter of a listing
// request. Status arrives as the caller-supplied string; an unrecognized
// value matches zero rows rather than erroring.
type ListTransactionsInput struct {
	CustomerID uint64
	Status     string
	Category   string
	Currency   string
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}

// TransactionPage is one page of a filtered transaction listing
type TransactionPage struct {
	Items      []*entity.Transaction
	TotalCount int64
	Page       int
	PageSize   int
}

// TransactionUseCase defines the transaction lifecycle operations
type TransactionUseCase interface {
	// Create persists a new PENDING transaction for an existing customer
	Create(ctx context.Context, input CreateTransactionInput) (*entity.Transaction, error)

	// Get returns the transaction or nil when absent; absence is not an error
	Get(ctx context.Context, id uint64) (*entity.Transaction, error)

	// Cancel moves a never-completed transaction to FAILED
	Cancel(ctx context.Context, id uint64) (*entity.Transaction, error)

	// List returns the page of transactions matching every present filter
	List(ctx context.Context, input ListTransactionsInput) (*TransactionPage, error)
}
