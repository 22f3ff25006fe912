package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/jaykakkad82/mypayments/internal/domain/error"
	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionFailed    TransactionStatus = "FAILED"
)

// IsValidTransactionStatus validates if the status is one of the allowed values
func IsValidTransactionStatus(status string) bool {
	switch TransactionStatus(status) {
	case TransactionPending, TransactionCompleted, TransactionFailed:
		return true
	}
	return false
}

// Transaction represents a customer payment transaction.
// Amounts are exact fixed-point decimals; running totals built from them
// must never be rounded before presentation.
type Transaction struct {
	ID          uint64            // Unique identifier for the transaction
	CustomerID  uint64            // Owning customer, immutable after creation
	Amount      decimal.Decimal   // Non-negative monetary amount
	Currency    string            // ISO currency code, label only (no FX)
	Category    string            // Free-text category label
	Status      TransactionStatus // Lifecycle status
	CreatedAt   time.Time         // When the transaction was created
	Description string            // Optional description
}

// NewTransaction creates a new PENDING transaction with basic validation
func NewTransaction(
	customerID uint64,
	amount decimal.Decimal,
	currency string,
	category string,
	description string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if customerID == 0 {
		return nil, errs.ErrInvalidCustomerID
	}
	// Amount sign is validated upstream; never silently accept a negative one.
	if amount.IsNegative() {
		return nil, errs.ErrNegativeAmount
	}

	return &Transaction{
		CustomerID:  customerID,
		Amount:      amount,
		Currency:    currency,
		Category:    category,
		Status:      TransactionPending,
		CreatedAt:   timeProvider.Now(),
		Description: description,
	}, nil
}

// MarkCompleted transitions the transaction to COMPLETED.
// Only valid as the counterpart of a SUCCESS payment.
func (t *Transaction) MarkCompleted() {
	t.Status = TransactionCompleted
}

// MarkFailed transitions the transaction to FAILED
func (t *Transaction) MarkFailed() {
	t.Status = TransactionFailed
}

// IsTerminal reports whether the transaction reached a terminal status
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionCompleted || t.Status == TransactionFailed
}
