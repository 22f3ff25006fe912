package persistence

import (
	"context"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
)

// PaymentRepository defines essential methods to interact with payment data
type PaymentRepository interface {
	// Create persists a new payment and assigns its ID.
	// The unique transaction_id constraint is the structural idempotency
	// guarantee: at most one payment per transaction can ever be stored.
	//
	// Possible errors:
	// - ErrDuplicatePayment: If a payment already exists for the transaction
	// - ErrTransactionNotFound: If the referenced transaction does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, payment *entity.Payment) error

	// Update persists status, reference and processing time changes
	//
	// Possible errors:
	// - ErrPaymentNotFound: If the payment doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, payment *entity.Payment) error

	// GetByID retrieves a payment by its ID
	//
	// Possible errors:
	// - ErrPaymentNotFound: If the payment doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Payment, error)

	// GetByTransactionID retrieves the payment linked to a transaction
	//
	// Possible errors:
	// - ErrPaymentNotFound: If no payment exists for the transaction
	// - ErrDatabaseConnection: If database connection fails
	GetByTransactionID(ctx context.Context, transactionID uint64) (*entity.Payment, error)
}
