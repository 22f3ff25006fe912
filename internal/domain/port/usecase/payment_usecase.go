package usecase

import (
	"context"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
)

// PaymentUseCase defines the payment lifecycle operations. The idempotency
// key parameters are accepted as opaque tokens; correctness of "at most one
// effect per retry" is guaranteed structurally by the unique 1:1
// transaction-payment link and the status checks.
type PaymentUseCase interface {
	// MakePayment attempts to settle a transaction. An already-paid
	// transaction returns its existing payment unchanged.
	MakePayment(ctx context.Context, transactionID uint64, method, idempotencyKey string) (*entity.Payment, error)

	// Retry re-attempts a non-successful payment. SUCCESS is a true no-op.
	Retry(ctx context.Context, paymentID uint64, idempotencyKey string) (*entity.Payment, error)

	// MarkFailed unconditionally fails the payment and its transaction,
	// echoing reasonCode on the result without persisting it.
	MarkFailed(ctx context.Context, paymentID uint64, reasonCode, idempotencyKey string) (*entity.Payment, error)

	// Get returns the payment or nil when absent; absence is not an error
	Get(ctx context.Context, id uint64) (*entity.Payment, error)

	// GetByTransactionID returns the payment of a transaction or nil
	GetByTransactionID(ctx context.Context, transactionID uint64) (*entity.Payment, error)
}
