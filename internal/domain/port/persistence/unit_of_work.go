package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating coupled Transaction and
// Payment mutations so that both commit together or neither does
type UnitOfWork interface {
	// Begin starts a new atomic unit and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the atomic unit in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the atomic unit in the given context
	Rollback(ctx context.Context) error

	// GetCustomerRepository returns a customer repository bound to the
	// current atomic unit, or to the base store outside of one
	GetCustomerRepository(ctx context.Context) CustomerRepository

	// GetTransactionRepository returns a transaction repository bound to the
	// current atomic unit, or to the base store outside of one
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetPaymentRepository returns a payment repository bound to the current
	// atomic unit, or to the base store outside of one
	GetPaymentRepository(ctx context.Context) PaymentRepository
}
