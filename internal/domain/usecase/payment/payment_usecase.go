package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
	errs "github.com/jaykakkad82/mypayments/internal/domain/error"
	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
	gatewayport "github.com/jaykakkad82/mypayments/internal/domain/port/gateway"
	"github.com/jaykakkad82/mypayments/internal/domain/port/persistence"
)

// Service drives the coupled Payment x Transaction state machine:
//
//	INITIATED --(gateway success)--> SUCCESS   => transaction COMPLETED
//	INITIATED --(gateway failure)--> FAILED    => transaction FAILED
//	FAILED    --(retry success)-->   SUCCESS   => transaction COMPLETED
//	SUCCESS   --(retry)-->           SUCCESS   (idempotent no-op)
//	*         --(markFailed)-->      FAILED    => transaction FAILED
//
// Every dual-entity mutation runs inside one unit of work so both records
// commit together or neither does.
type Service struct {
	uow          persistence.UnitOfWork
	gateway      gatewayport.PaymentGateway
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	uow persistence.UnitOfWork,
	gw gatewayport.PaymentGateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		gateway:      gw,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// MakePayment attempts to settle a transaction. If a payment already exists
// for the transaction it is returned unchanged; the idempotency key is
// accepted as an opaque token but the unique transaction-payment link is what
// guarantees at-most-one payment.
func (s *Service) MakePayment(ctx context.Context, transactionID uint64, method, idempotencyKey string) (*entity.Payment, error) {
	txn, err := s.uow.GetTransactionRepository(ctx).GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	// Fast idempotent short-circuit before opening an atomic unit.
	existing, err := s.uow.GetPaymentRepository(ctx).GetByTransactionID(ctx, txn.ID)
	if err == nil {
		s.logger.Debug("Payment already exists for transaction, returning it", map[string]any{
			"transaction_id": txn.ID,
			"payment_id":     existing.ID,
		})
		return existing, nil
	}
	if !errors.Is(err, errs.ErrPaymentNotFound) {
		return nil, fmt.Errorf("failed to check for existing payment: %w", err)
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin atomic unit: %w", err)
	}

	pay := entity.NewPayment(txn.ID, method, s.timeProvider)

	outcome, err := s.gateway.Attempt(txCtx, pay)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, errs.NewPaymentError(pay.ID, txn.ID, "gateway attempt failed", err)
	}
	s.applyOutcome(pay, txn, outcome)

	if err := s.uow.GetPaymentRepository(txCtx).Create(txCtx, pay); err != nil {
		_ = s.uow.Rollback(txCtx)
		if errs.IsDuplicatePaymentError(err) {
			// Lost a concurrent race for the same transaction: observe the
			// winner's payment and return it idempotently.
			winner, lookupErr := s.uow.GetPaymentRepository(ctx).GetByTransactionID(ctx, txn.ID)
			if lookupErr == nil {
				return winner, nil
			}
		}
		return nil, fmt.Errorf("failed to store payment: %w", err)
	}
	if err := s.uow.GetTransactionRepository(txCtx).Update(txCtx, txn); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}
	if err := s.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit payment: %w", err)
	}

	s.logger.Info("Payment processed", map[string]any{
		"payment_id":     pay.ID,
		"transaction_id": txn.ID,
		"status":         pay.Status,
		"reference_id":   pay.ReferenceID,
	})
	return pay, nil
}

// Retry re-attempts a non-successful payment. A SUCCESS payment is returned
// untouched: same status, reference and processing time.
func (s *Service) Retry(ctx context.Context, paymentID uint64, idempotencyKey string) (*entity.Payment, error) {
	pay, err := s.uow.GetPaymentRepository(ctx).GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if pay.Status == entity.PaymentSuccess {
		return pay, nil
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin atomic unit: %w", err)
	}

	txn, err := s.uow.GetTransactionRepository(txCtx).GetByID(txCtx, pay.TransactionID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	// Each attempt carries its own opaque reference token.
	pay.RecordAttempt(s.timeProvider)

	outcome, err := s.gateway.Attempt(txCtx, pay)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, errs.NewPaymentError(pay.ID, txn.ID, "gateway retry failed", err)
	}
	s.applyOutcome(pay, txn, outcome)

	if err := s.commitBoth(txCtx, pay, txn); err != nil {
		return nil, err
	}

	s.logger.Info("Payment retried", map[string]any{
		"payment_id":     pay.ID,
		"transaction_id": txn.ID,
		"status":         pay.Status,
	})
	return pay, nil
}

// MarkFailed unconditionally fails the payment and its transaction. The
// reason code is echoed on the returned payment but never persisted.
func (s *Service) MarkFailed(ctx context.Context, paymentID uint64, reasonCode, idempotencyKey string) (*entity.Payment, error) {
	pay, err := s.uow.GetPaymentRepository(ctx).GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin atomic unit: %w", err)
	}

	txn, err := s.uow.GetTransactionRepository(txCtx).GetByID(txCtx, pay.TransactionID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	pay.MarkFailed()
	txn.MarkFailed()

	if err := s.commitBoth(txCtx, pay, txn); err != nil {
		return nil, err
	}

	s.logger.Warn("Payment marked as failed", map[string]any{
		"payment_id":     pay.ID,
		"transaction_id": txn.ID,
		"reason_code":    reasonCode,
	})

	pay.FailureReason = reasonCode
	return pay, nil
}

// Get returns the payment or nil when absent
func (s *Service) Get(ctx context.Context, id uint64) (*entity.Payment, error) {
	pay, err := s.uow.GetPaymentRepository(ctx).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrPaymentNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return pay, nil
}

// GetByTransactionID returns the payment of a transaction or nil when absent
func (s *Service) GetByTransactionID(ctx context.Context, transactionID uint64) (*entity.Payment, error) {
	pay, err := s.uow.GetPaymentRepository(ctx).GetByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, errs.ErrPaymentNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return pay, nil
}

// applyOutcome maps a gateway outcome onto the coupled pair, keeping the
// transaction-COMPLETED iff payment-SUCCESS invariant
func (s *Service) applyOutcome(pay *entity.Payment, txn *entity.Transaction, outcome gatewayport.Outcome) {
	if outcome == gatewayport.OutcomeSuccess {
		pay.MarkSucceeded()
		txn.MarkCompleted()
		return
	}
	pay.MarkFailed()
	txn.MarkFailed()
}

// commitBoth writes the payment and transaction inside the open atomic unit
// and commits it, rolling back on any failure
func (s *Service) commitBoth(txCtx context.Context, pay *entity.Payment, txn *entity.Transaction) error {
	if err := s.uow.GetPaymentRepository(txCtx).Update(txCtx, pay); err != nil {
		_ = s.uow.Rollback(txCtx)
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if err := s.uow.GetTransactionRepository(txCtx).Update(txCtx, txn); err != nil {
		_ = s.uow.Rollback(txCtx)
		return fmt.Errorf("failed to update transaction status: %w", err)
	}
	if err := s.uow.Commit(txCtx); err != nil {
		return fmt.Errorf("failed to commit payment update: %w", err)
	}
	return nil
}
